package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/restorepath/readiness/schema"
)

// Color variables for console output.
var (
	CriticalColor = color.New(color.FgRed, color.Bold)     // emergency and critical risk
	HighColor     = color.New(color.FgMagenta, color.Bold) // high risk, not ready
	ModerateColor = color.New(color.FgYellow)              // moderate risk, improving
	LowColor      = color.New(color.FgCyan)                // low risk, almost ready
	ReadyColor    = color.New(color.FgGreen, color.Bold)   // ready
)

// levelLabels maps readiness and risk levels to display labels.
var levelLabels = map[string]string{
	string(schema.Ready):         "Ready",
	string(schema.AlmostReady):   "Almost Ready",
	string(schema.Improving):     "Improving",
	string(schema.NotReady):      "Not Ready",
	string(schema.RiskEmergency): "Emergency",
	string(schema.RiskCritical):  "Critical",
	string(schema.RiskHigh):      "High",
	string(schema.RiskModerate):  "Moderate",
	string(schema.RiskLow):       "Low",
}

// GetPlainLabel returns the display label of a readiness or risk level.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(level string) string {
	if label, ok := levelLabels[level]; ok {
		return label
	}
	return level
}

// GetColorLabel returns a colored label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(level string) string {
	text := GetPlainLabel(level)

	switch level {
	case string(schema.RiskEmergency), string(schema.RiskCritical):
		return CriticalColor.Sprint(text)
	case string(schema.RiskHigh), string(schema.NotReady):
		return HighColor.Sprint(text)
	case string(schema.RiskModerate), string(schema.Improving):
		return ModerateColor.Sprint(text)
	case string(schema.Ready):
		return ReadyColor.Sprint(text)
	default:
		return LowColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. It returns os.Stdout when the path is empty.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for history storage.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return schema.DefaultHistoryDBName
	}
	return filepath.Join(homeDir, schema.DefaultHistoryDBName)
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
