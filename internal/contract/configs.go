package contract

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
	"time"

	"github.com/restorepath/readiness/schema"
)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// DrainageWeightsRaw holds custom drainage weights from the YAML config file.
// Pointers distinguish an omitted weight from an explicit zero.
type DrainageWeightsRaw struct {
	BowelMovements *float64 `mapstructure:"bowel_movements"`
	Hydration      *float64 `mapstructure:"hydration"`
	UrineColor     *float64 `mapstructure:"urine_color"`
	Energy         *float64 `mapstructure:"energy"`
	Sleep          *float64 `mapstructure:"sleep"`
	SkinClarity    *float64 `mapstructure:"skin_clarity"`
	LymphMovement  *float64 `mapstructure:"lymph_movement"`
	LiverSupport   *float64 `mapstructure:"liver_support"`
	MentalClarity  *float64 `mapstructure:"mental_clarity"`
	Sweating       *float64 `mapstructure:"sweating"`
}

// WeightsRawInput holds all custom rubric weights from the YAML config file.
type WeightsRawInput struct {
	Drainage *DrainageWeightsRaw `mapstructure:"drainage"`
}

// GateRawInput holds gate parameters from the YAML config file.
type GateRawInput struct {
	RequiredDays  *int     `mapstructure:"required-days"`
	RequiredScore *float64 `mapstructure:"required-score"`
}

// SeriesRawInput holds series parameters from the YAML config file.
type SeriesRawInput struct {
	Window    *int     `mapstructure:"window"`
	Threshold *float64 `mapstructure:"threshold"`
}

// Config holds the runtime configuration for scoring.
// This struct is the "final, validated" config.
type Config struct {
	UserID     string
	Date       time.Time // entry date, midnight UTC
	Domain     schema.Domain
	InputFile  string
	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Explain    bool
	UseColors  bool
	Width      int // table width override, 0 detects the terminal

	// Interactive prompts for the check-in instead of reading InputFile
	Interactive bool

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	Gate   schema.GateParams
	Series schema.SeriesParams

	// CustomWeights holds the drainage weights overridden in the config file
	CustomWeights map[schema.MetricKey]float64

	// Rubrics are the defaults with CustomWeights applied
	Rubrics *schema.Rubrics
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	User             string `mapstructure:"user"`
	Date             string `mapstructure:"date"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Precision        int    `mapstructure:"precision"`
	Color            string `mapstructure:"color"`
	Width            int    `mapstructure:"width"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`

	// --- Fields from scoring command flags ---
	Input       string `mapstructure:"input"`
	Interactive bool   `mapstructure:"interactive"`
	Explain     bool   `mapstructure:"explain"`

	// --- Fields from trendCmd.Flags() ---
	Domain string `mapstructure:"domain"`

	// --- Fields from gateCmd/trendCmd flags; these take precedence ---
	GateStr   string  `mapstructure:"gate-override"`
	Window    int     `mapstructure:"window"`
	Threshold float64 `mapstructure:"threshold"`

	// --- Sections from the config file ---
	Weights WeightsRawInput `mapstructure:"weights"`
	Gate    GateRawInput    `mapstructure:"gate"`
	Series  SeriesRawInput  `mapstructure:"series"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.CustomWeights != nil {
		clone.CustomWeights = make(map[schema.MetricKey]float64, len(c.CustomWeights))
		maps.Copy(clone.CustomWeights, c.CustomWeights)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processEntryDate(cfg, input, time.Now()); err != nil {
		return err
	}
	if err := processCustomWeights(cfg, input); err != nil {
		return err
	}
	if err := processGateParams(cfg, input); err != nil {
		return err
	}
	return processSeriesParams(cfg, input)
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates all flat fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.InputFile = strings.TrimSpace(input.Input)
	cfg.Explain = input.Explain
	cfg.Interactive = input.Interactive
	if cfg.Interactive && cfg.InputFile != "" {
		return fmt.Errorf("--input and --interactive cannot be combined")
	}

	cfg.UserID = strings.TrimSpace(input.User)
	if cfg.UserID == "" {
		cfg.UserID = schema.DefaultUser
	}

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	if input.Width < 0 {
		return fmt.Errorf("width must be non-negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", input.Output)
	}

	cfg.Domain = schema.DrainageDomain
	if input.Domain != "" {
		cfg.Domain = schema.Domain(strings.ToLower(input.Domain))
		if !schema.ValidDomains[cfg.Domain] {
			return fmt.Errorf("invalid domain '%s'. must be %s", input.Domain, strings.Join(schema.DomainNames(), ", "))
		}
	}

	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.HistoryBackend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
	}
	cfg.HistoryDBConnect = input.HistoryDBConnect
	return ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect)
}

// processEntryDate resolves the entry date; empty means today.
func processEntryDate(cfg *Config, input *ConfigRawInput, now time.Time) error {
	date, err := ParseEntryDate(input.Date, now)
	if err != nil {
		return fmt.Errorf("invalid --date value: %w", err)
	}
	cfg.Date = date
	return nil
}

// ProcessWeightsRawInput converts WeightsRawInput into a weight override map.
// If validateSum is true, the defaults merged with the overrides must sum to 1.0.
func ProcessWeightsRawInput(weights WeightsRawInput, validateSum bool) (map[schema.MetricKey]float64, error) {
	result := make(map[schema.MetricKey]float64)
	raw := weights.Drainage
	if raw == nil {
		return result, nil
	}

	fields := map[schema.MetricKey]*float64{
		schema.BowelMovements: raw.BowelMovements,
		schema.Hydration:      raw.Hydration,
		schema.UrineColor:     raw.UrineColor,
		schema.Energy:         raw.Energy,
		schema.Sleep:          raw.Sleep,
		schema.SkinClarity:    raw.SkinClarity,
		schema.LymphMovement:  raw.LymphMovement,
		schema.LiverSupport:   raw.LiverSupport,
		schema.MentalClarity:  raw.MentalClarity,
		schema.Sweating:       raw.Sweating,
	}
	for key, w := range fields {
		if w == nil {
			continue
		}
		if *w <= 0 || *w > 1 {
			return nil, fmt.Errorf("drainage weight for %s must be in (0, 1], got %.3f", key, *w)
		}
		result[key] = *w
	}

	if validateSum && len(result) > 0 {
		sum := schema.DefaultDrainageRubric().WithWeights(result).WeightSum()
		if !schema.WeightsBalanced(sum) {
			return nil, fmt.Errorf("drainage weights must sum to 1.0, got %.3f", sum)
		}
	}
	return result, nil
}

// processCustomWeights validates the weight overrides and builds the rubrics.
func processCustomWeights(cfg *Config, input *ConfigRawInput) error {
	weights, err := ProcessWeightsRawInput(input.Weights, true)
	if err != nil {
		return err
	}
	cfg.CustomWeights = weights

	rubrics := schema.DefaultRubrics()
	if len(weights) > 0 {
		rubrics.Drainage = rubrics.Drainage.WithWeights(weights)
	}
	cfg.Rubrics = rubrics
	return nil
}

// processGateParams applies defaults, then the config file, then the --gate-override flag.
func processGateParams(cfg *Config, input *ConfigRawInput) error {
	params := schema.DefaultGateParams()

	if input.Gate.RequiredDays != nil {
		params.RequiredDays = *input.Gate.RequiredDays
	}
	if input.Gate.RequiredScore != nil {
		params.RequiredScore = *input.Gate.RequiredScore
	}

	if input.GateStr != "" {
		override, err := parseGateString(input.GateStr)
		if err != nil {
			return fmt.Errorf("invalid --gate-override format: %w", err)
		}
		if days, ok := override["days"]; ok {
			params.RequiredDays = int(days)
		}
		if score, ok := override["score"]; ok {
			params.RequiredScore = score
		}
	}

	if params.RequiredDays < 1 {
		return fmt.Errorf("gate required days must be at least 1 (received %d)", params.RequiredDays)
	}
	if params.RequiredScore < 0 || params.RequiredScore > 100 {
		return fmt.Errorf("gate required score must be between 0.0 and 100.0 (received %.2f)", params.RequiredScore)
	}
	cfg.Gate = params
	return nil
}

// processSeriesParams applies defaults, then the config file, then flags.
func processSeriesParams(cfg *Config, input *ConfigRawInput) error {
	params := schema.SeriesParams{Window: schema.DefaultSeriesWindow, Threshold: schema.DefaultSeriesThreshold}

	if input.Series.Window != nil {
		params.Window = *input.Series.Window
	}
	if input.Series.Threshold != nil {
		params.Threshold = *input.Series.Threshold
	}
	if input.Window != 0 {
		params.Window = input.Window
	}
	if input.Threshold != 0 {
		params.Threshold = input.Threshold
	}

	if params.Window < 1 {
		return fmt.Errorf("series window must be at least 1 (received %d)", params.Window)
	}
	if params.Threshold < 0 || params.Threshold > 100 {
		return fmt.Errorf("series threshold must be between 0.0 and 100.0 (received %.2f)", params.Threshold)
	}
	cfg.Series = params
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// parseGateString parses a string like "days:7,score:80" into a map.
func parseGateString(s string) (map[string]float64, error) {
	out := make(map[string]float64)

	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		keyValue := strings.Split(part, ":")
		if len(keyValue) != 2 {
			return nil, fmt.Errorf("invalid gate format '%s', expected 'key:value'", part)
		}

		key := strings.ToLower(strings.TrimSpace(keyValue[0]))
		valueStr := strings.TrimSpace(keyValue[1])
		if key != "days" && key != "score" {
			return nil, fmt.Errorf("invalid gate key '%s', must be days or score", key)
		}

		value, err := strconv.ParseFloat(valueStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid gate value '%s' for %s: %w", valueStr, key, err)
		}
		if key == "days" && value != float64(int(value)) {
			return nil, fmt.Errorf("gate days must be a whole number, got %s", valueStr)
		}
		out[key] = value
	}

	return out, nil
}
