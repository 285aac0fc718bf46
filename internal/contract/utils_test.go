package contract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/restorepath/readiness/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{string(schema.Ready), "Ready"},
		{string(schema.AlmostReady), "Almost Ready"},
		{string(schema.Improving), "Improving"},
		{string(schema.NotReady), "Not Ready"},
		{string(schema.RiskEmergency), "Emergency"},
		{string(schema.RiskCritical), "Critical"},
		{string(schema.RiskHigh), "High"},
		{string(schema.RiskModerate), "Moderate"},
		{string(schema.RiskLow), "Low"},
		{"unknown", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.input))
		})
	}
}

func TestGetColorLabel(t *testing.T) {
	for level, label := range levelLabels {
		t.Run(level, func(t *testing.T) {
			// Should contain the plain label
			assert.Contains(t, GetColorLabel(level), label)
		})
	}
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path returns stdout", func(t *testing.T) {
		file, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, file)
	})

	t.Run("valid path creates file", func(t *testing.T) {
		tempFile := filepath.Join(t.TempDir(), "test_output.txt")

		file, err := SelectOutputFile(tempFile)
		require.NoError(t, err)
		assert.NotNil(t, file)
		_ = file.Close()

		_, err = os.Stat(tempFile)
		assert.NoError(t, err)
	})
}

func TestGetHistoryDBFilePath(t *testing.T) {
	path := GetHistoryDBFilePath()
	assert.True(t, strings.HasSuffix(path, schema.DefaultHistoryDBName))
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "TRUE", "1"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, v, s)
	}
	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, v, s)
	}
	_, err := ParseBoolString("sometimes")
	assert.Error(t, err)
}
