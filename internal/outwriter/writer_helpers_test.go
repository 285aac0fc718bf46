package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/restorepath/readiness/internal/contract"
	"github.com/restorepath/readiness/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFormatters(t *testing.T) {
	tests := []struct {
		name      string
		precision int
		value     float64
		expected  string
	}{
		{"precision 1", 1, 72.46, "72.5"},
		{"precision 2", 2, 3.14159, "3.14"},
		{"negative value", 2, -42.567, "-42.57"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fmtFloat, intFmt := createFormatters(tt.precision)
			assert.Equal(t, tt.expected, fmtFloat(tt.value))
			assert.Equal(t, "%d", intFmt)
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string]int{"score": 82}))
	assert.Equal(t, "{\n  \"score\": 82\n}\n", buf.String())

	err := writeJSON(&buf, make(chan int))
	assert.Error(t, err)
}

func TestWriteCSVWithHeader(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"a", "b"}, func(w *csv.Writer) error {
		return w.Write([]string{"1", "x,y"})
	})
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,\"x,y\"\n", buf.String())

	err = writeCSVWithHeader(&buf, []string{"a"}, func(*csv.Writer) error {
		return errors.New("row failure")
	})
	assert.ErrorContains(t, err, "row failure")
}

func TestWriteWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	err := writeWithFile(path, func(w io.Writer) error {
		_, err := w.Write([]byte("hello"))
		return err
	}, "Wrote test")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))

	err = writeWithFile(filepath.Join(t.TempDir(), "missing", "out.txt"), func(io.Writer) error { return nil }, "x")
	assert.Error(t, err)
}

func TestLevelLabel(t *testing.T) {
	plain := &contract.Config{UseColors: false}
	assert.Equal(t, "Almost Ready", levelLabel(string(schema.AlmostReady), plain))

	colored := &contract.Config{UseColors: true}
	assert.Contains(t, levelLabel(string(schema.RiskHigh), colored), "High")
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", truncateText("short", 10))
	assert.Equal(t, "abcdefg...", truncateText("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", truncateText("abcdef", 2))
	assert.Equal(t, "ééé...", truncateText(strings.Repeat("é", 12), 6))
}

func TestGetMaxTextWidth(t *testing.T) {
	assert.Equal(t, 90, getMaxTextWidth(&contract.Config{Width: 200}, 10))
	assert.Equal(t, 20, getMaxTextWidth(&contract.Config{Width: 30}, 10))
	assert.Equal(t, 55, getMaxTextWidth(&contract.Config{Width: 80}, 15))
}

func TestSortedKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, sortedKeys(map[string]float64{"c": 1, "a": 2, "b": 3}))
}

func TestWriteLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeLines(&buf, "one", "", "two"))
	assert.Equal(t, "one\n\ntwo\n", buf.String())
}

// decodeJSON is a small helper shared by the output tests.
func decodeJSON(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}
