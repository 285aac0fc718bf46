package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.November, 3, 10, 0, 0, 0, time.UTC)

// TestParseRelativeDate covers various valid and invalid cases.
func TestParseRelativeDate(t *testing.T) {
	midnight := time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name        string
		input       string
		expected    time.Time
		expectError bool
	}{
		{
			name:     "valid plural days (mixed case)",
			input:    "3 DaYs AgO",
			expected: midnight.AddDate(0, 0, -3),
		},
		{
			name:     "valid singular week",
			input:    "1 week ago",
			expected: midnight.AddDate(0, 0, -7),
		},
		{
			name:     "zero days is today",
			input:    "0 days ago",
			expected: midnight,
		},
		{
			name:        "invalid missing ago",
			input:       "2 days",
			expectError: true,
		},
		{
			name:        "invalid unit",
			input:       "4 months ago",
			expectError: true,
		},
		{
			name:        "invalid non-numeric value",
			input:       "one day ago",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRelativeDate(tt.input, fixedNow)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestParseEntryDate covers every accepted date form.
func TestParseEntryDate(t *testing.T) {
	midnight := time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		input       string
		expected    time.Time
		expectError bool
	}{
		{"", midnight, false},
		{"today", midnight, false},
		{" Yesterday ", midnight.AddDate(0, 0, -1), false},
		{"2025-10-01", time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), false},
		{"2 days ago", midnight.AddDate(0, 0, -2), false},
		{"2025-13-01", time.Time{}, true},
		{"last tuesday", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseEntryDate(tt.input, fixedNow)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestTruncateDay keeps the local calendar day.
func TestTruncateDay(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*3600)
	late := time.Date(2025, time.November, 3, 23, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC), TruncateDay(late))
}

// FuzzParseEntryDate fuzzes the entry date parser.
func FuzzParseEntryDate(f *testing.F) {
	for _, seed := range []string{"", "today", "yesterday", "2025-01-01", "3 days ago", "99999 weeks ago", "garbage"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, s string) {
		got, err := ParseEntryDate(s, fixedNow)
		if err != nil {
			return
		}
		if got.Hour() != 0 || got.Minute() != 0 || got.Location() != time.UTC {
			t.Fatalf("date %v is not midnight UTC", got)
		}
	})
}
