package contract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/restorepath/readiness/schema"
)

// Define the regular expression to capture "N [units] ago"
// e.g., "3 days ago", "1 week ago".
var relativeDateRe = regexp.MustCompile(`^(\d+)\s+(week|day)s?\s+ago$`)

// ParseRelativeDate converts strings like "3 days ago" into a date in the past.
func ParseRelativeDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	matches := relativeDateRe.FindStringSubmatch(s)

	if len(matches) == 0 {
		return time.Time{}, fmt.Errorf("invalid relative date format: %s", s)
	}

	value, _ := strconv.Atoi(matches[1])
	if matches[2] == "week" {
		value *= 7
	}
	return TruncateDay(now).AddDate(0, 0, -value), nil
}

// ParseEntryDate resolves an entry date from "", "today", "yesterday",
// YYYY-MM-DD or "N days ago". The result is midnight UTC.
func ParseEntryDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "", "today":
		return TruncateDay(now), nil
	case "yesterday":
		return TruncateDay(now).AddDate(0, 0, -1), nil
	}

	if t, err := time.Parse(schema.DateLayout, s); err == nil {
		return t, nil
	}
	t, err := ParseRelativeDate(s, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected YYYY-MM-DD, today, yesterday or 'N days ago': %q", s)
	}
	return t, nil
}

// TruncateDay returns midnight UTC of the calendar day of t in its own location.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
