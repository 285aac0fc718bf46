// Package algo is the pure scoring engine: rubric scoring, weakness ranking,
// series statistics, gates and recommendations. Nothing here performs I/O.
package algo

import (
	"errors"
	"fmt"

	"github.com/restorepath/readiness/schema"
)

// ErrInvalidSnapshot is wrapped by every input validation error.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// MissingMetricError reports a required metric absent from the input.
type MissingMetricError struct {
	Domain schema.Domain
	Key    string
}

func (e *MissingMetricError) Error() string {
	return fmt.Sprintf("%s: missing metric %q", e.Domain, e.Key)
}

func (e *MissingMetricError) Unwrap() error { return ErrInvalidSnapshot }

// OutOfRangeError reports a metric value outside [1,10].
type OutOfRangeError struct {
	Domain schema.Domain
	Key    string
	Value  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: metric %q has value %d, want %d-%d",
		e.Domain, e.Key, e.Value, schema.MetricMin, schema.MetricMax)
}

func (e *OutOfRangeError) Unwrap() error { return ErrInvalidSnapshot }

// UnknownMetricError reports a key or severity the rubric does not define.
type UnknownMetricError struct {
	Domain schema.Domain
	Key    string
}

func (e *UnknownMetricError) Error() string {
	return fmt.Sprintf("%s: unknown key %q", e.Domain, e.Key)
}

func (e *UnknownMetricError) Unwrap() error { return ErrInvalidSnapshot }

// checkRange validates a single metric value.
func checkRange(domain schema.Domain, key string, value int) error {
	if value < schema.MetricMin || value > schema.MetricMax {
		return &OutOfRangeError{Domain: domain, Key: key, Value: value}
	}
	return nil
}

// ValidateSnapshot checks that a drainage snapshot carries every rubric key in range.
// Keys outside the rubric are rejected.
func ValidateSnapshot(snapshot schema.Snapshot, rubric *schema.DrainageRubric) error {
	for _, e := range rubric.Entries {
		v, ok := snapshot[e.Key]
		if !ok {
			return &MissingMetricError{Domain: schema.DrainageDomain, Key: string(e.Key)}
		}
		if err := checkRange(schema.DrainageDomain, string(e.Key), v); err != nil {
			return err
		}
	}
	if len(snapshot) > len(rubric.Entries) {
		for key := range snapshot {
			if _, ok := rubric.Entry(key); !ok {
				return &UnknownMetricError{Domain: schema.DrainageDomain, Key: string(key)}
			}
		}
	}
	return nil
}
