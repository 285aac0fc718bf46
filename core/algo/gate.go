package algo

import (
	"fmt"

	"github.com/restorepath/readiness/schema"
)

// EvaluateGate decides whether the last RequiredDays scores all reach
// RequiredScore. DaysRemaining is derived from the trailing qualifying run,
// which can disagree with Satisfied only when the window is not fully qualifying.
func EvaluateGate(scores []float64, params schema.GateParams) schema.GateStatus {
	n := len(scores)
	_, trailing := Streaks(scores, params.RequiredScore)

	if n < params.RequiredDays {
		remaining := params.RequiredDays - n
		return schema.GateStatus{
			ConsecutiveQualifyingDays: trailing,
			DaysRemaining:             remaining,
			Message: fmt.Sprintf("Need %d more day(s) of tracking at %.0f or above (%d of %d recorded).",
				remaining, params.RequiredScore, n, params.RequiredDays),
		}
	}

	satisfied := true
	for _, s := range scores[n-params.RequiredDays:] {
		if s < params.RequiredScore {
			satisfied = false
			break
		}
	}
	if satisfied {
		return schema.GateStatus{
			Satisfied:                 true,
			ConsecutiveQualifyingDays: trailing,
			Message: fmt.Sprintf("Gate unlocked: %d consecutive day(s) at %.0f or above.",
				trailing, params.RequiredScore),
		}
	}

	remaining := max(0, params.RequiredDays-trailing)
	return schema.GateStatus{
		ConsecutiveQualifyingDays: trailing,
		DaysRemaining:             remaining,
		Message: fmt.Sprintf("%d consecutive day(s) at %.0f or above; %d more needed.",
			trailing, params.RequiredScore, remaining),
	}
}

// EvaluateBinderGate runs the gate over the drainage scores of a history.
// Only entries tagged with the drainage domain count, in the order given.
func EvaluateBinderGate(history []schema.HistoryEntry, params schema.GateParams) schema.GateStatus {
	drainage := make([]schema.HistoryEntry, 0, len(history))
	for _, e := range history {
		if e.Domain == schema.DrainageDomain {
			drainage = append(drainage, e)
		}
	}
	return EvaluateGate(schema.Scores(drainage), params)
}
