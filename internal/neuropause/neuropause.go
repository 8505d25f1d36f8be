// Package neuropause implements the temporal readiness check: a
// scenario is READY once the stable_ms accumulated since the last
// jitter reaches TauMsRequired. A jittered step resets the accumulator
// to zero and then adds its own stable_ms.
package neuropause

import (
	"sort"

	"epgs/internal/domain"
)

// Evaluate classifies a scenario's temporal signal stream. Signals are
// sorted by step_index ascending (stable) before accumulation, so the
// caller's ordering never affects the result.
func Evaluate(signals []domain.TemporalSignal) domain.NeuroPauseOut {
	ordered := make([]domain.TemporalSignal, len(signals))
	copy(ordered, signals)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StepIndex < ordered[j].StepIndex
	})

	observed := 0
	resets := 0

	for _, t := range ordered {
		if t.Jitter {
			resets++
			observed = 0
		}
		observed += t.StableMs
		if observed >= domain.TauMsRequired {
			return domain.NeuroPauseOut{
				Readiness:     domain.ReadinessReady,
				TauMsRequired: domain.TauMsRequired,
				TauMsObserved: observed,
				Resets:        resets,
			}
		}
	}

	return domain.NeuroPauseOut{
		Readiness:     domain.ReadinessNotReady,
		TauMsRequired: domain.TauMsRequired,
		TauMsObserved: observed,
		Resets:        resets,
	}
}
