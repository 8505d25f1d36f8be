// Package ube implements the stability classifier: it maps a
// single step vector to SAFE/CAUTION/UNSAFE under a Profile's
// thresholds, fail-closed to UNSAFE whenever the vector itself
// violates its own domain invariants.
package ube

import (
	"epgs/internal/domain"
)

// Classify evaluates one UBEStepVector. A vector that violates its own
// domain invariants (phi outside [0,1], a negative rate) is clamped
// into range and forced UNSAFE with invariant_violation set — this is
// a designed fail-closed path, not an error, and it is reported
// through the returned value, never an error return.
func Classify(v domain.UBEStepVector, p domain.Profile) domain.UBEOut {
	violated := v.Phi < 0.0 || v.Phi > 1.0 || v.DegradationRate < 0.0 || v.RiskLoad < 0.0

	if violated {
		return domain.UBEOut{
			Phi:                clamp(v.Phi, 0.0, 1.0),
			DegradationRate:    clampMin(v.DegradationRate, 0.0),
			RiskLoad:           clampMin(v.RiskLoad, 0.0),
			StabilityClass:     domain.StabilityUnsafe,
			InvariantViolation: true,
		}
	}

	var sc domain.StabilityClass
	switch {
	case v.Phi >= p.PhiMinSafe && v.RiskLoad <= p.RiskLoadMaxSafe && v.DegradationRate <= p.DegradationMaxSafe:
		sc = domain.StabilitySafe
	case v.Phi >= p.PhiMinSafe-0.10:
		sc = domain.StabilityCaution
	default:
		sc = domain.StabilityUnsafe
	}

	return domain.UBEOut{
		Phi:                v.Phi,
		DegradationRate:    v.DegradationRate,
		RiskLoad:           v.RiskLoad,
		StabilityClass:     sc,
		InvariantViolation: false,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampMin(v, lo float64) float64 {
	if v < lo {
		return lo
	}
	return v
}
