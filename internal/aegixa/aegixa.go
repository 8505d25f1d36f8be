// Package aegixa implements the permission gate: a precheck that
// maps NeuroPause readiness and the initial UBE classification to
// ALLOW/ASSIST/BLOCK, and a mid-execution monitor that can issue a
// STOP once a run is underway. Both are fail-closed: whenever
// readiness or stability cannot be affirmed, the result is BLOCK.
package aegixa

import "epgs/internal/domain"

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// Precheck decides whether a scenario may begin execution at all.
func Precheck(np domain.NeuroPauseOut, ubeInitial domain.UBEOut) domain.AegixaOut {
	if np.Readiness != domain.ReadinessReady {
		return domain.AegixaOut{
			Permission:     domain.PermissionBlock,
			StopIssued:     false,
			StopReasonCode: strPtr("NP_NOT_READY"),
		}
	}

	if ubeInitial.StabilityClass == domain.StabilityUnsafe || ubeInitial.InvariantViolation {
		return domain.AegixaOut{
			Permission:     domain.PermissionBlock,
			StopIssued:     false,
			StopReasonCode: strPtr("UBE_UNSAFE"),
		}
	}

	if ubeInitial.StabilityClass == domain.StabilityCaution {
		return domain.AegixaOut{Permission: domain.PermissionAssist, StopIssued: false}
	}

	return domain.AegixaOut{Permission: domain.PermissionAllow, StopIssued: false}
}

// MidExecutionMonitor inspects one in-flight step's UBE classification
// and, if it is unsafe, returns a STOP. The second return value
// reports whether a stop fired; the orchestrator halts its iteration
// over step vectors on the first true.
func MidExecutionMonitor(stepIndex int, ube domain.UBEOut) (domain.AegixaOut, bool) {
	if ube.StabilityClass == domain.StabilityUnsafe || ube.InvariantViolation {
		return domain.AegixaOut{
			Permission:     domain.PermissionBlock,
			StopIssued:     true,
			StopReasonCode: strPtr("MID_EXEC_UNSAFE"),
			StopStepIndex:  intPtr(stepIndex),
		}, true
	}
	return domain.AegixaOut{}, false
}
