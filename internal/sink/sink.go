// Package sink implements the Execution Sink: the terminal
// reducer that turns a permission, a stop flag, and a terminal-stop
// flag into an executed/not-executed final state, plus a
// content-addressed hash of the intended side effect.
package sink

import (
	"epgs/internal/canon"
	"epgs/internal/domain"
)

// EffectPayload carries the intended side effect of an execution
// request: the field order here is fixed (unlike a bare map) so the
// hash is stable without relying on map iteration order.
type EffectPayload struct {
	Sector      domain.SectorLabel `json:"sector"`
	Action      string             `json:"action"`
	ExecutionID string             `json:"execution_id"`
}

// Reduce computes the final execution state: terminal stop takes
// priority over a plain stop, which takes priority over the
// permission itself.
func Reduce(permission domain.Permission, stopIssued, terminalStop bool, effect EffectPayload) (domain.ExecutionSinkOut, error) {
	effectHash, err := effectHash(effect)
	if err != nil {
		return domain.ExecutionSinkOut{}, err
	}

	if terminalStop {
		return domain.ExecutionSinkOut{
			Executed:            false,
			FinalState:          domain.FinalTerminated,
			ReasonCode:          "NRRP_TERMINAL_STOP",
			ExecutionEffectHash: effectHash,
		}, nil
	}

	if stopIssued {
		return domain.ExecutionSinkOut{
			Executed:            false,
			FinalState:          domain.FinalStopped,
			ReasonCode:          "AEGIXA_STOP",
			ExecutionEffectHash: effectHash,
		}, nil
	}

	if permission == domain.PermissionAllow || permission == domain.PermissionAssist {
		return domain.ExecutionSinkOut{
			Executed:            true,
			FinalState:          domain.FinalExecuted,
			ReasonCode:          "PERMITTED",
			ExecutionEffectHash: effectHash,
		}, nil
	}

	return domain.ExecutionSinkOut{
		Executed:            false,
		FinalState:          domain.FinalBlocked,
		ReasonCode:          "BLOCKED",
		ExecutionEffectHash: effectHash,
	}, nil
}

// effectHash is a canonical, order-stable projection of the effect
// payload: the same canonical_json rule used for R-Block hashing, so
// the effect hash is as reproducible as the rest of the chain.
func effectHash(effect EffectPayload) (string, error) {
	c, err := canon.CanonicalJSON(effect)
	if err != nil {
		return "", err
	}
	return canon.SHA256Hex(c), nil
}
