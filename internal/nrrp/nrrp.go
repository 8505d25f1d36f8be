// Package nrrp implements the retry/terminal decision layer: it
// turns the precheck permission and the mid-execution stop flag into a
// retry/terminal verdict. Fail-closed: any mid-execution STOP is
// always a HIGH-severity terminal stop, regardless of the permission
// that preceded it.
package nrrp

import "epgs/internal/domain"

// Decide applies the retry/terminal decision table: any mid-execution
// stop is a HIGH terminal stop; a precheck BLOCK terminalizes once
// retries are exhausted; ALLOW/ASSIST with no stop is a LOW,
// non-terminal pass-through.
func Decide(prePermission domain.Permission, stopIssued bool, retriesAttempted int, p domain.Profile) domain.NRRPOut {
	if stopIssued {
		return domain.NRRPOut{
			RetriesAttempted: retriesAttempted,
			RetryAllowed:     false,
			TerminalStop:     true,
			FailureClass:     domain.FailureHigh,
		}
	}

	if prePermission == domain.PermissionBlock {
		if retriesAttempted < p.MaxRetries {
			return domain.NRRPOut{
				RetriesAttempted: retriesAttempted,
				RetryAllowed:     true,
				TerminalStop:     false,
				FailureClass:     domain.FailureMedium,
			}
		}
		return domain.NRRPOut{
			RetriesAttempted: retriesAttempted,
			RetryAllowed:     false,
			TerminalStop:     true,
			FailureClass:     domain.FailureHigh,
		}
	}

	return domain.NRRPOut{
		RetriesAttempted: retriesAttempted,
		RetryAllowed:     false,
		TerminalStop:     false,
		FailureClass:     domain.FailureLow,
	}
}
