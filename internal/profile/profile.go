// Package profile carries the frozen numeric thresholds consumed by
// the UBE classifier and the NRRP retry/terminal layer. A
// Profile is constructed once at run start and never mutated.
package profile

import "epgs/internal/domain"

// Default returns the simulator's baseline profile.
func Default() domain.Profile {
	return domain.Profile{
		MaxRetries:         0,
		PhiMinSafe:         0.75,
		RiskLoadMaxSafe:    0.30,
		DegradationMaxSafe: 0.05,
	}
}
