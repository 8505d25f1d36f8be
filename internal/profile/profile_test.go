package profile

import "testing"

func TestDefaultMatchesFrozenThresholds(t *testing.T) {
	p := Default()
	if p.MaxRetries != 0 {
		t.Fatalf("max_retries: got %d want 0", p.MaxRetries)
	}
	if p.PhiMinSafe != 0.75 {
		t.Fatalf("phi_min_safe: got %v want 0.75", p.PhiMinSafe)
	}
	if p.RiskLoadMaxSafe != 0.30 {
		t.Fatalf("risk_load_max_safe: got %v want 0.30", p.RiskLoadMaxSafe)
	}
	if p.DegradationMaxSafe != 0.05 {
		t.Fatalf("degradation_max_safe: got %v want 0.05", p.DegradationMaxSafe)
	}
}
