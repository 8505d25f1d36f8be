package ube

import (
	"testing"

	"epgs/internal/domain"
	"epgs/internal/profile"
)

func TestClassifySafe(t *testing.T) {
	p := profile.Default()
	out := Classify(domain.UBEStepVector{StepIndex: 0, Phi: 0.92, DegradationRate: 0.01, RiskLoad: 0.05}, p)
	if out.StabilityClass != domain.StabilitySafe {
		t.Fatalf("expected SAFE, got %s", out.StabilityClass)
	}
	if out.InvariantViolation {
		t.Fatal("did not expect invariant_violation")
	}
}

func TestClassifyCaution(t *testing.T) {
	p := profile.Default()
	out := Classify(domain.UBEStepVector{StepIndex: 0, Phi: 0.70, DegradationRate: 0.01, RiskLoad: 0.05}, p)
	if out.StabilityClass != domain.StabilityCaution {
		t.Fatalf("expected CAUTION, got %s", out.StabilityClass)
	}
}

func TestClassifyUnsafeBelowCautionBand(t *testing.T) {
	p := profile.Default()
	out := Classify(domain.UBEStepVector{StepIndex: 0, Phi: 0.10, DegradationRate: 0.50, RiskLoad: 0.50}, p)
	if out.StabilityClass != domain.StabilityUnsafe {
		t.Fatalf("expected UNSAFE, got %s", out.StabilityClass)
	}
	if out.InvariantViolation {
		t.Fatal("a low-but-in-range vector is not an invariant violation")
	}
}

func TestClassifyUnsafeLowPhiWithHighRiskAndDegradation(t *testing.T) {
	p := profile.Default()
	out := Classify(domain.UBEStepVector{StepIndex: 1, Phi: 0.40, DegradationRate: 0.20, RiskLoad: 0.50}, p)
	if out.StabilityClass != domain.StabilityUnsafe {
		t.Fatalf("expected UNSAFE, got %s", out.StabilityClass)
	}
}

func TestClassifyInvariantViolationForcesUnsafe(t *testing.T) {
	p := profile.Default()
	cases := []domain.UBEStepVector{
		{StepIndex: 0, Phi: -0.1, DegradationRate: 0.01, RiskLoad: 0.01},
		{StepIndex: 0, Phi: 1.5, DegradationRate: 0.01, RiskLoad: 0.01},
		{StepIndex: 0, Phi: 0.9, DegradationRate: -0.01, RiskLoad: 0.01},
		{StepIndex: 0, Phi: 0.9, DegradationRate: 0.01, RiskLoad: -0.01},
	}
	for _, c := range cases {
		out := Classify(c, p)
		if !out.InvariantViolation {
			t.Fatalf("expected invariant_violation for %+v", c)
		}
		if out.StabilityClass != domain.StabilityUnsafe {
			t.Fatalf("expected UNSAFE for violated vector %+v, got %s", c, out.StabilityClass)
		}
		if out.Phi < 0 || out.Phi > 1 || out.DegradationRate < 0 || out.RiskLoad < 0 {
			t.Fatalf("clamped output still out of range: %+v", out)
		}
	}
}
