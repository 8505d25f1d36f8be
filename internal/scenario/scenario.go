// Package scenario implements the validated scenario model:
// loading a scenario file is a pure JSON read that returns a validated,
// immutable record, or an error before any ledger side effect occurs.
package scenario

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"epgs/internal/domain"
)

// ErrValidation is returned for any scenario schema violation.
var ErrValidation = errors.New("scenario: validation error")

var validSectors = map[domain.SectorLabel]bool{
	domain.SectorEnergy:           true,
	domain.SectorAerospaceDefense: true,
	domain.SectorMobility:         true,
	domain.SectorRobotics:         true,
}

// Load reads and validates a scenario file. Unknown fields are
// rejected, matching the strict decode the HTTP adapter uses
// elsewhere in this repository.
func Load(path string) (domain.Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	return Decode(raw)
}

// Decode validates raw JSON bytes into a Scenario.
func Decode(raw []byte) (domain.Scenario, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var s domain.Scenario
	if err := dec.Decode(&s); err != nil {
		return domain.Scenario{}, fmt.Errorf("%w: invalid json: %v", ErrValidation, err)
	}

	if err := validate(s); err != nil {
		return domain.Scenario{}, err
	}
	return s, nil
}

func validate(s domain.Scenario) error {
	if s.ScenarioID == "" {
		return fmt.Errorf("%w: scenario_id required", ErrValidation)
	}
	if !validSectors[s.SectorLabel] {
		return fmt.Errorf("%w: unknown sector_label %q", ErrValidation, s.SectorLabel)
	}
	if len(s.Requests) == 0 {
		return fmt.Errorf("%w: requests must be non-empty", ErrValidation)
	}

	for _, r := range s.Requests {
		if r.ExecutionID == "" {
			return fmt.Errorf("%w: execution_id required", ErrValidation)
		}
		if r.ActionType != "IRREVERSIBLE" {
			return fmt.Errorf("%w: action_type must be IRREVERSIBLE", ErrValidation)
		}
		if !validSectors[r.SectorLabel] {
			return fmt.Errorf("%w: unknown request sector_label %q", ErrValidation, r.SectorLabel)
		}
		if r.RequestedAtMs < 0 {
			return fmt.Errorf("%w: requested_at_ms must be >= 0", ErrValidation)
		}
	}

	for _, t := range s.Temporal {
		if t.StepIndex < 0 {
			return fmt.Errorf("%w: temporal step_index must be >= 0", ErrValidation)
		}
		if t.StableMs < 0 {
			return fmt.Errorf("%w: stable_ms must be >= 0", ErrValidation)
		}
	}

	for _, v := range s.UBEVectors {
		if v.StepIndex < 0 {
			return fmt.Errorf("%w: ube_vectors step_index must be >= 0", ErrValidation)
		}
	}

	return nil
}
