// Package orchestrator sequences C2-C8 into a single deterministic
// run: NeuroPause, then UBE on the first step vector, then the Aegixa
// precheck, then (if not blocked) the mid-execution monitor over every
// step vector, then NRRP, then the Execution Sink, then one R-Block
// write. No wall-clock read, no random source, and no environment
// value may enter any hashed field.
package orchestrator

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/google/uuid"

	"epgs/internal/aegixa"
	"epgs/internal/domain"
	"epgs/internal/neurochain"
	"epgs/internal/neuropause"
	"epgs/internal/nrrp"
	"epgs/internal/profile"
	"epgs/internal/scenario"
	"epgs/internal/sink"
	"epgs/internal/ube"
)

var namespace = uuid.MustParse(domain.Namespace)

// RunScenario is the single public entry point of C9: it loads and
// validates a scenario, executes the pipeline, writes the resulting
// R-Block, and returns the run result.
func RunScenario(scenarioPath, outputRoot string) (domain.RunResult, error) {
	s, err := scenario.Load(scenarioPath)
	if err != nil {
		return domain.RunResult{}, err
	}
	return Run(s, outputRoot)
}

// Run executes the pipeline against an already-validated scenario.
// Splitting this from RunScenario lets callers (tests, the determinism
// driver) supply a scenario without a filesystem round trip.
func Run(s domain.Scenario, outputRoot string) (domain.RunResult, error) {
	p := profile.Default()

	runID := uuid.NewSHA1(namespace, []byte(s.ScenarioID+"::run")).String()
	rblockID := uuid.NewSHA1(namespace, []byte(s.ScenarioID+"::rblock")).String()

	np := neuropause.Evaluate(s.Temporal)

	sortedVectors := make([]domain.UBEStepVector, len(s.UBEVectors))
	copy(sortedVectors, s.UBEVectors)
	sort.SliceStable(sortedVectors, func(i, j int) bool {
		return sortedVectors[i].StepIndex < sortedVectors[j].StepIndex
	})

	// A scenario without UBE vectors has nothing to classify; treat the
	// zero vector as the initial reading rather than special-casing it
	// through the rest of the pipeline.
	var ubeInitial domain.UBEOut
	if len(sortedVectors) > 0 {
		ubeInitial = ube.Classify(sortedVectors[0], p)
	} else {
		ubeInitial = ube.Classify(domain.UBEStepVector{}, p)
	}

	aegixaOut := aegixa.Precheck(np, ubeInitial)

	if aegixaOut.Permission != domain.PermissionBlock {
		for _, v := range sortedVectors {
			stepUBE := ube.Classify(v, p)
			if stopOut, fired := aegixa.MidExecutionMonitor(v.StepIndex, stepUBE); fired {
				aegixaOut = domain.AegixaOut{
					Permission:     aegixaOut.Permission,
					StopIssued:     true,
					StopReasonCode: stopOut.StopReasonCode,
					StopStepIndex:  stopOut.StopStepIndex,
				}
				break
			}
		}
	}

	nrrpOut := nrrp.Decide(aegixaOut.Permission, aegixaOut.StopIssued, 0, p)

	effect := sink.EffectPayload{
		Sector:      s.SectorLabel,
		Action:      s.Requests[0].ActionType,
		ExecutionID: s.Requests[0].ExecutionID,
	}
	execOut, err := sink.Reduce(aegixaOut.Permission, aegixaOut.StopIssued, nrrpOut.TerminalStop, effect)
	if err != nil {
		return domain.RunResult{}, fmt.Errorf("orchestrator: execution sink: %w", err)
	}

	payload := domain.RBlockPayload{
		RBlockID:   rblockID,
		RunID:      runID,
		ScenarioID: s.ScenarioID,
		StepCount:  len(sortedVectors),
		NeuroPause: np,
		UBEInitial: ubeInitial,
		Aegixa:     aegixaOut,
		NRRP:       nrrpOut,
		Execution:  execOut,
	}

	ledgerDir := filepath.Join(outputRoot, s.ScenarioID, "ledger")
	block, err := neurochain.Write(ledgerDir, payload, domain.GenesisHash)
	if err != nil {
		return domain.RunResult{}, fmt.Errorf("orchestrator: write rblock: %w", err)
	}

	return domain.RunResult{
		RunID:        runID,
		ScenarioID:   s.ScenarioID,
		SectorLabel:  s.SectorLabel,
		Permission:   aegixaOut.Permission,
		StopIssued:   aegixaOut.StopIssued,
		TerminalStop: nrrpOut.TerminalStop,
		FinalState:   execOut.FinalState,
		RBlockHash:   block.RBlockHash,
		LedgerDir:    ledgerDir,
	}, nil
}
