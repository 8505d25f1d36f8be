package orchestrator

import (
	"path/filepath"
	"testing"

	"epgs/internal/domain"
	"epgs/internal/scenario"
	"epgs/internal/verifier"
)

func TestMandatoryScenariosEndToEnd(t *testing.T) {
	cases := []struct {
		scenarioID   string
		permission   domain.Permission
		stopIssued   bool
		terminalStop bool
		finalState   domain.ExecutionFinalState
	}{
		{"S-STABLE-SAFE", domain.PermissionAllow, false, false, domain.FinalExecuted},
		{"S-FAST-NOTREADY", domain.PermissionBlock, false, true, domain.FinalTerminated},
		{"S-CAUTION-ASSIST", domain.PermissionAssist, false, false, domain.FinalExecuted},
		{"S-MIDSTOP-DEGRADE", domain.PermissionAllow, true, true, domain.FinalTerminated},
		{"S-NRRP-TERMINATE", domain.PermissionBlock, false, true, domain.FinalTerminated},
	}

	for _, c := range cases {
		t.Run(c.scenarioID, func(t *testing.T) {
			s, err := scenario.LoadFixture(c.scenarioID)
			if err != nil {
				t.Fatal(err)
			}

			result, err := Run(s, t.TempDir())
			if err != nil {
				t.Fatal(err)
			}

			if result.Permission != c.permission {
				t.Errorf("permission: got %s want %s", result.Permission, c.permission)
			}
			if result.StopIssued != c.stopIssued {
				t.Errorf("stop_issued: got %v want %v", result.StopIssued, c.stopIssued)
			}
			if result.TerminalStop != c.terminalStop {
				t.Errorf("terminal_stop: got %v want %v", result.TerminalStop, c.terminalStop)
			}
			if result.FinalState != c.finalState {
				t.Errorf("final_state: got %s want %s", result.FinalState, c.finalState)
			}

			v := verifier.Verify(result.LedgerDir)
			if !v.OK {
				t.Errorf("chain verification failed: %+v", v)
			}
		})
	}
}

// TestDeterministicReplay mirrors the chain's tamper-evidence promise
// from the other side: running the same scenario against two
// independent output roots must yield identical hashes everywhere
// except the filesystem-specific ledger_dir.
func TestDeterministicReplay(t *testing.T) {
	for _, scenarioID := range scenario.MandatoryScenarioIDs {
		s, err := scenario.LoadFixture(scenarioID)
		if err != nil {
			t.Fatal(err)
		}

		root := t.TempDir()
		res1, err := Run(s, filepath.Join(root, "run1"))
		if err != nil {
			t.Fatal(err)
		}
		res2, err := Run(s, filepath.Join(root, "run2"))
		if err != nil {
			t.Fatal(err)
		}

		if res1.RunID != res2.RunID {
			t.Errorf("%s: run_id not deterministic", scenarioID)
		}
		if res1.RBlockHash != res2.RBlockHash {
			t.Errorf("%s: rblock_hash not deterministic: %s vs %s", scenarioID, res1.RBlockHash, res2.RBlockHash)
		}
		if res1.Permission != res2.Permission || res1.FinalState != res2.FinalState {
			t.Errorf("%s: pipeline outcome not deterministic", scenarioID)
		}

		if v1 := verifier.Verify(res1.LedgerDir); !v1.OK {
			t.Errorf("%s: run1 chain invalid: %+v", scenarioID, v1)
		}
		if v2 := verifier.Verify(res2.LedgerDir); !v2.OK {
			t.Errorf("%s: run2 chain invalid: %+v", scenarioID, v2)
		}
	}
}

func TestRunIDDerivesFromScenarioIDOnly(t *testing.T) {
	s, err := scenario.LoadFixture("S-STABLE-SAFE")
	if err != nil {
		t.Fatal(err)
	}

	a, err := Run(s, filepath.Join(t.TempDir(), "a"))
	if err != nil {
		t.Fatal(err)
	}

	s.Requests[0].RequestedAtMs = 99999
	b, err := Run(s, filepath.Join(t.TempDir(), "b"))
	if err != nil {
		t.Fatal(err)
	}

	if a.RunID != b.RunID {
		t.Fatal("run_id must depend only on scenario_id, not on request contents")
	}
}
