// Command epgsctl is the determinism driver: it runs every
// scenario twice, verifies both resulting chains, and compares the two
// run results field by field (rblock_hash included). The raw R-Block
// files are not compared byte for byte. Exit code 0 means every
// scenario produced matching hashes across both runs and both
// verifications succeeded; 1 means at least one did not.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"epgs/internal/domain"
	"epgs/internal/orchestrator"
	"epgs/internal/scenario"
	"epgs/internal/verifier"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("epgsctl", flag.ContinueOnError)
	outRoot := fs.String("out", "output_ci", "output root for determinism-proof runs")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if err := os.MkdirAll(*outRoot, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "mkdir:", err)
		return 2
	}

	fmt.Println("=== Determinism Proof Summary (EPGS) ===")
	fmt.Println("Format:")
	fmt.Println("[#] SCENARIO | SECTOR | PERM | STOP | FINAL | HASH | LEDGER_RUN1 | LEDGER_RUN2 | VERIFY | MATCH")
	fmt.Println(dashes(120))

	ok := true

	for i, scenarioID := range scenario.MandatoryScenarioIDs {
		s, err := scenario.LoadFixture(scenarioID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load fixture %s: %v\n", scenarioID, err)
			return 2
		}

		run1Dir := filepath.Join(*outRoot, fmt.Sprintf("scenario_%d", i), "run1")
		run2Dir := filepath.Join(*outRoot, fmt.Sprintf("scenario_%d", i), "run2")

		res1, err := orchestrator.Run(s, run1Dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "run1 %s: %v\n", scenarioID, err)
			return 2
		}
		res2, err := orchestrator.Run(s, run2Dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "run2 %s: %v\n", scenarioID, err)
			return 2
		}

		v1 := verifier.Verify(res1.LedgerDir)
		v2 := verifier.Verify(res2.LedgerDir)

		same := resultsEqual(res1, res2) && v1.OK && v2.OK

		fmt.Printf(
			"[%d] %-18s | %-18s | %-6s | %-5v | %-10s | %.16s... | %s | %s | %v | %v\n",
			i, res1.ScenarioID, res1.SectorLabel, res1.Permission, res1.StopIssued,
			res1.FinalState, res1.RBlockHash, res1.LedgerDir, res2.LedgerDir,
			v1.OK && v2.OK, same,
		)

		if !same {
			ok = false
			fmt.Printf("  ERROR: determinism or verification failure for %s\n", scenarioID)
			fmt.Printf("  run1=%+v\n  run2=%+v\n  verify1=%+v\n  verify2=%+v\n", res1, res2, v1, v2)
		}
	}

	fmt.Println(dashes(120))
	if ok {
		fmt.Println("=== Determinism Proof Result: PASS ===")
		return 0
	}
	fmt.Println("=== Determinism Proof Result: FAIL ===")
	return 1
}

// resultsEqual compares two run results field-by-field, excluding the
// filesystem-specific ledger_dir: two independent output roots are
// expected to differ there even when everything hash-relevant matches.
func resultsEqual(a, b domain.RunResult) bool {
	return a.RunID == b.RunID &&
		a.ScenarioID == b.ScenarioID &&
		a.SectorLabel == b.SectorLabel &&
		a.Permission == b.Permission &&
		a.StopIssued == b.StopIssued &&
		a.TerminalStop == b.TerminalStop &&
		a.FinalState == b.FinalState &&
		a.RBlockHash == b.RBlockHash
}

func dashes(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '-'
	}
	return string(b)
}
