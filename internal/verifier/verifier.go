// Package verifier implements the chain verifier: an
// independent reader that re-derives each R-Block's hash from its
// on-disk payload and validates the previous_hash linkage. It only
// ever needs the ledger directory; it never mutates anything.
package verifier

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"epgs/internal/canon"
	"epgs/internal/domain"
)

// rblockNamePattern matches the UUID-shaped filenames the writer
// produces; any other .json file in the directory is ignored.
var rblockNamePattern = regexp.MustCompile(
	`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.json$`,
)

// Verify walks ledgerDir in lexical filename order, recomputing each
// block's hash over its stripped payload and confirming previous_hash
// linkage, starting from domain.GenesisHash.
func Verify(ledgerDir string) domain.VerifyResult {
	entries, err := os.ReadDir(ledgerDir)
	if err != nil {
		return domain.VerifyResult{OK: false, Reason: "No R-Blocks found"}
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if rblockNamePattern.MatchString(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	if len(names) == 0 {
		return domain.VerifyResult{OK: false, Reason: "No R-Blocks found"}
	}

	prev := domain.GenesisHash

	for _, name := range names {
		path := filepath.Join(ledgerDir, name)
		raw, err := os.ReadFile(path)
		if err != nil {
			return domain.VerifyResult{OK: false, Reason: "hash mismatch in " + name}
		}

		var record map[string]any
		if err := json.Unmarshal(raw, &record); err != nil {
			return domain.VerifyResult{OK: false, Reason: "hash mismatch in " + name}
		}

		embeddedPrev, _ := record["previous_hash"].(string)
		embeddedHash, _ := record["rblock_hash"].(string)
		delete(record, "previous_hash")
		delete(record, "rblock_hash")

		if embeddedPrev != prev {
			return domain.VerifyResult{OK: false, Reason: "previous_hash mismatch in " + name}
		}

		recomputed, err := canon.ChainedHash(record, prev)
		if err != nil || recomputed != embeddedHash {
			return domain.VerifyResult{OK: false, Reason: "hash mismatch in " + name}
		}

		prev = embeddedHash
	}

	return domain.VerifyResult{OK: true, FinalHash: prev, Count: len(names)}
}
