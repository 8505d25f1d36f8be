// Package neurochain implements the R-Block writer: it chains a
// payload onto a previous hash and appends it, once, to a ledger
// directory. The ledger directory is exclusively owned by the running
// orchestrator instance; a target path that already exists is an
// immutability violation, not a silent overwrite.
package neurochain

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"epgs/internal/canon"
	"epgs/internal/domain"
)

// ErrImmutable is returned when the target R-Block path already
// exists on disk.
var ErrImmutable = errors.New("neurochain: R-Block already exists, immutability violation")

// Write computes rblock_hash = chained_hash(payload, previousHash),
// builds the full record (payload plus previous_hash/rblock_hash), and
// writes it to ledgerDir/{payload.RBlockID}.json as canonical JSON.
// The existence check and the write happen against the same
// exclusive-create file handle to avoid a TOCTOU window between check
// and write.
func Write(ledgerDir string, payload domain.RBlockPayload, previousHash string) (domain.RBlock, error) {
	if err := os.MkdirAll(ledgerDir, 0o755); err != nil {
		return domain.RBlock{}, fmt.Errorf("neurochain: create ledger dir: %w", err)
	}

	rblockHash, err := canon.ChainedHash(payload, previousHash)
	if err != nil {
		return domain.RBlock{}, fmt.Errorf("neurochain: hash payload: %w", err)
	}

	record := domain.RBlock{
		RBlockPayload: payload,
		PreviousHash:  previousHash,
		RBlockHash:    rblockHash,
	}

	body, err := canon.CanonicalJSON(record)
	if err != nil {
		return domain.RBlock{}, fmt.Errorf("neurochain: canonicalize record: %w", err)
	}

	path := filepath.Join(ledgerDir, payload.RBlockID+".json")

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return domain.RBlock{}, fmt.Errorf("%w: %s", ErrImmutable, path)
		}
		return domain.RBlock{}, fmt.Errorf("neurochain: open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(body); err != nil {
		return domain.RBlock{}, fmt.Errorf("neurochain: write %s: %w", path, err)
	}

	return record, nil
}
