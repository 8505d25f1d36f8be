// Package canon implements the canonicalization & hash-chaining
// protocol every other subsystem hashes through: a single
// canonical_json rule, SHA-256, and the chained_hash primitive that
// links one R-Block to the previous. Ambiguity here (key order,
// spacing, float formatting, unicode escaping) is the one thing that
// would break cross-platform reproducibility, so this package is kept
// deliberately small and self-contained.
package canon

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gowebpki/jcs"
)

// CanonicalJSON renders v as the unique textual representation used as
// hash input: RFC 8785 (JCS) key-sorted, whitespace-free JSON, with
// every non-ASCII rune escaped. JCS already pins number formatting to
// the shortest round-trip ECMAScript representation and sorts object
// keys at every depth; the one gap is that JCS itself leaves UTF-8
// text untouched, so ASCII-only output is closed here with an
// explicit escape pass.
func CanonicalJSON(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("canon: marshal: %w", err)
	}
	transformed, err := jcs.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("canon: jcs transform: %w", err)
	}
	return asciiEscape(string(transformed)), nil
}

// asciiEscape rewrites a valid JSON text so every byte is ASCII,
// replacing each non-ASCII rune with its \uXXXX escape (a surrogate
// pair for runes outside the basic multilingual plane). JSON string
// escaping is otherwise untouched: structural bytes (quotes, braces,
// commas, colons, digits, existing backslash escapes) are all ASCII
// already and pass through unchanged.
func asciiEscape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x80 {
			b.WriteRune(r)
			continue
		}
		if r > 0xFFFF {
			r -= 0x10000
			hi := 0xD800 + (r >> 10)
			lo := 0xDC00 + (r & 0x3FF)
			fmt.Fprintf(&b, `\u%04x\u%04x`, hi, lo)
			continue
		}
		fmt.Fprintf(&b, `\u%04x`, r)
	}
	return b.String()
}

// SHA256Hex returns the lower-hex SHA-256 digest of data, interpreted
// as UTF-8 bytes.
func SHA256Hex(data string) string {
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}

// ChainedHash is sha256_hex(canonical_json(payload) ++ previousHex),
// with no delimiter between the two halves.
func ChainedHash(payload any, previousHex string) (string, error) {
	c, err := CanonicalJSON(payload)
	if err != nil {
		return "", err
	}
	return SHA256Hex(c + previousHex), nil
}
