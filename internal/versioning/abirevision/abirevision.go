// Package abirevision allocates and formats ABI revision identifiers.
//
// The derivation rule for a fresh revision is a policy of the build that
// introduces the API level, so it is pluggable: callers hand the ledger
// updater a Generator. The default draws 64 random bits.
package abirevision

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// Generator produces a candidate ABI revision. Callers retry when the
// candidate collides with a revision already recorded in the ledger.
type Generator func() (uint64, error)

// Random is the default Generator.
func Random() (uint64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

// Fixed returns a Generator that always yields rev. Useful for tests and
// for builds that stamp a precomputed revision.
func Fixed(rev uint64) Generator {
	return func() (uint64, error) {
		return rev, nil
	}
}

// Format renders rev the way the ledger stores it, e.g.
// "0x201665C5B012BA43".
func Format(rev uint64) string {
	return fmt.Sprintf("0x%016X", rev)
}

// Parse reads a ledger-formatted revision back into its numeric form.
func Parse(s string) (uint64, error) {
	hex := strings.TrimPrefix(s, "0x")
	if hex == s {
		return 0, fmt.Errorf("abirevision: missing 0x prefix in %q", s)
	}
	return strconv.ParseUint(hex, 16, 64)
}
