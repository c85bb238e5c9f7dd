// Package versioning maintains the two checked-in platform version
// bookkeeping documents: the version-history ledger and the current
// platform version pointer.
package versioning

import (
	"fmt"
	"strconv"

	"github.com/fuchsia-build/fversion/internal/versioning/abirevision"
)

// revisionAttempts bounds collision retries against the ledger.
const revisionAttempts = 16

// Updater rewrites the bookkeeping files for a target API level. Paths
// and the revision policy are supplied by the caller; there is no
// package-level state.
type Updater struct {
	// HistoryPath locates the version-history ledger.
	HistoryPath string
	// PlatformPath locates the current-version pointer file.
	PlatformPath string
	// NewRevision allocates the ABI revision for a fresh ledger entry.
	// Nil means abirevision.Random.
	NewRevision abirevision.Generator
}

// UpdateVersionHistory appends a ledger entry for level unless one
// already exists. It reports whether the file was rewritten, so callers
// can tell a no-op run apart and skip committing.
func (u *Updater) UpdateVersionHistory(level int) (bool, error) {
	if level <= 0 {
		return false, fmt.Errorf("versioning: invalid API level %d", level)
	}
	h, err := ReadVersionHistory(u.HistoryPath)
	if err != nil {
		return false, err
	}
	if h.Contains(level) {
		return false, nil
	}

	rev, err := u.allocateRevision(h)
	if err != nil {
		return false, err
	}
	h.Data.Versions = append(h.Data.Versions, VersionEntry{
		APILevel:    strconv.Itoa(level),
		ABIRevision: rev,
	})
	if err := h.save(u.HistoryPath); err != nil {
		return false, err
	}
	return true, nil
}

// UpdatePlatformVersion points the platform version file at level. The
// supported set is copied through verbatim; only a freeze changes it.
// It reports whether the file was rewritten.
func (u *Updater) UpdatePlatformVersion(level int) (bool, error) {
	if level <= 0 {
		return false, fmt.Errorf("versioning: invalid API level %d", level)
	}
	pv, err := ReadPlatformVersion(u.PlatformPath)
	if err != nil {
		return false, err
	}
	if pv.CurrentAPILevel == level {
		return false, nil
	}

	pv.CurrentAPILevel = level
	if err := pv.save(u.PlatformPath); err != nil {
		return false, err
	}
	return true, nil
}

// Update advances both documents to level and reports whether any file
// was rewritten. The first error aborts; a half-applied update is left
// for the caller to inspect rather than silently patched up.
func (u *Updater) Update(level int) (bool, error) {
	wroteHistory, err := u.UpdateVersionHistory(level)
	if err != nil {
		return false, err
	}
	wrotePlatform, err := u.UpdatePlatformVersion(level)
	if err != nil {
		return wroteHistory, err
	}
	return wroteHistory || wrotePlatform, nil
}

func (u *Updater) allocateRevision(h *VersionHistory) (string, error) {
	generate := u.NewRevision
	if generate == nil {
		generate = abirevision.Random
	}
	for i := 0; i < revisionAttempts; i++ {
		rev, err := generate()
		if err != nil {
			return "", err
		}
		formatted := abirevision.Format(rev)
		if !h.hasRevision(formatted) {
			return formatted, nil
		}
	}
	return "", fmt.Errorf("versioning: no unused ABI revision after %d attempts", revisionAttempts)
}
