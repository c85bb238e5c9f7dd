package versioning

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"strconv"
)

var errDocumentShape = errors.New("required keys missing")

// VersionEntry is one ledger record tying an API level to the ABI
// revision stamped when the level was introduced.
type VersionEntry struct {
	APILevel    string `json:"api_level"`
	ABIRevision string `json:"abi_revision"`
}

// HistoryData carries the ledger payload under the "data" key. Name and
// Type are descriptive strings owned by the schema, passed through
// untouched.
type HistoryData struct {
	Name     string         `json:"name"`
	Type     string         `json:"type"`
	Versions []VersionEntry `json:"versions"`
}

// VersionHistory is the persisted ledger of every API level ever
// published. Entries are append-only and keep chronological order.
type VersionHistory struct {
	Data     HistoryData `json:"data"`
	SchemaID string      `json:"schema_id"`
}

// ReadVersionHistory loads the ledger document at path.
func ReadVersionHistory(path string) (*VersionHistory, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, err
	}

	var h VersionHistory
	if err := json.Unmarshal(b, &h); err != nil {
		return nil, &MalformedDataError{Path: path, Err: err}
	}
	if h.SchemaID == "" || h.Data.Versions == nil {
		return nil, &MalformedDataError{Path: path, Err: errDocumentShape}
	}
	for _, entry := range h.Data.Versions {
		if entry.APILevel == "" || entry.ABIRevision == "" {
			return nil, &MalformedDataError{Path: path, Err: errDocumentShape}
		}
	}
	return &h, nil
}

// Contains reports whether the ledger already has an entry for level.
func (h *VersionHistory) Contains(level int) bool {
	target := strconv.Itoa(level)
	for _, entry := range h.Data.Versions {
		if entry.APILevel == target {
			return true
		}
	}
	return false
}

// hasRevision reports whether rev is already recorded for some level.
// Revisions are compared in their formatted form, which is canonical in
// the ledger.
func (h *VersionHistory) hasRevision(rev string) bool {
	for _, entry := range h.Data.Versions {
		if entry.ABIRevision == rev {
			return true
		}
	}
	return false
}

func (h *VersionHistory) save(path string) error {
	b, err := json.MarshalIndent(h, "", "    ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	if err := os.WriteFile(path, b, 0644); err != nil {
		return &WriteFailure{Path: path, Err: err}
	}
	return nil
}
