package versioning

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
)

// PlatformVersion is the pointer document naming the API level builds
// target by default, plus the levels still supported for compatibility.
// The supported set is only changed when a level is frozen, which is a
// separate process; nothing here touches it.
type PlatformVersion struct {
	CurrentAPILevel    int   `json:"current_fuchsia_api_level"`
	SupportedAPILevels []int `json:"supported_fuchsia_api_levels"`
}

// ReadPlatformVersion loads the pointer document at path.
func ReadPlatformVersion(path string) (*PlatformVersion, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, err
	}

	var pv PlatformVersion
	if err := json.Unmarshal(b, &pv); err != nil {
		return nil, &MalformedDataError{Path: path, Err: err}
	}
	if pv.CurrentAPILevel <= 0 || pv.SupportedAPILevels == nil {
		return nil, &MalformedDataError{Path: path, Err: errDocumentShape}
	}
	return &pv, nil
}

func (pv *PlatformVersion) save(path string) error {
	b, err := json.Marshal(pv)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	if err := os.WriteFile(path, b, 0644); err != nil {
		return &WriteFailure{Path: path, Err: err}
	}
	return nil
}
