// Package env resolves default bookkeeping file locations from the
// environment, for callers that do not pass paths explicitly.
package env

import (
	"fmt"
	"os"
)

const (
	historyFile  = "FVERSION_HISTORY_FILE"
	platformFile = "FVERSION_PLATFORM_FILE"
)

type envError struct {
	Name string
}

func newEnvError(name string) error {
	return &envError{Name: name}
}

func (e *envError) Error() string {
	return fmt.Sprintf("env: no %s found", e.Name)
}

// HistoryFile returns the version-history ledger path.
func HistoryFile() (string, error) {
	return lookup(historyFile)
}

// PlatformFile returns the platform version pointer path.
func PlatformFile() (string, error) {
	return lookup(platformFile)
}

func lookup(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", newEnvError(name)
	}
	return value, nil
}
