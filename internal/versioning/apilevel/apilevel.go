// Package apilevel parses API level values supplied on the command line.
package apilevel

import (
	"errors"
	"strconv"
	"strings"
)

// ErrFormat reports a value that is not a positive decimal integer.
var ErrFormat = errors.New("apilevel: not a positive integer")

type Level string

// From creates a Level from its string form.
func From(level string) Level {
	return Level(strings.TrimSpace(level))
}

// Parse converts the level to its numeric form. API levels are positive
// decimal integers; anything else is rejected.
func (l Level) Parse() (int, error) {
	n, err := strconv.Atoi(string(l))
	if err != nil || n <= 0 {
		return 0, ErrFormat
	}
	return n, nil
}

// MustParse parses the level or panics.
func (l Level) MustParse() int {
	n, err := l.Parse()
	if err != nil {
		panic(err)
	}
	return n
}

// String returns the level's string form, as the ledger records it.
func (l Level) String() string {
	return string(l)
}
