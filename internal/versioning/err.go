package versioning

import "fmt"

// NotFoundError reports that a bookkeeping file is missing. The two
// documents are checked in alongside the build, so a missing file means
// the caller is pointing at the wrong tree.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("versioning: %s not found", e.Path)
}

// MalformedDataError reports that a bookkeeping file could not be parsed
// into the expected document shape.
type MalformedDataError struct {
	Path string
	Err  error
}

func (e *MalformedDataError) Error() string {
	return fmt.Sprintf("versioning: malformed document %s: %v", e.Path, e.Err)
}

func (e *MalformedDataError) Unwrap() error {
	return e.Err
}

// WriteFailure reports a failed rewrite of a bookkeeping file.
type WriteFailure struct {
	Path string
	Err  error
}

func (e *WriteFailure) Error() string {
	return fmt.Sprintf("versioning: cannot write %s: %v", e.Path, e.Err)
}

func (e *WriteFailure) Unwrap() error {
	return e.Err
}
