package loader

import "fmt"

// NotFoundError reports a dataset path that does not exist. Load-time
// failures are fatal: no cleaning is attempted on a missing file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("dataset not found: %s", e.Path)
}

// ParseError reports malformed tabular content during load.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
