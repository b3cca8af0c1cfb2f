package core

import "fmt"

// NotFoundError reports that a dataset's declared source file is absent.
// The loader converts it to a nil table; it never reaches callers.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("source file not found: %s", e.Path)
}

// UnreadableError reports that a source file exists but could not be
// decoded with any fallback encoding, or that its delimited format is
// malformed.
type UnreadableError struct {
	Path string
	Err  error
}

func (e *UnreadableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unreadable source file %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("unreadable source file %s: no fallback encoding succeeded", e.Path)
}

func (e *UnreadableError) Unwrap() error { return e.Err }
