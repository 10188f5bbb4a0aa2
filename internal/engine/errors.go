package engine

import "fmt"

// UsageError reports an invalid invocation: an unknown mode, a missing
// argument or a malformed option. It is raised before any file is examined.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

func usagef(format string, a ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, a...)}
}

// EnvironmentError reports that an external collaborator could not do its
// job, e.g. git is missing or one of its commands failed.
type EnvironmentError struct {
	Op  string
	Err error
}

func (e *EnvironmentError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *EnvironmentError) Unwrap() error { return e.Err }
