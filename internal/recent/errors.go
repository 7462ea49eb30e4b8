package recent

import "fmt"

// EnvironmentError reports that the host could not supply the application
// data directory. It is not retried.
type EnvironmentError struct {
	Reason string
	Err    error
}

func (e *EnvironmentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *EnvironmentError) Unwrap() error { return e.Err }

// Op identifies the step of a save that failed.
type Op string

const (
	OpCreateDir Op = "create directory"
	OpEncode    Op = "encode"
	OpWrite     Op = "write"
	OpLock      Op = "lock"
)

// PersistError reports that an add did not durably succeed.
type PersistError struct {
	Op   Op
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
