package errors

import (
	"fmt"
	"io"

	crdb "github.com/cockroachdb/errors"
)

// Process exit codes.
const (
	ExitSuccess = 0
	// ExitUser covers bad flags, bad configuration and unknown instances.
	ExitUser = 1
	// ExitSystem covers COM failures, I/O errors and anything unclassified.
	ExitSystem = 2
)

var (
	// ErrNotFound indicates no instance matched the request.
	ErrNotFound = crdb.New("instance not found")
	// ErrInvalidConfig indicates configuration validation failed.
	ErrInvalidConfig = crdb.New("invalid configuration")
	// ErrUnknownKey indicates a configuration key that does not exist.
	ErrUnknownKey = crdb.New("unknown configuration key")
	// ErrNoInstances indicates there was nothing to choose from.
	ErrNoInstances = crdb.New("no instances installed")
)

// Re-exported from github.com/cockroachdb/errors.
var (
	New      = crdb.New
	Newf     = crdb.Newf
	Wrap     = crdb.Wrap
	Wrapf    = crdb.Wrapf
	WithHint = crdb.WithHint
	Is       = crdb.Is
	As       = crdb.As
)

// ExitError tells main which exit code to use and what to suggest. A nil
// Err means the command already reported the problem itself.
type ExitError struct {
	Err        error
	Code       int
	Suggestion string
}

func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// NewUserError marks err as caused by the invocation.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitUser, Suggestion: suggestion}
}

// NewSystemError marks err as caused by the machine.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitSystem, Suggestion: suggestion}
}

// NewConfigError marks err as a configuration problem, pointing at doctor.
func NewConfigError(err error) *ExitError {
	return NewUserError(err, "Run: vswhere doctor")
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode returns the code of the outermost ExitError in err's chain,
// ExitSystem for other errors and ExitSuccess for nil.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if crdb.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitSystem
}

// Fprint writes err and its suggestions to w the way main reports a failed
// command, and returns the exit code. Hints attached with WithHint are
// printed after the ExitError suggestion.
func Fprint(w io.Writer, err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	ok := crdb.As(err, &exitErr)
	if !ok || exitErr.Err != nil {
		fmt.Fprintln(w, "Error:", err)
	}
	if ok && exitErr.Suggestion != "" {
		fmt.Fprintln(w, exitErr.Suggestion)
	}
	for _, hint := range crdb.GetAllHints(err) {
		fmt.Fprintln(w, hint)
	}
	return ExitCode(err)
}
