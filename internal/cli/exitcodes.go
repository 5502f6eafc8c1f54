package cli

import "errors"

// Exit codes for cellflat, following sysexits conventions.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitDataError indicates malformed input.
	ExitDataError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 78
)

// Error categories commands wrap their failures with, so main can map
// them to exit codes.
var (
	ErrUsage  = errors.New("usage error")
	ErrInput  = errors.New("input error")
	ErrData   = errors.New("data error")
	ErrConfig = errors.New("config error")
)

// ExitCodeForError maps a command error to a process exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrData):
		return ExitDataError
	case errors.Is(err, ErrInput):
		return ExitIOError
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	default:
		return ExitInternalError
	}
}
