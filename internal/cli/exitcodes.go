package cli

import (
	"errors"

	"github.com/yaklabco/linepos/pkg/config"
	"github.com/yaklabco/linepos/pkg/fsutil"
	"github.com/yaklabco/linepos/pkg/linepos"
)

// Exit codes for linepos.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitQueryError indicates the query itself failed: an out-of-bounds
	// offset or an invalid range.
	ExitQueryError = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeForError maps an error returned by command execution to an
// exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrInvalidArgument):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfigLoad),
		errors.Is(err, config.ErrInvalidFormat),
		errors.Is(err, config.ErrInvalidColor):
		return ExitConfigError
	case errors.Is(err, linepos.ErrOutOfBounds),
		errors.Is(err, linepos.ErrInvalidRange):
		return ExitQueryError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fsutil.ErrTooLarge):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
