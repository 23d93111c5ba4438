package cli

import (
	"errors"

	"github.com/yaklabco/mdtags/internal/configloader"
	"github.com/yaklabco/mdtags/pkg/fsutil"
	"github.com/yaklabco/mdtags/pkg/tagfinder"
)

// Exit codes for mdtags.
const (
	// ExitSuccess indicates every input was processed.
	ExitSuccess = 0

	// ExitFilesFailed indicates at least one file could not be processed,
	// or that compare found disagreements.
	ExitFilesFailed = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrFilesFailed is returned when one or more files could not be read.
	// The report has already been written when it is returned.
	ErrFilesFailed = errors.New("some files could not be processed")

	// ErrMismatchesFound is returned by compare when goldmark disagrees
	// with the extracted tags.
	ErrMismatchesFound = errors.New("conformance mismatches found")

	// ErrUsage marks invalid flags or arguments.
	ErrUsage = errors.New("invalid usage")

	// ErrConfig marks configuration that could not be loaded.
	ErrConfig = errors.New("invalid configuration")
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	var validationErr *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrFilesFailed), errors.Is(err, ErrMismatchesFound):
		return ExitFilesFailed
	case errors.Is(err, ErrUsage), errors.Is(err, tagfinder.ErrInvalidRange):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig), errors.As(err, &validationErr):
		return ExitConfigError
	case fsutil.IsIOError(err):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// IsReported reports whether err only signals an outcome the command has
// already printed, so it needs no further logging.
func IsReported(err error) bool {
	return errors.Is(err, ErrFilesFailed) || errors.Is(err, ErrMismatchesFound)
}
