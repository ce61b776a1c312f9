package csvcat

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	groups, err := scanner.GroupFiles(dir)
//	if errors.Is(err, csvcat.ErrDirectoryNotFound) {
//	    // Handle missing sample directory
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDirectoryNotFound indicates the target directory does not exist or is not a directory.
	ErrDirectoryNotFound = errors.New("directory not found")

	// ErrNotReadable indicates the target directory exists but cannot be listed.
	ErrNotReadable = errors.New("directory not readable")

	// ErrFileNotFound indicates the target data file does not exist or cannot be opened.
	ErrFileNotFound = errors.New("file not found")

	// ErrRowParse indicates a row could not be decoded as a delimited record.
	ErrRowParse = errors.New("row parse error")

	// ErrInvalidColumn indicates a negative column index was requested.
	ErrInvalidColumn = errors.New("invalid column index")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrDirectoryNotFound):
		return ExitDirectoryNotFound
	case errors.Is(err, ErrNotReadable):
		return ExitNotReadable
	case errors.Is(err, ErrFileNotFound):
		return ExitFileNotFound
	case errors.Is(err, ErrRowParse):
		return ExitRowParseError
	case errors.Is(err, ErrInvalidColumn):
		return ExitUsageError
	}

	// cobra reports argument and flag problems as plain errors
	errStr := err.Error()
	if strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "unknown command") ||
		strings.Contains(errStr, "accepts ") ||
		strings.Contains(errStr, "required flag") ||
		strings.Contains(errStr, "invalid argument") ||
		strings.Contains(errStr, "missing required argument") {
		return ExitUsageError
	}

	return ExitGeneralError
}
