package main

import (
	"errors"

	smarterrors "github.com/standardbeagle/smart-diff/internal/errors"
)

// exitCodeFor maps a returned error to the §6 exit code table. Errors that
// don't match any recognized kind fall back to exitInternal.
func exitCodeFor(err error) int {
	if err == nil {
		return exitOK
	}
	var badInput *smarterrors.BadInputError
	if errors.As(err, &badInput) {
		return exitBadArguments
	}
	if errors.Is(err, smarterrors.Cancelled) {
		return exitCancelled
	}
	var internal *smarterrors.InternalError
	if errors.As(err, &internal) {
		return exitInternal
	}
	if err == errNoSupportedFiles {
		return exitNoFiles
	}
	return exitInternal
}

var errNoSupportedFiles = errors.New("no supported files found under either root")
