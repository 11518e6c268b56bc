package cli

import (
	"errors"

	"github.com/specialistvlad/assetpath/internal/catalog"
)

// Exit codes returned by the assetpath binary.
const (
	ExitFailure  = 1
	ExitUsage    = 2
	ExitNotFound = 3
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	return &ExitError{Code: ExitUsage, Message: err.Error()}
}

// toExitError maps any command error onto an ExitError.
func toExitError(err error) *ExitError {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	if errors.Is(err, catalog.ErrNotFound) {
		return &ExitError{Code: ExitNotFound, Message: err.Error()}
	}
	return &ExitError{Code: ExitFailure, Message: err.Error()}
}
