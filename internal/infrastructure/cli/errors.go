package cli

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/specdrift/pkg/domain"
)

// Exit codes follow the validation contract: 0 clean, 1 drift found, 2 on
// usage or filesystem errors.
const (
	ExitDrift = 1
	ExitFatal = 2
)

// CLIError wraps domain errors with user-facing messages and actionable hints.
type CLIError struct {
	Message  string
	Hint     string
	Err      error
	ExitCode int
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with a default exit code of 1.
func NewCLIError(msg, hint string, err error) *CLIError {
	return &CLIError{
		Message:  msg,
		Hint:     hint,
		Err:      err,
		ExitCode: ExitDrift,
	}
}

// MapError converts known domain errors into CLIErrors with actionable hints.
// Unmapped errors are returned as-is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, domain.ErrNoUseCaseDir) {
		return &CLIError{
			Message:  "use case directory not found",
			Hint:     "Run specdrift from the project root, or point --specs at the use case directory",
			Err:      err,
			ExitCode: ExitFatal,
		}
	}

	return err
}

// ExitCode extracts the process exit code an error asks for. Plain errors
// default to the fatal code: they signal engine faults, not drift.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.ExitCode
	}
	return ExitFatal
}
