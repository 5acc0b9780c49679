package cmd

import "fmt"

// Exit codes returned by the codeseq CLI.
const (
	ExitSuccess     = 0
	ExitFailure     = 1 // malformed input or a record that could not be solved
	ExitConfigError = 2
)

// ExitError carries the process exit status for an error returned by a command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}

	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
