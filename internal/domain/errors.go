package domain

import (
	"context"
	"errors"
	"fmt"
)

// Exit codes shared by the CLI.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInterrupted = 130
)

var (
	// ErrListingToolMissing is returned when the listing utility is not on PATH.
	ErrListingToolMissing = errors.New("listing utility not found")
	// ErrConfirmationUnavailable is returned when input ends before the operator answers.
	ErrConfirmationUnavailable = errors.New("confirmation unavailable: input closed before an answer was read")
)

// MissingCredentialError reports an unset API key variable.
type MissingCredentialError struct {
	EnvVar string
	Model  string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("%s environment variable not set (required by model %s)", e.EnvVar, e.Model)
}

// Stage names the pipeline step that spawned an external command.
type Stage string

const (
	StageListing Stage = "listing"
	StageScript  Stage = "script"
)

// CommandError reports a non-zero exit from the listing utility or an approved script.
type CommandError struct {
	Stage    Stage
	Command  string
	ExitCode int
	Stdout   string
	Stderr   string
	// Hint points at where a failing script most likely stopped.
	Hint string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s command %q failed with exit code %d", e.Stage, e.Command, e.ExitCode)
}

// ProviderError wraps a failed completion call with whatever detail the service exposed.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("%s: status %d: %s", e.Provider, e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: status %d", e.Provider, e.StatusCode)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Provider, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Provider, e.Err)
	default:
		return e.Provider + ": completion failed"
	}
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ExitCode maps a pipeline error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitInterrupted
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode > 0 {
		return cmdErr.ExitCode
	}
	return ExitFailure
}
