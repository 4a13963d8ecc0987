package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/doeshing/orgai/internal/domain"
)

// RenderResponse prints the final state of a run in a friendly, ASCII-only format.
func RenderResponse(out io.Writer, resp domain.RunResponse) {
	switch resp.Outcome {
	case domain.OutcomeNothingToOrganize:
		fmt.Fprintln(out, "Directory is empty. Nothing to organize.")
	case domain.OutcomeDeclined:
		fmt.Fprintln(out, "Execution cancelled by user.")
	case domain.OutcomeNothingToExecute:
		fmt.Fprintln(out, "Script contains no commands. Nothing to execute.")
	case domain.OutcomeExecuted:
		fmt.Fprintln(out, "\nScript executed successfully.")
		if resp.ExecutionResult != nil {
			renderStreams(out, "Script Output", resp.ExecutionResult.Stdout, "Script Stderr (informational)", resp.ExecutionResult.Stderr)
		}
	}
}

// RenderError prints diagnostics and remediation for a failed run.
func RenderError(out io.Writer, err error) {
	if err == nil {
		return
	}

	var (
		credErr     *domain.MissingCredentialError
		cmdErr      *domain.CommandError
		providerErr *domain.ProviderError
	)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "Error: run timed out (preferences.timeout): %v\n", err)
		fmt.Fprintln(out, "Commands that already ran are not rolled back.")
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "Error: interrupted: %v\n", err)
		fmt.Fprintln(out, "Commands that already ran are not rolled back.")
	case errors.Is(err, domain.ErrListingToolMissing):
		fmt.Fprintf(out, "Error: %v\n", err)
		fmt.Fprintln(out, "Install it first:")
		fmt.Fprintln(out, "  Debian/Ubuntu: sudo apt install tree")
		fmt.Fprintln(out, "  macOS:         brew install tree")
	case errors.As(err, &credErr):
		fmt.Fprintf(out, "Error: %v\n", credErr)
		fmt.Fprintln(out, "Set it before running:")
		fmt.Fprintf(out, "  export %s='your_api_key_here'\n", credErr.EnvVar)
	case errors.As(err, &cmdErr) && cmdErr.Stage == domain.StageScript:
		fmt.Fprintf(out, "Error: script failed with exit code %d\n", cmdErr.ExitCode)
		if cmdErr.Hint != "" {
			fmt.Fprintf(out, "The failure happened at or after: %s\n", cmdErr.Hint)
		}
		fmt.Fprintln(out, "Commands that already ran are not rolled back.")
		renderStreams(out, "Script Output", cmdErr.Stdout, "Script Stderr", cmdErr.Stderr)
	case errors.As(err, &cmdErr):
		fmt.Fprintf(out, "Error: %q exited with code %d\n", cmdErr.Command, cmdErr.ExitCode)
		renderStreams(out, "Stdout", cmdErr.Stdout, "Stderr", cmdErr.Stderr)
	case errors.As(err, &providerErr):
		fmt.Fprintf(out, "Error: completion request failed: %v\n", providerErr)
	case errors.Is(err, domain.ErrConfirmationUnavailable):
		fmt.Fprintln(out, "Error: no answer received, input was closed. Script not executed.")
	default:
		fmt.Fprintf(out, "Error: %v\n", err)
	}
}

func renderStreams(out io.Writer, stdoutTitle, stdout, stderrTitle, stderr string) {
	if strings.TrimSpace(stdout) != "" {
		fmt.Fprintf(out, "\n--- %s ---\n", stdoutTitle)
		fmt.Fprintln(out, strings.TrimRight(stdout, "\n"))
	}
	if strings.TrimSpace(stderr) != "" {
		fmt.Fprintf(out, "\n--- %s ---\n", stderrTitle)
		fmt.Fprintln(out, strings.TrimRight(stderr, "\n"))
	}
}
