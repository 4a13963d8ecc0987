package domain

// RunRequest captures one invocation of the organize pipeline.
type RunRequest struct {
	ModelOverride string
	// Debug logs the rendered prompt and the raw completion text.
	Debug bool
}

// Outcome describes how a run finished when it did not fail.
type Outcome string

const (
	// OutcomeNothingToOrganize means the listing was empty; no service call was made.
	OutcomeNothingToOrganize Outcome = "nothing_to_organize"
	// OutcomeDeclined means the operator answered anything but "y".
	OutcomeDeclined Outcome = "declined"
	// OutcomeNothingToExecute means the approved script held only comments.
	OutcomeNothingToExecute Outcome = "nothing_to_execute"
	// OutcomeExecuted means the approved script ran to completion.
	OutcomeExecuted Outcome = "executed"
)

// RunResponse is the canonical response propagated back to the CLI.
type RunResponse struct {
	Listing         Listing
	Model           string
	Script          Script
	Outcome         Outcome
	ExecutionResult *ExecutionResult
}

// ExecutionResult wraps details from the script executor.
type ExecutionResult struct {
	Ran        bool
	Stdout     string
	Stderr     string
	ExitCode   int
	DurationMS int64
}
