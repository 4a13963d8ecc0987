// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). The organize pipeline depends only on these
// abstractions, so the listing utility, the completion service, the operator
// prompt and the shell can each be swapped or stubbed independently.
package ports

import (
	"context"

	"github.com/doeshing/orgai/internal/domain"
)

// ConfigProvider loads the latest configuration.
// Implementations typically read from ~/.orgai/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// ListingCollector describes the working directory as plain text.
type ListingCollector interface {
	Collect(context.Context, domain.Config) (domain.Listing, error)
}

// CompletionClientFactory builds completion clients based on model definitions.
type CompletionClientFactory interface {
	ForModel(domain.ModelDefinition) (CompletionClient, error)
}

// CompletionClient is the text completion capability: request text in,
// response text out, or a fatal transport error.
type CompletionClient interface {
	Name() string
	Model() domain.ModelDefinition
	Complete(context.Context, CompletionRequest) (CompletionResponse, error)
}

// CompletionRequest is the chat-style prompt sent to the completion service.
// It is built once and never modified.
type CompletionRequest struct {
	Messages    []domain.PromptMessage
	Temperature float64
	MaxTokens   int
}

// CompletionResponse is the raw text returned by the completion service.
type CompletionResponse struct {
	Text string
}

// ConfirmationPrompter shows the script to the operator and asks for approval.
// It returns domain.ErrConfirmationUnavailable when no answer can be read.
type ConfirmationPrompter interface {
	Confirm(domain.Script) (bool, error)
}

// ScriptExecutor runs an approved script with fail-fast semantics.
type ScriptExecutor interface {
	Execute(ctx context.Context, cfg domain.Config, script domain.Script) (domain.ExecutionResult, error)
}

// ProgressReporter relays pipeline progress to the operator.
type ProgressReporter interface {
	Step(message string)
	Section(title, body string)
	// Wait shows that a blocking call is in flight; the returned func ends it.
	Wait(label string) func()
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stderr, rotating files).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
