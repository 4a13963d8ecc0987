// Package ai provides completion clients for the supported services.
//
// Every client satisfies ports.CompletionClient. The factory resolves the
// API key from the environment before any client is built, so a missing
// credential fails before the first network call.
package ai

import (
	"fmt"
	"net/http"
	"os"

	"github.com/doeshing/orgai/internal/domain"
	"github.com/doeshing/orgai/internal/ports"
)

// Factory creates completion clients based on model definitions.
// It keeps a single HTTP client shared across all clients.
type Factory struct {
	httpClient *http.Client
	getenv     func(string) string
}

// NewFactory creates a factory. The HTTP client carries no timeout of its own;
// deadlines come from the run context.
func NewFactory() *Factory {
	return &Factory{
		httpClient: &http.Client{},
		getenv:     os.Getenv,
	}
}

// ForModel implements ports.CompletionClientFactory.
func (f *Factory) ForModel(model domain.ModelDefinition) (ports.CompletionClient, error) {
	apiKey, err := f.resolveCredential(model)
	if err != nil {
		return nil, err
	}

	switch kind := model.Kind(); kind {
	case domain.ProviderKindOpenAI:
		return newOpenAIClient(model, apiKey, f.httpClient), nil
	case domain.ProviderKindAnthropic:
		return newAnthropicClient(model, apiKey, f.httpClient), nil
	case domain.ProviderKindOllama:
		return newOllamaClient(model, f.httpClient)
	default:
		return nil, fmt.Errorf("unsupported provider kind: %s", kind)
	}
}

func (f *Factory) resolveCredential(model domain.ModelDefinition) (string, error) {
	envVar := model.CredentialEnvVar()
	if envVar == "" {
		return "", nil
	}
	value := f.getenv(envVar)
	if value == "" {
		return "", &domain.MissingCredentialError{EnvVar: envVar, Model: model.Name}
	}
	return value, nil
}

var _ ports.CompletionClientFactory = (*Factory)(nil)
