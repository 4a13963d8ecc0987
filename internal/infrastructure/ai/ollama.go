package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	ollama "github.com/ollama/ollama/api"

	"github.com/doeshing/orgai/internal/domain"
	"github.com/doeshing/orgai/internal/ports"
)

// ollamaClient calls a local Ollama server. The endpoint comes from the model
// definition, falling back to OLLAMA_HOST.
type ollamaClient struct {
	model  domain.ModelDefinition
	client *ollama.Client
}

func newOllamaClient(model domain.ModelDefinition, httpClient *http.Client) (ports.CompletionClient, error) {
	if model.Endpoint == "" {
		client, err := ollama.ClientFromEnvironment()
		if err != nil {
			return nil, fmt.Errorf("could not create ollama client: %w", err)
		}
		return &ollamaClient{model: model, client: client}, nil
	}

	base, err := url.Parse(model.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse ollama endpoint %q: %w", model.Endpoint, err)
	}
	return &ollamaClient{model: model, client: ollama.NewClient(base, httpClient)}, nil
}

func (o *ollamaClient) Name() string {
	return "ollama"
}

func (o *ollamaClient) Model() domain.ModelDefinition {
	return o.model
}

func (o *ollamaClient) Complete(ctx context.Context, req ports.CompletionRequest) (ports.CompletionResponse, error) {
	messages := make([]ollama.Message, len(req.Messages))
	for i, msg := range req.Messages {
		messages[i] = ollama.Message{Role: msg.Role, Content: msg.Content}
	}

	stream := false
	chatReq := &ollama.ChatRequest{
		Model:    o.model.ModelID,
		Messages: messages,
		Stream:   &stream,
		Options: map[string]interface{}{
			"temperature": req.Temperature,
		},
	}
	if req.MaxTokens > 0 {
		chatReq.Options["num_predict"] = req.MaxTokens
	}

	var text strings.Builder
	err := o.client.Chat(ctx, chatReq, func(res ollama.ChatResponse) error {
		text.WriteString(res.Message.Content)
		return nil
	})
	if err != nil {
		provErr := &domain.ProviderError{Provider: o.Name(), Err: err}
		var statusErr ollama.StatusError
		if errors.As(err, &statusErr) {
			provErr.StatusCode = statusErr.StatusCode
			provErr.Message = statusErr.ErrorMessage
		}
		return ports.CompletionResponse{}, provErr
	}
	return ports.CompletionResponse{Text: text.String()}, nil
}

var _ ports.CompletionClient = (*ollamaClient)(nil)
