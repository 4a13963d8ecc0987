package ai

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/tidwall/gjson"

	"github.com/doeshing/orgai/internal/domain"
	"github.com/doeshing/orgai/internal/ports"
)

const defaultAnthropicBaseURL = "https://api.anthropic.com/"

// anthropicClient talks to the Anthropic Messages API.
type anthropicClient struct {
	model  domain.ModelDefinition
	client anthropic.Client
}

func newAnthropicClient(model domain.ModelDefinition, apiKey string, httpClient *http.Client) ports.CompletionClient {
	return &anthropicClient{
		model: model,
		client: anthropic.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(anthropicBaseURL(model.Endpoint)),
			option.WithHTTPClient(httpClient),
			option.WithMaxRetries(0),
		),
	}
}

// anthropicBaseURL accepts either the API root or the full messages URL.
func anthropicBaseURL(endpoint string) string {
	base := valueOrDefault(endpoint, defaultAnthropicBaseURL)
	base = strings.TrimSuffix(strings.TrimSuffix(base, "/"), "/v1/messages")
	return base + "/"
}

func (c *anthropicClient) Name() string {
	return "anthropic"
}

func (c *anthropicClient) Model() domain.ModelDefinition {
	return c.model
}

func (c *anthropicClient) Complete(ctx context.Context, req ports.CompletionRequest) (ports.CompletionResponse, error) {
	system, chat := splitSystemMessages(req.Messages)
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model.ModelID),
		MaxTokens:   int64(valueOrDefaultInt(req.MaxTokens, domain.DefaultMaxTokens)),
		Temperature: anthropic.Float(req.Temperature),
		Messages:    toAnthropicMessages(chat),
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	message, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return ports.CompletionResponse{}, anthropicError(err)
	}

	var text strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	return ports.CompletionResponse{Text: text.String()}, nil
}

func toAnthropicMessages(messages []domain.PromptMessage) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, 0, len(messages))
	for _, msg := range messages {
		block := anthropic.NewTextBlock(msg.Content)
		if msg.Role == domain.RoleAssistant {
			out = append(out, anthropic.NewAssistantMessage(block))
			continue
		}
		out = append(out, anthropic.NewUserMessage(block))
	}
	return out
}

// anthropicError extracts status and the API's error message when available.
func anthropicError(err error) error {
	provErr := &domain.ProviderError{Provider: "anthropic", Err: err}
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		provErr.StatusCode = apiErr.StatusCode
		provErr.Message = gjson.Get(apiErr.RawJSON(), "error.message").String()
		if provErr.Message == "" {
			provErr.Message = http.StatusText(apiErr.StatusCode)
		}
	}
	return provErr
}

var _ ports.CompletionClient = (*anthropicClient)(nil)
