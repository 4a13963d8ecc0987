package ai

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/doeshing/orgai/internal/domain"
	"github.com/doeshing/orgai/internal/ports"
)

// openAIClient talks to any OpenAI-compatible chat completions API; Groq by default.
type openAIClient struct {
	model  domain.ModelDefinition
	client openai.Client
}

func newOpenAIClient(model domain.ModelDefinition, apiKey string, httpClient *http.Client) ports.CompletionClient {
	baseURL := valueOrDefault(model.Endpoint, domain.DefaultGroqEndpoint)
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &openAIClient{
		model: model,
		client: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(baseURL),
			option.WithHTTPClient(httpClient),
			option.WithMaxRetries(0),
		),
	}
}

func (c *openAIClient) Name() string {
	return "openai"
}

func (c *openAIClient) Model() domain.ModelDefinition {
	return c.model
}

func (c *openAIClient) Complete(ctx context.Context, req ports.CompletionRequest) (ports.CompletionResponse, error) {
	params := openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(c.model.ModelID),
		Messages:    toOpenAIMessages(req.Messages),
		Temperature: openai.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return ports.CompletionResponse{}, openAIError(err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return ports.CompletionResponse{}, &domain.ProviderError{Provider: c.Name(), Message: "response contained no choices"}
	}
	return ports.CompletionResponse{Text: resp.Choices[0].Message.Content}, nil
}

func toOpenAIMessages(messages []domain.PromptMessage) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case domain.RoleSystem:
			out = append(out, openai.ChatCompletionMessageParamUnion{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{OfString: openai.String(msg.Content)},
				},
			})
		case domain.RoleAssistant:
			out = append(out, openai.ChatCompletionMessageParamUnion{
				OfAssistant: &openai.ChatCompletionAssistantMessageParam{
					Content: openai.ChatCompletionAssistantMessageParamContentUnion{OfString: openai.String(msg.Content)},
				},
			})
		default:
			out = append(out, openai.ChatCompletionMessageParamUnion{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{OfString: openai.String(msg.Content)},
				},
			})
		}
	}
	return out
}

// openAIError extracts status and message from SDK errors when available.
func openAIError(err error) error {
	provErr := &domain.ProviderError{Provider: "openai", Err: err}
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		provErr.StatusCode = apiErr.StatusCode
		provErr.Message = apiErr.Message
		if provErr.Message == "" {
			provErr.Message = http.StatusText(apiErr.StatusCode)
		}
	}
	return provErr
}

var _ ports.CompletionClient = (*openAIClient)(nil)
