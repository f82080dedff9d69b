package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"devhub-server/internal/config"
	"devhub-server/internal/domain/assistant"
)

var errNotConfigured = errors.New("generative model is not configured; set OPENAI_API_KEY to enable")

// Client wraps an OpenAI-compatible chat completion endpoint.
type Client struct {
	api   *openai.Client
	model string
	log   zerolog.Logger
}

func NewClient(cfg *config.Config, log zerolog.Logger) *Client {
	logger := log.With().Str("component", "llm-client").Logger()

	apiKey := strings.TrimSpace(cfg.OpenAIAPIKey)
	if apiKey == "" {
		logger.Warn().Msg("OPENAI_API_KEY is not set; assistant features will be disabled")
		return &Client{model: cfg.OpenAIModel, log: logger}
	}

	clientCfg := openai.DefaultConfig(apiKey)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAIBaseURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.OpenAITimeout}

	return &Client{
		api:   openai.NewClientWithConfig(clientCfg),
		model: cfg.OpenAIModel,
		log:   logger,
	}
}

// Complete sends a single-turn prompt and returns the model text.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.api == nil {
		return "", errNotConfigured
	}

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userPrompt,
	})
	return c.send(ctx, messages)
}

// Chat sends a multi-turn conversation. The client-side "model" role maps to
// the API's assistant role.
func (c *Client) Chat(ctx context.Context, history []assistant.ChatMessage) (string, error) {
	if c.api == nil {
		return "", errNotConfigured
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history))
	for _, m := range history {
		role := openai.ChatMessageRoleUser
		if m.Role == assistant.RoleModel {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}
	return c.send(ctx, messages)
}

func (c *Client) send(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
