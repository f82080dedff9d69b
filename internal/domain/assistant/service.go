package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"devhub-server/internal/infrastructure/metrics"
)

// ErrEmptyPrompt is returned when a request carries no usable text.
var ErrEmptyPrompt = errors.New("prompt is empty")

// Completer is the generative model the service talks to.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Chat(ctx context.Context, messages []ChatMessage) (string, error)
}

// Service wraps the generative model with the site's prompt templates and
// fallback behavior. Every feature degrades to a fixed fallback when the
// model fails; only empty-input validation is surfaced as an error.
type Service struct {
	model Completer
	log   zerolog.Logger
}

func NewService(model Completer, log zerolog.Logger) *Service {
	return &Service{
		model: model,
		log:   log.With().Str("component", "assistant-service").Logger(),
	}
}

// Quote returns a short motivational developer quote. Model failures fall
// back to DefaultQuote so the endpoint never errors.
func (s *Service) Quote(ctx context.Context) string {
	text, err := s.model.Complete(ctx,
		"",
		"Generate a short, original motivational quote for software developers. "+
			"One sentence, no attribution, no quotation marks.")
	if err != nil {
		s.log.Warn().Err(err).Msg("quote generation failed, serving default")
		metrics.RecordAssistantCall("quote", "error")
		return DefaultQuote
	}
	metrics.RecordAssistantCall("quote", "success")

	text = strings.Trim(strings.TrimSpace(text), `"`)
	if text == "" {
		return DefaultQuote
	}
	return text
}

// Answer returns a concise explanation of a search query, suitable for
// showing above catalog results. Model failures degrade to an empty answer
// so callers can simply skip the panel.
func (s *Service) Answer(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", ErrEmptyPrompt
	}

	text, err := s.model.Complete(ctx,
		"You are a helpful assistant for software developers. Answer in two or three "+
			"short sentences, plain text only.",
		query)
	if err != nil {
		s.log.Warn().Err(err).Msg("answer generation failed, serving empty answer")
		metrics.RecordAssistantCall("answer", "error")
		return "", nil
	}
	metrics.RecordAssistantCall("answer", "success")
	return text, nil
}

// Chat continues a conversation. The incoming "model" role is the client's
// name for assistant turns. Model failures degrade to DefaultChatReply.
func (s *Service) Chat(ctx context.Context, history []ChatMessage) (string, error) {
	var trimmed []ChatMessage
	for _, m := range history {
		content := strings.TrimSpace(m.Content)
		if content == "" {
			continue
		}
		role := m.Role
		if role != RoleUser && role != RoleModel {
			role = RoleUser
		}
		trimmed = append(trimmed, ChatMessage{Role: role, Content: content})
	}
	if len(trimmed) == 0 {
		return "", ErrEmptyPrompt
	}

	text, err := s.model.Chat(ctx, trimmed)
	if err != nil {
		s.log.Warn().Err(err).Msg("chat completion failed, serving canned reply")
		metrics.RecordAssistantCall("chat", "error")
		return DefaultChatReply, nil
	}
	metrics.RecordAssistantCall("chat", "success")
	return text, nil
}

// GenerateJSON asks the model for a JSON document matching the description.
// The reply is stripped of markdown code fences and validated; a model
// failure or anything that is not valid JSON degrades to an empty object.
func (s *Service) GenerateJSON(ctx context.Context, description string) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", ErrEmptyPrompt
	}

	text, err := s.model.Complete(ctx,
		"You generate JSON documents. Reply with a single valid JSON value and "+
			"nothing else. No markdown, no commentary.",
		description)
	if err != nil {
		s.log.Warn().Err(err).Msg("json generation failed, serving empty object")
		metrics.RecordAssistantCall("json", "error")
		return "{}", nil
	}
	metrics.RecordAssistantCall("json", "success")

	cleaned := stripCodeFences(text)
	if !json.Valid([]byte(cleaned)) {
		s.log.Warn().Msg("model returned invalid json, serving empty object")
		return "{}", nil
	}
	return cleaned, nil
}

// stripCodeFences removes a surrounding markdown code fence, with or without
// a language tag.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		first := strings.TrimSpace(s[:idx])
		if first == "json" || first == "" {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
