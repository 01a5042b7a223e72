package llm

import (
	"context"
	"errors"
	"fmt"
	"quiz-forge/internal/domain"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Anthropic rejects requests without max_tokens; this leaves room for a
// 20-question quiz.
const anthropicDefaultMaxTokens = 16384

// AnthropicChatModel implements domain.ChatModel with the Anthropic SDK.
type AnthropicChatModel struct {
	client *anthropic.Client
	model  string
}

// NewAnthropicChatModel creates a chat model for the Anthropic Messages API.
// baseURL is optional and mostly useful for tests.
func NewAnthropicChatModel(apiKey, baseURL, model string) (*AnthropicChatModel, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("anthropic model name is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	client := anthropic.NewClient(opts...)
	return &AnthropicChatModel{
		client: &client,
		model:  model,
	}, nil
}

// Complete sends the request. Anthropic has no JSON response mode, so
// JSONMode only adds a reminder to the system prompt.
func (m *AnthropicChatModel) Complete(ctx context.Context, req domain.ChatRequest) (*domain.ChatCompletion, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = anthropicDefaultMaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(m.model),
		MaxTokens: int64(maxTokens),
		Messages:  buildAnthropicMessages(req.Messages),
	}

	system := req.System
	if req.JSONMode {
		system = strings.TrimSpace(system + "\n\nRespond with a single JSON object and nothing else.")
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	msg, err := m.client.Messages.New(ctx, params)
	if err != nil {
		return nil, mapAnthropicError(err)
	}

	var content strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			content.WriteString(block.Text)
		}
	}

	return &domain.ChatCompletion{
		Content:    content.String(),
		Model:      string(msg.Model),
		StopReason: mapAnthropicStopReason(string(msg.StopReason)),
		Usage: domain.TokenUsage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
			TotalTokens:  int(msg.Usage.InputTokens + msg.Usage.OutputTokens),
		},
	}, nil
}

func (m *AnthropicChatModel) ModelID() string {
	return m.model
}

func buildAnthropicMessages(msgs []domain.ChatMessage) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, len(msgs))
	for i, msg := range msgs {
		role := anthropic.MessageParamRoleUser
		if msg.Role == domain.ChatRoleAssistant {
			role = anthropic.MessageParamRoleAssistant
		}
		out[i] = anthropic.MessageParam{
			Role: role,
			Content: []anthropic.ContentBlockParamUnion{
				anthropic.NewTextBlock(msg.Content),
			},
		}
	}
	return out
}

func mapAnthropicStopReason(reason string) string {
	switch reason {
	case "max_tokens":
		return StopReasonMaxTokens
	case "refusal":
		return StopReasonFiltered
	default:
		return StopReasonEnd
	}
}

func mapAnthropicError(err error) error {
	svcErr := domain.NewLLMServiceError(err)
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		svcErr.WithContext("upstream_status", apiErr.StatusCode)
	}
	return svcErr
}
