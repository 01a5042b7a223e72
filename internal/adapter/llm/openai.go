package llm

import (
	"context"
	"errors"
	"fmt"
	"quiz-forge/internal/domain"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIChatModel implements domain.ChatModel with the OpenAI SDK. It also
// serves OpenAI-compatible endpoints such as GitHub Models via baseURL.
type OpenAIChatModel struct {
	client   *openai.Client
	model    string
	jsonMode bool
}

// NewOpenAIChatModel creates a chat model for the OpenAI API or a
// compatible endpoint. jsonMode enables response_format=json_object on
// requests that ask for JSON.
func NewOpenAIChatModel(apiKey, baseURL, model string, jsonMode bool) (*OpenAIChatModel, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("openai model name is required")
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &OpenAIChatModel{
		client:   openai.NewClientWithConfig(config),
		model:    model,
		jsonMode: jsonMode,
	}, nil
}

func (m *OpenAIChatModel) Complete(ctx context.Context, req domain.ChatRequest) (*domain.ChatCompletion, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:    m.model,
		Messages: buildOpenAIMessages(req),
	}
	if req.MaxTokens > 0 {
		chatReq.MaxCompletionTokens = req.MaxTokens
	}
	if req.JSONMode && m.jsonMode {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := m.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, mapOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, domain.NewLLMServiceError(fmt.Errorf("no choices in OpenAI response"))
	}

	return &domain.ChatCompletion{
		Content:    resp.Choices[0].Message.Content,
		Model:      resp.Model,
		StopReason: mapOpenAIStopReason(resp.Choices[0].FinishReason),
		Usage: domain.TokenUsage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (m *OpenAIChatModel) ModelID() string {
	return m.model
}

func buildOpenAIMessages(req domain.ChatRequest) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	for _, msg := range req.Messages {
		role := openai.ChatMessageRoleUser
		if msg.Role == domain.ChatRoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		})
	}
	return messages
}

func mapOpenAIStopReason(reason openai.FinishReason) string {
	switch reason {
	case openai.FinishReasonLength:
		return StopReasonMaxTokens
	case openai.FinishReasonContentFilter:
		return StopReasonFiltered
	default:
		return StopReasonEnd
	}
}

func mapOpenAIError(err error) error {
	svcErr := domain.NewLLMServiceError(err)
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		svcErr.WithContext("upstream_status", apiErr.HTTPStatusCode)
	}
	return svcErr
}
