package llm

import (
	"context"
	"fmt"
	"net/http"
	"quiz-forge/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// OllamaChatModel implements domain.ChatModel against a local Ollama server
// through langchaingo.
type OllamaChatModel struct {
	llm   llms.Model
	model string
}

// NewOllamaChatModel creates a chat model for an Ollama server.
func NewOllamaChatModel(serverURL, model string, httpClient *http.Client) (*OllamaChatModel, error) {
	if serverURL == "" {
		return nil, fmt.Errorf("ollama server URL is required")
	}
	if model == "" {
		return nil, fmt.Errorf("ollama model name is required")
	}

	opts := []ollama.Option{
		ollama.WithServerURL(serverURL),
		ollama.WithModel(model),
	}
	if httpClient != nil {
		opts = append(opts, ollama.WithHTTPClient(httpClient))
	}

	client, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return &OllamaChatModel{llm: client, model: model}, nil
}

func (m *OllamaChatModel) Complete(ctx context.Context, req domain.ChatRequest) (*domain.ChatCompletion, error) {
	messages := make([]llms.MessageContent, 0, len(req.Messages)+1)
	if req.System != "" {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, req.System))
	}
	for _, msg := range req.Messages {
		role := llms.ChatMessageTypeHuman
		if msg.Role == domain.ChatRoleAssistant {
			role = llms.ChatMessageTypeAI
		}
		messages = append(messages, llms.TextParts(role, msg.Content))
	}

	callOpts := []llms.CallOption{llms.WithTemperature(0.1)}
	if req.MaxTokens > 0 {
		callOpts = append(callOpts, llms.WithMaxTokens(req.MaxTokens))
	}
	if req.JSONMode {
		callOpts = append(callOpts, llms.WithJSONMode())
	}

	resp, err := m.llm.GenerateContent(ctx, messages, callOpts...)
	if err != nil {
		return nil, domain.NewLLMServiceError(fmt.Errorf("LLM call failed: %w", err))
	}
	if len(resp.Choices) == 0 {
		return nil, domain.NewLLMServiceError(fmt.Errorf("no choices in Ollama response"))
	}

	choice := resp.Choices[0]
	completion := &domain.ChatCompletion{
		Content:    choice.Content,
		Model:      m.model,
		StopReason: StopReasonEnd,
		Usage: domain.TokenUsage{
			InputTokens:  generationInt(choice.GenerationInfo, "PromptTokens"),
			OutputTokens: generationInt(choice.GenerationInfo, "CompletionTokens"),
			TotalTokens:  generationInt(choice.GenerationInfo, "TotalTokens"),
		},
	}
	if choice.StopReason == "length" {
		completion.StopReason = StopReasonMaxTokens
	}
	return completion, nil
}

func (m *OllamaChatModel) ModelID() string {
	return m.model
}

func generationInt(info map[string]any, key string) int {
	switch v := info[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
