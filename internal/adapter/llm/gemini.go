package llm

import (
	"context"
	"errors"
	"fmt"
	"quiz-forge/internal/domain"

	"google.golang.org/genai"
)

// GeminiChatModel implements domain.ChatModel with the Google Gen AI SDK.
type GeminiChatModel struct {
	client *genai.Client
	model  string
}

// NewGeminiChatModel creates a chat model for the Gemini API.
func NewGeminiChatModel(ctx context.Context, apiKey, model string) (*GeminiChatModel, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("gemini model name is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiChatModel{
		client: client,
		model:  model,
	}, nil
}

func (m *GeminiChatModel) Complete(ctx context.Context, req domain.ChatRequest) (*domain.ChatCompletion, error) {
	config := &genai.GenerateContentConfig{}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}
	if req.JSONMode {
		config.ResponseMIMEType = "application/json"
		if req.Schema != nil {
			config.ResponseSchema = buildGeminiSchema(req.Schema.Definition)
		}
	}

	result, err := m.client.Models.GenerateContent(ctx, m.model, buildGeminiContents(req.Messages), config)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	completion := &domain.ChatCompletion{
		Content:    result.Text(),
		Model:      m.model,
		StopReason: mapGeminiStopReason(result),
	}
	if result.UsageMetadata != nil {
		completion.Usage = domain.TokenUsage{
			InputTokens:  int(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int(result.UsageMetadata.TotalTokenCount),
		}
	}
	return completion, nil
}

func (m *GeminiChatModel) ModelID() string {
	return m.model
}

func buildGeminiContents(msgs []domain.ChatMessage) []*genai.Content {
	out := make([]*genai.Content, len(msgs))
	for i, msg := range msgs {
		role := "user"
		if msg.Role == domain.ChatRoleAssistant {
			role = "model"
		}
		out[i] = &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: msg.Content}},
		}
	}
	return out
}

// buildGeminiSchema converts a JSON Schema definition to the OpenAPI subset
// Gemini accepts. Keywords it does not support are dropped; the response is
// validated against the full schema afterwards anyway.
func buildGeminiSchema(def map[string]any) *genai.Schema {
	schema := &genai.Schema{}

	if t, ok := def["type"].(string); ok {
		schema.Type = mapGeminiType(t)
	}
	if desc, ok := def["description"].(string); ok {
		schema.Description = desc
	}
	if props, ok := def["properties"].(map[string]any); ok {
		schema.Properties = make(map[string]*genai.Schema, len(props))
		for name, v := range props {
			if propDef, ok := v.(map[string]any); ok {
				schema.Properties[name] = buildGeminiSchema(propDef)
			}
		}
	}
	if required, ok := def["required"].([]any); ok {
		for _, r := range required {
			if s, ok := r.(string); ok {
				schema.Required = append(schema.Required, s)
			}
		}
	}
	if enums, ok := def["enum"].([]any); ok {
		for _, e := range enums {
			if s, ok := e.(string); ok {
				schema.Enum = append(schema.Enum, s)
			}
		}
	}
	if items, ok := def["items"].(map[string]any); ok {
		schema.Items = buildGeminiSchema(items)
	}
	return schema
}

func mapGeminiType(t string) genai.Type {
	switch t {
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	case "object":
		return genai.TypeObject
	default:
		return genai.TypeString
	}
}

func mapGeminiStopReason(result *genai.GenerateContentResponse) string {
	if len(result.Candidates) > 0 {
		switch result.Candidates[0].FinishReason {
		case "MAX_TOKENS":
			return StopReasonMaxTokens
		case "SAFETY":
			return StopReasonFiltered
		}
	}
	return StopReasonEnd
}

func mapGeminiError(err error) error {
	svcErr := domain.NewLLMServiceError(err)
	// The SDK returns APIError by value.
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
		svcErr.WithContext("upstream_status", apiErr.Code)
	case errors.As(err, &apiErrPtr):
		svcErr.WithContext("upstream_status", apiErrPtr.Code)
	}
	return svcErr
}
