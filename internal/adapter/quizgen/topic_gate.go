package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"quiz-forge/internal/domain"

	"go.uber.org/zap"
)

// LLMTopicGate asks a chat model whether a topic belongs to the property
// industry and is specific enough for a quiz.
type LLMTopicGate struct {
	model     domain.ChatModel
	maxTokens int
	schema    *responseSchema
	logger    *zap.Logger
}

// NewLLMTopicGate creates a topic gate. maxTokens <= 0 leaves the completion
// length to the provider.
func NewLLMTopicGate(model domain.ChatModel, maxTokens int, logger *zap.Logger) (*LLMTopicGate, error) {
	if model == nil {
		return nil, fmt.Errorf("chat model is required")
	}
	if maxTokens < 0 {
		maxTokens = 0
	}
	schema, err := loadSchema(topicVerdictSchemaName, &topicVerdictWire{})
	if err != nil {
		return nil, err
	}
	return &LLMTopicGate{
		model:     model,
		maxTokens: maxTokens,
		schema:    schema,
		logger:    logger,
	}, nil
}

func (g *LLMTopicGate) CheckTopic(ctx context.Context, topic string) (domain.TopicVerdict, error) {
	resp, err := g.model.Complete(ctx, domain.ChatRequest{
		System: topicGateSystemPrompt,
		Messages: []domain.ChatMessage{
			{Role: domain.ChatRoleUser, Content: topicGateUserPrompt(topic)},
		},
		MaxTokens: g.maxTokens,
		JSONMode:  true,
		Schema:    &g.schema.ResponseSchema,
	})
	if err != nil {
		return domain.TopicVerdict{}, err
	}

	verdict := parseTopicVerdict(resp.Content)
	if verdict.Inconclusive {
		g.logger.Warn("Topic validation response was empty or unparseable",
			zap.String("topic", topic),
			zap.String("stop_reason", resp.StopReason),
			zap.String("content", resp.Content),
		)
	} else {
		g.logger.Debug("Topic validated",
			zap.String("topic", topic),
			zap.Bool("is_valid", verdict.IsValid),
			zap.String("reason", verdict.Reason),
		)
	}
	return verdict, nil
}

// parseTopicVerdict reads the model answer leniently. Only a JSON boolean
// true accepts the topic, and reason is kept only when it is a string.
// Empty content reads as {}: an invalid topic with the default message,
// but inconclusive so it is never cached.
func parseTopicVerdict(content string) domain.TopicVerdict {
	if strings.TrimSpace(content) == "" {
		return domain.TopicVerdict{IsValid: false, Inconclusive: true}
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(cleanJSONResponse(content)), &result); err != nil || result == nil {
		return domain.TopicVerdict{
			IsValid:      false,
			Reason:       domain.MsgTopicUnparseable,
			Inconclusive: true,
		}
	}

	verdict := domain.TopicVerdict{}
	if isValid, ok := result["isValid"].(bool); ok && isValid {
		verdict.IsValid = true
	}
	if reason, ok := result["reason"].(string); ok {
		verdict.Reason = reason
	}
	return verdict
}

var _ domain.TopicGate = (*LLMTopicGate)(nil)
