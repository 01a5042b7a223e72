package quizgen

import (
	"context"
	"errors"
	"quiz-forge/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeChatModel returns canned completions and records requests.
type fakeChatModel struct {
	CompleteFunc func(ctx context.Context, req domain.ChatRequest) (*domain.ChatCompletion, error)
	requests     []domain.ChatRequest
}

func (f *fakeChatModel) Complete(ctx context.Context, req domain.ChatRequest) (*domain.ChatCompletion, error) {
	f.requests = append(f.requests, req)
	return f.CompleteFunc(ctx, req)
}

func (f *fakeChatModel) ModelID() string { return "fake-model" }

func replyWith(content string) *fakeChatModel {
	return &fakeChatModel{
		CompleteFunc: func(ctx context.Context, req domain.ChatRequest) (*domain.ChatCompletion, error) {
			return &domain.ChatCompletion{Content: content, Model: "fake-model", StopReason: "end"}, nil
		},
	}
}

func TestNewLLMTopicGate(t *testing.T) {
	_, err := NewLLMTopicGate(nil, 0, zap.NewNop())
	assert.Error(t, err)

	gate, err := NewLLMTopicGate(replyWith("{}"), 0, zap.NewNop())
	require.NoError(t, err)
	assert.Zero(t, gate.maxTokens)
}

func TestLLMTopicGate_CheckTopic_NoCapByDefault(t *testing.T) {
	model := replyWith(`{"isValid":true}`)
	gate, err := NewLLMTopicGate(model, 0, zap.NewNop())
	require.NoError(t, err)

	_, err = gate.CheckTopic(context.Background(), "Jakarta rental yields")
	require.NoError(t, err)
	require.Len(t, model.requests, 1)
	assert.Zero(t, model.requests[0].MaxTokens)
}

func TestLLMTopicGate_CheckTopic_Request(t *testing.T) {
	model := replyWith(`{"isValid":true}`)
	gate, err := NewLLMTopicGate(model, 128, zap.NewNop())
	require.NoError(t, err)

	verdict, err := gate.CheckTopic(context.Background(), "Jakarta rental yields")
	require.NoError(t, err)
	assert.True(t, verdict.IsValid)

	require.Len(t, model.requests, 1)
	req := model.requests[0]
	assert.Equal(t, topicGateSystemPrompt, req.System)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, domain.ChatRoleUser, req.Messages[0].Role)
	assert.Equal(t, `Topic: "Jakarta rental yields"`, req.Messages[0].Content)
	assert.Equal(t, 128, req.MaxTokens)
	assert.True(t, req.JSONMode)
	require.NotNil(t, req.Schema)
	assert.Equal(t, topicVerdictSchemaName, req.Schema.Name)
}

func TestLLMTopicGate_CheckTopic_Verdicts(t *testing.T) {
	tests := []struct {
		name             string
		content          string
		wantValid        bool
		wantReason       string
		wantInconclusive bool
	}{
		{"valid", `{"isValid":true,"reason":"Specific property topic"}`, true, "Specific property topic", false},
		{"invalid with reason", `{"isValid":false,"reason":"Not about property"}`, false, "Not about property", false},
		{"invalid without reason", `{"isValid":false}`, false, "", false},
		{"string true is not true", `{"isValid":"true"}`, false, "", false},
		{"numeric one is not true", `{"isValid":1}`, false, "", false},
		{"missing isValid", `{"reason":"hmm"}`, false, "hmm", false},
		{"non-string reason dropped", `{"isValid":false,"reason":42}`, false, "", false},
		{"fenced with think", "<think>zoning is property</think>\n```json\n{\"isValid\":true}\n```", true, "", false},
		{"prose only", "Yes, that is a property topic.", false, domain.MsgTopicUnparseable, true},
		{"empty", "", false, "", true},
		{"whitespace", " \n ", false, "", true},
		{"truncated", `{"isValid":tr`, false, domain.MsgTopicUnparseable, true},
		{"null", "null", false, domain.MsgTopicUnparseable, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate, err := NewLLMTopicGate(replyWith(tt.content), 0, zap.NewNop())
			require.NoError(t, err)

			verdict, err := gate.CheckTopic(context.Background(), "Indonesian strata title law")
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, verdict.IsValid)
			assert.Equal(t, tt.wantReason, verdict.Reason)
			assert.Equal(t, tt.wantInconclusive, verdict.Inconclusive)
		})
	}
}

func TestLLMTopicGate_CheckTopic_TransportError(t *testing.T) {
	upstream := domain.NewLLMServiceError(errors.New("connection refused"))
	model := &fakeChatModel{
		CompleteFunc: func(ctx context.Context, req domain.ChatRequest) (*domain.ChatCompletion, error) {
			return nil, upstream
		},
	}
	gate, err := NewLLMTopicGate(model, 0, zap.NewNop())
	require.NoError(t, err)

	_, err = gate.CheckTopic(context.Background(), "Commercial lease terms")
	assert.ErrorIs(t, err, upstream)
	assert.True(t, domain.HasCode(err, domain.CodeLLMServiceError))
}
