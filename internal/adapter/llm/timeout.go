package llm

import (
	"context"
	"quiz-forge/internal/domain"
	"time"
)

type timeoutChatModel struct {
	inner   domain.ChatModel
	timeout time.Duration
}

// WithTimeout bounds every call made through inner. A non-positive timeout
// returns inner unchanged.
func WithTimeout(inner domain.ChatModel, timeout time.Duration) domain.ChatModel {
	if timeout <= 0 {
		return inner
	}
	return &timeoutChatModel{inner: inner, timeout: timeout}
}

func (t *timeoutChatModel) Complete(ctx context.Context, req domain.ChatRequest) (*domain.ChatCompletion, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Complete(ctx, req)
}

func (t *timeoutChatModel) ModelID() string {
	return t.inner.ModelID()
}
