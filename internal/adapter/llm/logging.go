package llm

import (
	"context"
	"quiz-forge/internal/domain"
	"time"

	"go.uber.org/zap"
)

// loggingChatModel logs every call made through the wrapped model.
type loggingChatModel struct {
	inner    domain.ChatModel
	provider string
	logger   *zap.Logger
}

// WithLogging wraps a ChatModel so each call is logged with its latency and
// token usage. The raw response is logged at debug level.
func WithLogging(inner domain.ChatModel, provider string, logger *zap.Logger) domain.ChatModel {
	return &loggingChatModel{inner: inner, provider: provider, logger: logger}
}

func (l *loggingChatModel) Complete(ctx context.Context, req domain.ChatRequest) (*domain.ChatCompletion, error) {
	start := time.Now()
	l.logger.Debug("Sending LLM request",
		zap.String("provider", l.provider),
		zap.String("model", l.inner.ModelID()),
		zap.Int("max_tokens", req.MaxTokens),
		zap.Bool("json_mode", req.JSONMode),
	)

	resp, err := l.inner.Complete(ctx, req)
	duration := time.Since(start)
	if err != nil {
		l.logger.Error("LLM request failed",
			zap.String("provider", l.provider),
			zap.String("model", l.inner.ModelID()),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	l.logger.Info("LLM response received",
		zap.String("provider", l.provider),
		zap.String("model", resp.Model),
		zap.Duration("duration", duration),
		zap.Int("content_length", len(resp.Content)),
		zap.String("stop_reason", resp.StopReason),
		zap.Int("input_tokens", resp.Usage.InputTokens),
		zap.Int("output_tokens", resp.Usage.OutputTokens),
	)
	l.logger.Debug("Raw LLM response", zap.String("content", resp.Content))
	return resp, nil
}

func (l *loggingChatModel) ModelID() string {
	return l.inner.ModelID()
}
