package llm

import (
	"context"
	"fmt"
	"net/http"
	"quiz-forge/internal/config"
	"quiz-forge/internal/domain"

	"go.uber.org/zap"
)

// NewChatModel creates the configured provider wrapped with the per-call
// timeout and call logging.
func NewChatModel(ctx context.Context, cfg config.LLMConfig, logger *zap.Logger) (domain.ChatModel, error) {
	var (
		model domain.ChatModel
		err   error
	)

	switch cfg.Provider {
	case config.ProviderGitHub, config.ProviderOpenAI:
		model, err = NewOpenAIChatModel(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.JSONMode)
	case config.ProviderAnthropic:
		model, err = NewAnthropicChatModel(cfg.APIKey, cfg.BaseURL, cfg.Model)
	case config.ProviderGemini:
		model, err = NewGeminiChatModel(ctx, cfg.APIKey, cfg.Model)
	case config.ProviderOllama:
		model, err = NewOllamaChatModel(cfg.BaseURL, cfg.Model, &http.Client{Timeout: cfg.Timeout})
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logger.Info("LLM provider initialized",
		zap.String("provider", cfg.Provider),
		zap.String("model", model.ModelID()),
		zap.String("base_url", cfg.BaseURL),
	)
	return WithLogging(WithTimeout(model, cfg.Timeout), cfg.Provider, logger), nil
}
