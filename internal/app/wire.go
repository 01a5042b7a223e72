package app

import (
	"context"
	"fmt"
	"quiz-forge/internal/adapter"
	"quiz-forge/internal/adapter/llm"
	"quiz-forge/internal/adapter/quizgen"
	"quiz-forge/internal/cache"
	"quiz-forge/internal/config"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/repository"
	"quiz-forge/internal/service"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Components holds everything the API server and the CLI share.
type Components struct {
	QuizService service.QuizService
	Cache       domain.Cache

	redisClient *redis.Client
}

// Close releases the Redis connection, if one was opened.
func (c *Components) Close() error {
	if c.redisClient == nil {
		return nil
	}
	return c.redisClient.Close()
}

// Build wires the provider, the topic gate (cached when Redis is
// configured), the synthesizer and the in-memory store into a QuizService.
func Build(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Components, error) {
	model, err := llm.NewChatModel(ctx, cfg.LLM, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	gate, err := quizgen.NewLLMTopicGate(model, cfg.LLM.TopicMaxTokens, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create topic gate: %w", err)
	}

	components := &Components{}
	var topicGate domain.TopicGate = gate
	if cfg.Redis.Address != "" {
		client, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			// The verdict cache is an optimisation; run without it.
			log.Warn("Redis unavailable, topic verdict cache disabled", zap.Error(err))
		} else {
			log.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
			components.redisClient = client
			components.Cache = adapter.NewRedisCacheAdapter(client)
			topicGate = service.NewCachedTopicGate(gate, components.Cache, cfg.Cache.TopicVerdictTTL)
		}
	}

	synth, err := quizgen.NewLLMQuizSynthesizer(model, quizgen.SynthesizerConfig{
		MaxTokens: cfg.LLM.QuizMaxTokens,
		Audience:  cfg.Quiz.Audience,
	}, log)
	if err != nil {
		_ = components.Close()
		return nil, fmt.Errorf("failed to create quiz synthesizer: %w", err)
	}

	components.QuizService = service.NewQuizService(topicGate, synth, repository.NewMemoryQuizStore())
	return components, nil
}
