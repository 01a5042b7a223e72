package service

import (
	"context"
	"encoding/json"
	"errors"
	"quiz-forge/internal/cache"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/logger"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	TopicGateCacheService   = "topicgate"
	TopicVerdictCacheObject = "verdict"
	DefaultTopicVerdictTTL  = time.Hour
)

// cachedTopicGate remembers conclusive topic verdicts and coalesces
// concurrent checks of the same topic into one upstream call.
type cachedTopicGate struct {
	next  domain.TopicGate
	store domain.Cache
	ttl   time.Duration
	group singleflight.Group
}

// NewCachedTopicGate decorates next with a verdict cache. A nil store
// disables caching and returns next unchanged.
func NewCachedTopicGate(next domain.TopicGate, store domain.Cache, ttl time.Duration) domain.TopicGate {
	if store == nil {
		return next
	}
	if ttl <= 0 {
		ttl = DefaultTopicVerdictTTL
	}
	return &cachedTopicGate{next: next, store: store, ttl: ttl}
}

// TopicVerdictCacheKey returns the cache key for topic.
func TopicVerdictCacheKey(topic string) string {
	return cache.GenerateCacheKey(TopicGateCacheService, TopicVerdictCacheObject, cache.Fingerprint(topic))
}

func (g *cachedTopicGate) CheckTopic(ctx context.Context, topic string) (domain.TopicVerdict, error) {
	key := TopicVerdictCacheKey(topic)
	if verdict, ok := g.lookup(ctx, key); ok {
		return verdict, nil
	}

	// The shared call outlives any single caller: it runs detached from the
	// leader's cancellation and is bounded by the model's per-call timeout.
	// Each caller still stops waiting when its own context ends.
	flightCtx := context.WithoutCancel(ctx)
	ch := g.group.DoChan(key, func() (interface{}, error) {
		verdict, err := g.next.CheckTopic(flightCtx, topic)
		if err != nil {
			return domain.TopicVerdict{}, err
		}
		if !verdict.Inconclusive {
			g.save(flightCtx, key, verdict)
		}
		return verdict, nil
	})

	select {
	case <-ctx.Done():
		return domain.TopicVerdict{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return domain.TopicVerdict{}, res.Err
		}
		if res.Shared {
			logger.Get().Debug("Topic check shared with a concurrent request", zap.String("key", key))
		}
		return res.Val.(domain.TopicVerdict), nil
	}
}

func (g *cachedTopicGate) lookup(ctx context.Context, key string) (domain.TopicVerdict, bool) {
	raw, err := g.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Topic verdict cache read failed", zap.String("key", key), zap.Error(err))
		}
		return domain.TopicVerdict{}, false
	}

	var verdict domain.TopicVerdict
	if err := json.Unmarshal([]byte(raw), &verdict); err != nil {
		logger.Get().Warn("Discarding unreadable topic verdict", zap.String("key", key), zap.Error(err))
		if err := g.store.Delete(ctx, key); err != nil {
			logger.Get().Warn("Topic verdict cache delete failed", zap.String("key", key), zap.Error(err))
		}
		return domain.TopicVerdict{}, false
	}
	logger.Get().Debug("Topic verdict cache hit", zap.String("key", key), zap.Bool("is_valid", verdict.IsValid))
	return verdict, true
}

func (g *cachedTopicGate) save(ctx context.Context, key string, verdict domain.TopicVerdict) {
	data, err := json.Marshal(verdict)
	if err != nil {
		logger.Get().Warn("Failed to encode topic verdict", zap.Error(err))
		return
	}
	if err := g.store.Set(ctx, key, string(data), g.ttl); err != nil {
		logger.Get().Warn("Topic verdict cache write failed", zap.String("key", key), zap.Error(err))
	}
}
