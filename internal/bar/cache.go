package bar

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"liquor-bartender/internal/domain"
)

// CachedFetcher envuelve un Fetcher con un cache read-through en Redis.
// Con cliente nil se comporta como el Fetcher interno sin cache.
type CachedFetcher struct {
	inner  Fetcher
	client *redis.Client
	ttl    time.Duration
	prefix string
	logger *zap.Logger
}

func NewCachedFetcher(inner Fetcher, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedFetcher {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedFetcher{
		inner:  inner,
		client: client,
		ttl:    ttl,
		prefix: "bar:user:",
		logger: logger,
	}
}

func (f *CachedFetcher) FetchBar(ctx context.Context, username string) ([]domain.OwnedBottle, error) {
	if f.client == nil {
		return f.inner.FetchBar(ctx, username)
	}

	key := f.prefix + strings.ToLower(strings.TrimSpace(username))

	if raw, err := f.client.Get(ctx, key).Result(); err == nil {
		var bottles []domain.OwnedBottle
		if err := json.Unmarshal([]byte(raw), &bottles); err == nil {
			return bottles, nil
		}
		f.logger.Warn("corrupt bar cache entry", zap.String("key", key))
	}

	bottles, err := f.inner.FetchBar(ctx, username)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(bottles); err == nil {
		if err := f.client.Set(ctx, key, raw, f.ttl).Err(); err != nil {
			f.logger.Warn("bar cache set failed", zap.Error(err))
		}
	}
	return bottles, nil
}
