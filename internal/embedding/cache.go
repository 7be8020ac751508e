package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"carousel-workers/internal/common/logger"

	"github.com/redis/go-redis/v9"
)

// CachedProvider wraps a Provider with a content-addressed Redis cache.
// Keys are a hash of model+text, so identical descriptor texts across worker
// instances reuse one backend call. The cache is advisory: any Redis failure
// falls through to the inner provider.
type CachedProvider struct {
	inner  Provider
	redis  *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

// NewCachedProvider wraps inner with a Redis cache. A zero ttl stores entries
// without expiry.
func NewCachedProvider(inner Provider, rdb *redis.Client, ttl time.Duration, log logger.Logger) *CachedProvider {
	return &CachedProvider{
		inner:  inner,
		redis:  rdb,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "embedding-cache"}),
	}
}

func (c *CachedProvider) Model() string   { return c.inner.Model() }
func (c *CachedProvider) Dimensions() int { return c.inner.Dimensions() }

func (c *CachedProvider) Available(ctx context.Context) bool {
	return c.inner.Available(ctx)
}

func (c *CachedProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	key := c.key(text)

	if val, err := c.redis.Get(ctx, key).Result(); err == nil {
		var vec []float32
		if err := json.Unmarshal([]byte(val), &vec); err == nil && len(vec) > 0 {
			return vec, nil
		}
	}

	vec, err := c.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(vec); err == nil {
		if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.logger.Warn("embedding cache write failed", map[string]interface{}{
				"error": err,
			})
		}
	}

	return vec, nil
}

func (c *CachedProvider) key(text string) string {
	sum := sha256.Sum256([]byte(c.inner.Model() + "\x00" + text))
	return "embed:" + hex.EncodeToString(sum[:])
}
