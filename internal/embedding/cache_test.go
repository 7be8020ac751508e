package embedding

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carousel-workers/internal/common/errors"
	"carousel-workers/internal/common/logger"
)

// countingProvider returns a fixed vector and counts Embed calls.
type countingProvider struct {
	vec   []float32
	calls int
	fail  bool
}

func (p *countingProvider) Available(_ context.Context) bool { return true }
func (p *countingProvider) Dimensions() int                  { return len(p.vec) }
func (p *countingProvider) Model() string                    { return "counting" }

func (p *countingProvider) Embed(_ context.Context, _ string) ([]float32, error) {
	p.calls++
	if p.fail {
		return nil, errors.NewEmbeddingFailedError(fmt.Errorf("backend down"))
	}
	return p.vec, nil
}

func setupCache(t *testing.T, inner Provider, ttl time.Duration) (*CachedProvider, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewCachedProvider(inner, rdb, ttl, logger.NewTestLogger(t)), mr
}

func TestCachedProviderHitsBackendOncePerText(t *testing.T) {
	inner := &countingProvider{vec: []float32{0.5, -0.5}}
	cached, _ := setupCache(t, inner, time.Hour)

	for i := 0; i < 3; i++ {
		vec, err := cached.Embed(context.Background(), "same text")
		require.NoError(t, err)
		assert.Equal(t, inner.vec, vec)
	}
	assert.Equal(t, 1, inner.calls)

	_, err := cached.Embed(context.Background(), "different text")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCachedProviderKeyIncludesModel(t *testing.T) {
	inner := &countingProvider{vec: []float32{1}}
	cached, _ := setupCache(t, inner, 0)

	a := cached.key("some text")
	b := cached.key("other text")
	assert.NotEqual(t, a, b)
	assert.Contains(t, a, "embed:")
}

func TestCachedProviderExpiry(t *testing.T) {
	inner := &countingProvider{vec: []float32{1, 2}}
	cached, mr := setupCache(t, inner, time.Minute)

	_, err := cached.Embed(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)

	mr.FastForward(2 * time.Minute)

	_, err = cached.Embed(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCachedProviderSurvivesRedisOutage(t *testing.T) {
	inner := &countingProvider{vec: []float32{3, 4}}
	cached, mr := setupCache(t, inner, time.Hour)
	mr.Close()

	vec, err := cached.Embed(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, inner.vec, vec)
	assert.Equal(t, 1, inner.calls)
}

func TestCachedProviderPropagatesBackendError(t *testing.T) {
	inner := &countingProvider{vec: []float32{1}, fail: true}
	cached, _ := setupCache(t, inner, time.Hour)

	_, err := cached.Embed(context.Background(), "text")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeEmbeddingFailed))
}
