package selection

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carousel-workers/internal/common/errors"
	"carousel-workers/pkg/catalog"
)

// fakeProvider embeds text as term counts over a fixed vocabulary, so cosine
// similarity behaves like a crude topic model. Thread-safe counters let tests
// assert how often the backend was hit.
type fakeProvider struct {
	vocab     []string
	available bool

	mu         sync.Mutex
	failEmbeds bool

	probeCalls int64
	embedCalls int64
}

func newFakeProvider(vocab ...string) *fakeProvider {
	return &fakeProvider{vocab: vocab, available: true}
}

func (f *fakeProvider) Available(_ context.Context) bool {
	atomic.AddInt64(&f.probeCalls, 1)
	return f.available
}

func (f *fakeProvider) Embed(_ context.Context, text string) ([]float32, error) {
	atomic.AddInt64(&f.embedCalls, 1)
	f.mu.Lock()
	failing := f.failEmbeds
	f.mu.Unlock()
	if failing {
		return nil, errors.NewEmbeddingFailedError(fmt.Errorf("backend down"))
	}
	tokens := tokenSet(text)
	vec := make([]float32, len(f.vocab))
	for i, term := range f.vocab {
		if _, ok := tokens[term]; ok {
			vec[i] = 1
		}
	}
	return vec, nil
}

func (f *fakeProvider) setFailing(fail bool) {
	f.mu.Lock()
	f.failEmbeds = fail
	f.mu.Unlock()
}

func (f *fakeProvider) Dimensions() int { return len(f.vocab) }
func (f *fakeProvider) Model() string   { return "fake-vocab" }

func TestCosine(t *testing.T) {
	tests := []struct {
		name   string
		a, b   []float32
		want   float64
		wantOK bool
	}{
		{
			name:   "identical vectors",
			a:      []float32{1, 2, 3},
			b:      []float32{1, 2, 3},
			want:   1.0,
			wantOK: true,
		},
		{
			name:   "opposite vectors",
			a:      []float32{1, 0},
			b:      []float32{-1, 0},
			want:   -1.0,
			wantOK: true,
		},
		{
			name:   "orthogonal vectors",
			a:      []float32{1, 0},
			b:      []float32{0, 1},
			want:   0.0,
			wantOK: true,
		},
		{
			name:   "zero vector is not comparable",
			a:      []float32{0, 0},
			b:      []float32{1, 1},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cosine(tt.a, tt.b)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestSemanticScorerPrefersMatchingDescription(t *testing.T) {
	provider := newFakeProvider("statistic", "source", "story", "customer", "steps", "checklist")
	cat := catalog.MustNew([]catalog.TemplateRecord{
		{
			ID: "stat", ModuleType: catalog.ModuleValue, ValueSubtype: catalog.SubtypeData,
			StructuralPattern: "{stat}", MinLength: 1, MaxLength: 100,
			Keywords:            []string{"number"},
			SemanticDescription: "Presents a single statistic with source attribution",
		},
		{
			ID: "story", ModuleType: catalog.ModuleValue, ValueSubtype: catalog.SubtypeData,
			StructuralPattern: "{story}", MinLength: 1, MaxLength: 100,
			Keywords:            []string{"narrative"},
			SemanticDescription: "Tells a short customer story",
		},
	})

	scorer, err := NewSemanticScorer(context.Background(), provider, cat)
	require.NoError(t, err)
	assert.Equal(t, MethodSemantic, scorer.Method())

	scores, err := scorer.ScoreAll(context.Background(),
		"highlight one statistic and cite its source", cat.Records())
	require.NoError(t, err)
	require.Len(t, scores, 2)

	assert.Greater(t, scores[0], scores[1], "statistic template should outscore the story template")
	for _, s := range scores {
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}

func TestSemanticScorerEmbedsQueryOncePerCall(t *testing.T) {
	provider := newFakeProvider("statistic", "story")
	cat := catalog.MustNew([]catalog.TemplateRecord{
		{
			ID: "a", ModuleType: catalog.ModuleHook, StructuralPattern: "{q}",
			MinLength: 1, MaxLength: 100, Keywords: []string{"x"},
			SemanticDescription: "a statistic hook",
		},
		{
			ID: "b", ModuleType: catalog.ModuleHook, StructuralPattern: "{q}",
			MinLength: 1, MaxLength: 100, Keywords: []string{"y"},
			SemanticDescription: "a story hook",
		},
	})

	scorer, err := NewSemanticScorer(context.Background(), provider, cat)
	require.NoError(t, err)
	precompute := atomic.LoadInt64(&provider.embedCalls)
	assert.EqualValues(t, cat.Len(), precompute)

	_, err = scorer.ScoreAll(context.Background(), "statistic", cat.Records())
	require.NoError(t, err)
	assert.EqualValues(t, precompute+1, atomic.LoadInt64(&provider.embedCalls))
}

func TestSemanticScorerPropagatesQueryEmbedFailure(t *testing.T) {
	provider := newFakeProvider("statistic")
	cat := catalog.MustNew([]catalog.TemplateRecord{
		{
			ID: "a", ModuleType: catalog.ModuleHook, StructuralPattern: "{q}",
			MinLength: 1, MaxLength: 100, Keywords: []string{"x"},
			SemanticDescription: "desc",
		},
	})

	scorer, err := NewSemanticScorer(context.Background(), provider, cat)
	require.NoError(t, err)

	provider.setFailing(true)
	_, err = scorer.ScoreAll(context.Background(), "anything", cat.Records())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeEmbeddingFailed))
}

func TestSemanticScorerUnknownTemplateScoresZero(t *testing.T) {
	provider := newFakeProvider("statistic")
	cat := catalog.MustNew([]catalog.TemplateRecord{
		{
			ID: "known", ModuleType: catalog.ModuleHook, StructuralPattern: "{q}",
			MinLength: 1, MaxLength: 100, Keywords: []string{"x"},
			SemanticDescription: "statistic",
		},
	})

	scorer, err := NewSemanticScorer(context.Background(), provider, cat)
	require.NoError(t, err)

	stranger := catalog.TemplateRecord{ID: "stranger"}
	scores, err := scorer.ScoreAll(context.Background(), "statistic",
		append(cat.Records(), stranger))
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Greater(t, scores[0], 0.0)
	assert.Zero(t, scores[1])
}
