package selection

import (
	"context"
	"fmt"
	"math"

	"carousel-workers/internal/common/metrics"
	"carousel-workers/internal/embedding"
	"carousel-workers/pkg/catalog"
)

// SemanticScorer scores by cosine similarity between the descriptor text's
// embedding and precomputed embeddings of each template's semantic
// description. Template vectors are computed once at construction; only the
// descriptor text is embedded per call.
type SemanticScorer struct {
	provider embedding.Provider
	vectors  map[string][]float32
}

// NewSemanticScorer embeds every template's semantic description up front.
// Any embedding failure here aborts construction: a scorer with holes in its
// vector table would silently zero out templates forever.
func NewSemanticScorer(ctx context.Context, provider embedding.Provider, cat *catalog.Catalog) (*SemanticScorer, error) {
	vectors := make(map[string][]float32, cat.Len())
	for _, tpl := range cat.Records() {
		vec, err := provider.Embed(ctx, tpl.SemanticDescription)
		if err != nil {
			return nil, fmt.Errorf("precompute embedding for template %s: %w", tpl.ID, err)
		}
		vectors[tpl.ID] = vec
	}
	return &SemanticScorer{provider: provider, vectors: vectors}, nil
}

func (s *SemanticScorer) Method() Method { return MethodSemantic }

// ScoreAll embeds the descriptor text once, then compares it against every
// candidate's cached vector. A missing or mismatched candidate vector scores
// that candidate 0; only failure to embed the descriptor text itself returns
// an error, since then no candidate can be scored at all.
func (s *SemanticScorer) ScoreAll(ctx context.Context, text string, candidates []catalog.TemplateRecord) ([]float64, error) {
	query, err := s.provider.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	scores := make([]float64, len(candidates))
	for i, tpl := range candidates {
		vec, ok := s.vectors[tpl.ID]
		if !ok || len(vec) != len(query) {
			metrics.SelectionScoreFailures.Inc()
			continue
		}
		cos, ok := cosine(query, vec)
		if !ok {
			metrics.SelectionScoreFailures.Inc()
			continue
		}
		// Rescale cosine from [-1, 1] to [0, 1] so both scorers share a range.
		scores[i] = clamp01((cos + 1) / 2)
	}
	return scores, nil
}

// cosine returns the cosine similarity of two equal-length vectors. The
// second return is false when either vector has zero magnitude.
func cosine(a, b []float32) (float64, bool) {
	var dot, normA, normB float64
	for i := range a {
		av, bv := float64(a[i]), float64(b[i])
		dot += av * bv
		normA += av * av
		normB += bv * bv
	}
	if normA == 0 || normB == 0 {
		return 0, false
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), true
}
