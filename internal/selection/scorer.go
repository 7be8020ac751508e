package selection

import (
	"context"

	"carousel-workers/pkg/catalog"
)

// Method identifies which scoring strategy produced a selection result.
type Method string

const (
	// MethodSemantic means cosine similarity over embedding vectors.
	MethodSemantic Method = "semantic"
	// MethodKeyword means Jaccard overlap between token sets.
	MethodKeyword Method = "keyword"
)

// Scorer scores a descriptor text against a slice of candidate templates in
// one pass. Implementations must return one score per candidate, each in
// [0, 1], in candidate order. A returned error means the whole pass is
// unusable and the caller should rescore with a different scorer; it must
// never be used to report a single bad candidate.
type Scorer interface {
	ScoreAll(ctx context.Context, text string, candidates []catalog.TemplateRecord) ([]float64, error)
	Method() Method
}

// Result is the outcome of one selection call.
type Result struct {
	TemplateID    string  `json:"template_id"`
	Confidence    float64 `json:"confidence"`
	Justification string  `json:"justification"`
	Method        Method  `json:"method"`
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
