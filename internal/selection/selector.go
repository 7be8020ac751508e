package selection

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"carousel-workers/internal/common/errors"
	"carousel-workers/internal/common/logger"
	"carousel-workers/internal/common/metrics"
	"carousel-workers/internal/embedding"
	"carousel-workers/pkg/catalog"
)

// Selector orchestrates one selection call: validate the descriptor, filter
// the catalog to candidates, score, rank with tone adjustment, break ties by
// catalog order and produce a justified result.
//
// The active scorer is decided lazily on the first Select call: if an
// embedding provider was supplied and answers a probe, template vectors are
// precomputed and the semantic scorer becomes active; otherwise the keyword
// scorer is used. Once a live semantic call fails with an embedding error the
// selector swaps to the keyword scorer for the remainder of the process and
// never probes again.
type Selector struct {
	catalog  *catalog.Catalog
	provider embedding.Provider
	tone     TonePolicy
	logger   logger.Logger

	initOnce sync.Once
	mu       sync.RWMutex
	scorer   Scorer
}

// New builds a Selector. provider may be nil, which pins the keyword method.
func New(cat *catalog.Catalog, provider embedding.Provider, tone TonePolicy, log logger.Logger) *Selector {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Selector{
		catalog:  cat,
		provider: provider,
		tone:     tone,
		logger:   log,
	}
}

// init runs exactly once, on the first Select call. Concurrent first calls
// block on the sync.Once, so the availability probe and vector precompute
// happen a single time.
func (s *Selector) init(ctx context.Context) {
	if s.provider == nil {
		s.scorer = LexicalScorer{}
		s.logger.Info("selection method initialized", map[string]interface{}{
			"method": string(MethodKeyword),
			"reason": "no embedding provider configured",
		})
		return
	}
	if !s.provider.Available(ctx) {
		s.scorer = LexicalScorer{}
		s.logger.Warn("embedding backend unavailable, using keyword scoring", map[string]interface{}{
			"model": s.provider.Model(),
		})
		return
	}
	sem, err := NewSemanticScorer(ctx, s.provider, s.catalog)
	if err != nil {
		s.scorer = LexicalScorer{}
		metrics.SelectionFallbacks.Inc()
		s.logger.WithError(err).Warn("template vector precompute failed, using keyword scoring", map[string]interface{}{
			"model": s.provider.Model(),
		})
		return
	}
	s.scorer = sem
	s.logger.Info("selection method initialized", map[string]interface{}{
		"method":    string(MethodSemantic),
		"model":     s.provider.Model(),
		"templates": s.catalog.Len(),
	})
}

func (s *Selector) activeScorer() Scorer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scorer
}

// fallbackToKeyword permanently swaps the active scorer after a live
// embedding failure. Returns the scorer to rescore the current call with.
func (s *Selector) fallbackToKeyword(cause error) Scorer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scorer.Method() != MethodKeyword {
		metrics.SelectionFallbacks.Inc()
		s.logger.WithError(cause).Error("embedding call failed, switching to keyword scoring for the rest of this process", nil)
		s.scorer = LexicalScorer{}
	}
	return s.scorer
}

// Select picks the best template for the descriptor. The returned result's
// Method field always reports the scorer that actually produced the scores.
func (s *Selector) Select(ctx context.Context, d *Descriptor) (*Result, error) {
	s.initOnce.Do(func() { s.init(ctx) })

	start := time.Now()
	if err := d.Validate(); err != nil {
		return nil, err
	}

	candidates := s.catalog.ByModule(d.ModuleType, d.ValueSubtype)
	if len(candidates) == 0 {
		return nil, errors.NewNoCandidateTemplatesError(string(d.ModuleType), string(d.ValueSubtype))
	}

	text := d.Text()
	scorer := s.activeScorer()
	scores, err := scorer.ScoreAll(ctx, text, candidates)
	if err != nil {
		if !errors.IsCode(err, errors.ErrCodeEmbeddingFailed) {
			return nil, err
		}
		// Rescore the whole candidate set lexically so a single result never
		// mixes scores from two methods.
		scorer = s.fallbackToKeyword(err)
		if scores, err = scorer.ScoreAll(ctx, text, candidates); err != nil {
			return nil, err
		}
	}

	// Rank on tone-adjusted scores. Strict > keeps the earliest candidate on
	// ties, which is catalog insertion order.
	best := 0
	bestScore := -1.0
	for i := range candidates {
		adjusted := clamp01(scores[i] + s.tone.Boost(d.Tone, candidates[i].Tone))
		if adjusted > bestScore {
			best, bestScore = i, adjusted
		}
	}

	winner := candidates[best]
	method := scorer.Method()
	result := &Result{
		TemplateID:    winner.ID,
		Confidence:    bestScore,
		Justification: s.justify(d, winner, method, bestScore, text),
		Method:        method,
	}

	metrics.SelectionsTotal.WithLabelValues(string(method), string(d.ModuleType)).Inc()
	metrics.SelectionDuration.WithLabelValues(string(method)).Observe(time.Since(start).Seconds())
	s.logger.Debug("template selected", map[string]interface{}{
		"template_id": result.TemplateID,
		"method":      string(method),
		"confidence":  result.Confidence,
		"category":    d.Category(),
		"candidates":  len(candidates),
	})
	return result, nil
}

// justify builds the human-readable explanation: slide category, winning
// template and pattern, the dominant scoring signal and the final score.
func (s *Selector) justify(d *Descriptor, winner catalog.TemplateRecord, method Method, score float64, text string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Selected %q (pattern %q) for %s slide", winner.ID, winner.StructuralPattern, d.Category())
	switch method {
	case MethodSemantic:
		b.WriteString(" by semantic similarity to its description")
	case MethodKeyword:
		if shared := sharedTerms(text, winner, 4); len(shared) > 0 {
			fmt.Fprintf(&b, " by keyword overlap on %s", strings.Join(shared, ", "))
		} else {
			b.WriteString(" by keyword overlap")
		}
	}
	if d.Tone != "" && s.tone.Boost(d.Tone, winner.Tone) > 0 {
		fmt.Fprintf(&b, ", tone %q aligned", d.Tone)
	}
	fmt.Fprintf(&b, "; score %.2f", score)
	return b.String()
}
