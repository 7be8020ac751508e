package selection

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"carousel-workers/pkg/catalog"
)

// stopwords are dropped during tokenization so connective filler does not
// dilute the Jaccard overlap.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "but": {}, "by": {}, "for": {}, "from": {}, "has": {},
	"have": {}, "in": {}, "into": {}, "is": {}, "it": {}, "its": {},
	"of": {}, "on": {}, "or": {}, "that": {}, "the": {}, "their": {},
	"this": {}, "to": {}, "was": {}, "were": {}, "will": {}, "with": {},
}

// tokenSet lowercases the text, splits on any non-alphanumeric rune and
// drops stopwords. The result is a set: duplicate tokens collapse.
func tokenSet(text string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, stop := stopwords[f]; stop {
			continue
		}
		set[f] = struct{}{}
	}
	return set
}

// jaccard returns |a ∩ b| / |a ∪ b|. Two empty sets score 0.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	intersection := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// sharedTerms returns the sorted intersection of the descriptor text's tokens
// and a template's keyword tokens, capped at limit entries. Used for
// justification strings.
func sharedTerms(text string, tpl catalog.TemplateRecord, limit int) []string {
	descriptor := tokenSet(text)
	keywords := tokenSet(strings.Join(tpl.Keywords, " "))
	var shared []string
	for tok := range descriptor {
		if _, ok := keywords[tok]; ok {
			shared = append(shared, tok)
		}
	}
	sort.Strings(shared)
	if limit > 0 && len(shared) > limit {
		shared = shared[:limit]
	}
	return shared
}

// LexicalScorer scores by Jaccard similarity between the descriptor text's
// token set and each template's keyword token set. Pure string math: no I/O,
// no failure modes, fully deterministic.
type LexicalScorer struct{}

func (LexicalScorer) Method() Method { return MethodKeyword }

func (LexicalScorer) ScoreAll(_ context.Context, text string, candidates []catalog.TemplateRecord) ([]float64, error) {
	tokens := tokenSet(text)
	scores := make([]float64, len(candidates))
	for i, tpl := range candidates {
		scores[i] = jaccard(tokens, tokenSet(strings.Join(tpl.Keywords, " ")))
	}
	return scores, nil
}
