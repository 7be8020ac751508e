package selection

// TonePolicy controls how much a tone match between descriptor and template
// may lift a raw score. The boost scales with how many of the requested tone
// tokens the template's tone declares, capped at MaxBoost. Final scores are
// re-clamped to [0, 1] by the selector, so tone can nudge a ranking but never
// dominate it.
type TonePolicy struct {
	MaxBoost float64
}

// DefaultTonePolicy caps tone influence at a tenth of the score range.
func DefaultTonePolicy() TonePolicy {
	return TonePolicy{MaxBoost: 0.1}
}

// Boost returns the additive adjustment for one candidate. Zero whenever
// either side declares no tone.
func (p TonePolicy) Boost(requested, templateTone string) float64 {
	if p.MaxBoost <= 0 || requested == "" || templateTone == "" {
		return 0
	}
	want := tokenSet(requested)
	if len(want) == 0 {
		return 0
	}
	have := tokenSet(templateTone)
	matched := 0
	for tok := range want {
		if _, ok := have[tok]; ok {
			matched++
		}
	}
	return p.MaxBoost * float64(matched) / float64(len(want))
}
