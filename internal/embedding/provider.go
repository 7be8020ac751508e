// Package embedding provides the optional embedding capability used by the
// semantic scorer: an HTTP backend mapping text to fixed-length vectors, plus
// a content-addressed Redis cache in front of it.
package embedding

import "context"

// Provider converts text to vectors. Availability is probed once at process
// start; a provider that fails its probe is treated as absent for the rest of
// the process.
type Provider interface {
	// Available reports whether the backend can serve embeddings. Called once
	// during selector initialization, never per call.
	Available(ctx context.Context) bool

	// Embed returns the vector for text. Deterministic for identical input
	// and model configuration. Failures return an EMBEDDING_FAILED error.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dimensions returns the vector dimensionality of the configured model.
	Dimensions() int

	// Model returns the model identifier, for logging and cache keys.
	Model() string
}

// Preset names an embedding model trade-off. It is the only externally
// tunable knob of the selection core.
type Preset string

const (
	PresetSpeed        Preset = "speed"
	PresetMultilingual Preset = "multilingual"
	PresetQuality      Preset = "quality"
)

// ModelForPreset resolves a preset to a concrete model name and its vector
// dimensionality. Unknown presets resolve to the speed model.
func ModelForPreset(p Preset) (string, int) {
	switch p {
	case PresetMultilingual:
		return "paraphrase-multilingual", 768
	case PresetQuality:
		return "mxbai-embed-large", 1024
	default:
		return "all-minilm", 384
	}
}
