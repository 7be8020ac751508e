package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"carousel-workers/internal/common/errors"
	commonhttp "carousel-workers/internal/common/http"
	"carousel-workers/internal/common/logger"
)

// Config holds the embedding backend settings.
type Config struct {
	BaseURL string
	Preset  Preset
	Timeout time.Duration
}

// OllamaProvider talks to an Ollama-compatible /api/embeddings endpoint.
type OllamaProvider struct {
	baseURL string
	model   string
	dims    int
	client  *commonhttp.Client
	logger  logger.Logger
}

// NewOllama creates an embedding provider for the configured preset.
func NewOllama(cfg Config, log logger.Logger) *OllamaProvider {
	model, dims := ModelForPreset(cfg.Preset)
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &OllamaProvider{
		baseURL: cfg.BaseURL,
		model:   model,
		dims:    dims,
		client:  commonhttp.NewClient(timeout),
		logger: log.WithFields(map[string]interface{}{
			"component": "embedding",
			"model":     model,
		}),
	}
}

func (p *OllamaProvider) Model() string   { return p.model }
func (p *OllamaProvider) Dimensions() int { return p.dims }

// Available probes the backend with a tiny embed request. A failed probe
// means the backend stays unused for the rest of the process.
func (p *OllamaProvider) Available(ctx context.Context) bool {
	if _, err := p.Embed(ctx, "probe"); err != nil {
		p.logger.Warn("embedding backend unavailable", map[string]interface{}{
			"baseUrl": p.baseURL,
			"error":   err,
		})
		return false
	}
	return true
}

type embedRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type embedResponse struct {
	Embedding []float64 `json:"embedding"`
}

// Embed requests a vector for text from the backend.
func (p *OllamaProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	body, _ := json.Marshal(embedRequest{Model: p.model, Prompt: text})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/embeddings", bytes.NewReader(body))
	if err != nil {
		return nil, errors.NewEmbeddingFailedError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.NewEmbeddingFailedError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errors.NewEmbeddingFailedError(
			fmt.Errorf("status %d: %s", resp.StatusCode, string(payload)))
	}

	var out embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.NewEmbeddingFailedError(err)
	}
	if len(out.Embedding) == 0 {
		return nil, errors.NewEmbeddingFailedError(fmt.Errorf("backend returned empty embedding"))
	}

	vec := make([]float32, len(out.Embedding))
	for i, v := range out.Embedding {
		vec[i] = float32(v)
	}
	return vec, nil
}
