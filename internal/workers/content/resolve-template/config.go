package resolvetemplate

import "time"

// Config holds the per-job settings of the resolve-slide-template worker.
type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
