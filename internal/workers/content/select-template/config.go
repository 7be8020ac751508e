package selecttemplate

import "time"

// Config holds the per-job settings of the select-slide-template worker.
type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
	}
}
