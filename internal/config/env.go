// Package config defines environment configuration structs and loaders.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type AppConfig struct {
	TrialAPIEnvConfig
}

func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// TrialAPIEnvConfig contains the trial-management service target and client
// behavior.
type TrialAPIEnvConfig struct {
	TrialAPIUrl   string        `env:"TRIAL_API_URL" envDefault:"http://127.0.0.1:8600"`
	ClientTimeout time.Duration `env:"TRIAL_API_TIMEOUT" envDefault:"15s"`
	MaxRetries    int           `env:"TRIAL_API_MAX_RETRIES" envDefault:"3"`
}
