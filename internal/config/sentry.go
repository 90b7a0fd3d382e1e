package config

import (
	"errors"
	"time"
)

const defaultSentryFlushTimeout = 2 * time.Second

type SentryConfig struct {
	// DSN is optional, an empty value disables reporting to sentry.
	DSN          string        `mapstructure:"dsn"`
	Environment  string        `mapstructure:"environment"`
	SampleRate   float64       `mapstructure:"sample-rate"`
	FlushTimeout time.Duration `mapstructure:"flush-timeout"`
}

func (cfg *SentryConfig) Validate() error {
	if cfg.SampleRate < 0 || cfg.SampleRate > 1 {
		return errors.New("sentry sample-rate must be between 0 and 1")
	}
	if cfg.SampleRate == 0 {
		cfg.SampleRate = 1
	}

	if cfg.FlushTimeout <= 0 {
		cfg.FlushTimeout = defaultSentryFlushTimeout
	}

	return nil
}
