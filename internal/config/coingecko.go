package config

import (
	"fmt"
	"net/url"
	"time"
)

const (
	defaultCoinGeckoURL           = "https://api.coingecko.com/api/v3"
	defaultCoinGeckoTimeout       = 15 * time.Second
	defaultCoinGeckoMaxRetryTimes = 3
	defaultCoinGeckoRetryInterval = 5 * time.Second
)

type CoinGeckoConfig struct {
	URL string `mapstructure:"url"`
	// APIKey is sent as x-cg-pro-api-key when set.
	APIKey        string        `mapstructure:"api-key"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
}

func DefaultCoinGeckoConfig() *CoinGeckoConfig {
	return &CoinGeckoConfig{
		URL:           defaultCoinGeckoURL,
		Timeout:       defaultCoinGeckoTimeout,
		MaxRetryTimes: defaultCoinGeckoMaxRetryTimes,
		RetryInterval: defaultCoinGeckoRetryInterval,
	}
}

func (cfg *CoinGeckoConfig) Validate() error {
	if cfg.URL == "" {
		cfg.URL = defaultCoinGeckoURL
	}
	if _, err := url.ParseRequestURI(cfg.URL); err != nil {
		return fmt.Errorf("invalid coingecko url: %w", err)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultCoinGeckoTimeout
	}

	if cfg.MaxRetryTimes == 0 {
		cfg.MaxRetryTimes = defaultCoinGeckoMaxRetryTimes
	}

	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = defaultCoinGeckoRetryInterval
	}

	return nil
}
