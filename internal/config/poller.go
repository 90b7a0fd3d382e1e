package config

import (
	"errors"
	"time"
)

const (
	defaultYieldPollingInterval      = 24 * time.Hour
	defaultMarketDataPollingInterval = time.Hour
)

type PollerConfig struct {
	YieldPollingInterval      time.Duration `mapstructure:"yield-polling-interval"`
	MarketDataPollingInterval time.Duration `mapstructure:"market-data-polling-interval"`
	// MarketDataSyncEnabled turns on the CoinGecko/subgraph snapshot job.
	MarketDataSyncEnabled bool `mapstructure:"market-data-sync-enabled"`
}

func (cfg *PollerConfig) Validate() error {
	if cfg.YieldPollingInterval < 0 {
		return errors.New("yield-polling-interval must not be negative")
	}
	if cfg.YieldPollingInterval == 0 {
		cfg.YieldPollingInterval = defaultYieldPollingInterval
	}

	if cfg.MarketDataPollingInterval < 0 {
		return errors.New("market-data-polling-interval must not be negative")
	}
	if cfg.MarketDataPollingInterval == 0 {
		cfg.MarketDataPollingInterval = defaultMarketDataPollingInterval
	}

	return nil
}
