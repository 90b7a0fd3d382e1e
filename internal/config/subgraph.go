package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/Alexintosh/piedao-monorepo/internal/types"
)

const (
	defaultSubgraphTimeout       = 20 * time.Second
	defaultSubgraphMaxRetryTimes = 3
	defaultSubgraphRetryInterval = 2 * time.Second
)

type SubgraphConfig struct {
	// Endpoints maps a supported chain to its pie subgraph url.
	Endpoints     map[string]string `mapstructure:"endpoints"`
	Timeout       time.Duration     `mapstructure:"timeout"`
	MaxRetryTimes uint              `mapstructure:"max-retry-times"`
	RetryInterval time.Duration     `mapstructure:"retry-interval"`
	// CacheTTL keeps account balances for user queries, 0 disables caching.
	CacheTTL time.Duration `mapstructure:"cache-ttl"`
}

func (cfg *SubgraphConfig) Validate() error {
	if len(cfg.Endpoints) == 0 {
		return errors.New("at least one subgraph endpoint is required")
	}

	for chain, endpoint := range cfg.Endpoints {
		if _, err := types.ParseChain(chain); err != nil {
			return fmt.Errorf("invalid subgraph endpoint: %w", err)
		}
		if _, err := url.ParseRequestURI(endpoint); err != nil {
			return fmt.Errorf("invalid subgraph url for %s: %w", chain, err)
		}
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultSubgraphTimeout
	}

	if cfg.MaxRetryTimes == 0 {
		cfg.MaxRetryTimes = defaultSubgraphMaxRetryTimes
	}

	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = defaultSubgraphRetryInterval
	}

	if cfg.CacheTTL < 0 {
		return errors.New("subgraph cache-ttl must not be negative")
	}

	return nil
}
