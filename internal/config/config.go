package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Db        DbConfig        `mapstructure:"db"`
	Server    ServerConfig    `mapstructure:"server"`
	Poller    PollerConfig    `mapstructure:"poller"`
	CoinGecko CoinGeckoConfig `mapstructure:"coingecko"`
	Subgraph  SubgraphConfig  `mapstructure:"subgraph"`
	Sentry    SentryConfig    `mapstructure:"sentry"`
	Queue     *QueueConfig    `mapstructure:"queue"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

func (cfg *Config) Validate() error {
	if err := cfg.Db.Validate(); err != nil {
		return err
	}

	if err := cfg.Server.Validate(); err != nil {
		return err
	}

	if err := cfg.Poller.Validate(); err != nil {
		return err
	}

	if err := cfg.CoinGecko.Validate(); err != nil {
		return err
	}

	if err := cfg.Subgraph.Validate(); err != nil {
		return err
	}

	if err := cfg.Sentry.Validate(); err != nil {
		return err
	}

	// queue is optional
	if cfg.Queue != nil {
		if err := cfg.Queue.Validate(); err != nil {
			return err
		}
	}

	if err := cfg.Metrics.Validate(); err != nil {
		return err
	}

	return nil
}

// New returns a fully parsed Config object from a given file directory
func New(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(cfgFile)

	v.AutomaticEnv()
	/*
		Below code will replace nested fields in yml into `__` and any `-` into `_`.
		e.g: db.db-name => DB__DB_NAME
	*/
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
