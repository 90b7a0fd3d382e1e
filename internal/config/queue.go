package config

import (
	"errors"
	"fmt"
	"net/url"
)

type QueueConfig struct {
	URL      string `mapstructure:"url"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Exchange string `mapstructure:"exchange"`
}

func (cfg *QueueConfig) Validate() error {
	if cfg.URL == "" {
		return errors.New("queue url is required")
	}
	if cfg.User == "" {
		return errors.New("queue user is required")
	}
	if cfg.Password == "" {
		return errors.New("queue password is required")
	}
	if cfg.Exchange == "" {
		return errors.New("queue exchange is required")
	}

	return nil
}

// AmqpURL builds the connection string understood by amqp091.
func (cfg *QueueConfig) AmqpURL() string {
	return fmt.Sprintf("amqp://%s:%s@%s", url.QueryEscape(cfg.User), url.QueryEscape(cfg.Password), cfg.URL)
}
