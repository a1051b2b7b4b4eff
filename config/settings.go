package config

import (
	"fmt"

	"github.com/kbukum/validify/logger"
	"github.com/kbukum/validify/validation"
)

// Settings holds the configuration consumed by validify callers.
//
// Example config.yml:
//
//	name: signup
//	environment: production
//	logging:
//	  level: debug
//	  format: json
//	messages:
//	  text:
//	    min: "name is too short"
//	    required: "name is required"
type Settings struct {
	Name        string         `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string         `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Debug       bool           `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config  `yaml:"logging" mapstructure:"logging"`
	Messages    MessagesConfig `yaml:"messages" mapstructure:"messages"`
}

// MessagesConfig holds message overrides keyed by violation kind.
type MessagesConfig struct {
	Text map[string]string `yaml:"text" mapstructure:"text" validate:"dive,keys,oneof=empty min max required,endkeys"`
}

// ApplyDefaults applies default values to the settings.
func (c *Settings) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	if c.Debug && c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the settings.
func (c *Settings) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}

// TextMessages returns the configured overrides for TextValidator.CustomMessage.
func (c *Settings) TextMessages() validation.Messages {
	return validation.ParseMessages(c.Messages.Text)
}

// Logger builds a logger from the logging settings.
func (c *Settings) Logger() *logger.Logger {
	return logger.New(&c.Logging, c.Name)
}

// Load resolves, reads, defaults and validates Settings for a service.
func Load(serviceName string, opts ...LoaderOption) (*Settings, error) {
	settings := &Settings{}
	if err := LoadConfig(serviceName, settings, opts...); err != nil {
		return nil, err
	}
	if settings.Name == "" {
		settings.Name = serviceName
	}
	settings.ApplyDefaults()
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config for service %s: %w", serviceName, err)
	}
	return settings, nil
}
