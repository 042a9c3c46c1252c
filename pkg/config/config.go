// Package config carries the tunable analysis thresholds. The defaults are
// the fixed values the metric definitions are specified against; overrides
// exist for operators who understand the consequences.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Default threshold values
const (
	DefaultBottleneckRatio   = 0.75
	DefaultWeakLinkThreshold = 0.2
	DefaultLogLevel          = "info"
)

// validate is a singleton validator instance
var validate = validator.New()

// Config holds the analysis thresholds and log level.
type Config struct {
	// BottleneckRatio scales the maximum centrality score into the
	// bottleneck threshold; nodes must strictly exceed it.
	BottleneckRatio float64 `yaml:"bottleneck_ratio" validate:"gte=0,lte=1"`
	// WeakLinkThreshold is the weight below which an edge counts as a
	// weak link.
	WeakLinkThreshold float64 `yaml:"weak_link_threshold" validate:"gte=0,lte=1"`
	// LogLevel is the minimum level emitted by the analyzer logger.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// Default returns the standard configuration.
func Default() Config {
	return Config{
		BottleneckRatio:   DefaultBottleneckRatio,
		WeakLinkThreshold: DefaultWeakLinkThreshold,
		LogLevel:          DefaultLogLevel,
	}
}

// WithDefaults fills zero-valued fields with their defaults.
func (c Config) WithDefaults() Config {
	if c.BottleneckRatio == 0 {
		c.BottleneckRatio = DefaultBottleneckRatio
	}
	if c.WeakLinkThreshold == 0 {
		c.WeakLinkThreshold = DefaultWeakLinkThreshold
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	return c
}

// Validate checks the configuration against its struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// Load reads a YAML configuration file over the defaults and validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "gte":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "lte":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "oneof":
			return fmt.Errorf("%s: must be one of [%s]", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}
	return err
}
