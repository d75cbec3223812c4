package config

import (
	"errors"
	"fmt"
	"strings"

	"subclean/internal/charset"
	"subclean/internal/processors"
	"subclean/internal/rules"
)

// Validate ensures the configuration is usable. Stage names are rewritten to
// their canonical spelling.
func (c *Config) Validate() error {
	if err := c.validatePipeline(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateCharset(); err != nil {
		return err
	}
	if err := c.validateHistory(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePipeline() error {
	if len(c.Pipeline.Processors) == 0 {
		return errors.New("pipeline.processors must list at least one stage")
	}
	for i, name := range c.Pipeline.Processors {
		canonical, err := processors.Canonical(name)
		if err != nil {
			return fmt.Errorf("pipeline.processors: %w", err)
		}
		c.Pipeline.Processors[i] = canonical
	}
	if c.Pipeline.LineLength <= 0 {
		return fmt.Errorf("pipeline.line_length must be positive, got %d", c.Pipeline.LineLength)
	}
	if c.Pipeline.Workers <= 0 {
		return errors.New("pipeline.workers must be at least 1")
	}
	patterns, err := c.BlacklistPatterns()
	if err != nil {
		return err
	}
	if _, err := rules.NewPatternSet(patterns...); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	return nil
}

func (c *Config) validateOutput() error {
	if c.Output.Suffix == "" && !c.Output.Overwrite {
		return errors.New("output.suffix must be set unless output.overwrite is true")
	}
	if strings.ContainsAny(c.Output.Suffix, `/\`) {
		return fmt.Errorf("output.suffix must not contain path separators, got %q", c.Output.Suffix)
	}
	return nil
}

func (c *Config) validateCharset() error {
	for _, name := range c.Charset.Fallbacks {
		if _, err := charset.Lookup(name); err != nil {
			return fmt.Errorf("charset.fallbacks: %w", err)
		}
	}
	if c.Charset.MinConfidence < 0 || c.Charset.MinConfidence > 100 {
		return fmt.Errorf("charset.min_confidence must be between 0 and 100, got %d", c.Charset.MinConfidence)
	}
	return nil
}

func (c *Config) validateHistory() error {
	if c.History.Enabled && c.History.Path == "" {
		return errors.New("history.path must be set when history.enabled is true")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q (use debug, info, warn or error)", c.Logging.Level)
	}
}
