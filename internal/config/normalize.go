package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizePipeline()
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeCharset()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePipeline() {
	names := c.Pipeline.Processors[:0]
	for _, name := range c.Pipeline.Processors {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	c.Pipeline.Processors = names
	c.Pipeline.CustomPattern = strings.TrimSpace(c.Pipeline.CustomPattern)
	if c.Pipeline.Workers <= 0 {
		c.Pipeline.Workers = defaultWorkers
	}
	c.Output.Suffix = strings.TrimSpace(c.Output.Suffix)
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.History.Path) == "" {
		c.History.Path = defaultHistoryPath
	}
	if c.History.Path, err = expandPath(strings.TrimSpace(c.History.Path)); err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	if c.Pipeline.PatternsFile, err = expandPath(strings.TrimSpace(c.Pipeline.PatternsFile)); err != nil {
		return fmt.Errorf("pipeline.patterns_file: %w", err)
	}
	return nil
}

func (c *Config) normalizeCharset() {
	fallbacks := make([]string, 0, len(c.Charset.Fallbacks))
	for _, name := range c.Charset.Fallbacks {
		if trimmed := strings.ToLower(strings.TrimSpace(name)); trimmed != "" {
			fallbacks = append(fallbacks, trimmed)
		}
	}
	if len(fallbacks) == 0 {
		fallbacks = append(fallbacks, defaultFallbacks...)
	}
	c.Charset.Fallbacks = fallbacks
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if value, ok := os.LookupEnv("SUBCLEAN_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = strings.ToLower(strings.TrimSpace(value))
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
