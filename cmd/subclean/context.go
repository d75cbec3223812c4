package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"subclean/internal/config"
	"subclean/internal/history"
	"subclean/internal/logging"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(flagValue(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		if err := c.applyLoggingFlags(cfg); err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configSeen = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) applyLoggingFlags(cfg *config.Config) error {
	if level := strings.ToLower(flagValue(c.logLevelFlag)); level != "" {
		switch level {
		case "debug", "info", "warn", "error":
			cfg.Logging.Level = level
		default:
			return fmt.Errorf("--log-level: unsupported value %q", level)
		}
	}
	if format := strings.ToLower(flagValue(c.logFormatFlag)); format != "" {
		switch format {
		case "console", "json":
			cfg.Logging.Format = format
		default:
			return fmt.Errorf("--log-format: unsupported value %q", format)
		}
	}
	return nil
}

func (c *commandContext) newLogger(cfg *config.Config) (*slog.Logger, error) {
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}

// openHistory returns nil without error when history is disabled.
func (c *commandContext) openHistory(cfg *config.Config) (*history.Store, error) {
	store, err := history.Open(cfg)
	if errors.Is(err, history.ErrDisabled) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	return store, nil
}

func flagValue(flag *string) string {
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(*flag)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
