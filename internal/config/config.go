package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"subclean/internal/rules"
)

//go:embed sample_config.toml
var sampleConfig string

// Pipeline selects and configures the cleanup stages.
type Pipeline struct {
	Processors    []string `toml:"processors"`
	LineLength    int      `toml:"line_length"`
	CustomPattern string   `toml:"custom_pattern"`
	PatternsFile  string   `toml:"patterns_file"`
	Workers       int      `toml:"workers"`
}

// Output controls where cleaned files are written.
type Output struct {
	Suffix    string `toml:"suffix"`
	Overwrite bool   `toml:"overwrite"`
}

// Charset controls how input bytes are decoded.
type Charset struct {
	Fallbacks     []string `toml:"fallbacks"`
	Detect        bool     `toml:"detect"`
	MinConfidence int      `toml:"min_confidence"`
}

// History controls the run-history database.
type History struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for subclean.
//
// Configuration sections by subsystem:
//   - Pipeline: stage list, merge threshold, blacklist extensions, workers
//   - Output: output naming and overwrite behaviour
//   - Charset: encoding detection and fallbacks
//   - History: run-history database
//   - Logging: log format and level
type Config struct {
	Pipeline Pipeline `toml:"pipeline"`
	Output   Output   `toml:"output"`
	Charset  Charset  `toml:"charset"`
	History  History  `toml:"history"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// BlacklistPatterns returns the caller patterns that extend the built-in
// blacklist: custom_pattern first, then the patterns file entries.
func (c *Config) BlacklistPatterns() ([]string, error) {
	var patterns []string
	if custom := strings.TrimSpace(c.Pipeline.CustomPattern); custom != "" {
		patterns = append(patterns, custom)
	}
	if c.Pipeline.PatternsFile != "" {
		extra, err := rules.LoadPatternsFile(c.Pipeline.PatternsFile)
		if err != nil {
			return nil, fmt.Errorf("pipeline.patterns_file: %w", err)
		}
		patterns = append(patterns, extra...)
	}
	return patterns, nil
}

// EnsureDirectories creates the directories the history store needs.
func (c *Config) EnsureDirectories() error {
	if !c.History.Enabled || strings.TrimSpace(c.History.Path) == "" {
		return nil
	}
	dir := filepath.Dir(c.History.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", dir, err)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	sample := sampleConfig

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
