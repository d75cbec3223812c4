package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"subclean/internal/config"
	"subclean/internal/processors"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved != filepath.Join(tempHome, ".config", "subclean", "config.toml") {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantHistory := filepath.Join(tempHome, ".local", "share", "subclean", "history.db")
	if cfg.History.Path != wantHistory {
		t.Fatalf("unexpected history path: got %q want %q", cfg.History.Path, wantHistory)
	}
	if !cfg.History.Enabled {
		t.Fatal("expected history enabled by default")
	}
	if cfg.Pipeline.LineLength != 50 {
		t.Fatalf("unexpected line length: %d", cfg.Pipeline.LineLength)
	}
	if strings.Join(cfg.Pipeline.Processors, ",") != strings.Join(processors.DefaultNames(), ",") {
		t.Fatalf("unexpected processors: %v", cfg.Pipeline.Processors)
	}
	if cfg.Pipeline.Workers != 1 {
		t.Fatalf("unexpected workers: %d", cfg.Pipeline.Workers)
	}
	if cfg.Output.Suffix != "_clean" || cfg.Output.Overwrite {
		t.Fatalf("unexpected output defaults: %+v", cfg.Output)
	}
	if !cfg.Charset.Detect || cfg.Charset.MinConfidence != 50 {
		t.Fatalf("unexpected charset defaults: %+v", cfg.Charset)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	dir := t.TempDir()
	patternsPath := filepath.Join(dir, "patterns.yaml")
	if err := os.WriteFile(patternsPath, []byte("patterns:\n  - \"fansub\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(dir, "custom.toml")
	content := `
[pipeline]
processors = ["sdh", "error", "style"]
line_length = 42
custom_pattern = "  brought to you by  "
patterns_file = "` + patternsPath + `"
workers = 0

[output]
suffix = ".clean"

[charset]
fallbacks = [" Windows-1252 "]
detect = false

[history]
path = "~/custom/history.db"

[logging]
format = "JSON"
level = "DEBUG"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if got := strings.Join(cfg.Pipeline.Processors, ","); got != "SDH,ErrorFix,Style" {
		t.Fatalf("expected canonical stage names, got %q", got)
	}
	if cfg.Pipeline.LineLength != 42 {
		t.Fatalf("unexpected line length: %d", cfg.Pipeline.LineLength)
	}
	if cfg.Pipeline.Workers != 1 {
		t.Fatalf("expected workers to be normalized to 1, got %d", cfg.Pipeline.Workers)
	}
	if cfg.Output.Suffix != ".clean" {
		t.Fatalf("unexpected suffix: %q", cfg.Output.Suffix)
	}
	if len(cfg.Charset.Fallbacks) != 1 || cfg.Charset.Fallbacks[0] != "windows-1252" {
		t.Fatalf("unexpected fallbacks: %v", cfg.Charset.Fallbacks)
	}
	if cfg.Charset.Detect {
		t.Fatal("expected detection disabled")
	}
	if cfg.History.Path != filepath.Join(tempHome, "custom", "history.db") {
		t.Fatalf("unexpected history path: %q", cfg.History.Path)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}

	patterns, err := cfg.BlacklistPatterns()
	if err != nil {
		t.Fatalf("BlacklistPatterns: %v", err)
	}
	if len(patterns) != 2 || patterns[0] != "brought to you by" || patterns[1] != "fansub" {
		t.Fatalf("unexpected patterns: %#v", patterns)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[pipeline]\nline_lenght = 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for misspelled key")
	}
}

func TestEnvOverridesLogLevel(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SUBCLEAN_LOG_LEVEL", "WARN")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nlevel = \"debug\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected env level to win, got %q", cfg.Logging.Level)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	defaults := config.Default()
	if strings.Join(cfg.Pipeline.Processors, ",") != strings.Join(defaults.Pipeline.Processors, ",") {
		t.Fatalf("sample processors drifted from defaults: %v", cfg.Pipeline.Processors)
	}
	if cfg.Pipeline.LineLength != defaults.Pipeline.LineLength {
		t.Fatalf("sample line_length drifted from defaults: %d", cfg.Pipeline.LineLength)
	}
	if cfg.History.Path != defaults.History.Path {
		t.Fatalf("sample history path drifted from defaults: %q", cfg.History.Path)
	}
	if !strings.Contains(string(contents), "[charset]") {
		t.Fatalf("sample config missing charset section: %s", contents)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"unknown processor", func(c *config.Config) { c.Pipeline.Processors = []string{"SDH", "Translate"} }},
		{"no processors", func(c *config.Config) { c.Pipeline.Processors = nil }},
		{"zero line length", func(c *config.Config) { c.Pipeline.LineLength = 0 }},
		{"zero workers", func(c *config.Config) { c.Pipeline.Workers = 0 }},
		{"bad pattern", func(c *config.Config) { c.Pipeline.CustomPattern = "(" }},
		{"missing patterns file", func(c *config.Config) {
			c.Pipeline.PatternsFile = filepath.Join(os.TempDir(), "subclean-missing", "patterns.yaml")
		}},
		{"empty suffix", func(c *config.Config) { c.Output.Suffix = "" }},
		{"suffix with separator", func(c *config.Config) { c.Output.Suffix = "/x" }},
		{"unknown encoding", func(c *config.Config) { c.Charset.Fallbacks = []string{"klingon"} }},
		{"confidence out of range", func(c *config.Config) { c.Charset.MinConfidence = 101 }},
		{"history without path", func(c *config.Config) { c.History.Path = "" }},
		{"bad level", func(c *config.Config) { c.Logging.Level = "verbose" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error for %s", tc.name)
			}
		})
	}
}

func TestValidateUnknownProcessorIsClassified(t *testing.T) {
	cfg := config.Default()
	cfg.Pipeline.Processors = []string{"Translate"}
	if err := cfg.Validate(); !errors.Is(err, processors.ErrUnknownProcessor) {
		t.Fatalf("expected ErrUnknownProcessor, got %v", err)
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}

	cfg.Output.Suffix = ""
	cfg.Output.Overwrite = true
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected empty suffix to be fine with overwrite, got %v", err)
	}
}
