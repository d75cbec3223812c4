package testsupport

import (
	"path/filepath"
	"testing"

	"subclean/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose history database lives in a per-test temp
// directory. It applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.History.Path = filepath.Join(base, "state", "history.db")
	cfgVal.Logging.Format = "console"
	cfgVal.Logging.Level = "info"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithProcessors overrides the stage list.
func WithProcessors(names ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Pipeline.Processors = append([]string(nil), names...)
	}
}

// WithCustomPattern sets the extra blacklist pattern.
func WithCustomPattern(pattern string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Pipeline.CustomPattern = pattern
	}
}

// WithWorkers sets the number of files cleaned concurrently.
func WithWorkers(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Pipeline.Workers = n
	}
}

// WithCharsetDetection toggles statistical charset detection.
func WithCharsetDetection(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Charset.Detect = enabled
	}
}

// WithoutHistory disables the history store.
func WithoutHistory() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Enabled = false
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(filepath.Dir(cfg.History.Path))
}
