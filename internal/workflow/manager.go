package workflow

import (
	"fmt"
	"io"
	"log/slog"

	"subclean/internal/charset"
	"subclean/internal/config"
	"subclean/internal/history"
	"subclean/internal/logging"
	"subclean/internal/pipeline"
	"subclean/internal/processors"
	"subclean/internal/rules"
	"subclean/internal/services"
)

// Manager runs the cleanup pipeline over subtitle files.
type Manager struct {
	cfg      *config.Config
	store    *history.Store
	logger   *slog.Logger
	pipeline *pipeline.Pipeline
	decode   charset.Options
	workers  int
}

// NewManager builds the pattern set and stage list from cfg. A nil store
// disables history recording.
func NewManager(cfg *config.Config, store *history.Store, logger *slog.Logger) (*Manager, error) {
	if cfg == nil {
		return nil, services.Wrap(services.ErrConfiguration, "workflow", "init", "config is required", nil)
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logging.NewComponentLogger(logger, "workflow")

	extra, err := cfg.BlacklistPatterns()
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "workflow", "load patterns", "", err)
	}
	patterns, err := rules.NewPatternSet(extra...)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "workflow", "compile patterns", "", err)
	}

	registry := processors.NewRegistry(processors.Options{
		Patterns:   patterns,
		LineLength: cfg.Pipeline.LineLength,
	})
	stages, err := registry.Resolve(cfg.Pipeline.Processors...)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "workflow", "resolve processors", "", err)
	}

	workers := cfg.Pipeline.Workers
	if workers < 1 {
		workers = 1
	}

	logger.Debug(
		"workflow configured",
		logging.Any("stages", stageNames(stages)),
		logging.Int("blacklist_patterns", patterns.Len()),
		logging.Int("workers", workers),
		logging.Bool("history", store != nil),
	)

	return &Manager{
		cfg:      cfg,
		store:    store,
		logger:   logger,
		pipeline: pipeline.New(stages...).WithLogger(logger),
		decode: charset.Options{
			Fallbacks:     cfg.Charset.Fallbacks,
			Detect:        cfg.Charset.Detect,
			MinConfidence: cfg.Charset.MinConfidence,
		},
		workers: workers,
	}, nil
}

// Stages returns the configured stage names in execution order.
func (m *Manager) Stages() []string {
	return m.pipeline.Stages()
}

func writeStdout(w io.Writer, text string) error {
	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}
	return nil
}

func stageNames(stages []processors.Processor) []string {
	names := make([]string, len(stages))
	for i, stage := range stages {
		names[i] = stage.Name()
	}
	return names
}
