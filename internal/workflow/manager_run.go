package workflow

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"subclean/internal/charset"
	"subclean/internal/fileutil"
	"subclean/internal/history"
	"subclean/internal/logging"
	"subclean/internal/services"
	"subclean/internal/subtitles"
)

// Run cleans every file in req. The returned error covers only an invalid
// request; per-file failures are reported in the Summary.
func (m *Manager) Run(ctx context.Context, req Request) (Summary, error) {
	if err := req.Validate(); err != nil {
		return Summary{}, services.Wrap(services.ErrValidation, "workflow", "request", "", err)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	results := make([]Result, len(req.Files))
	sem := make(chan struct{}, m.workers)
	var wg sync.WaitGroup

	for i, path := range req.Files {
		if err := ctx.Err(); err != nil {
			results[i] = m.skipped(ctx, path, err)
			continue
		}
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			results[i] = m.skipped(ctx, path, ctx.Err())
			continue
		}
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = m.cleanFile(ctx, path, req)
		}(i, path)
	}
	wg.Wait()

	if req.Stdout != nil {
		m.flushStdout(ctx, req.Stdout, results)
	}

	summary := Summary{Results: results}
	m.logger.Info(
		"run finished",
		logging.String(logging.FieldEventType, "run_complete"),
		logging.Int("files", len(results)),
		logging.Int("cleaned", summary.Cleaned()),
		logging.Int("failed", summary.Failed()),
	)
	return summary, nil
}

// flushStdout writes the cleaned text in request order and records each
// started file once its write outcome is known.
func (m *Manager) flushStdout(ctx context.Context, w io.Writer, results []Result) {
	for i := range results {
		result := &results[i]
		if result.started.IsZero() {
			continue
		}
		fileCtx := services.WithFile(services.WithRunID(ctx, result.RunID), result.Source)
		logger := logging.WithContext(fileCtx, m.logger)
		if !result.Failed() {
			if err := writeStdout(w, result.text); err != nil {
				result.Err = services.Wrap(services.ErrIO, "workflow", "write", "", err)
				result.ErrorKind = errorKind(result.Err)
				m.logFailure(logger, *result)
			}
		}
		m.record(fileCtx, logger, *result, result.started)
	}
}

func (m *Manager) skipped(ctx context.Context, path string, err error) Result {
	result := Result{RunID: uuid.NewString(), Source: path, Err: err, ErrorKind: errorKind(err)}
	logger := logging.WithContext(services.WithFile(ctx, path), m.logger)
	logger.Debug("file skipped", logging.String(logging.FieldEventType, "file_skipped"), logging.Error(err))
	return result
}

func (m *Manager) cleanFile(ctx context.Context, path string, req Request) Result {
	started := time.Now()
	result := Result{RunID: uuid.NewString(), Source: path}

	ctx = services.WithRunID(ctx, result.RunID)
	ctx = services.WithFile(ctx, path)
	logger := logging.WithContext(ctx, m.logger)

	err := m.process(ctx, path, req, &result)
	result.Duration = time.Since(started)
	if err != nil {
		result.Err = err
		result.ErrorKind = errorKind(err)
		m.logFailure(logger, result)
	} else {
		in, linesIn := result.Report.Input()
		out, linesOut := result.Report.Output()
		logger.Info(
			"file cleaned",
			logging.String(logging.FieldEventType, "file_cleaned"),
			logging.String("output", displayOutput(result.Output)),
			logging.String("encoding", result.Encoding),
			logging.Int("sections_in", in),
			logging.Int("sections_out", out),
			logging.Int("lines_in", linesIn),
			logging.Int("lines_out", linesOut),
			logging.Duration("duration", result.Duration),
		)
	}

	if req.Stdout != nil {
		// Recorded by flushStdout after the write.
		result.started = started
		return result
	}
	m.record(ctx, logger, result, started)
	return result
}

func (m *Manager) process(ctx context.Context, path string, req Request, result *Result) error {
	format, err := subtitles.FormatForPath(path)
	if err != nil {
		return services.Wrap(services.ErrValidation, "workflow", "format", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		marker := services.ErrIO
		if errors.Is(err, os.ErrNotExist) {
			marker = services.ErrNotFound
		}
		return services.Wrap(marker, "workflow", "read", path, err)
	}

	decoded, err := charset.Decode(data, m.decode)
	if err != nil {
		return services.Wrap(services.ErrValidation, "charset", "decode", path, err)
	}
	result.Encoding = decoded.Encoding
	logger := logging.WithContext(ctx, m.logger)
	if decoded.Source == charset.SourceFallback {
		logging.WarnWithContext(logger, "encoding guessed from fallback list", "charset_fallback",
			logging.String("encoding", decoded.Encoding),
			logging.String(logging.FieldErrorHint, "add the file's encoding to charset.fallbacks"),
			logging.String(logging.FieldImpact, "non-ASCII characters may be wrong"),
		)
	} else {
		logger.Debug("input decoded", logging.String("encoding", decoded.Encoding), logging.String("source", string(decoded.Source)))
	}

	doc, err := format.Parse(decoded.Text)
	if err != nil {
		return services.Wrap(services.ErrValidation, format.Name(), "parse", path, err)
	}

	doc, result.Report = m.pipeline.Run(ctx, doc)
	text := format.Serialize(doc)

	if req.Stdout != nil {
		result.text = text
		return nil
	}

	target := m.outputPath(path, req)
	if err := fileutil.WriteFileLocked(ctx, target, []byte(text), 0o644); err != nil {
		return services.Wrap(services.ErrIO, "workflow", "write", target, err)
	}
	result.Output = target
	return nil
}

func (m *Manager) outputPath(path string, req Request) string {
	switch {
	case req.Output != "":
		return req.Output
	case req.Overwrite || m.cfg.Output.Overwrite:
		return path
	default:
		return fileutil.OutputPath(path, m.cfg.Output.Suffix)
	}
}

func (m *Manager) record(ctx context.Context, logger *slog.Logger, result Result, started time.Time) {
	if m.store == nil {
		return
	}
	run := history.Run{
		ID:         result.RunID,
		SourcePath: result.Source,
		OutputPath: result.Output,
		Encoding:   result.Encoding,
		Status:     history.StatusCleaned,
		Stages:     m.pipeline.Stages(),
		StartedAt:  started,
		FinishedAt: started.Add(result.Duration),
	}
	run.SectionsIn, run.LinesIn = result.Report.Input()
	run.SectionsOut, run.LinesOut = result.Report.Output()
	if result.Failed() {
		run.Status = history.StatusFailed
		run.ErrorKind = result.ErrorKind
		run.ErrorMessage = result.Err.Error()
	}
	// A cancelled run still gets recorded.
	if err := m.store.Record(context.WithoutCancel(ctx), run); err != nil {
		logging.WarnWithContext(logger, "failed to record run history", "history_write_failed",
			logging.String(logging.FieldErrorHint, "check the history database path and permissions"),
			logging.String(logging.FieldImpact, "run missing from history list"),
			logging.Error(err),
		)
	}
}

func displayOutput(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}
