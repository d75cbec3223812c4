package pipeline

import (
	"context"
	"log/slog"
	"time"

	"subclean/internal/logging"
	"subclean/internal/processors"
	"subclean/internal/services"
	"subclean/internal/subtitles"
)

// Pipeline runs processors in order over a document.
type Pipeline struct {
	stages []processors.Processor
	logger *slog.Logger
}

// New builds a pipeline over stages. Nil stages are skipped.
func New(stages ...processors.Processor) *Pipeline {
	kept := make([]processors.Processor, 0, len(stages))
	for _, stage := range stages {
		if stage != nil {
			kept = append(kept, stage)
		}
	}
	return &Pipeline{stages: kept, logger: logging.NewNop()}
}

// WithLogger returns a copy of the pipeline that logs to logger.
func (p *Pipeline) WithLogger(logger *slog.Logger) *Pipeline {
	clone := *p
	clone.logger = logging.NewComponentLogger(logger, "pipeline")
	return &clone
}

// Stages returns the stage names in execution order.
func (p *Pipeline) Stages() []string {
	names := make([]string, len(p.stages))
	for i, stage := range p.stages {
		names[i] = stage.Name()
	}
	return names
}

// Run applies each stage to the document returned by the previous one. A nil
// document is treated as empty.
func (p *Pipeline) Run(ctx context.Context, doc *subtitles.Document) (*subtitles.Document, Report) {
	if doc == nil {
		doc = subtitles.NewDocument()
	}
	report := Report{Stages: make([]StageReport, 0, len(p.stages))}
	for _, stage := range p.stages {
		var entry StageReport
		doc, entry = p.runStage(ctx, stage, doc)
		report.Stages = append(report.Stages, entry)
	}
	return doc, report
}

func (p *Pipeline) runStage(ctx context.Context, stage processors.Processor, doc *subtitles.Document) (*subtitles.Document, StageReport) {
	name := stage.Name()
	stageCtx := services.WithStage(ctx, name)
	logger := logging.WithContext(stageCtx, p.logger)

	entry := StageReport{
		Name:           name,
		SectionsBefore: doc.SectionCount(),
		LinesBefore:    doc.LineCount(),
	}
	logger.Debug(
		"stage started",
		logging.String(logging.FieldEventType, "stage_start"),
		logging.Int("sections", entry.SectionsBefore),
		logging.Int("lines", entry.LinesBefore),
	)

	started := time.Now()
	out := stage.Process(doc)
	if out == nil {
		out = subtitles.NewDocument()
	}
	entry.Duration = time.Since(started)
	entry.SectionsAfter = out.SectionCount()
	entry.LinesAfter = out.LineCount()

	logger.Debug(
		"stage completed",
		logging.String(logging.FieldEventType, "stage_complete"),
		logging.Int("sections_before", entry.SectionsBefore),
		logging.Int("sections_after", entry.SectionsAfter),
		logging.Int("lines_before", entry.LinesBefore),
		logging.Int("lines_after", entry.LinesAfter),
		logging.Duration("duration", entry.Duration),
	)
	return out, entry
}
