package main

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"subclean/internal/history"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type runJSON struct {
	ID           string    `json:"id"`
	Source       string    `json:"source"`
	Output       string    `json:"output,omitempty"`
	Encoding     string    `json:"encoding,omitempty"`
	Status       string    `json:"status"`
	ErrorKind    string    `json:"error_kind,omitempty"`
	ErrorMessage string    `json:"error_message,omitempty"`
	SectionsIn   int       `json:"sections_in"`
	SectionsOut  int       `json:"sections_out"`
	LinesIn      int       `json:"lines_in"`
	LinesOut     int       `json:"lines_out"`
	Stages       []string  `json:"stages"`
	StartedAt    time.Time `json:"started_at"`
	DurationMS   int64     `json:"duration_ms"`
}

func toRunJSON(run history.Run) runJSON {
	stages := run.Stages
	if stages == nil {
		stages = []string{}
	}
	return runJSON{
		ID:           run.ID,
		Source:       run.SourcePath,
		Output:       run.OutputPath,
		Encoding:     run.Encoding,
		Status:       string(run.Status),
		ErrorKind:    run.ErrorKind,
		ErrorMessage: run.ErrorMessage,
		SectionsIn:   run.SectionsIn,
		SectionsOut:  run.SectionsOut,
		LinesIn:      run.LinesIn,
		LinesOut:     run.LinesOut,
		Stages:       stages,
		StartedAt:    run.StartedAt,
		DurationMS:   run.Duration().Milliseconds(),
	}
}
