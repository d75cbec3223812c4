package history

import (
	"database/sql"
	"strings"
	"time"
)

func scanRun(scanner interface{ Scan(dest ...any) error }) (Run, error) {
	var (
		run          Run
		status       string
		outputPath   sql.NullString
		encoding     sql.NullString
		errorKind    sql.NullString
		errorMessage sql.NullString
		stages       sql.NullString
		startedRaw   string
		finishedRaw  string
	)
	if err := scanner.Scan(
		&run.ID,
		&run.SourcePath,
		&outputPath,
		&encoding,
		&status,
		&errorKind,
		&errorMessage,
		&run.SectionsIn,
		&run.SectionsOut,
		&run.LinesIn,
		&run.LinesOut,
		&stages,
		&startedRaw,
		&finishedRaw,
	); err != nil {
		return Run{}, err
	}
	run.Status = Status(status)
	run.OutputPath = outputPath.String
	run.Encoding = encoding.String
	run.ErrorKind = errorKind.String
	run.ErrorMessage = errorMessage.String
	if stages.String != "" {
		run.Stages = strings.Split(stages.String, ",")
	}
	if started, err := parseTimeString(startedRaw); err == nil {
		run.StartedAt = started
	}
	if finished, err := parseTimeString(finishedRaw); err == nil {
		run.FinishedAt = finished
	}
	return run, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func formatTime(value time.Time) string {
	return value.UTC().Format(time.RFC3339Nano)
}

func parseTimeString(value string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, value)
}
