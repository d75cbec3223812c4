package workflow

import (
	"context"
	"errors"
	"log/slog"

	"subclean/internal/charset"
	"subclean/internal/fileutil"
	"subclean/internal/logging"
	"subclean/internal/services"
	"subclean/internal/subtitles"
)

// errorKind maps a file failure to the short kind stored in history.
func errorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	case errors.Is(err, subtitles.ErrUnsupportedFormat):
		return "unsupported_format"
	case errors.Is(err, charset.ErrUndecodable):
		return "undecodable_input"
	case errors.Is(err, fileutil.ErrLocked):
		return "locked"
	default:
		return services.Kind(err)
	}
}

func errorHint(kind string) string {
	switch kind {
	case "unsupported_format":
		return "only .srt files are supported"
	case "undecodable_input":
		return "add the file's encoding to charset.fallbacks"
	case "malformed_block":
		return "check the reported line for a missing timing line or separator"
	case "locked":
		return "another subclean process is writing this file"
	case "not_found":
		return "check the input path"
	case "cancelled":
		return "rerun to process the remaining files"
	default:
		return "check logs for details"
	}
}

func (m *Manager) logFailure(logger *slog.Logger, result Result) {
	logging.ErrorWithContext(logger, "file failed", "file_failure",
		logging.String("error_kind", result.ErrorKind),
		logging.String(logging.FieldErrorHint, errorHint(result.ErrorKind)),
		logging.Alert("file_failure"),
		logging.Error(result.Err),
	)
}
