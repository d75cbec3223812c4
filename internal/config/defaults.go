package config

import "subclean/internal/processors"

const (
	defaultConfigPath    = "~/.config/subclean/config.toml"
	projectConfigName    = "subclean.toml"
	defaultOutputSuffix  = "_clean"
	defaultWorkers       = 1
	defaultMinConfidence = 50
	defaultHistoryPath   = "~/.local/share/subclean/history.db"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

var defaultFallbacks = []string{"utf-8", "windows-1252", "iso-8859-1"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Pipeline: Pipeline{
			Processors: processors.DefaultNames(),
			LineLength: processors.DefaultLineLength,
			Workers:    defaultWorkers,
		},
		Output: Output{
			Suffix: defaultOutputSuffix,
		},
		Charset: Charset{
			Fallbacks:     append([]string(nil), defaultFallbacks...),
			Detect:        true,
			MinConfidence: defaultMinConfidence,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
