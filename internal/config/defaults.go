package config

import "harvest/internal/classify"

const (
	defaultLogDir    = "~/.local/share/harvest/logs"
	defaultMoviesDir = "movies"
	defaultShowsDir  = "shows"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Library: Library{
			MoviesDir: defaultMoviesDir,
			ShowsDir:  defaultShowsDir,
		},
		Classify: Classify{
			VideoExtensions:   append([]string(nil), classify.DefaultVideoExtensions...),
			GarbageExtensions: append([]string(nil), classify.DefaultGarbageExtensions...),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
