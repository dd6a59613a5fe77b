package env

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EZPLOT_LOG_LEVEL values, from quiet to verbose
var logLevels = []zerolog.Level{
	zerolog.Disabled,
	zerolog.ErrorLevel,
	zerolog.InfoLevel,
	zerolog.DebugLevel,
	zerolog.TraceLevel,
}

func convertLevel(level int) zerolog.Level {
	if level < 0 || level >= len(logLevels) {
		return zerolog.InfoLevel
	}
	return logLevels[level]
}

// logWriters returns the console writer when console is set and an append
// writer on file when it is not empty
func logWriters(console bool, file string) ([]io.Writer, error) {
	var writers []io.Writer
	if console {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: TimeFormat})
	}
	if file != "" {
		f, err := os.OpenFile(file, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0666)
		if err != nil {
			return writers, fmt.Errorf("log file: %w", err)
		}
		writers = append(writers, f)
	}
	return writers, nil
}

// level is passed along since the LogLevel package variable may not be set
// yet when init runs
func configureGlobalLogger(level int) {
	zerolog.TimeFieldFormat = TimeFormat
	if Mode == "DEV" {
		log.Logger = log.With().Caller().Logger()
	}

	writers, err := logWriters(Mode == "DEV" || LogStdout, LogFile)
	switch len(writers) {
	case 0:
	case 1:
		log.Logger = log.Output(writers[0])
	default:
		log.Logger = log.Output(zerolog.MultiLevelWriter(writers...))
	}
	if err != nil {
		log.Error().Str("context", "init").Str("path", LogFile).Err(err).Msg("log_file_ignored")
	}

	zerolog.SetGlobalLevel(convertLevel(level))
}
