package app

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger builds the application logger. Logs go to a file because the
// terminal is in raw mode; with no file configured, logging is discarded.
func newLogger(path, level string) (*log.Logger, io.Closer, error) {
	var out io.Writer = io.Discard
	var closer io.Closer

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		out = f
		closer = f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "blocknav",
	})
	logger.SetLevel(parseLevel(level))
	return logger, closer, nil
}

func parseLevel(s string) log.Level {
	switch s {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
