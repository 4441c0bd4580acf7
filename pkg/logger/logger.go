package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

func New(env string) zerolog.Logger {
	return NewWithWriter(os.Stdout, env)
}

// NewWithWriter is New with an explicit sink; the CLI logs to stderr so
// stdout stays clean for command output.
func NewWithWriter(w io.Writer, env string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	l := zerolog.New(w).With().Timestamp().Logger()
	switch env {
	case "dev":
		l = l.Level(zerolog.DebugLevel)
	case "quiet":
		l = l.Level(zerolog.WarnLevel)
	default:
		l = l.Level(zerolog.InfoLevel)
	}
	return l
}
