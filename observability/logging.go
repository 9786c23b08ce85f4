package observability

import (
	"errors"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

var ErrUnknownLogFormat = errors.New("observability: unknown log format")

func SetLoggingLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

func ParseLevel(level string) (zerolog.Level, error) {
	return zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
}

// SetOutput points the global logger at w, either human-readable or as JSON lines.
func SetOutput(format string, w io.Writer) error {
	switch strings.ToLower(format) {
	case FormatConsole, "":
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()
	case FormatJSON:
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	default:
		return ErrUnknownLogFormat
	}

	return nil
}
