package tgdango

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// telegoLogger forwards the logs of telego to zerolog.
type telegoLogger struct {
	logger zerolog.Logger
}

func newTelegoLogger() telegoLogger {
	return telegoLogger{logger: log.With().Str("Component", "telego").Logger()}
}

func (l telegoLogger) Debugf(format string, args ...any) {
	l.logger.Debug().Msgf(format, args...)
}

func (l telegoLogger) Errorf(format string, args ...any) {
	l.logger.Error().Msgf(format, args...)
}

// setLogLevel switches the global log level between info and debug.
func setLogLevel(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}
