package prestashop

import (
	"strings"

	"github.com/rs/zerolog"
)

// restyLogger routes resty's log output, including the debug wire dump, to zerolog
type restyLogger struct {
	logger zerolog.Logger
}

func newRestyLogger(logger zerolog.Logger) *restyLogger {
	return &restyLogger{logger: logger.With().Str("component", "resty").Logger()}
}

func (l *restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error().Msgf(strings.TrimRight(format, "\n"), v...)
}

func (l *restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn().Msgf(strings.TrimRight(format, "\n"), v...)
}

func (l *restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug().Msgf(strings.TrimRight(format, "\n"), v...)
}
