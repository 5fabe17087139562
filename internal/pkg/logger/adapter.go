package logger

import (
	"log/slog"

	"wallet_intel/internal/app/port"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
)

// slogAdapter implements port.Logger on top of a slog.Logger.
type slogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter returns a port.Logger writing to the global logger set up by Init.
func NewSlogAdapter() port.Logger {
	ensureInitialized()
	return &slogAdapter{logger: globalLogger}
}

// FromZap returns a port.Logger writing to z under the given name.
func FromZap(z *zap.Logger, name string) port.Logger {
	return &slogAdapter{logger: slog.New(zapslog.NewHandler(z.Core(), zapslog.WithName(name)))}
}

func (a *slogAdapter) Info(msg string, args ...any) {
	a.logger.Info(msg, args...)
}

func (a *slogAdapter) Debug(msg string, args ...any) {
	a.logger.Debug(msg, args...)
}

func (a *slogAdapter) Warn(msg string, args ...any) {
	a.logger.Warn(msg, args...)
}

func (a *slogAdapter) Error(msg string, args ...any) {
	a.logger.Error(msg, args...)
}
