package logger

import (
	"log/slog"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// Module wires slog logger for dependency injection.
var Module = fx.Module("logger", fx.Provide(New))

// FxLogger routes fx lifecycle events through the application logger.
func FxLogger(l *slog.Logger) fxevent.Logger {
	return &fxevent.SlogLogger{Logger: l}
}
