package display

import "log/slog"

// ConsoleSink logs each composition instead of driving a panel. It stands in
// for the hardware sink during development and on headless builds.
type ConsoleSink struct {
	logger *slog.Logger
}

// NewConsoleSink creates a log-backed sink.
func NewConsoleSink(logger *slog.Logger) *ConsoleSink {
	return &ConsoleSink{logger: logger}
}

func (s *ConsoleSink) Show(c Composition) {
	if s.logger == nil {
		return
	}
	for _, el := range c.Elements {
		switch e := el.(type) {
		case Text:
			s.logger.Debug("draw text", "value", e.Value, "x", e.Pos.X, "y", e.Pos.Y)
		case Bitmap:
			s.logger.Debug("draw bitmap", "namespace", e.Namespace, "team", e.Team, "x", e.Pos.X, "y", e.Pos.Y)
		}
	}
}
