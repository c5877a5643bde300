// Package indicator abstracts the status light. The signal is advisory:
// nothing in the pipeline depends on it being seen.
package indicator

import (
	"fmt"
	"log/slog"
)

// Color is a solid RGB color for the light; the zero value is off.
type Color struct {
	R, G, B uint8
}

var (
	// Off turns the light off.
	Off = Color{}
	// Busy is shown while a league fetch is in flight.
	Busy = Color{B: 255}
)

func (c Color) String() string {
	if c == (Color{}) {
		return "off"
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Light accepts a solid color as a fire-and-forget status signal.
type Light interface {
	Set(Color)
}

// LogLight writes color changes to the log in place of real hardware.
type LogLight struct {
	logger *slog.Logger
}

// NewLogLight creates a log-backed indicator light.
func NewLogLight(logger *slog.Logger) *LogLight {
	return &LogLight{logger: logger}
}

func (l *LogLight) Set(c Color) {
	if l.logger != nil {
		l.logger.Debug("indicator", "color", c.String())
	}
}

type noopLight struct{}

func (noopLight) Set(Color) {}

// Noop returns a light that discards every signal.
func Noop() Light { return noopLight{} }
