package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Logger provides optional verbose logging and lightweight timing helpers.
type Logger struct {
	zl      zerolog.Logger
	enabled bool
	Verbose bool
}

// New writes human-readable console output to writer. A nil writer disables logging.
func New(writer io.Writer, verbose bool) Logger {
	if writer == nil {
		return Logger{zl: zerolog.Nop(), Verbose: verbose}
	}
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	console := zerolog.ConsoleWriter{
		Out:        writer,
		NoColor:    true,
		TimeFormat: time.TimeOnly,
	}
	return Logger{
		zl:      zerolog.New(console).Level(level).With().Timestamp().Logger(),
		enabled: true,
		Verbose: verbose,
	}
}

// Nop discards everything.
func Nop() Logger {
	return Logger{zl: zerolog.Nop()}
}

// With returns a logger that tags every line with component.
func (l Logger) With(component string) Logger {
	l.zl = l.zl.With().Str("component", component).Logger()
	return l
}

func (l Logger) Infof(format string, args ...any) {
	if !l.enabled {
		return
	}
	l.zl.Info().Msg(fmt.Sprintf(format, args...))
}

func (l Logger) Warnf(format string, args ...any) {
	if !l.enabled {
		return
	}
	l.zl.Warn().Msg(fmt.Sprintf(format, args...))
}

func (l Logger) Errorf(err error, format string, args ...any) {
	if !l.enabled {
		return
	}
	l.zl.Error().Err(err).Msg(fmt.Sprintf(format, args...))
}

func (l Logger) Verbosef(format string, args ...any) {
	if !l.enabled || !l.Verbose {
		return
	}
	l.zl.Debug().Msg(fmt.Sprintf(format, args...))
}

// Measure returns a stop function that logs the elapsed time when called.
func (l Logger) Measure(label string) func() {
	if !l.enabled || !l.Verbose {
		return func() {}
	}
	start := time.Now()
	return func() {
		elapsed := time.Since(start).Round(time.Millisecond)
		l.zl.Debug().Dur("elapsed", elapsed).Msg(label + " finished")
	}
}
