// Package logging tags stdlib log lines with coloured level markers.
package logging

import (
	"fmt"
	"io"
	"log"

	"github.com/logrusorgru/aurora"
)

// Logger writes levelled lines through a *log.Logger. Debug lines are
// dropped unless verbose is set.
type Logger struct {
	out     *log.Logger
	au      aurora.Aurora
	verbose bool
}

// New returns a Logger writing to w. Colour codes are emitted only when
// color is true.
func New(w io.Writer, verbose, color bool) *Logger {
	return &Logger{
		out:     log.New(w, "", log.LstdFlags),
		au:      aurora.NewAurora(color),
		verbose: verbose,
	}
}

// Discard returns a Logger that drops everything, for front ends that own the
// terminal.
func Discard() *Logger {
	return New(io.Discard, false, false)
}

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.emit(l.au.Magenta("DEBUG"), format, args...)
}

// Infof logs at info level.
func (l *Logger) Infof(format string, args ...any) {
	l.emit(l.au.Cyan("INFO "), format, args...)
}

// Warnf logs at warning level.
func (l *Logger) Warnf(format string, args ...any) {
	l.emit(l.au.Yellow("WARN "), format, args...)
}

// Errorf logs at error level.
func (l *Logger) Errorf(format string, args ...any) {
	l.emit(l.au.Red("ERROR").Bold(), format, args...)
}

func (l *Logger) emit(level aurora.Value, format string, args ...any) {
	l.out.Printf("%s %s", level, fmt.Sprintf(format, args...))
}
