// Package logger provides small prefixed loggers, one per subsystem, with
// ANSI-colored prefixes for telling the subsystems apart on a shared stream.
package logger

import (
	"errors"
	"io"
	"log"
)

const colorReset = "\033[0m"

// Logger writes leveled log lines with a colored subsystem prefix.
type Logger struct {
	prefix string
	color  string
	out    *log.Logger
}

// New creates a Logger that writes to w with the given subsystem prefix and
// ANSI color code.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, errors.New("logger: nil writer")
	}
	return &Logger{
		prefix: prefix,
		color:  color,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.print("INFO", msg)
}

// Warning logs a warning message.
func (l *Logger) Warning(msg string) {
	l.print("WARNING", msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.print("ERROR", msg)
}

func (l *Logger) print(level, msg string) {
	l.out.Printf("%s[%s]%s [%s] %s", l.color, l.prefix, colorReset, level, msg)
}
