package task

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ttacon/chalk"
)

// Logger receives the task's event log. Implementations must be safe for
// concurrent use.
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// ConsoleLogger writes one line per event through the standard log
// package, optionally coloured per level.
type ConsoleLogger struct {
	l     *log.Logger
	color bool
}

var _ Logger = (*ConsoleLogger)(nil)

// NewConsoleLogger logs to w with the given line prefix. A nil w means
// os.Stderr.
func NewConsoleLogger(w io.Writer, prefix string, color bool) *ConsoleLogger {
	if w == nil {
		w = os.Stderr
	}

	return &ConsoleLogger{l: log.New(w, prefix, log.LstdFlags), color: color}
}

func (c *ConsoleLogger) emit(level string, col chalk.Color, format string, args ...interface{}) {
	msg := level + " " + fmt.Sprintf(format, args...)
	if c.color {
		msg = col.Color(msg)
	}
	c.l.Print(msg)
}

// Info logs routine events (point added, solved).
func (c *ConsoleLogger) Info(format string, args ...interface{}) {
	c.emit("INFO", chalk.Green, format, args...)
}

// Warn logs recoverable oddities (stale solve results).
func (c *ConsoleLogger) Warn(format string, args ...interface{}) {
	c.emit("WARN", chalk.Yellow, format, args...)
}

// Error logs failed operations.
func (c *ConsoleLogger) Error(format string, args ...interface{}) {
	c.emit("ERROR", chalk.Red, format, args...)
}

// nopLogger drops everything.
type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Discard is a Logger that drops every event.
var Discard Logger = nopLogger{}
