// Package console provides the process-wide logger used by the generator.
package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Logger is the shared logger. Debug output is suppressed until DebugLevel is raised.
var Logger = New(os.Stderr)

// Console writes human readable log lines.
type Console struct {
	// DebugLevel enables Debug output when greater than zero.
	DebugLevel int

	mu  sync.Mutex
	log zerolog.Logger
}

// New creates a Console writing to w.
func New(w io.Writer) *Console {
	return &Console{
		log: zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}).
			With().Timestamp().Logger(),
	}
}

// SetOutput redirects the console to w.
func (c *Console) SetOutput(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.log = c.log.Output(zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"})
}

// Debug logs a formatted message when DebugLevel > 0.
func (c *Console) Debug(format string, args ...interface{}) {
	if c.DebugLevel <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.log.Debug().Msg(fmt.Sprintf(format, args...))
}

// Info logs a formatted message.
func (c *Console) Info(format string, args ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.log.Info().Msg(fmt.Sprintf(format, args...))
}

// Warn logs a formatted warning.
func (c *Console) Warn(format string, args ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.log.Warn().Msg(fmt.Sprintf(format, args...))
}

// Printf satisfies the Debugger interfaces used by gen and orchestrator.
func (c *Console) Printf(format string, args ...interface{}) {
	c.Info(format, args...)
}
