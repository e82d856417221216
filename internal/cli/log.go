// Package cli implements the mazegen command-line interface.
//
// The CLI builds a grid maze, carves it with a randomized minimum spanning tree,
// optionally solves it from the top-left to the bottom-right room and prints an
// ASCII drawing. It is built on cobra and logs through charmbracelet/log.
//
// # Commands
//
//   - generate: carve and render a maze
//   - config: print the effective configuration as TOML
//
// # Configuration
//
// Settings come from defaults, then an optional TOML file (--config), then
// command-line flags. A flag only overrides the file when it is set explicitly.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// writes to the command's stderr and travels in the command context
// (log.WithContext / log.FromContext).
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the mazegen logger writing to w; verbose enables debug lines.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          "mazegen",
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           level,
	})
}

// stage times one step of maze generation.
type stage struct {
	logger *log.Logger
	began  time.Time
}

func beginStage(l *log.Logger) stage {
	return stage{logger: l, began: time.Now()}
}

// end logs msg at info level with keyvals and the elapsed time appended.
func (s stage) end(msg string, keyvals ...interface{}) {
	elapsed := time.Since(s.began).Round(time.Millisecond)
	s.logger.Info(msg, append(keyvals, "elapsed", elapsed)...)
}
