package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger_Verbosity(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info when quiet", false, func(l *log.Logger) { l.Info("test") }, true},
		{"debug when quiet", false, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug when verbose", true, func(l *log.Logger) { l.Debug("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.verbose))
			assert.Equal(t, tt.wantLog, buf.Len() > 0)
			if tt.wantLog {
				assert.Contains(t, buf.String(), "mazegen")
			}
		})
	}
}

func TestStage_End(t *testing.T) {
	var buf bytes.Buffer
	beginStage(newLogger(&buf, false)).end("maze carved", "rows", 3)

	out := buf.String()
	assert.Contains(t, out, "maze carved")
	assert.Contains(t, out, "rows=3")
	assert.Contains(t, out, "elapsed=")
}

func TestLoggerTravelsInContext(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, false)
	ctx := log.WithContext(context.Background(), logger)

	assert.Same(t, logger, log.FromContext(ctx))
	log.FromContext(ctx).Info("hello")
	assert.Contains(t, buf.String(), "hello")
}
