// Package diagnostics provides TimingSink implementations for the
// per-system-per-frame timing hook: per-system timing sinks receive
// (system-id, elapsed-ms, entity-count) callbacks, no-op by default.
// The two implementations here track the common cases — discard
// everything, or log through the application's console logger.
package diagnostics

import (
	"time"

	"github.com/gookit/slog"
	"github.com/matjam/sword/internal/ecs"
)

// NopSink discards every observation. It is functionally identical to
// ecs.DefaultTimingSink; it exists as a named, importable type for hosts
// that want to pass one explicitly rather than rely on the zero-value
// default.
type NopSink struct{}

// SystemTiming satisfies ecs.TimingSink.
func (NopSink) SystemTiming(string, ecs.SystemVariant, uint64, time.Duration, int) {}

// SlogSink logs every system-timing observation through gookit/slog at
// Debug level, the way the teacher's cmd/main.go configures its console
// logger. Intended for development builds; a production host would
// likely sample or aggregate instead of logging every system every
// frame.
type SlogSink struct {
	// MinElapsed suppresses observations faster than this duration, to
	// keep routine per-frame logging from drowning out everything else.
	// Zero logs unconditionally.
	MinElapsed time.Duration
}

// SystemTiming satisfies ecs.TimingSink.
func (s SlogSink) SystemTiming(systemName string, variant ecs.SystemVariant, frame uint64, elapsed time.Duration, entityCount int) {
	if elapsed < s.MinElapsed {
		return
	}
	slog.Debugf("system timing: frame=%d phase=%s system=%s elapsed=%s entities=%d", frame, variant, systemName, elapsed, entityCount)
}
