// File: timer.go
// Title: Performance Timer
// Description: Measures compile stages and harness runs and logs the
//              elapsed time when stopped.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17

package log

import (
	"time"
)

// Timer measures the duration of one operation
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for the completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs "<operation> completed". A second call
// returns 0 and logs nothing.
func (t *Timer) Stop() time.Duration {
	return t.finish(t.level, " completed", nil)
}

// StopWithError stops the timer and logs "<operation> failed" at the level
// LogError would pick for err
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(levelForError(err), " failed", err)
}

// Checkpoint logs an intermediate timing at trace level
func (t *Timer) Checkpoint(name string) {
	if t.stopped || t.logger == nil {
		return
	}
	fields := t.fields.Merge(Fields{"operation": t.operation, "checkpoint": name})
	t.logger.logTimed(LevelTrace, t.operation+" checkpoint: "+name, nil, t.Elapsed(), fields)
}

// IsRunning returns true if the timer has not been stopped
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

func (t *Timer) finish(level Level, suffix string, err error) time.Duration {
	if t.stopped {
		return 0
	}
	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger != nil {
		fields := t.fields.Merge(Fields{"operation": t.operation})
		t.logger.logTimed(level, t.operation+suffix, err, elapsed, fields)
	}
	return elapsed
}
