// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package observability provides structured operation logging for the
// analysis pipeline, backed by charmbracelet/log.
package observability

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Level controls how much operational detail is emitted.
type Level int

const (
	LevelOff     Level = 0
	LevelMetrics Level = 1
	LevelDebug   Level = 2
)

// Observer logs pipeline operations and timings.
type Observer struct {
	level  Level
	logger *log.Logger
}

// NewObserver creates an observer writing to w, typically stderr so
// operational output never mixes with formatted results on stdout.
func NewObserver(level Level, w io.Writer) *Observer {
	logLevel := log.InfoLevel
	if level == LevelDebug {
		logLevel = log.DebugLevel
	}

	return &Observer{
		level: level,
		logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			Level:           logLevel,
		}),
	}
}

// StartTiming records the start of an operation and returns a completion
// function to call when it finishes.
func (o *Observer) StartTiming(component, operation, target string) func(success bool, keyvals ...any) {
	start := time.Now()

	return func(success bool, keyvals ...any) {
		if o.level < LevelDebug {
			return
		}

		fields := append([]any{
			"component", component,
			"operation", operation,
			"duration_ms", time.Since(start).Milliseconds(),
			"success", success,
		}, keyvals...)
		if target != "" {
			fields = append(fields, "target", target)
		}

		o.logger.Debug("operation complete", fields...)
	}
}

// Info logs a message at INFO level.
func (o *Observer) Info(message string, keyvals ...any) {
	if o.level == LevelOff {
		return
	}
	o.logger.Info(message, keyvals...)
}

// Warn logs a message at WARN level.
func (o *Observer) Warn(message string, keyvals ...any) {
	if o.level == LevelOff {
		return
	}
	o.logger.Warn(message, keyvals...)
}

// Error logs a message at ERROR level.
func (o *Observer) Error(message string, keyvals ...any) {
	if o.level == LevelOff {
		return
	}
	o.logger.Error(message, keyvals...)
}

// Debug logs a message at DEBUG level.
func (o *Observer) Debug(message string, keyvals ...any) {
	if o.level < LevelDebug {
		return
	}
	o.logger.Debug(message, keyvals...)
}
