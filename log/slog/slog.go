//go:build go1.21

// Package slog adapts the standard library's structured logger to the
// agent's Logger interface.
package slog

import (
	"context"
	stdslog "log/slog"

	"github.com/hob-tools/cacheagent"
)

var _ cacheagent.Logger = Logger{}

type Logger struct{ L *stdslog.Logger }

func (l Logger) Debug(msg string, f cacheagent.Fields) { l.log(stdslog.LevelDebug, msg, f) }
func (l Logger) Info(msg string, f cacheagent.Fields)  { l.log(stdslog.LevelInfo, msg, f) }
func (l Logger) Warn(msg string, f cacheagent.Fields)  { l.log(stdslog.LevelWarn, msg, f) }
func (l Logger) Error(msg string, f cacheagent.Fields) { l.log(stdslog.LevelError, msg, f) }

func (l Logger) log(level stdslog.Level, msg string, f cacheagent.Fields) {
	attrs := make([]stdslog.Attr, 0, len(f))
	for k, v := range f {
		attrs = append(attrs, stdslog.Any(k, v))
	}
	l.L.LogAttrs(context.Background(), level, msg, attrs...)
}
