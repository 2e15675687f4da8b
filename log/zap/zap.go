// Package zap adapts a *zap.Logger to the agent's Logger interface.
package zap

import (
	"go.uber.org/zap"

	"github.com/hob-tools/cacheagent"
)

var _ cacheagent.Logger = Logger{}

type Logger struct{ L *zap.Logger }

func (l Logger) Debug(msg string, f cacheagent.Fields) { l.L.Debug(msg, fields(f)...) }
func (l Logger) Info(msg string, f cacheagent.Fields)  { l.L.Info(msg, fields(f)...) }
func (l Logger) Warn(msg string, f cacheagent.Fields)  { l.L.Warn(msg, fields(f)...) }
func (l Logger) Error(msg string, f cacheagent.Fields) { l.L.Error(msg, fields(f)...) }

func fields(f cacheagent.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	zf := make([]zap.Field, 0, len(f))
	for k, v := range f {
		zf = append(zf, zap.Any(k, v))
	}
	return zf
}
