// Package logrus adapts a logrus entry to the agent's Logger interface.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/hob-tools/cacheagent"
)

var _ cacheagent.Logger = Logger{}

// Logger wraps a *logrus.Entry so callers can pre-bind fields
// (logrus.WithField("component", "cacheagent")) before handing it over.
type Logger struct{ E *logrus.Entry }

func (l Logger) Debug(msg string, f cacheagent.Fields) { l.with(f).Debug(msg) }
func (l Logger) Info(msg string, f cacheagent.Fields)  { l.with(f).Info(msg) }
func (l Logger) Warn(msg string, f cacheagent.Fields)  { l.with(f).Warn(msg) }
func (l Logger) Error(msg string, f cacheagent.Fields) { l.with(f).Error(msg) }

func (l Logger) with(f cacheagent.Fields) *logrus.Entry {
	if len(f) == 0 {
		return l.E
	}
	return l.E.WithFields(logrus.Fields(f))
}
