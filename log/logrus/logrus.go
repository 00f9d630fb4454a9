// Package logrus adapts a logrus entry to jsoncache.Logger.
package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/jsoncache"
)

var _ jsoncache.Logger = Logger{}

type Logger struct{ E *logrus.Entry }

// New tags every record with component=jsoncache.
func New(l *logrus.Logger) Logger {
	return Logger{E: l.WithField("component", "jsoncache")}
}

func (l Logger) Debug(msg string, f jsoncache.Fields) { l.with(f).Debug(msg) }
func (l Logger) Info(msg string, f jsoncache.Fields)  { l.with(f).Info(msg) }
func (l Logger) Warn(msg string, f jsoncache.Fields)  { l.with(f).Warn(msg) }
func (l Logger) Error(msg string, f jsoncache.Fields) { l.with(f).Error(msg) }

func (l Logger) with(f jsoncache.Fields) *logrus.Entry {
	e := l.E
	if e == nil {
		e = logrus.NewEntry(logrus.StandardLogger())
	}
	if len(f) == 0 {
		return e
	}
	return e.WithFields(logrus.Fields(f))
}
