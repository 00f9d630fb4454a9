// Package zap adapts a *zap.Logger to jsoncache.Logger.
package zap

import (
	"github.com/unkn0wn-root/jsoncache"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ jsoncache.Logger = Logger{}

// Logger forwards to L. A nil L drops everything.
type Logger struct{ L *zap.Logger }

// New names the logger "jsoncache" so its records are easy to filter.
func New(l *zap.Logger) Logger {
	if l == nil {
		return Logger{}
	}
	return Logger{L: l.Named("jsoncache")}
}

func (z Logger) Debug(msg string, f jsoncache.Fields) { z.log(zap.DebugLevel, msg, f) }
func (z Logger) Info(msg string, f jsoncache.Fields)  { z.log(zap.InfoLevel, msg, f) }
func (z Logger) Warn(msg string, f jsoncache.Fields)  { z.log(zap.WarnLevel, msg, f) }
func (z Logger) Error(msg string, f jsoncache.Fields) { z.log(zap.ErrorLevel, msg, f) }

func (z Logger) log(lvl zapcore.Level, msg string, f jsoncache.Fields) {
	if z.L == nil {
		return
	}
	if ce := z.L.Check(lvl, msg); ce != nil {
		ce.Write(fields(f)...)
	}
}

func fields(f jsoncache.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		if err, ok := v.(error); ok {
			out = append(out, zap.NamedError(k, err))
			continue
		}
		out = append(out, zap.Any(k, v))
	}
	return out
}
