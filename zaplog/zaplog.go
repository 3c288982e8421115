// Package zaplog adapts a zap logger to the trivia SDK's Logger interface.
package zaplog

import (
	"go.uber.org/zap"

	"github.com/sanjaykbiswas/trivia-app-sub001/trivia"
)

type adapter struct {
	l *zap.Logger
}

// New wraps l as a trivia.Logger. A nil logger yields a no-op adapter.
func New(l *zap.Logger) trivia.Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return &adapter{l: l}
}

func (a *adapter) Debug(msg string, fields map[string]any) { a.l.Debug(msg, toFields(fields)...) }
func (a *adapter) Info(msg string, fields map[string]any)  { a.l.Info(msg, toFields(fields)...) }
func (a *adapter) Warn(msg string, fields map[string]any)  { a.l.Warn(msg, toFields(fields)...) }
func (a *adapter) Error(msg string, fields map[string]any) { a.l.Error(msg, toFields(fields)...) }

func toFields(m map[string]any) []zap.Field {
	if len(m) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(m))
	for k, v := range m {
		out = append(out, zap.Any(k, v))
	}
	return out
}
