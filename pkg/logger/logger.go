// Package logger provides component-scoped logging for calmspace on top of zap.
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu   sync.RWMutex
	base = zap.NewNop()
)

// Init builds the process logger. Call once from main before anything logs;
// packages that log earlier fall back to a no-op logger.
func Init(debug bool) error {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	built, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	mu.Lock()
	base = built
	mu.Unlock()
	return nil
}

// SetLogger replaces the process logger. Tests use this to capture output.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		l = zap.NewNop()
	}
	base = l
}

func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = base.Sync()
}

func component(name string) *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base.Named(name)
}

func toFields(fields map[string]interface{}) []zap.Field {
	zf := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zf = append(zf, zap.Any(k, v))
	}
	return zf
}

func DebugC(name, msg string) { component(name).Debug(msg) }
func InfoC(name, msg string)  { component(name).Info(msg) }
func WarnC(name, msg string)  { component(name).Warn(msg) }
func ErrorC(name, msg string) { component(name).Error(msg) }

func DebugCF(name, msg string, fields map[string]interface{}) {
	component(name).Debug(msg, toFields(fields)...)
}

func InfoCF(name, msg string, fields map[string]interface{}) {
	component(name).Info(msg, toFields(fields)...)
}

func WarnCF(name, msg string, fields map[string]interface{}) {
	component(name).Warn(msg, toFields(fields)...)
}

func ErrorCF(name, msg string, fields map[string]interface{}) {
	component(name).Error(msg, toFields(fields)...)
}
