// Package logx is the logging facade used across the codebase, backed by zap.
package logx

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

var (
	atom   = zap.NewAtomicLevelAt(LevelInfo)
	logger = newLogger()
)

func newLogger() *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Level = atom
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	return l.Sugar()
}

// SetLevel adjusts the minimum emitted level at runtime.
func SetLevel(l Level) { atom.SetLevel(l) }

// SetLevelFromString parses a level name and applies it. Unknown names keep
// the current level.
func SetLevelFromString(s string) {
	var l Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		Warnf("unknown log level %q", s)
		return
	}
	atom.SetLevel(l)
}

func Debug(args ...any)                 { logger.Debug(args...) }
func Debugf(format string, args ...any) { logger.Debugf(format, args...) }
func Info(args ...any)                  { logger.Info(args...) }
func Infof(format string, args ...any)  { logger.Infof(format, args...) }
func Warn(args ...any)                  { logger.Warn(args...) }
func Warnf(format string, args ...any)  { logger.Warnf(format, args...) }
func Error(args ...any)                 { logger.Error(args...) }
func Errorf(format string, args ...any) { logger.Errorf(format, args...) }
func Fatal(args ...any)                 { logger.Fatal(args...) }
func Fatalf(format string, args ...any) { logger.Fatalf(format, args...) }

// Sync flushes buffered log entries. Call on shutdown.
func Sync() { _ = logger.Sync() }
