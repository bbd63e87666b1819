package logger

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Leveled logger shared by the comments service.
// - backed by zap (JSON, ISO8601 timestamps)
// - Debugf/Infof/Warnf/Errorf/Fatalf for startup code, L() for injection

var (
	mu    sync.RWMutex
	base  = zap.NewNop()
	sugar = base.Sugar()
	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

// New returns a zap.Logger using the given log level.
func New(lvl string) (*zap.Logger, error) {
	return build(zap.NewAtomicLevelAt(ParseLevel(lvl)))
}

func build(lvl zap.AtomicLevel) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

// Init sets the global log level (case-insensitive: debug, info, warn, error, fatal)
// and installs a production logger. Call early during startup. Default level is Info.
func Init(l string) {
	lvl := zap.NewAtomicLevelAt(ParseLevel(l))
	zl, err := build(lvl)
	if err != nil {
		zl = zap.NewExample()
	}
	mu.Lock()
	level = lvl
	mu.Unlock()
	SetLogger(zl)
}

// SetLogger replaces the global logger. Tests use it to capture output.
func SetLogger(zl *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	base = zl
	sugar = zl.Sugar()
}

// L returns the global zap logger for components that take one by injection.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// Sync flushes buffered entries; call before exit.
func Sync() {
	_ = L().Sync()
}

// ParseLevel maps a level name to a zap level. Unknown names map to info.
func ParseLevel(l string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func s() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

func Debugf(format string, v ...interface{}) { s().Debugf(format, v...) }
func Infof(format string, v ...interface{})  { s().Infof(format, v...) }
func Warnf(format string, v ...interface{})  { s().Warnf(format, v...) }
func Errorf(format string, v ...interface{}) { s().Errorf(format, v...) }

// Fatalf logs and exits the process.
func Fatalf(format string, v ...interface{}) { s().Fatalf(format, v...) }

// Debug/Info/Warn/Error helpers that accept a single string
func Debug(v string) { Debugf("%s", v) }
func Info(v string)  { Infof("%s", v) }
func Warn(v string)  { Warnf("%s", v) }
func Error(v string) { Errorf("%s", v) }

// LevelString returns the level set by the last Init as text.
func LevelString() string {
	mu.RLock()
	defer mu.RUnlock()
	return level.Level().String()
}
