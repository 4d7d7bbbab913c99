package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu           sync.Mutex
	globalLogger *zap.Logger
)

// Init initializes the global logger at the given level. Unknown
// levels fall back to info. The first successful call wins; a failed
// call leaves the logger uninitialized so a later call can retry.
func Init(level string) error {
	mu.Lock()
	defer mu.Unlock()
	if globalLogger != nil {
		return nil
	}
	l, err := newLogger(level)
	if err != nil {
		return err
	}
	globalLogger = l
	return nil
}

// Get returns the global logger instance, never nil.
func Get() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		l, err := newLogger("info")
		if err != nil {
			return zap.NewNop()
		}
		globalLogger = l
	}
	return globalLogger
}

// Sync flushes any buffered log entries.
func Sync() {
	mu.Lock()
	l := globalLogger
	mu.Unlock()
	if l != nil {
		_ = l.Sync()
	}
}

func newLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"

	return config.Build()
}
