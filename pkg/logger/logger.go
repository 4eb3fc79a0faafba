package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Log *zap.Logger

// Init builds the global logger. Level falls back to info on an
// unrecognized value so a bad env var never kills startup.
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	log, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = log
	return nil
}

// Sync flushes buffered entries. Safe to call on a nil logger.
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
