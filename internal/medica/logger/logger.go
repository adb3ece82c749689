// Package logger holds the process-wide structured logger. Commands set it
// up once from config; library packages reach it through L() and never
// configure it themselves.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar *zap.SugaredLogger

// InitLogger builds the global sugared logger at the given level. Unknown
// level strings fall back to info rather than failing startup.
func InitLogger(level string) error {
	cfg := zap.NewProductionConfig()

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	z, err := cfg.Build()
	if err != nil {
		return err
	}

	sugar = z.Sugar()
	return nil
}

// L returns the global sugared logger, initializing at info level if
// InitLogger has not run yet (library tests rely on this).
func L() *zap.SugaredLogger {
	if sugar == nil {
		_ = InitLogger("info")
	}
	return sugar
}
