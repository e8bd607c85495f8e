package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// wraps a sugared zap logger with verbosity control
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger builds a console logger writing to stderr. Without
// verbose only warnings and errors are shown.
func NewLogger(verbose bool) *Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}

	return &Logger{logger.Sugar()}
}
