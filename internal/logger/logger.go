// Package logger wraps a zap sugared logger with key/value helpers.
package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Modes accepted by New.
const (
	ModeDev   = "dev"
	ModeProd  = "prod"
	ModeQuiet = "quiet"
	ModeOff   = "off"
)

type Logger struct {
	SugaredLogger *zap.SugaredLogger
}

// New builds a logger for mode. dev logs everything to the console, prod
// logs info and above as JSON, quiet logs warnings and errors to the
// console, and off discards everything. Logs go to stderr unless
// outputPath is set.
func New(mode, outputPath string) (*Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case ModeOff:
		return Nop(), nil
	case ModeProd, "production":
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	case ModeDev, "development":
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case ModeQuiet, "":
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		cfg.DisableStacktrace = true
		cfg.DisableCaller = true
	default:
		return nil, fmt.Errorf("unknown log mode %q", mode)
	}
	if outputPath != "" {
		cfg.OutputPaths = []string{outputPath}
		cfg.ErrorOutputPaths = []string{outputPath}
	}

	zapLogger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return &Logger{SugaredLogger: zapLogger.Sugar()}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func (l *Logger) Sync() {
	_ = l.SugaredLogger.Sync()
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Debugw(msg, keysAndValues...)
}
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Infow(msg, keysAndValues...)
}
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Warnw(msg, keysAndValues...)
}
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Errorw(msg, keysAndValues...)
}
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(keysAndValues...)}
}
