// Package logging provides structured logging for patchpick operations.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap for the handful of events the tool cares about.
type Logger struct {
	zap *zap.Logger
}

// New creates a Logger that appends to logPath. An empty path disables
// logging entirely. Development mode switches to the readable console
// encoder.
func New(logPath string, development bool) (*Logger, error) {
	if logPath == "" {
		return &Logger{zap: zap.NewNop()}, nil
	}

	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	var encoderConfig zapcore.EncoderConfig
	if development {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	} else {
		encoderConfig = zap.NewProductionEncoderConfig()
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logFile),
		zapcore.InfoLevel,
	)

	return &Logger{zap: zap.New(core)}, nil
}

// Close syncs the logger; call on shutdown.
func (l *Logger) Close() error {
	return l.zap.Sync()
}

// DiffParsed logs the result of parsing diff text.
func (l *Logger) DiffParsed(path string, chunks, warnings int) {
	l.zap.Info("diff parsed",
		zap.String("target", path),
		zap.Int("chunks", chunks),
		zap.Int("warnings", warnings),
	)
}

// ChunkApplied logs a successful chunk application.
func (l *Logger) ChunkApplied(order, anchor int, score float64, tied bool) {
	l.zap.Info("chunk applied",
		zap.Int("chunk", order),
		zap.Int("anchor", anchor),
		zap.Float64("score", score),
		zap.Bool("ambiguous", tied),
	)
}

// ChunkSkipped logs a chunk that was not applied and why.
func (l *Logger) ChunkSkipped(order int, reason string) {
	l.zap.Info("chunk skipped",
		zap.Int("chunk", order),
		zap.String("reason", reason),
	)
}

// Error logs an error with a message.
func (l *Logger) Error(msg string, err error) {
	l.zap.Error(msg, zap.Error(err))
}

// Info logs an info message with optional fields.
func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.zap.Info(msg, fields...)
}
