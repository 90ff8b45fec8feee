package logger

import (
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a console logger writing to stderr at the given level.
func New(level string) (*zap.Logger, error) {
	return NewWithWriter(level, os.Stderr)
}

// NewWithWriter creates a console logger writing to w.
func NewWithWriter(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		lvl,
	)
	return zap.New(core), nil
}

// WithRunID tags every entry of a logger with a fresh run identifier.
func WithRunID(l *zap.Logger) *zap.Logger {
	return l.With(zap.String("run_id", uuid.NewString()))
}
