// Package logger builds zap loggers from a Config.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/iotaledger/hive.go/ierrors"
)

// Logger is the logger used throughout the application.
type Logger = zap.SugaredLogger

var (
	// ErrUnknownEncoding is returned when the configured encoding is neither "json" nor "console".
	ErrUnknownEncoding = ierrors.New("unknown logger encoding")

	// ErrNoOutputPaths is returned when no output path was configured.
	ErrNoOutputPaths = ierrors.New("no logger output paths")
)

// NewRootLogger creates a new root logger from the provided configuration.
func NewRootLogger(cfg Config) (*Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, ierrors.Wrapf(err, "invalid logger level '%s'", cfg.Level)
	}

	var stacktraceLevel zapcore.Level
	if err := stacktraceLevel.UnmarshalText([]byte(cfg.StacktraceLevel)); err != nil {
		return nil, ierrors.Wrapf(err, "invalid stacktrace level '%s'", cfg.StacktraceLevel)
	}

	encoder, err := newEncoder(cfg.Encoding)
	if err != nil {
		return nil, err
	}

	writer, err := newWriteSyncer(cfg.OutputPaths, cfg.Rotation)
	if err != nil {
		return nil, err
	}

	opts := []zap.Option{zap.ErrorOutput(zapcore.Lock(os.Stderr))}
	if !cfg.DisableCaller {
		opts = append(opts, zap.AddCaller())
	}
	if !cfg.DisableStacktrace {
		opts = append(opts, zap.AddStacktrace(stacktraceLevel))
	}

	return zap.New(zapcore.NewCore(encoder, writer, zap.NewAtomicLevelAt(level)), opts...).Sugar(), nil
}

func newEncoder(encoding string) (zapcore.Encoder, error) {
	switch encoding {
	case "", "console":
		return zapcore.NewConsoleEncoder(defaultEncoderConfig), nil
	case "json":
		return zapcore.NewJSONEncoder(defaultEncoderConfig), nil
	default:
		return nil, ierrors.Wrapf(ErrUnknownEncoding, "'%s'", encoding)
	}
}

// newWriteSyncer combines the given output paths. Paths other than stdout and stderr are treated as files that are
// rotated according to the RotationConfig.
func newWriteSyncer(outputPaths []string, rotation RotationConfig) (zapcore.WriteSyncer, error) {
	if len(outputPaths) == 0 {
		return nil, ErrNoOutputPaths
	}

	syncers := make([]zapcore.WriteSyncer, 0, len(outputPaths))
	for _, outputPath := range outputPaths {
		switch outputPath {
		case "stdout":
			syncers = append(syncers, zapcore.Lock(os.Stdout))
		case "stderr":
			syncers = append(syncers, zapcore.Lock(os.Stderr))
		default:
			syncers = append(syncers, zapcore.AddSync(&lumberjack.Logger{
				Filename:   outputPath,
				MaxSize:    rotation.MaxSize,
				MaxBackups: rotation.MaxBackups,
				MaxAge:     rotation.MaxAge,
				Compress:   rotation.Compress,
			}))
		}
	}

	return zapcore.NewMultiWriteSyncer(syncers...), nil
}
