package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	defaultEncoderConfig.TimeKey = "" // no timestamps in tests
}

func TestNewRootLogger(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expectRx string
	}{
		{
			name: "console",
			cfg: Config{
				Level:           "info",
				Encoding:        "console",
				StacktraceLevel: "error",
			},
			expectRx: `INFO\tlogger/logger_test.go:\d+\tinfo\n` +
				`WARN\tlogger/logger_test.go:\d+\twarn\n`,
		},
		{
			name: "json",
			cfg: Config{
				Level:           "info",
				Encoding:        "json",
				StacktraceLevel: "error",
			},
			expectRx: `{"level":"INFO","caller":"logger/logger_test.go:\d+","msg":"info"}\n` +
				`{"level":"WARN","caller":"logger/logger_test.go:\d+","msg":"warn"}`,
		},
		{
			name: "debug",
			cfg: Config{
				Level:           "debug",
				StacktraceLevel: "error",
			},
			expectRx: `DEBUG\tlogger/logger_test.go:\d+\tdebug\n` +
				`INFO\tlogger/logger_test.go:\d+\tinfo\n` +
				`WARN\tlogger/logger_test.go:\d+\twarn\n`,
		},
		{
			name: "noCaller",
			cfg: Config{
				DisableCaller:   true,
				StacktraceLevel: "error",
			},
			expectRx: "INFO\tinfo\n" +
				"WARN\twarn\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logFile := filepath.Join(t.TempDir(), "orderform.log")
			tt.cfg.OutputPaths = []string{logFile}

			logger, err := NewRootLogger(tt.cfg)
			require.NoError(t, err, "Unexpected error constructing logger.")

			logger.Debug("debug")
			logger.Info("info")
			logger.Warn("warn")
			_ = logger.Sync()

			assert.Regexp(t, tt.expectRx, getLogs(t, logFile), "Unexpected log output.")
		})
	}
}

func TestNewRootLogger_Named(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "orderform.log")

	cfg := DefaultCfg
	cfg.OutputPaths = []string{logFile}

	logger, err := NewRootLogger(cfg)
	require.NoError(t, err)

	logger.Named("Form").Infow("applied event", "event", "+1")
	_ = logger.Sync()

	assert.Regexp(t, `INFO\tForm\tapplied event\t{"event": "\+1"}\n`, getLogs(t, logFile))
}

func TestNewRootLogger_InvalidConfig(t *testing.T) {
	cfg := DefaultCfg
	cfg.Level = "invalid"
	_, err := NewRootLogger(cfg)
	require.Error(t, err)

	cfg = DefaultCfg
	cfg.Encoding = "xml"
	_, err = NewRootLogger(cfg)
	require.ErrorIs(t, err, ErrUnknownEncoding)

	cfg = DefaultCfg
	cfg.OutputPaths = nil
	_, err = NewRootLogger(cfg)
	require.ErrorIs(t, err, ErrNoOutputPaths)
}

func getLogs(t *testing.T, logFile string) string {
	t.Helper()

	logs, err := os.ReadFile(logFile)
	require.NoError(t, err, "Couldn't read log file.")

	return string(logs)
}
