package logger

import "go.uber.org/zap/zapcore"

const (
	ConfigurationKeyLevel             = "logger.level"
	ConfigurationKeyDisableCaller     = "logger.disableCaller"
	ConfigurationKeyDisableStacktrace = "logger.disableStacktrace"
	ConfigurationKeyStacktraceLevel   = "logger.stacktraceLevel"
	ConfigurationKeyEncoding          = "logger.encoding"
	ConfigurationKeyOutputPaths       = "logger.outputPaths"
)

// RotationConfig holds the settings for output paths that point to files.
type RotationConfig struct {
	// MaxSize is the maximum size in megabytes of a log file before it gets rotated.
	MaxSize int `default:"100" usage:"the maximum size in megabytes of a log file before it gets rotated" json:"maxSize"`
	// MaxBackups is the maximum number of old log files to retain.
	MaxBackups int `default:"3" usage:"the maximum number of old log files to retain" json:"maxBackups"`
	// MaxAge is the maximum number of days to retain old log files.
	MaxAge int `default:"28" usage:"the maximum number of days to retain old log files" json:"maxAge"`
	// Compress determines if the rotated log files should be compressed using gzip.
	Compress bool `default:"false" usage:"compress rotated log files" json:"compress"`
}

// Config holds the settings to configure a root logger instance.
type Config struct {
	// Level is the minimum enabled logging level.
	// The default is "info".
	Level string `default:"info" usage:"the minimum enabled logging level" json:"level"`
	// DisableCaller stops annotating logs with the calling function's file name and line number.
	// By default, logs are not annotated.
	DisableCaller bool `default:"true" usage:"stops annotating logs with the calling function's file name and line number" json:"disableCaller"`
	// DisableStacktrace disables automatic stacktrace capturing.
	DisableStacktrace bool `default:"false" usage:"disables automatic stacktrace capturing" json:"disableStacktrace"`
	// StacktraceLevel is the level stacktraces are captured and above.
	// The default is "panic".
	StacktraceLevel string `default:"panic" usage:"the level stacktraces are captured and above" json:"stacktraceLevel"`
	// Encoding sets the logger's encoding. Valid values are "json" and "console".
	// The default is "console".
	Encoding string `default:"console" usage:"the logger's encoding (options: \"json\", \"console\")" json:"encoding"`
	// OutputPaths is a list of file paths or stdout/stderr to write logging output to.
	// The default is ["stderr"].
	OutputPaths []string `default:"stderr" usage:"a list of file paths or stdout/stderr to write logging output to" json:"outputPaths"`
	// Rotation configures the rotation of output paths that point to files.
	Rotation RotationConfig `json:"rotation"`
}

var DefaultCfg = Config{
	Level:             "info",
	DisableCaller:     true,
	DisableStacktrace: false,
	StacktraceLevel:   "panic",
	Encoding:          "console",
	OutputPaths:       []string{"stderr"},
	Rotation: RotationConfig{
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
	},
}

var defaultEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	EncodeLevel:    zapcore.CapitalLevelEncoder,    // level in upper case
	EncodeTime:     zapcore.RFC3339TimeEncoder,     // timestamp according to RFC3339
	EncodeDuration: zapcore.SecondsDurationEncoder, // duration in seconds
	EncodeCaller:   zapcore.ShortCallerEncoder,     // caller according to package/file:line
}
