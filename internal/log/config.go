package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogMaxSize = 300 // MB

// FileLogConfig configures the rotating log file.
type FileLogConfig struct {
	// Filename is the log file path; empty disables file logging.
	Filename string `mapstructure:"filename" json:"filename"`
	// MaxSize is the size in MB at which the file is rotated.
	MaxSize int `mapstructure:"max-size" json:"max-size"`
	// MaxDays is how many days rotated files are kept; zero keeps them all.
	MaxDays int `mapstructure:"max-days" json:"max-days"`
	// MaxBackups is how many rotated files are kept.
	MaxBackups int `mapstructure:"max-backups" json:"max-backups"`
}

// Config configures the logger.
type Config struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level" json:"level"`
	// Format is json or console.
	Format string `mapstructure:"format" json:"format"`
	// Stdout enables logging to standard output.
	Stdout bool `mapstructure:"stdout" json:"stdout"`
	// Stderr enables logging to standard error.
	Stderr bool `mapstructure:"stderr" json:"stderr"`
	// DisableCaller drops the file:line annotation.
	DisableCaller bool `mapstructure:"disable-caller" json:"disable-caller"`
	// Development switches zap to development mode.
	Development bool `mapstructure:"development" json:"development"`
	// File configures file output.
	File FileLogConfig `mapstructure:"file" json:"file"`
}

// DefaultConfig logs info and above to stderr in console format, leaving
// stdout to command output.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		Stderr: true,
	}
}

func (cfg *Config) encoder() zapcore.Encoder {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.Format == "json" {
		return zapcore.NewJSONEncoder(encCfg)
	}
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(encCfg)
}

func (cfg *Config) buildOptions() []zap.Option {
	var opts []zap.Option
	if cfg.Development {
		opts = append(opts, zap.Development())
	}
	if !cfg.DisableCaller {
		opts = append(opts, zap.AddCaller())
	}
	opts = append(opts, zap.AddStacktrace(zap.ErrorLevel))
	return opts
}
