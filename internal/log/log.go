package log

import (
	"os"
	"strings"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var _globalL atomic.Pointer[zap.Logger]

func init() {
	_globalL.Store(zap.NewNop())
}

// InitLogger builds a logger from cfg. It does not replace the global logger.
func InitLogger(cfg *Config, opts ...zap.Option) (*zap.Logger, zap.AtomicLevel, error) {
	level := zap.NewAtomicLevel()
	parsed := cfg.Level
	if parsed == "" {
		parsed = "info"
	}
	if err := level.UnmarshalText([]byte(strings.ToLower(parsed))); err != nil {
		return nil, level, errors.Wrapf(err, "parse log level %q", cfg.Level)
	}

	var outputs []zapcore.WriteSyncer
	if cfg.File.Filename != "" {
		outputs = append(outputs, zapcore.AddSync(newFileLog(&cfg.File)))
	}
	if cfg.Stdout {
		outputs = append(outputs, zapcore.Lock(os.Stdout))
	}
	if cfg.Stderr {
		outputs = append(outputs, zapcore.Lock(os.Stderr))
	}
	if len(outputs) == 0 {
		return zap.NewNop(), level, nil
	}

	core := zapcore.NewCore(cfg.encoder(), zap.CombineWriteSyncers(outputs...), level)
	return zap.New(core, append(cfg.buildOptions(), opts...)...), level, nil
}

func newFileLog(cfg *FileLogConfig) *lumberjack.Logger {
	maxSize := cfg.MaxSize
	if maxSize <= 0 {
		maxSize = defaultLogMaxSize
	}
	return &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    maxSize,
		MaxAge:     cfg.MaxDays,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
	}
}

// L returns the global logger. It is a no-op logger until ReplaceGlobals.
func L() *zap.Logger {
	return _globalL.Load()
}

// ReplaceGlobals installs logger as the global logger and returns a function
// restoring the previous one.
func ReplaceGlobals(logger *zap.Logger) func() {
	prev := _globalL.Swap(logger)
	return func() { _globalL.Store(prev) }
}

// Sync flushes the global logger.
func Sync() error {
	return L().Sync()
}
