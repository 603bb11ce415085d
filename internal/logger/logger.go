package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/archie1710/TRADING-BOT/pkg/exception"
	"github.com/yanun0323/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const DefaultFile = "trading_bot.log"

// Config describes where order lifecycle lines go.
type Config struct {
	File    string
	Console bool
	Level   string
}

func DefaultConfig() Config {
	return Config{
		File:    DefaultFile,
		Console: true,
		Level:   "info",
	}
}

// ParseLevel accepts debug, info, warn, error.
func ParseLevel(level string) (zapcore.Level, error) {
	if len(level) == 0 {
		return zapcore.InfoLevel, nil
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel, exception.ErrConfigInvalidLogLevel
	}

	switch lvl {
	case zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel:
		return lvl, nil
	default:
		return zapcore.InfoLevel, exception.ErrConfigInvalidLogLevel
	}
}

// New builds a logger writing to cfg.File and, when cfg.Console is set,
// mirroring to stdout. The returned close func syncs and closes the file.
func New(cfg Config) (*zap.Logger, func() error, error) {
	return newLogger(cfg, os.Stdout)
}

func newLogger(cfg Config, console io.Writer) (*zap.Logger, func() error, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.ConsoleSeparator = " - "

	cores := make([]zapcore.Core, 0, 2)
	closeFile := func() error { return nil }

	if len(cfg.File) != 0 {
		if dir := filepath.Dir(cfg.File); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, errors.Wrap(err, "create log directory").With("dir", dir)
			}
		}

		file, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, errors.Wrap(err, "open log file").With("file", cfg.File)
		}

		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(file), level))
		closeFile = file.Close
	}

	if cfg.Console && console != nil {
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(console), level))
	}

	log := zap.New(zapcore.NewTee(cores...))
	return log, func() error {
		_ = log.Sync()
		return closeFile()
	}, nil
}
