// Package logs configures the process-wide zap logger used by the command
// line tools. Simulation packages do not log.
package logs

import (
	"io"
	"os"
	"strings"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the level and optional rotating file output.
type Config struct {
	Level string
	// File enables a JSON log file next to the console output.
	File       string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
	Dev        bool
}

var logger = zap.NewNop()

// Init builds the logger for appName and installs it globally. Unknown levels
// fall back to info.
func Init(appName string, cfg Config) *zap.Logger {
	return initWithConsole(appName, cfg, os.Stderr)
}

func initWithConsole(appName string, cfg Config, console io.Writer) *zap.Logger {
	lvl := zapcore.InfoLevel
	if err := lvl.UnmarshalText([]byte(strings.ToLower(cfg.Level))); err != nil {
		lvl = zapcore.InfoLevel
	}
	atomicLevel := zap.NewAtomicLevelAt(lvl)

	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	consoleCfg := encoderCfg
	consoleCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	consoleCore := zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(zapcore.AddSync(console)), atomicLevel)

	core := consoleCore
	if cfg.File != "" {
		// JSON to the file so that no console formatting lands on disk.
		fileCfg := encoderCfg
		fileCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		rotating := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    max(1, cfg.MaxSize),
			MaxBackups: max(0, cfg.MaxBackups),
			MaxAge:     max(0, cfg.MaxAge),
			Compress:   cfg.Compress,
		}
		core = zapcore.NewTee(consoleCore, zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), zapcore.AddSync(rotating), atomicLevel))
	}

	opts := []zap.Option{zap.AddCaller()}
	if cfg.Dev {
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.WarnLevel))
	}

	l := zap.New(core, opts...).Named(appName)
	_ = logger.Sync()
	logger = l
	return l
}

// L returns the installed logger; a no-op logger before Init.
func L() *zap.Logger { return logger }

// Sync flushes buffered entries.
func Sync() { _ = logger.Sync() }

// Info logs at info level through the installed logger.
func Info(msg string, fields ...zap.Field) { logger.Info(msg, fields...) }

// Warn logs at warn level through the installed logger.
func Warn(msg string, fields ...zap.Field) { logger.Warn(msg, fields...) }

// Error logs at error level through the installed logger.
func Error(msg string, fields ...zap.Field) { logger.Error(msg, fields...) }

// Debug logs at debug level through the installed logger.
func Debug(msg string, fields ...zap.Field) { logger.Debug(msg, fields...) }

// Fatal logs and exits the process.
func Fatal(msg string, fields ...zap.Field) { logger.Fatal(msg, fields...) }
