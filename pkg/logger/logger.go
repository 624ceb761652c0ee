package logger

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects the level and the sinks of the global logger.
type Config struct {
	Level      string   `yaml:"level"`
	Targets    []string `yaml:"targets"`
	Filename   string   `yaml:"filename"`
	MaxSize    int      `yaml:"max_size_in_mb"`
	MaxBackups int      `yaml:"max_backups"`
	Compress   bool     `yaml:"compress"`
}

var (
	mu     sync.RWMutex
	global = zap.NewNop().Sugar()
)

// InitGlobalLogger replaces the package logger. Until it is called every log
// call is a no-op, which keeps tests quiet.
func InitGlobalLogger(cfg *Config) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(cfg.Level))); err != nil {
			level = zapcore.InfoLevel
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	targets := cfg.Targets
	if len(targets) == 0 {
		targets = []string{"console"}
	}

	cores := make([]zapcore.Core, 0, len(targets))
	for _, t := range targets {
		switch t {
		case "console":
			cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg),
				zapcore.Lock(os.Stdout), level))
		case "file":
			if cfg.Filename == "" {
				continue
			}
			cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg),
				zapcore.AddSync(&lumberjack.Logger{
					Filename:   cfg.Filename,
					MaxSize:    cfg.MaxSize,
					MaxBackups: cfg.MaxBackups,
					Compress:   cfg.Compress,
				}), level))
		}
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))

	mu.Lock()
	global = l.Sugar()
	mu.Unlock()
}

func get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()

	return global
}

func Debug(msg string, keysAndValues ...any) {
	get().Debugw(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...any) {
	get().Infow(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...any) {
	get().Warnw(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...any) {
	get().Errorw(msg, keysAndValues...)
}

// Sync flushes buffered entries; call it before the process exits.
func Sync() {
	_ = get().Sync()
}
