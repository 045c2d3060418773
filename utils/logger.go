package utils

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger writes human readable lines to stdout and JSON lines to a log file.
type Logger struct {
	*zap.Logger
	file *os.File
}

func NewLogger(filename string) (*Logger, error) {
	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(consoleCfg),
		zapcore.Lock(os.Stdout),
		zapcore.InfoLevel,
	)

	if filename == "" {
		return &Logger{Logger: zap.New(consoleCore)}, nil
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(file),
		zapcore.DebugLevel,
	)

	return &Logger{
		Logger: zap.New(zapcore.NewTee(consoleCore, fileCore), zap.AddCaller()),
		file:   file,
	}, nil
}

func (l *Logger) Close() error {
	_ = l.Sync()
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
