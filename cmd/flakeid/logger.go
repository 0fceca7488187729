package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var atomicLevel = zap.NewAtomicLevelAt(zap.InfoLevel)

var consoleEncoder = zapcore.EncoderConfig{
	TimeKey:       "time",
	LevelKey:      "level",
	MessageKey:    "msg",
	CallerKey:     "caller",
	StacktraceKey: "stacktrace",
	EncodeLevel:   zapcore.CapitalLevelEncoder,
	EncodeTime:    zapcore.RFC3339TimeEncoder,
	EncodeCaller:  zapcore.ShortCallerEncoder,
}

// Logs go to stderr, stdout is for IDs and reports
var logger = zap.New(
	zapcore.NewCore(
		zapcore.NewConsoleEncoder(consoleEncoder),
		zapcore.Lock(os.Stderr),
		atomicLevel,
	),
	zap.AddCaller(),
	zap.AddStacktrace(zap.ErrorLevel),
)

func setLogLevel(level string) error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	atomicLevel.SetLevel(lvl)
	return nil
}
