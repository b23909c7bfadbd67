package main

import (
	"os"

	isatty "github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initLogging sends errors to stderr and everything at or above --log_level
// to stdout. Output is JSON unless stdout is a terminal.
func initLogging() {
	minLogLevel := zapcore.InfoLevel
	if err := minLogLevel.UnmarshalText([]byte(*logLevel)); err != nil {
		minLogLevel = zapcore.InfoLevel
	}

	errorPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})

	infoPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl < zapcore.ErrorLevel && lvl >= minLogLevel
	})

	encoder := newEncoder()
	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), errorPriority),
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), infoPriority),
	)

	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}

	logger := zap.New(core, zap.Fields(zap.String("host", host)), zap.AddStacktrace(zapcore.DPanicLevel))

	zap.ReplaceGlobals(logger.Named("app"))
	zap.RedirectStdLog(logger.Named("stdlog"))
}

func newEncoder() zapcore.Encoder {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		encoderConf := zap.NewProductionEncoderConfig()
		encoderConf.MessageKey = "message"
		encoderConf.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(encoderConf)
	}

	encoderConf := zap.NewDevelopmentEncoderConfig()
	encoderConf.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(encoderConf)
}
