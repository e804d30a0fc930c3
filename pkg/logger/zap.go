package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func New(opts ...Option) *zap.Logger {
	o := &option{
		level:   zapcore.InfoLevel.String(),
		encoder: "console",
		writer:  os.Stderr,
	}
	for _, opt := range opts {
		opt(o)
	}
	encoder := zapcore.NewConsoleEncoder
	if o.encoder == "json" {
		encoder = zapcore.NewJSONEncoder
	}
	fields := o.fields
	if o.name != "" {
		fields = append(fields, zap.String("app", o.name))
	}
	core := zapcore.NewCore(
		encoder(newEncoderConfig()),
		zapcore.AddSync(o.writer),
		newLevel(o.level),
	).With(fields)
	// error and above carry a stack trace
	return zap.New(core).WithOptions(zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

func newEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:     "Message",
		LevelKey:       "Level",
		TimeKey:        "Time",
		NameKey:        "Logger",
		CallerKey:      "Caller",
		StacktraceKey:  "Stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05"),
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
}

func newLevel(level string) zapcore.Level {
	l, err := zapcore.ParseLevel(level)
	if err != nil {
		l = zap.InfoLevel
	}
	return l
}
