package logger

import (
	"io"

	"go.uber.org/zap"
)

type option struct {
	level   string
	encoder string
	writer  io.Writer
	name    string
	fields  []zap.Field
}

type Option func(*option)

func WithLevel(level string) Option {
	return func(o *option) {
		o.level = level
	}
}

// WithEncoder selects "console" or "json" output
func WithEncoder(encoder string) Option {
	return func(o *option) {
		o.encoder = encoder
	}
}

func WithWriter(w io.Writer) Option {
	return func(o *option) {
		o.writer = w
	}
}

func WithFields(fields ...zap.Field) Option {
	return func(o *option) {
		o.fields = fields
	}
}

func WithName(name string) Option {
	return func(o *option) {
		o.name = name
	}
}
