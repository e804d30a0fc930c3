package logger

import (
	"io"
	"path/filepath"
	"sync"

	"github.com/mattn/go-colorable"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	loggerWriter     io.WriteCloser
	loggerWriterOnce sync.Once
)

// SetWriter returns the log destination: stderr when console is set, a
// rotated file when path is set, both when both are.
func SetWriter(console bool, path string) io.Writer {
	var writerList []io.Writer
	if console || path == "" {
		writerList = append(writerList, colorable.NewColorableStderr())
		if path == "" {
			return io.MultiWriter(writerList...)
		}
	}
	loggerWriterOnce.Do(func() {
		loggerWriter = &lumberjack.Logger{
			Filename:   filepath.Clean(path),
			MaxBackups: 10, // files
			MaxSize:    50, // megabytes
			MaxAge:     30, // days
			Compress:   true,
		}
	})
	writerList = append(writerList, loggerWriter)
	return io.MultiWriter(writerList...)
}
