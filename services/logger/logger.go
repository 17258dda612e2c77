package logger

import (
	"log"
	"os"
)

// Level là ngưỡng log: chỉ message từ ngưỡng cấu hình trở lên mới được ghi
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// Logger là interface log của tầng service, được inject qua Options
// để test có thể thay bằng nil hoặc logger giả
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// DefaultLogger ghi ra stderr qua log chuẩn, gắn tag mức độ trước message
type DefaultLogger struct {
	level Level
	out   *log.Logger
}

func NewDefaultLogger(level Level) *DefaultLogger {
	return &DefaultLogger{
		level: level,
		out:   log.New(os.Stderr, "", log.LstdFlags),
	}
}

func (l *DefaultLogger) logf(at Level, tag, format string, v ...interface{}) {
	if l.level > at {
		return
	}
	l.out.Printf(tag+" "+format, v...)
}

func (l *DefaultLogger) Info(format string, v ...interface{}) {
	l.logf(InfoLevel, "[INFO]", format, v...)
}

func (l *DefaultLogger) Error(format string, v ...interface{}) {
	l.logf(ErrorLevel, "[ERROR]", format, v...)
}

func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	l.logf(DebugLevel, "[DEBUG]", format, v...)
}
