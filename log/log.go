// Package log is a leveled wrapper around the standard library logger
package log

import (
	"io"
	"log"
	"strings"
)

// Level orders message severities
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
	LevelNone
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// LevelFromString parses a level name, defaulting to Info
func LevelFromString(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "ERROR":
		return LevelError
	case "NONE", "OFF":
		return LevelNone
	default:
		return LevelInfo
	}
}

// Logger filters messages below its level
type Logger struct {
	logger *log.Logger
	level  Level
	prefix string
}

// New creates a logger writing timestamped lines to out
func New(out io.Writer, level Level) *Logger {
	if out == nil {
		out = io.Discard
	}
	return &Logger{
		logger: log.New(out, "", log.LstdFlags|log.Lmicroseconds),
		level:  level,
	}
}

// Discard returns a logger that drops everything
func Discard() *Logger {
	return New(io.Discard, LevelNone)
}

// With returns a logger sharing output and level that tags lines with a component name
func (l *Logger) With(component string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{
		logger: l.logger,
		level:  l.level,
		prefix: l.prefix + "[" + component + "] ",
	}
}

// Level returns the active threshold
func (l *Logger) Level() Level {
	if l == nil {
		return LevelNone
	}
	return l.level
}

func (l *Logger) Debugf(format string, v ...any) {
	l.logf(LevelDebug, format, v...)
}

func (l *Logger) Infof(format string, v ...any) {
	l.logf(LevelInfo, format, v...)
}

func (l *Logger) Errorf(format string, v ...any) {
	l.logf(LevelError, format, v...)
}

func (l *Logger) logf(level Level, format string, v ...any) {
	// Nil logger is valid and silent
	if l == nil || level < l.level || l.level == LevelNone {
		return
	}
	l.logger.Printf(level.String()+" "+l.prefix+format, v...)
}
