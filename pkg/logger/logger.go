// Package logger provides the leveled, component-scoped logger used across
// every stage of the compiler pipeline.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

// Level is a logging severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name (case-insensitive) to a Level, defaulting
// to LevelInfo for anything unrecognized.
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return LevelDebug
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger writes structured, leveled log lines for a single named component
// of the pipeline (e.g. "ingest", "emitter", "analyzer").
type Logger struct {
	component string
	level     Level
	out       *log.Logger
}

// New creates a logger for component writing to stdout at the given level.
func New(component string, level Level) *Logger {
	return &Logger{
		component: component,
		level:     level,
		out:       log.New(os.Stdout, "", 0),
	}
}

// NewWithWriter is New with an explicit destination, used by tests that need
// to capture output.
func NewWithWriter(component string, level Level, w io.Writer) *Logger {
	return &Logger{component: component, level: level, out: log.New(w, "", 0)}
}

// With returns a logger for a sub-component, nesting the dotted name under
// the parent's so log lines can be attributed to a specific pipeline stage.
func (l *Logger) With(subComponent string) *Logger {
	return &Logger{
		component: l.component + "." + subComponent,
		level:     l.level,
		out:       l.out,
	}
}

func (l *Logger) format(level Level, msg string, fields []interface{}) string {
	var b strings.Builder
	b.WriteString(time.Now().Format("2006-01-02T15:04:05.000Z07:00"))
	b.WriteString(" [")
	b.WriteString(level.String())
	b.WriteString("] [")
	b.WriteString(l.component)
	b.WriteString("] ")
	b.WriteString(msg)
	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&b, " %s=%v", fields[i], fields[i+1])
	}
	return b.String()
}

func (l *Logger) log(level Level, msg string, fields ...interface{}) {
	if level < l.level {
		return
	}
	l.out.Println(l.format(level, msg, fields))
}

func (l *Logger) Debug(msg string, fields ...interface{}) { l.log(LevelDebug, msg, fields...) }
func (l *Logger) Info(msg string, fields ...interface{})  { l.log(LevelInfo, msg, fields...) }
func (l *Logger) Warn(msg string, fields ...interface{})  { l.log(LevelWarn, msg, fields...) }
func (l *Logger) Error(msg string, fields ...interface{}) { l.log(LevelError, msg, fields...) }
