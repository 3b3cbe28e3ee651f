// Package logx is a small leveled logger, adapted from the FAN-ATPG
// teacher's own pkg/utils/logger.go: same level ladder and indentation
// model, retargeted from algorithm/decision-tree tracing to the
// load/simulate/diagnose phases of this repository.
package logx

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Level is the verbosity of a log line.
type Level int

const (
	ErrorLevel Level = iota
	WarningLevel
	InfoLevel
	DebugLevel
	TraceLevel
)

func (l Level) String() string {
	switch l {
	case ErrorLevel:
		return "ERROR"
	case WarningLevel:
		return "WARNING"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	case TraceLevel:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// Logger is a leveled, indentable logger writing to an io.Writer.
type Logger struct {
	Level      Level
	Output     io.Writer
	ShowTime   bool
	Prefix     string
	IndentSize int
	indent     int
}

// New creates a Logger writing to stdout at the given level.
func New(level Level) *Logger {
	return &Logger{Level: level, Output: os.Stdout, ShowTime: true, IndentSize: 2}
}

// NewFile creates a Logger writing to the named file.
func NewFile(level Level, filename string) (*Logger, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	return &Logger{Level: level, Output: f, ShowTime: true, IndentSize: 2}, nil
}

// SetOutput redirects subsequent output.
func (l *Logger) SetOutput(w io.Writer) { l.Output = w }

// Indent increases the indentation level by one.
func (l *Logger) Indent() { l.indent++ }

// Outdent decreases the indentation level by one, floored at zero.
func (l *Logger) Outdent() {
	if l.indent > 0 {
		l.indent--
	}
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	if level > l.Level {
		return
	}

	var b strings.Builder
	if l.ShowTime {
		b.WriteString(time.Now().Format("15:04:05.000 "))
	}
	fmt.Fprintf(&b, "[%s] ", level)
	if l.Prefix != "" {
		fmt.Fprintf(&b, "%s: ", l.Prefix)
	}
	if l.indent > 0 {
		b.WriteString(strings.Repeat(" ", l.indent*l.IndentSize))
	}
	fmt.Fprintf(&b, format, args...)
	b.WriteString("\n")

	fmt.Fprint(l.Output, b.String())
}

func (l *Logger) Error(format string, args ...interface{})   { l.log(ErrorLevel, format, args...) }
func (l *Logger) Warning(format string, args ...interface{}) { l.log(WarningLevel, format, args...) }
func (l *Logger) Info(format string, args ...interface{})    { l.log(InfoLevel, format, args...) }
func (l *Logger) Debug(format string, args ...interface{})   { l.log(DebugLevel, format, args...) }
func (l *Logger) Trace(format string, args ...interface{})   { l.log(TraceLevel, format, args...) }

// Model logs model-loading phase detail.
func (l *Logger) Model(format string, args ...interface{}) {
	l.log(DebugLevel, "MODEL: "+format, args...)
}

// Diagnose logs single-fault diagnosis phase detail.
func (l *Logger) Diagnose(format string, args ...interface{}) {
	l.log(DebugLevel, "DIAGNOSE: "+format, args...)
}

// Synth logs ATPG scenario-synthesis phase detail.
func (l *Logger) Synth(format string, args ...interface{}) {
	l.log(TraceLevel, "SYNTH: "+format, args...)
}

// Default is the package-level default logger instance.
var Default = New(InfoLevel)
