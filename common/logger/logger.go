package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type LogLevel int

const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
	TRACE
)

// Logger writes every message at one fixed level. The package level
// loggers below share a single zerolog base so the level filter and the
// output writer can be swapped in one place.
type Logger struct {
	level zerolog.Level
}

var (
	base  = zerolog.Nop()
	Error = &Logger{level: zerolog.ErrorLevel}
	Warn  = &Logger{level: zerolog.WarnLevel}
	Info  = &Logger{level: zerolog.InfoLevel}
	Debug = &Logger{level: zerolog.DebugLevel}
	Trace = &Logger{level: zerolog.TraceLevel}
)

func StringToLogLevel(value string) LogLevel {
	switch strings.ToLower(value) {
	case "error":
		return ERROR
	case "warn":
		return WARN
	case "info":
		return INFO
	case "debug":
		return DEBUG
	case "trace":
		return TRACE
	}
	Warn.Printf("Invalid log level: '%s'. Returning INFO", value)
	return INFO
}

func (s LogLevel) String() string {
	switch s {
	case ERROR:
		return "ERROR"
	case WARN:
		return "WARN"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	case TRACE:
		return "TRACE"
	}
	return "UNKNOWN"
}

func (s LogLevel) zerologLevel() zerolog.Level {
	switch s {
	case ERROR:
		return zerolog.ErrorLevel
	case WARN:
		return zerolog.WarnLevel
	case DEBUG:
		return zerolog.DebugLevel
	case TRACE:
		return zerolog.TraceLevel
	default:
		return zerolog.InfoLevel
	}
}

// Initialize routes all loggers to the given writer. A nil writer means a
// human readable console writer on stderr.
func Initialize(logLevel LogLevel, writer io.Writer) {
	if writer == nil {
		writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	}
	base = zerolog.New(writer).
		With().
		Timestamp().
		Logger().
		Level(logLevel.zerologLevel())
	Debug.Printf("Initialize loggers: '%s'", logLevel.String())
}

// Discard silences all loggers.
func Discard() {
	base = zerolog.Nop()
}

func (s *Logger) Enabled() bool {
	return base.GetLevel() <= s.level && base.GetLevel() != zerolog.Disabled
}

func (s *Logger) Printf(format string, v ...interface{}) {
	base.WithLevel(s.level).Msgf(format, v...)
}

func (s *Logger) Println(v ...interface{}) {
	base.WithLevel(s.level).Msg(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

func (s *Logger) Print(v ...interface{}) {
	base.WithLevel(s.level).Msg(fmt.Sprint(v...))
}
