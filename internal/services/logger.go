package services

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ZerologLogger implements domain.Logger interface
type ZerologLogger struct {
	log zerolog.Logger
}

// NewLogger creates a logger for environment. Development gets a console
// writer; everything else gets JSON lines that Cloud Logging can parse.
func NewLogger(environment, level string) *ZerologLogger {
	if environment == "development" {
		cw := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		return NewZerologLogger(cw, level)
	}

	zerolog.LevelFieldName = "severity"
	zerolog.LevelFieldMarshalFunc = func(l zerolog.Level) string {
		return strings.ToUpper(l.String())
	}
	zerolog.MessageFieldName = "message"
	return NewZerologLogger(os.Stdout, level)
}

// NewZerologLogger creates a logger writing to w
func NewZerologLogger(w io.Writer, level string) *ZerologLogger {
	zl := zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger()
	return &ZerologLogger{log: zl}
}

// Error logs an error message
func (l *ZerologLogger) Error(msg string, err error) {
	l.log.Error().Err(err).Msg(msg)
}

// Info logs an info message
func (l *ZerologLogger) Info(msg string, args ...interface{}) {
	withFields(l.log.Info(), args).Msg(msg)
}

// Debug logs a debug message
func (l *ZerologLogger) Debug(msg string, args ...interface{}) {
	withFields(l.log.Debug(), args).Msg(msg)
}

// withFields reads args as key/value pairs
func withFields(e *zerolog.Event, args []interface{}) *zerolog.Event {
	for i := 0; i < len(args); i += 2 {
		if args[i] == nil {
			continue
		}
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		if i+1 >= len(args) {
			e = e.Str("extra", key)
			break
		}
		e = e.Interface(key, args[i+1])
	}
	return e
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}
