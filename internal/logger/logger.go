package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type Logger struct {
	service  string
	hostname string
	handler  *slog.Logger
}

func New(service string) *Logger {
	return NewWithWriter(service, os.Stdout)
}

func NewWithWriter(service string, w io.Writer) *Logger {
	hostname, _ := os.Hostname()

	handler := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	return &Logger{
		service:  service,
		hostname: hostname,
		handler:  handler,
	}
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *Logger {
	return NewWithWriter("test", io.Discard)
}

func GenerateRequestID() string {
	return uuid.New().String()
}

func (l *Logger) Info(action, requestID, message string, fields map[string]any) {
	l.log(slog.LevelInfo, action, requestID, message, fields)
}

func (l *Logger) Debug(action, requestID, message string, fields map[string]any) {
	l.log(slog.LevelDebug, action, requestID, message, fields)
}

func (l *Logger) Warn(action, requestID, message string, err error) {
	var fields map[string]any
	if err != nil {
		fields = map[string]any{"error": err.Error()}
	}
	l.log(slog.LevelWarn, action, requestID, message, fields)
}

func (l *Logger) Error(action, requestID, message string, err error) {
	var fields map[string]any
	if err != nil {
		fields = map[string]any{"error": err.Error()}
	}
	l.log(slog.LevelError, action, requestID, message, fields)
}

func (l *Logger) log(level slog.Level, action, requestID, message string, fields map[string]any) {
	attrs := []slog.Attr{
		slog.String("service", l.service),
		slog.String("hostname", l.hostname),
		slog.String("action", action),
		slog.String("request_id", requestID),
	}
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	l.handler.LogAttrs(context.Background(), level, message, attrs...)
}
