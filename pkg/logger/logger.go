// Package logger предоставляет минимальный интерфейс логирования поверх log/slog.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Logger — интерфейс логирования, который используют все слои приложения.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(err error, format string, args ...any)
}

type slogLogger struct {
	log *slog.Logger
}

// NewSlogLogger создает текстовый логгер уровня info, пишущий в stderr.
func NewSlogLogger() Logger {
	return NewSlogLoggerWithOptions(os.Stderr, slog.LevelInfo, false)
}

// NewSlogLoggerWithOptions создает логгер с заданным приемником, уровнем и форматом.
func NewSlogLoggerWithOptions(w io.Writer, level slog.Level, json bool) Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &slogLogger{log: slog.New(handler)}
}

// NewNopLogger возвращает логгер, который отбрасывает все записи.
func NewNopLogger() Logger {
	return NewSlogLoggerWithOptions(io.Discard, slog.LevelError+1, false)
}

func (l *slogLogger) Debugf(format string, args ...any) {
	l.log.Debug(fmt.Sprintf(format, args...))
}

func (l *slogLogger) Infof(format string, args ...any) {
	l.log.Info(fmt.Sprintf(format, args...))
}

func (l *slogLogger) Warnf(format string, args ...any) {
	l.log.Warn(fmt.Sprintf(format, args...))
}

func (l *slogLogger) Errorf(err error, format string, args ...any) {
	l.log.Error(fmt.Sprintf(format, args...), slog.Any("error", err))
}
