// Package logger задаёт интерфейс логгера приложения и его реализацию поверх zerolog.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger — минимальный интерфейс логирования, который принимают все слои приложения.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(err error, format string, args ...any)
}

type zerologLogger struct {
	log zerolog.Logger
}

// New создаёт логгер с указанным уровнем. При pretty=true вывод идёт через ConsoleWriter.
func New(out io.Writer, level string, pretty bool) Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return &zerologLogger{
		log: zerolog.New(out).Level(lvl).With().Timestamp().Str("service", "dropflow").Logger(),
	}
}

// NewZerologLogger возвращает логгер по умолчанию: stderr, debug, человекочитаемый вывод.
func NewZerologLogger() Logger {
	return New(os.Stderr, zerolog.LevelDebugValue, true)
}

// NewNop возвращает логгер, который ничего не пишет. Используется в тестах.
func NewNop() Logger {
	return &zerologLogger{log: zerolog.Nop()}
}

func (l *zerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msg(fmt.Sprintf(format, args...))
}

func (l *zerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msg(fmt.Sprintf(format, args...))
}

func (l *zerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msg(fmt.Sprintf(format, args...))
}

func (l *zerologLogger) Errorf(err error, format string, args ...any) {
	l.log.Error().Err(err).Msg(fmt.Sprintf(format, args...))
}
