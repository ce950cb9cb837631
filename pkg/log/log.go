package log

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

type Logger interface {
	Error(format string, v ...any)
	Warning(format string, v ...any)
	Info(format string, v ...any)
	Close() error
}

// New returns a logger writing JSON lines to the file at path. Without
// a path it writes human readable output to stderr.
func New(path string) (Logger, error) {
	if path != "" {
		file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0666)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		return &ZeroLog{log: zerolog.New(file).With().Timestamp().Logger(), file: file}, nil
	}
	return NewWriter(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}), nil
}

// NewWriter returns a logger writing to w
func NewWriter(w io.Writer) Logger {
	return &ZeroLog{log: zerolog.New(w).With().Timestamp().Logger()}
}

type ZeroLog struct {
	log  zerolog.Logger
	file *os.File
}

func (l *ZeroLog) Error(format string, v ...any) {
	l.log.Error().Msgf(format, v...)
}

func (l *ZeroLog) Info(format string, v ...any) {
	l.log.Info().Msgf(format, v...)
}

func (l *ZeroLog) Warning(format string, v ...any) {
	l.log.Warn().Msgf(format, v...)
}

func (l *ZeroLog) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

type EmptyLog struct{}

func NewEmptyLog() Logger { return EmptyLog{} }

func (l EmptyLog) Error(string, ...any)   {}
func (l EmptyLog) Warning(string, ...any) {}
func (l EmptyLog) Info(string, ...any)    {}
func (l EmptyLog) Close() error           { return nil }
