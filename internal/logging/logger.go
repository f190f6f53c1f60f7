// Package logging provides the leveled logger used by the server and CLI.
package logging

import (
	"io"
	"log"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Config selects the level and an optional rotating log file.
type Config struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type Logger struct {
	level       Level
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	file        *lumberjack.Logger
}

// New writes info and debug lines to stdout, errors to stderr, and everything
// to cfg.File as well when it is set.
func New(cfg Config) *Logger {
	return newLogger(cfg, os.Stdout, os.Stderr)
}

// NewWriter logs every level to w. Used by the TUI, which owns the terminal.
func NewWriter(cfg Config, w io.Writer) *Logger {
	return newLogger(cfg, w, w)
}

func newLogger(cfg Config, out, errOut io.Writer) *Logger {
	l := &Logger{level: parseLevel(cfg.Level)}
	if cfg.File != "" {
		l.file = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		out = io.MultiWriter(out, l.file)
		errOut = io.MultiWriter(errOut, l.file)
	}

	flags := log.Ldate | log.Ltime | log.Lmsgprefix
	l.infoLogger = log.New(out, "INFO: ", flags)
	l.errorLogger = log.New(errOut, "ERROR: ", flags)
	l.debugLogger = log.New(out, "DEBUG: ", flags)
	return l
}

// NewDiscard returns a logger that drops everything.
func NewDiscard() *Logger {
	return newLogger(Config{Level: string(LevelError)}, io.Discard, io.Discard)
}

func parseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l *Logger) Level() Level { return l.level }

func (l *Logger) Info(format string, v ...any) {
	if l.level == LevelError {
		return
	}
	l.infoLogger.Printf(format, v...)
}

func (l *Logger) Error(format string, v ...any) {
	l.errorLogger.Printf(format, v...)
}

func (l *Logger) Debug(format string, v ...any) {
	if l.level != LevelDebug {
		return
	}
	l.debugLogger.Printf(format, v...)
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
