//Derived from pkg/log of vice (github.com/mmp/vice)
//Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
//SPDX: GPL-3.0-only

package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

//Logger wraps slog.Logger. A nil *Logger is valid and discards everything,
//so library code may log unconditionally through Default()
type Logger struct {
	*slog.Logger
	LogFile string
	Start   time.Time
}

var defaultLogger atomic.Pointer[Logger]

//Default returns the logger used by the calculation packages, nil if none was set
func Default() *Logger {
	return defaultLogger.Load()
}

//SetDefault installs the logger used by the calculation packages.
//Passing nil turns logging off.
func SetDefault(l *Logger) {
	defaultLogger.Store(l)
}

//ParseLevel converts debug, info, warn or error to a slog level
func ParseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("Logger: %q is not a valid log level", level)
	}
}

//New creates a JSON logger.
//
//With an empty dir, records go to standard error, otherwise to
//a size-rotated jetfuelburn.slog file in dir.
func New(level string, dir string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	if dir == "" {
		return NewWriter(lvl, os.Stderr, ""), nil
	}

	w := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "jetfuelburn.slog"),
		MaxSize:    32, // MB
		MaxBackups: 1,
	}
	if lvl == slog.LevelDebug {
		w.MaxSize = 512
	}
	return NewWriter(lvl, w, w.Filename), nil
}

//NewWriter creates a JSON logger writing to w
func NewWriter(level slog.Level, w io.Writer, file string) *Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{
		Logger:  slog.New(h),
		LogFile: file,
		Start:   time.Now(),
	}
}

func (l *Logger) enabled(level slog.Level) bool {
	return l != nil && l.Logger != nil && l.Logger.Enabled(context.Background(), level)
}

//Debug wraps slog.Debug to add the calling function (and similarly for
//the following Logger methods)
func (l *Logger) Debug(msg string, args ...any) {
	if l.enabled(slog.LevelDebug) {
		l.Logger.Debug(msg, append([]any{caller()}, args...)...)
	}
}

//Debugf is a convenience wrapper that logs just a message and allows
//printf-style formatting of the provided args.
func (l *Logger) Debugf(msg string, args ...any) {
	if l.enabled(slog.LevelDebug) {
		l.Logger.Debug(fmt.Sprintf(msg, args...), caller())
	}
}

func (l *Logger) Info(msg string, args ...any) {
	if l.enabled(slog.LevelInfo) {
		l.Logger.Info(msg, append([]any{caller()}, args...)...)
	}
}

func (l *Logger) Infof(msg string, args ...any) {
	if l.enabled(slog.LevelInfo) {
		l.Logger.Info(fmt.Sprintf(msg, args...), caller())
	}
}

func (l *Logger) Warn(msg string, args ...any) {
	if l.enabled(slog.LevelWarn) {
		l.Logger.Warn(msg, append([]any{caller()}, args...)...)
	}
}

func (l *Logger) Warnf(msg string, args ...any) {
	if l.enabled(slog.LevelWarn) {
		l.Logger.Warn(fmt.Sprintf(msg, args...), caller())
	}
}

func (l *Logger) Error(msg string, args ...any) {
	if l.enabled(slog.LevelError) {
		l.Logger.Error(msg, append([]any{caller()}, args...)...)
	}
}

func (l *Logger) Errorf(msg string, args ...any) {
	if l.enabled(slog.LevelError) {
		l.Logger.Error(fmt.Sprintf(msg, args...), caller())
	}
}

//With returns a logger that adds the attributes to every record
func (l *Logger) With(args ...any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{
		Logger:  l.Logger.With(args...),
		LogFile: l.LogFile,
		Start:   l.Start,
	}
}
