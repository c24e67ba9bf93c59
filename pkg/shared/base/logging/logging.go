// 指示: miu200521358
// Package logging はアプリケーション全体で共有するロガー契約と既定ロガーを提供する。
package logging

import (
	"fmt"
	"log/slog"
	"sync"
)

// LogLevel はログ出力レベルを表す。
type LogLevel int

const (
	// LOG_LEVEL_DEBUG はデバッグレベル。
	LOG_LEVEL_DEBUG LogLevel = iota
	// LOG_LEVEL_INFO は情報レベル。
	LOG_LEVEL_INFO
	// LOG_LEVEL_WARN は警告レベル。
	LOG_LEVEL_WARN
	// LOG_LEVEL_ERROR はエラーレベル。
	LOG_LEVEL_ERROR
)

// SlogLevel はslogのレベルへ変換する。
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LOG_LEVEL_DEBUG:
		return slog.LevelDebug
	case LOG_LEVEL_WARN:
		return slog.LevelWarn
	case LOG_LEVEL_ERROR:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLogLevel は文字列からログレベルを解決する。未知の値はINFOとする。
func ParseLogLevel(value string) LogLevel {
	switch value {
	case "debug", "DEBUG":
		return LOG_LEVEL_DEBUG
	case "warn", "WARN", "warning":
		return LOG_LEVEL_WARN
	case "error", "ERROR":
		return LOG_LEVEL_ERROR
	default:
		return LOG_LEVEL_INFO
	}
}

// ILogger は書式つきログ出力の契約を表す。
type ILogger interface {
	Debug(format string, params ...any)
	Info(format string, params ...any)
	Warn(format string, params ...any)
	Error(format string, params ...any)
	SetLevel(level LogLevel)
	Level() LogLevel
}

var (
	defaultMu     sync.RWMutex
	defaultLogger ILogger
)

// DefaultLogger は既定ロガーを返す。未設定の場合はnilを返す。
func DefaultLogger() ILogger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefaultLogger は既定ロガーを差し替える。
func SetDefaultLogger(logger ILogger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// SlogLogger はslog.Loggerを書式つきログ契約へ適合させる。
type SlogLogger struct {
	mu     sync.RWMutex
	level  LogLevel
	logger *slog.Logger
}

// NewSlogLogger はslog.LoggerからILoggerを生成する。
func NewSlogLogger(logger *slog.Logger, level LogLevel) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLogger{level: level, logger: logger}
}

// SetLevel は出力レベルを設定する。
func (l *SlogLogger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Level は出力レベルを返す。
func (l *SlogLogger) Level() LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// Slog は内部のslog.Loggerを返す。
func (l *SlogLogger) Slog() *slog.Logger {
	return l.logger
}

// Debug はデバッグログを出力する。
func (l *SlogLogger) Debug(format string, params ...any) {
	l.log(LOG_LEVEL_DEBUG, format, params...)
}

// Info は情報ログを出力する。
func (l *SlogLogger) Info(format string, params ...any) {
	l.log(LOG_LEVEL_INFO, format, params...)
}

// Warn は警告ログを出力する。
func (l *SlogLogger) Warn(format string, params ...any) {
	l.log(LOG_LEVEL_WARN, format, params...)
}

// Error はエラーログを出力する。
func (l *SlogLogger) Error(format string, params ...any) {
	l.log(LOG_LEVEL_ERROR, format, params...)
}

func (l *SlogLogger) log(level LogLevel, format string, params ...any) {
	if level < l.Level() {
		return
	}
	msg := format
	if len(params) > 0 {
		msg = fmt.Sprintf(format, params...)
	}
	switch level {
	case LOG_LEVEL_DEBUG:
		l.logger.Debug(msg)
	case LOG_LEVEL_WARN:
		l.logger.Warn(msg)
	case LOG_LEVEL_ERROR:
		l.logger.Error(msg)
	default:
		l.logger.Info(msg)
	}
}
