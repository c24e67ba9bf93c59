// 指示: miu200521358
// Package mlogging はslogハンドラーを構築して既定ロガーを生成する。
package mlogging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/miu200521358/mu_poser2rig/pkg/shared/base/logging"
)

const (
	// FormatText はテキスト形式の出力を表す。
	FormatText = "text"
	// FormatJSON はJSON形式の出力を表す。
	FormatJSON = "json"
)

// NewLogger は出力先と形式からロガーを生成する。出力先がnilの場合は標準エラーを使う。
func NewLogger(w io.Writer) *logging.SlogLogger {
	return NewLoggerWithFormat(w, FormatText, logging.LOG_LEVEL_INFO)
}

// NewLoggerWithFormat は形式とレベルを指定してロガーを生成する。
func NewLoggerWithFormat(w io.Writer, format string, level logging.LogLevel) *logging.SlogLogger {
	if w == nil {
		w = os.Stderr
	}
	// ハンドラーは全レベルを受け、レベル判定はSlogLogger側で行う。
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return logging.NewSlogLogger(slog.New(handler).With("app", "mu_poser2rig"), level)
}
