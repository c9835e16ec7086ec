// Package logging はサーバーと CLI で共通の slog ロガーを組み立てます。
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ParseLevel は設定ファイルのログレベル文字列を slog.Level にします。不明な値は Info です。
func ParseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// New は APP_ENV=dev なら tint の色付き出力、それ以外は JSON 出力のロガーを返します。
func New(w io.Writer, level string) *slog.Logger {
	logLevel := new(slog.LevelVar)
	lvl, ok := ParseLevel(level)
	logLevel.Set(lvl)

	var handler slog.Handler
	if IsDev() {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}

	logger := slog.New(handler)
	if !ok {
		logger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}
	return logger
}

// IsDev は APP_ENV が dev かどうかを返します。
func IsDev() bool {
	return strings.ToLower(os.Getenv("APP_ENV")) == "dev"
}
