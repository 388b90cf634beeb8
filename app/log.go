package app

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"

	"pomobar/internal/pathutil"
)

// initLogger routes logs to a rotated file. Stdout stays reserved for
// the status line, so nothing is ever logged there.
func initLogger(debug bool) {
	if !debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return
	}

	w := &lumberjack.Logger{
		Filename:   pathutil.LogFilePath(),
		MaxSize:    1, // megabytes
		MaxBackups: 3,
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}
