package main

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// setupLogging installs the default slog logger and routes the standard log
// package through it. Logs go to stderr so list output stays clean.
func setupLogging(env, level string) {
	slog.SetDefault(slog.New(newLogHandler(os.Stderr, env, level)))

	log.SetFlags(0)
	log.SetOutput(slog.NewLogLogger(slog.Default().Handler(), slog.LevelInfo).Writer())
}

// newLogHandler returns JSON with an RFC 3339 "ts" field in prod and colored
// tint output with source locations otherwise.
func newLogHandler(w io.Writer, env, level string) slog.Handler {
	lvl := parseLevel(level)

	if env == "prod" {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: lvl,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey && len(groups) == 0 {
					return slog.String("ts", a.Value.Time().UTC().Format(time.RFC3339Nano))
				}
				return a
			},
		})
	}

	return tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		AddSource:  true,
		TimeFormat: "15:04:05.000",
	})
}

// parseLevel maps a config level name to a slog level. Unknown names give info.
func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
