// Package logging builds the slog logger used by mdgen and keeps attribute
// keys consistent across packages.
package logging

import (
	"io"
	"log/slog"
)

const (
	KeyRoot  = "root"
	KeyPage  = "page"
	KeyPath  = "path"
	KeyCount = "count"
	KeyError = "error"
)

func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func Root(path string) slog.Attr { return slog.String(KeyRoot, path) }
func Page(name string) slog.Attr { return slog.String(KeyPage, name) }
func Path(path string) slog.Attr { return slog.String(KeyPath, path) }
func Count(n int) slog.Attr      { return slog.Int(KeyCount, n) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
