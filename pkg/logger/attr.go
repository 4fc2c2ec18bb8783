package logger

import (
	"log/slog"
	"time"
)

// Error returns an empty attribute for a nil error.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field is the name attribute of an input control.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

func MaskKind(kind string) slog.Attr {
	return slog.String("mask", kind)
}

func FormID(id string) slog.Attr {
	return slog.String("form_id", id)
}

// RequestID returns an empty attribute for an empty id.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
