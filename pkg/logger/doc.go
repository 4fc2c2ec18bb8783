// Package logger builds *slog.Logger instances with a consistent shape for
// every clubkit component.
//
// New takes functional options for format (text or JSON), level, output and
// static attributes, and wraps the handler in a decorator that copies values
// from the request context into every record (see WithContextValue).
// Environment presets pick sensible defaults:
//
//	log := logger.New(logger.WithEnvironment(cfg.Env, "clubui"))
//	log.InfoContext(ctx, "draft saved", logger.FormID(id), logger.Duration(d))
//
// Attribute helpers in attr.go keep key names uniform across packages. Error
// returns an empty attribute for a nil error, so it can be passed
// unconditionally.
//
// Library packages never log to the default logger: they accept a
// *slog.Logger option and fall back to Discard.
package logger
