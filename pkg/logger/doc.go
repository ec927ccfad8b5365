// Package logger builds *slog.Logger values for the form packages.
//
// New applies functional options (format, level, output, static attributes,
// context extractors) and wraps the handler so extractors can add attributes
// pulled from context.Context on every record. Discard returns a logger that
// drops everything and is the default for sessions that were not given one.
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(logger.Component("signup-form")),
//	)
//	log.Error("submit failed", logger.SessionID(id), logger.Error(err))
//
// Attribute helpers return an empty slog.Attr for nil input, which slog drops.
package logger
