// Package logger builds *slog.Logger values with functional options and
// injects attributes stored in context.Context into every record.
//
// New is the single factory. It picks a handler for the configured Format
// (json, text, or pretty for colored console output), applies static
// attributes and wraps the result in LogHandlerDecorator, which runs the
// registered ContextExtractor callbacks on each Handle call.
//
//	log := logger.New(
//	    logger.WithDevelopment("messages"),
//	    logger.WithContextExtractors(locale.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "bundle loaded", logger.Component("catalog"))
//
// Libraries in this module accept a *slog.Logger and fall back to Discard, so
// nothing is written unless the caller opts in.
//
// Attribute helpers such as Error and Errors return an empty slog.Attr for nil
// input, which slog drops, so callers can skip the nil check:
//
//	log.Warn("reload finished", logger.Error(err))
package logger
