// Package logging provides a minimal logging facade for the hybridkem
// packages.
//
// The Logger interface wraps a subset of log/slog so applications can inject
// their own implementation for testing, redaction, or integration with
// existing logging systems. The combiner's operation tracing (the equivalent
// of a debug build's stderr chatter) goes through this facade and is off by
// default: contexts built without WithLogger use Nop().
//
// # Redaction
//
// Shared secrets, private keys, and ephemeral key material must never be
// logged. Use Redacted to mark an attribute whose value was intentionally
// withheld:
//
//	logger.Debug(ctx, "secret assembled", logging.Redacted("secret"), "len", n)
package logging
