// Package logging builds the zerolog loggers used across mindful and carries
// them, together with a per-invocation trace ID, through context.Context.
package logging
