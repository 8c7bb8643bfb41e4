// Package logging builds the slog loggers used across harvest.
//
// Two output formats are supported: a human console format (colored when
// standard output is a terminal) and line-delimited JSON. Attr helpers
// mirror the slog constructors so call sites stay uniform.
package logging
