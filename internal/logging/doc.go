// Package logging assembles the slog loggers used by subclean.
//
// It owns the console and JSON handlers, maps configured level names onto
// slog levels, and exposes context helpers that tag every line of a run with
// its run_id and pipeline stage. A no-op logger is available for tests and
// library callers that do not care about diagnostics.
package logging
