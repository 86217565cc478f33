// Package cleaner runs the subtitle cleanup pipeline for a single file.
//
// A run resolves its paths into a RunConfig, picks the input encoding
// (forced, detected, or the configured fallback), decodes and parses the
// file, then applies three passes in order: Trim strips leading and trailing
// whitespace from every cue, DeleteEmpty drops cues left without text, and
// Renumber rewrites indices as 1..N. The result is written as UTF-8 when
// content changed or when the source was not already UTF-8.
//
// Progress lines meant for the user go through a Reporter; diagnostics go to
// the slog logger.
package cleaner
