// Package config loads, normalizes, and validates the subclean settings file.
//
// Settings live in an optional TOML file (~/.config/subclean/config.toml or
// ./subclean.toml). When neither exists the repository defaults apply, so the
// cleaner runs out of the box. Per-invocation choices such as the input path
// or --replace-original are not stored here; the cleaner derives those from
// flags for each run.
package config
