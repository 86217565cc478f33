// Package language turns the ISO 639 codes reported by charset detection
// into names for the run report.
package language
