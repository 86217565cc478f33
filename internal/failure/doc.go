// Package failure defines the error taxonomy shared by the cleaner and the CLI.
//
// Every fatal condition is tagged with one of four sentinel markers (config,
// io, decode, parse) through Wrap, so the command layer can classify errors
// with errors.Is and map them onto a process exit code.
package failure
