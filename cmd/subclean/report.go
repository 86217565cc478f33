package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"subclean/internal/charset"
	"subclean/internal/config"
)

const (
	ansiReset  = "\x1b[0m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

// plainReporter prints one line per pipeline event.
type plainReporter struct {
	out      io.Writer
	colorize bool
}

func newPlainReporter(out io.Writer, colorize bool) *plainReporter {
	return &plainReporter{out: out, colorize: colorize}
}

func (r *plainReporter) EncodingDetected(guess charset.Guess) {
	r.line(ansiBlue, fmt.Sprintf("Detected encoding '%s' with %s%% confidence.", guess.Charset, formatPercent(guess.Percent())))
}

func (r *plainReporter) NoChanges() {
	r.line(ansiGreen, "Subtitle clean. No changes made.")
}

func (r *plainReporter) Converting(outputPath string) {
	r.line(ansiYellow, "Converting to UTF-8 and saving file to "+outputPath)
}

func (r *plainReporter) Changes(deleted, trimmed []int) {
	r.line(ansiYellow, "Index of subtitles deleted: "+formatIndexList(deleted))
	r.line(ansiYellow, "Index of subtitles trimmed: "+formatIndexList(trimmed))
}

func (r *plainReporter) Saving(outputPath string) {
	r.line(ansiGreen, fmt.Sprintf("Saving UTF-8 encoded file to '%s'", outputPath))
}

func (r *plainReporter) line(color, message string) {
	if r.colorize && color != "" {
		message = color + message + ansiReset
	}
	fmt.Fprintln(r.out, message)
}

// formatIndexList renders indices as [1, 2, 3].
func formatIndexList(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatPercent(pct float64) string {
	return strconv.FormatFloat(pct, 'f', 1, 64)
}

func colorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return os.Getenv("NO_COLOR") == "" && shouldColorize(writer)
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
