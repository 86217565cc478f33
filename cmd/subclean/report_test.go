package main

import (
	"bytes"
	"strings"
	"testing"

	"subclean/internal/charset"
	"subclean/internal/cleaner"
)

func TestFormatIndexList(t *testing.T) {
	tests := []struct {
		in   []int
		want string
	}{
		{nil, "[]"},
		{[]int{2}, "[2]"},
		{[]int{1, 3, 10}, "[1, 3, 10]"},
	}
	for _, tt := range tests {
		if got := formatIndexList(tt.in); got != tt.want {
			t.Fatalf("formatIndexList(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPlainReporterDetectionLine(t *testing.T) {
	var buf bytes.Buffer
	r := newPlainReporter(&buf, false)
	r.EncodingDetected(charset.Guess{Charset: "ISO-8859-1", Confidence: 0.73})
	if got := buf.String(); got != "Detected encoding 'ISO-8859-1' with 73.0% confidence.\n" {
		t.Fatalf("unexpected line %q", got)
	}
}

func TestPlainReporterColorize(t *testing.T) {
	var buf bytes.Buffer
	r := newPlainReporter(&buf, true)
	r.NoChanges()
	got := buf.String()
	if !strings.HasPrefix(got, ansiGreen) || !strings.Contains(got, ansiReset) {
		t.Fatalf("expected colored line, got %q", got)
	}
}

func TestColorEnabledModes(t *testing.T) {
	var buf bytes.Buffer
	if !colorEnabled("always", &buf) {
		t.Fatal("expected always to colorize")
	}
	if colorEnabled("never", &buf) {
		t.Fatal("expected never to disable color")
	}
	if colorEnabled("auto", &buf) {
		t.Fatal("expected auto to disable color for non-terminals")
	}
}

func TestReportRowsForUnwrittenRun(t *testing.T) {
	report := cleaner.Report{
		InputPath: "movie.srt",
		Encoding: cleaner.ResolvedEncoding{
			Label:  "UTF-8",
			Source: cleaner.EncodingDetected,
			Guess:  charset.Guess{Charset: "UTF-8", Language: "el", Confidence: 1},
		},
		Subtitles: 4,
	}
	rows := reportRows(report)
	values := map[string]string{}
	for _, row := range rows {
		values[row[0]] = row[1]
	}
	if values["Encoding"] != "UTF-8 (detected, 100.0%)" {
		t.Fatalf("unexpected encoding row %q", values["Encoding"])
	}
	if values["Language"] != "Greek" {
		t.Fatalf("unexpected language row %q", values["Language"])
	}
	if values["Written"] != "no" || values["Result"] != "Subtitle clean. No changes made." {
		t.Fatalf("unexpected rows %v", values)
	}
	if _, ok := values["Size"]; ok {
		t.Fatal("expected no size row when nothing was written")
	}
}

func TestRenderReportTableIncludesSize(t *testing.T) {
	report := cleaner.Report{
		InputPath:    "movie.srt",
		OutputPath:   "Cleaned-movie.srt",
		Encoding:     cleaner.ResolvedEncoding{Label: "cp1252", Source: cleaner.EncodingForced},
		Written:      true,
		BytesWritten: 2048,
	}
	out := renderReportTable(report, false)
	for _, want := range []string{"cp1252 (forced)", "Converted to UTF-8", "2.0 kB", "Cleaned-movie.srt"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table:\n%s", want, out)
		}
	}
}
