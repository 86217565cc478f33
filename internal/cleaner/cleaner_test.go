package cleaner_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/gofrs/flock"

	"subclean/internal/charset"
	"subclean/internal/cleaner"
	"subclean/internal/failure"
	"subclean/internal/logging"
	"subclean/internal/testsupport"
)

type recordingReporter struct {
	events []string
	guess  charset.Guess
}

func (r *recordingReporter) EncodingDetected(guess charset.Guess) {
	r.guess = guess
	r.events = append(r.events, "detected")
}

func (r *recordingReporter) NoChanges() { r.events = append(r.events, "no-changes") }

func (r *recordingReporter) Converting(string) { r.events = append(r.events, "converting") }

func (r *recordingReporter) Changes(_, _ []int) { r.events = append(r.events, "changes") }

func (r *recordingReporter) Saving(string) { r.events = append(r.events, "saving") }

func fixedDetector(label string, confidence float64) cleaner.Detector {
	return func([]byte) (charset.Guess, error) {
		return charset.Guess{Charset: label, Confidence: confidence}, nil
	}
}

func newCleaner(t *testing.T, detector cleaner.Detector, opts ...testsupport.ConfigOption) *cleaner.Cleaner {
	t.Helper()
	cfg := testsupport.NewConfig(t, opts...)
	return cleaner.New(cfg, logging.NewNop(), cleaner.WithDetector(detector))
}

func resolve(t *testing.T, flags cleaner.Flags) cleaner.RunConfig {
	t.Helper()
	rc, err := cleaner.ResolveRunConfig(flags, "Cleaned-")
	if err != nil {
		t.Fatalf("ResolveRunConfig returned error: %v", err)
	}
	return rc
}

func TestRunTrimsDeletesAndRenumbers(t *testing.T) {
	dir := t.TempDir()
	input := testsupport.WriteSRT(t, dir, "movie.srt", []byte(testsupport.DirtySRT))
	rc := resolve(t, cleaner.Flags{InputFilename: input})

	reporter := &recordingReporter{}
	report, err := newCleaner(t, fixedDetector("UTF-8", 0.99)).Run(context.Background(), rc, reporter)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !reflect.DeepEqual(report.Trimmed, []int{1}) {
		t.Fatalf("expected trimmed [1], got %v", report.Trimmed)
	}
	if !reflect.DeepEqual(report.Deleted, []int{2}) {
		t.Fatalf("expected deleted [2], got %v", report.Deleted)
	}
	if !report.Written || report.Converted() {
		t.Fatalf("expected a content write, got %+v", report)
	}
	wantPath := filepath.Join(dir, "Cleaned-movie.srt")
	if report.OutputPath != wantPath {
		t.Fatalf("unexpected output path %q", report.OutputPath)
	}
	got := testsupport.ReadFile(t, wantPath)
	if string(got) != testsupport.DirtySRTCleaned {
		t.Fatalf("unexpected output\n got: %q\nwant: %q", got, testsupport.DirtySRTCleaned)
	}
	if report.BytesWritten != int64(len(got)) {
		t.Fatalf("expected %d bytes written, got %d", len(got), report.BytesWritten)
	}
	if want := []string{"detected", "changes", "saving"}; !reflect.DeepEqual(reporter.events, want) {
		t.Fatalf("unexpected events %v", reporter.events)
	}
	if string(testsupport.ReadFile(t, input)) != testsupport.DirtySRT {
		t.Fatal("expected input to be left untouched")
	}
	if _, err := os.Stat(wantPath + ".lock"); err != nil {
		t.Fatalf("expected lock file to remain after write: %v", err)
	}
}

func TestRunKeepsExistingLockFile(t *testing.T) {
	dir := t.TempDir()
	input := testsupport.WriteSRT(t, dir, "movie.srt", []byte(testsupport.DirtySRT))
	rc := resolve(t, cleaner.Flags{InputFilename: input})
	userFile := testsupport.WriteSRT(t, dir, "Cleaned-movie.srt.lock", []byte("keep me"))

	report, err := newCleaner(t, fixedDetector("UTF-8", 1)).Run(context.Background(), rc, nil)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !report.Written {
		t.Fatal("expected output to be written")
	}
	if got := testsupport.ReadFile(t, userFile); string(got) != "keep me" {
		t.Fatalf("expected existing lock file to survive untouched, got %q", got)
	}
}

func TestRunCleanUTF8WritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := testsupport.WriteSRT(t, dir, "movie.srt", []byte(testsupport.CleanSRT))
	output := filepath.Join(dir, "explicit.srt")
	rc := resolve(t, cleaner.Flags{InputFilename: input, OutputFilename: output})

	reporter := &recordingReporter{}
	report, err := newCleaner(t, fixedDetector("UTF-8", 0.87)).Run(context.Background(), rc, reporter)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if report.Written {
		t.Fatal("expected no write for clean UTF-8 input")
	}
	testsupport.AssertMissing(t, output)
	if want := []string{"detected", "no-changes"}; !reflect.DeepEqual(reporter.events, want) {
		t.Fatalf("unexpected events %v", reporter.events)
	}
	if reporter.guess.Charset != "UTF-8" || reporter.guess.Percent() != 87 {
		t.Fatalf("unexpected detection event %+v", reporter.guess)
	}
}

func TestRunCleanASCIIWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := testsupport.WriteSRT(t, dir, "movie.srt", []byte(testsupport.CleanSRT))
	rc := resolve(t, cleaner.Flags{InputFilename: input})

	reporter := &recordingReporter{}
	report, err := newCleaner(t, fixedDetector(charset.ASCII, 1)).Run(context.Background(), rc, reporter)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if report.Written {
		t.Fatal("expected no write for clean ASCII input")
	}
	testsupport.AssertMissing(t, rc.OutputPath)
	if want := []string{"detected", "no-changes"}; !reflect.DeepEqual(reporter.events, want) {
		t.Fatalf("unexpected events %v", reporter.events)
	}
}

func TestRunConvertsCleanLatin1(t *testing.T) {
	dir := t.TempDir()
	input := testsupport.WriteSRT(t, dir, "movie.srt", testsupport.EncodeLatin1(t, testsupport.AccentedSRT))
	rc := resolve(t, cleaner.Flags{InputFilename: input})

	reporter := &recordingReporter{}
	report, err := newCleaner(t, fixedDetector("ISO-8859-1", 0.73)).Run(context.Background(), rc, reporter)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !report.Converted() {
		t.Fatalf("expected conversion-only write, got %+v", report)
	}
	got := testsupport.ReadFile(t, rc.OutputPath)
	if string(got) != testsupport.AccentedSRT {
		t.Fatalf("expected UTF-8 rendering of the source\n got: %q\nwant: %q", got, testsupport.AccentedSRT)
	}
	if want := []string{"detected", "no-changes", "converting"}; !reflect.DeepEqual(reporter.events, want) {
		t.Fatalf("unexpected events %v", reporter.events)
	}
}

func TestRunInPlaceIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	input := testsupport.WriteSRT(t, dir, "movie.srt", []byte(testsupport.DirtySRT))
	rc := resolve(t, cleaner.Flags{InputFilename: input, ReplaceOriginal: true})
	c := newCleaner(t, fixedDetector("utf-8", 1))

	if _, err := c.Run(context.Background(), rc, nil); err != nil {
		t.Fatalf("first Run returned error: %v", err)
	}
	first := testsupport.ReadFile(t, input)
	if string(first) != testsupport.DirtySRTCleaned {
		t.Fatalf("unexpected in-place output %q", first)
	}

	report, err := c.Run(context.Background(), rc, nil)
	if err != nil {
		t.Fatalf("second Run returned error: %v", err)
	}
	if report.Written {
		t.Fatal("expected second run to write nothing")
	}
	if second := testsupport.ReadFile(t, input); string(second) != string(first) {
		t.Fatalf("expected byte-identical file after second run")
	}
}

func TestRunPreservesCRLF(t *testing.T) {
	dir := t.TempDir()
	crlf := strings.ReplaceAll(testsupport.DirtySRT, "\n", "\r\n")
	input := testsupport.WriteSRT(t, dir, "movie.srt", []byte(crlf))
	rc := resolve(t, cleaner.Flags{InputFilename: input})

	if _, err := newCleaner(t, fixedDetector("UTF-8", 1)).Run(context.Background(), rc, nil); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	want := strings.ReplaceAll(testsupport.DirtySRTCleaned, "\n", "\r\n")
	if got := testsupport.ReadFile(t, rc.OutputPath); string(got) != want {
		t.Fatalf("unexpected CRLF output %q", got)
	}
}

func TestRunFallsBackWhenNothingDetected(t *testing.T) {
	dir := t.TempDir()
	input := testsupport.WriteSRT(t, dir, "movie.srt", testsupport.EncodeLatin1(t, testsupport.AccentedSRT))
	rc := resolve(t, cleaner.Flags{InputFilename: input})
	miss := func([]byte) (charset.Guess, error) { return charset.Guess{}, charset.ErrNotDetected }

	reporter := &recordingReporter{}
	c := newCleaner(t, miss, testsupport.WithFallbackEncoding("windows-1252"))
	report, err := c.Run(context.Background(), rc, reporter)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if report.Encoding.Source != cleaner.EncodingFallback || report.Encoding.Label != "windows-1252" {
		t.Fatalf("unexpected encoding %+v", report.Encoding)
	}
	if len(reporter.events) == 0 || reporter.events[0] == "detected" {
		t.Fatalf("expected no detection event, got %v", reporter.events)
	}
	if got := testsupport.ReadFile(t, rc.OutputPath); string(got) != testsupport.AccentedSRT {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRunForcedEncodingSkipsDetection(t *testing.T) {
	dir := t.TempDir()
	input := testsupport.WriteSRT(t, dir, "movie.srt", testsupport.EncodeLatin1(t, testsupport.AccentedSRT))
	rc := resolve(t, cleaner.Flags{InputFilename: input, Encoding: "latin1"})
	called := false
	detector := func([]byte) (charset.Guess, error) {
		called = true
		return charset.Guess{}, nil
	}

	report, err := newCleaner(t, detector).Run(context.Background(), rc, nil)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if called {
		t.Fatal("expected detector not to run for a forced encoding")
	}
	if report.Encoding.Source != cleaner.EncodingForced || !report.Written {
		t.Fatalf("unexpected report %+v", report)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name     string
		content  []byte
		encoding string
		missing  bool
		marker   error
		contains string
	}{
		{name: "missing input", missing: true, marker: failure.ErrIO, contains: "read input"},
		{name: "unknown encoding", content: []byte(testsupport.CleanSRT), encoding: "klingon-8", marker: failure.ErrDecode, contains: "klingon-8"},
		{name: "invalid utf-8", content: []byte("1\n00:00:01,000 --> 00:00:02,000\nbad \xff\n"), encoding: "utf-8", marker: failure.ErrDecode, contains: "utf-8"},
		{name: "malformed srt", content: []byte("1\n00:00:01,000 --> 00:00:02,000\nok\n\n2\nnonsense\n"), encoding: "utf-8", marker: failure.ErrParse, contains: "line 6"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			input := filepath.Join(dir, "movie.srt")
			if !tt.missing {
				testsupport.WriteSRT(t, dir, "movie.srt", tt.content)
			}
			rc := resolve(t, cleaner.Flags{InputFilename: input, Encoding: tt.encoding})

			_, err := newCleaner(t, fixedDetector("UTF-8", 1)).Run(context.Background(), rc, nil)
			if !errors.Is(err, tt.marker) {
				t.Fatalf("expected %v, got %v", tt.marker, err)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Fatalf("expected %q in %q", tt.contains, err.Error())
			}
			testsupport.AssertMissing(t, rc.OutputPath)
		})
	}
}

func TestRunIgnoreMalformedSkipsBrokenBlocks(t *testing.T) {
	dir := t.TempDir()
	content := "1\n00:00:01,000 --> 00:00:02,000\nok\n\nbroken block\n\n3\n00:00:03,000 --> 00:00:04,000\n next \n"
	input := testsupport.WriteSRT(t, dir, "movie.srt", []byte(content))
	rc := resolve(t, cleaner.Flags{InputFilename: input})

	c := newCleaner(t, fixedDetector("UTF-8", 1), testsupport.WithIgnoreMalformed())
	report, err := c.Run(context.Background(), rc, nil)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if report.Subtitles != 2 || !reflect.DeepEqual(report.Trimmed, []int{3}) {
		t.Fatalf("unexpected report %+v", report)
	}
	want := "1\n00:00:01,000 --> 00:00:02,000\nok\n\n2\n00:00:03,000 --> 00:00:04,000\nnext\n\n"
	if got := testsupport.ReadFile(t, rc.OutputPath); string(got) != want {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRunFailsWhenOutputLocked(t *testing.T) {
	dir := t.TempDir()
	input := testsupport.WriteSRT(t, dir, "movie.srt", []byte(testsupport.DirtySRT))
	rc := resolve(t, cleaner.Flags{InputFilename: input})

	holder := flock.New(rc.OutputPath + ".lock")
	locked, err := holder.TryLock()
	if err != nil || !locked {
		t.Fatalf("acquire test lock: locked=%v err=%v", locked, err)
	}
	t.Cleanup(func() { _ = holder.Unlock() })

	_, err = newCleaner(t, fixedDetector("UTF-8", 1)).Run(context.Background(), rc, nil)
	if !errors.Is(err, failure.ErrIO) || !errors.Is(err, cleaner.ErrOutputLocked) {
		t.Fatalf("expected locked output error, got %v", err)
	}
	testsupport.AssertMissing(t, rc.OutputPath)
	if _, statErr := os.Stat(rc.OutputPath + ".lock"); statErr != nil {
		t.Fatalf("expected foreign lock file to remain: %v", statErr)
	}
}

func TestRunHonoursCancelledContext(t *testing.T) {
	dir := t.TempDir()
	input := testsupport.WriteSRT(t, dir, "movie.srt", []byte(testsupport.DirtySRT))
	rc := resolve(t, cleaner.Flags{InputFilename: input})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newCleaner(t, fixedDetector("UTF-8", 1)).Run(ctx, rc, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	testsupport.AssertMissing(t, rc.OutputPath)
}
