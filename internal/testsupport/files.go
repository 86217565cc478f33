package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

// Fixtures shared by the cleaner and CLI tests.
const (
	// DirtySRT has a padded first cue and a whitespace-only second cue.
	DirtySRT = "1\n00:00:01,000 --> 00:00:02,000\n  Hello\n\n" +
		"2\n00:00:03,000 --> 00:00:04,000\n   \n\n" +
		"3\n00:00:05,000 --> 00:00:06,000\nWorld\n\n"
	// DirtySRTCleaned is DirtySRT after trimming, deletion and renumbering.
	DirtySRTCleaned = "1\n00:00:01,000 --> 00:00:02,000\nHello\n\n" +
		"2\n00:00:05,000 --> 00:00:06,000\nWorld\n\n"
	// CleanSRT needs no changes.
	CleanSRT = "1\n00:00:01,000 --> 00:00:02,000\nHello\n\n" +
		"2\n00:00:03,000 --> 00:00:04,000\nWorld\nagain\n\n"
	// AccentedSRT is clean text that encodes differently in Latin-1 and UTF-8.
	AccentedSRT = "1\n00:00:01,000 --> 00:00:02,000\nCafé à la crème\n\n" +
		"2\n00:00:03,000 --> 00:00:04,000\nDéjà vu, señor\n\n"
)

// WriteSRT writes content to dir/name and returns the full path.
func WriteSRT(t testing.TB, dir, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path, failing the test when it is missing.
func ReadFile(t testing.TB, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return data
}

// AssertMissing fails the test when path exists.
func AssertMissing(t testing.TB, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Fatalf("expected %s not to exist", path)
	} else if !os.IsNotExist(err) {
		t.Fatalf("stat %s: %v", path, err)
	}
}

// EncodeLatin1 converts UTF-8 text to ISO-8859-1 bytes.
func EncodeLatin1(t testing.TB, text string) []byte {
	t.Helper()

	encoded, err := charmap.ISO8859_1.NewEncoder().String(text)
	if err != nil {
		t.Fatalf("encode latin1: %v", err)
	}
	return []byte(encoded)
}

// Chdir changes the working directory to dir for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func Chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
