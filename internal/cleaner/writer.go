package cleaner

import (
	"bufio"
	"errors"
	"os"

	"github.com/gofrs/flock"

	"subclean/internal/failure"
	"subclean/internal/srt"
)

// ErrOutputLocked is returned when another run holds the output lock.
var ErrOutputLocked = errors.New("output locked by another run")

func lockPath(path string) string {
	return path + ".lock"
}

// WriteFile serializes doc to path as UTF-8, replacing any existing content,
// and returns the number of bytes written. The write holds an advisory lock
// on path+".lock" for its duration. The lock file is never removed, so every
// run locks the same inode.
func WriteFile(path string, doc *srt.Document) (int64, error) {
	lock := flock.New(lockPath(path))
	locked, err := lock.TryLock()
	if err != nil {
		return 0, failure.Wrap(failure.ErrIO, "save", "lock output", path, err)
	}
	if !locked {
		return 0, failure.Wrap(failure.ErrIO, "save", "lock output", path, ErrOutputLocked)
	}
	defer func() { _ = lock.Unlock() }()

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, failure.Wrap(failure.ErrIO, "save", "open output", path, err)
	}
	buffered := bufio.NewWriter(file)
	n, writeErr := srt.WriteTo(buffered, doc)
	if writeErr == nil {
		writeErr = buffered.Flush()
	}
	closeErr := file.Close()
	if writeErr != nil {
		return n, failure.Wrap(failure.ErrIO, "save", "write output", path, writeErr)
	}
	if closeErr != nil {
		return n, failure.Wrap(failure.ErrIO, "save", "close output", path, closeErr)
	}
	return n, nil
}
