package cleaner

import "subclean/internal/charset"

// Reporter receives the user-facing progress of a run as it happens.
type Reporter interface {
	EncodingDetected(guess charset.Guess)
	NoChanges()
	Converting(outputPath string)
	Changes(deleted, trimmed []int)
	Saving(outputPath string)
}

// NopReporter ignores every event.
type NopReporter struct{}

func (NopReporter) EncodingDetected(charset.Guess) {}
func (NopReporter) NoChanges()                     {}
func (NopReporter) Converting(string)              {}
func (NopReporter) Changes(_, _ []int)             {}
func (NopReporter) Saving(string)                  {}
