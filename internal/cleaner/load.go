package cleaner

import (
	"fmt"
	"os"

	"subclean/internal/charset"
	"subclean/internal/failure"
	"subclean/internal/srt"
)

func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, failure.Wrap(failure.ErrIO, "load", "read input", path, err)
	}
	return data, nil
}

// Load decodes data with the labelled encoding and parses the SRT blocks.
func Load(data []byte, label string, opts srt.ParseOptions) (*srt.Document, error) {
	text, err := charset.Decode(data, label)
	if err != nil {
		return nil, failure.Wrap(failure.ErrDecode, "load", "decode", fmt.Sprintf("encoding %q", label), err)
	}
	doc, err := srt.Parse(text, opts)
	if err != nil {
		return nil, failure.Wrap(failure.ErrParse, "load", "parse", "", err)
	}
	return doc, nil
}
