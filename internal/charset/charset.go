package charset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/dimchansky/utfbom"
	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrNotDetected is returned when the detector cannot guess any charset.
	ErrNotDetected = errors.New("charset not detected")
	// ErrUnknownEncoding is returned for labels that map to no decoder.
	ErrUnknownEncoding = errors.New("unknown encoding")
	// ErrInvalidBytes is returned when the input is not valid in the chosen encoding.
	ErrInvalidBytes = errors.New("invalid byte sequence")
)

// chardet reports a few names that neither the IANA nor the WHATWG index know.
var labelAliases = map[string]string{
	"gb-18030": "gb18030",
	"utf8":     "utf-8",
}

// Guess is the detector's best charset for a byte slice.
type Guess struct {
	Charset    string
	Language   string
	Confidence float64 // 0..1
}

// Percent returns the confidence rounded to three decimals and scaled to a percentage.
func (g Guess) Percent() float64 {
	return math.Round(g.Confidence*1000) / 10
}

// ASCII is the label Detect reports for input made only of 7-bit bytes.
const ASCII = "ascii"

// Detect guesses the charset of data. Empty input has no guess. Pure 7-bit
// input is reported as ASCII with full confidence, since chardet would
// otherwise pick a single-byte Latin charset for it.
func Detect(data []byte) (Guess, error) {
	if len(data) == 0 {
		return Guess{}, ErrNotDetected
	}
	if isASCII(data) {
		return Guess{Charset: ASCII, Confidence: 1}, nil
	}
	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err != nil {
		if errors.Is(err, chardet.NotDetectedError) {
			return Guess{}, ErrNotDetected
		}
		return Guess{}, fmt.Errorf("detect charset: %w", err)
	}
	if result == nil || strings.TrimSpace(result.Charset) == "" {
		return Guess{}, ErrNotDetected
	}
	return Guess{
		Charset:    result.Charset,
		Language:   result.Language,
		Confidence: float64(result.Confidence) / 100,
	}, nil
}

// IsUTF8 reports whether label names UTF-8 spelled as "utf8" or "utf-8".
func IsUTF8(label string) bool {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "utf8", "utf-8":
		return true
	default:
		return false
	}
}

// IsASCII reports whether label names US-ASCII.
func IsASCII(label string) bool {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "ascii", "us-ascii":
		return true
	default:
		return false
	}
}

// UTF8Compatible reports whether text decoded from label is already byte
// identical to its UTF-8 serialization.
func UTF8Compatible(label string) bool {
	return IsUTF8(label) || IsASCII(label)
}

// Lookup resolves an encoding label using the IANA registry first and the
// WHATWG index second.
func Lookup(label string) (encoding.Encoding, error) {
	name := strings.ToLower(strings.TrimSpace(label))
	if name == "" {
		return nil, fmt.Errorf("%w: empty label", ErrUnknownEncoding)
	}
	if alias, ok := labelAliases[name]; ok {
		name = alias
	}
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc, nil
	}
	if enc, err := htmlindex.Get(name); err == nil && enc != nil {
		return enc, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownEncoding, label)
}

// Decode converts data from the labelled encoding into a UTF-8 string. A UTF-8
// byte order mark is dropped; UTF-16 marks are consumed by their decoders.
// UTF-8 input is validated strictly instead of having bad bytes replaced.
func Decode(data []byte, label string) (string, error) {
	if IsASCII(label) {
		for i, b := range data {
			if b >= utf8.RuneSelf {
				return "", fmt.Errorf("%w for %s at byte offset %d", ErrInvalidBytes, label, i)
			}
		}
		return string(data), nil
	}

	enc, err := Lookup(label)
	if err != nil {
		return "", err
	}

	if enc == unicode.UTF8 || IsUTF8(label) {
		payload := skipUTF8BOM(data)
		if offset := firstInvalidUTF8(payload); offset >= 0 {
			return "", fmt.Errorf("%w for %s at byte offset %d", ErrInvalidBytes, label, offset)
		}
		return string(payload), nil
	}
	return decodeWith(enc, data, label)
}

func decodeWith(enc encoding.Encoding, data []byte, label string) (string, error) {
	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("%w for %s: %w", ErrInvalidBytes, label, err)
	}
	return strings.TrimPrefix(string(decoded), "\ufeff"), nil
}

func skipUTF8BOM(data []byte) []byte {
	rd, enc := utfbom.Skip(bytes.NewReader(data))
	if enc != utfbom.UTF8 {
		return data
	}
	rest, err := io.ReadAll(rd)
	if err != nil {
		return data
	}
	return rest
}

func firstInvalidUTF8(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}

func isASCII(data []byte) bool {
	for _, b := range data {
		if b >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
