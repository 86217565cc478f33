package cleaner

import (
	"context"
	"errors"
	"fmt"

	"subclean/internal/charset"
	"subclean/internal/failure"
	"subclean/internal/logging"
)

// Detector guesses the charset of raw input bytes.
type Detector func(data []byte) (charset.Guess, error)

// Encoding sources.
const (
	EncodingForced   = "forced"
	EncodingDetected = "detected"
	EncodingFallback = "fallback"
)

// ResolvedEncoding is the label the loader decodes with and where it came from.
type ResolvedEncoding struct {
	Label  string
	Source string
	// Guess is set when Source is EncodingDetected.
	Guess charset.Guess
}

// UTF8Compatible reports whether the resolved label is UTF-8 or plain ASCII,
// in which case re-encoding unchanged content would not alter any byte.
func (e ResolvedEncoding) UTF8Compatible() bool {
	return charset.UTF8Compatible(e.Label)
}

// ResolveEncoding picks the decode encoding for data. A forced label is used
// verbatim; it is only checked when decoding. Otherwise the detector runs and
// a miss falls back to the configured encoding.
func (c *Cleaner) ResolveEncoding(ctx context.Context, rc RunConfig, data []byte) (ResolvedEncoding, error) {
	logger := logging.WithContext(logging.WithStage(ctx, "encoding"), c.logger)

	if rc.Encoding != "" {
		logger.Debug("using forced encoding", logging.String("encoding", rc.Encoding))
		return ResolvedEncoding{Label: rc.Encoding, Source: EncodingForced}, nil
	}

	guess, err := c.detect(data)
	if err != nil {
		if !errors.Is(err, charset.ErrNotDetected) {
			return ResolvedEncoding{}, failure.Wrap(failure.ErrDecode, "encoding", "detect", rc.InputPath, err)
		}
		fallback := c.cfg.Encoding.Fallback
		logger.Warn("charset detection found no candidate; using fallback",
			logging.String("input", rc.InputPath),
			logging.String("fallback", fallback),
		)
		return ResolvedEncoding{Label: fallback, Source: EncodingFallback}, nil
	}

	if guess.Confidence < c.cfg.Encoding.WarnBelowConfidence {
		logger.Warn("low charset detection confidence",
			logging.String("charset", guess.Charset),
			logging.String("confidence", fmt.Sprintf("%.1f%%", guess.Percent())),
			logging.Float64("threshold", c.cfg.Encoding.WarnBelowConfidence),
		)
	} else {
		logger.Debug("charset detected",
			logging.String("charset", guess.Charset),
			logging.String("language", guess.Language),
			logging.Float64("confidence", guess.Confidence),
		)
	}
	return ResolvedEncoding{Label: guess.Charset, Source: EncodingDetected, Guess: guess}, nil
}
