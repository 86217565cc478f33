package cleaner

import (
	"context"
	"log/slog"

	"github.com/dustin/go-humanize"

	"subclean/internal/charset"
	"subclean/internal/config"
	"subclean/internal/logging"
	"subclean/internal/srt"
)

// Report summarizes a finished run.
type Report struct {
	InputPath  string
	OutputPath string
	Encoding   ResolvedEncoding
	Trimmed    []int
	Deleted    []int
	Subtitles  int
	// Written is false when the input was clean UTF-8 and nothing was saved.
	Written      bool
	BytesWritten int64
}

// Converted reports whether the run only re-encoded an otherwise clean file.
func (r Report) Converted() bool {
	return r.Written && len(r.Trimmed) == 0 && len(r.Deleted) == 0
}

// Cleaner runs the cleanup pipeline.
type Cleaner struct {
	cfg    *config.Config
	logger *slog.Logger
	detect Detector
}

// Option customizes a Cleaner.
type Option func(*Cleaner)

// WithDetector replaces the charset detector (used in tests).
func WithDetector(d Detector) Option {
	return func(c *Cleaner) {
		if d != nil {
			c.detect = d
		}
	}
}

// New constructs a Cleaner. A nil cfg uses the defaults.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) *Cleaner {
	if cfg == nil {
		defaults := config.Default()
		cfg = &defaults
	}
	c := &Cleaner{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "cleaner"),
		detect: charset.Detect,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run cleans rc.InputPath and, when needed, saves the result to
// rc.OutputPath. Progress goes to reporter; a nil reporter discards it.
func (c *Cleaner) Run(ctx context.Context, rc RunConfig, reporter Reporter) (Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if reporter == nil {
		reporter = NopReporter{}
	}
	if _, ok := logging.RunIDFromContext(ctx); !ok {
		ctx = logging.WithRunID(ctx, "")
	}
	report := Report{InputPath: rc.InputPath, OutputPath: rc.OutputPath}

	data, err := readInput(rc.InputPath)
	if err != nil {
		return report, err
	}

	enc, err := c.ResolveEncoding(ctx, rc, data)
	if err != nil {
		return report, err
	}
	report.Encoding = enc
	if enc.Source == EncodingDetected {
		reporter.EncodingDetected(enc.Guess)
	}

	doc, err := c.load(ctx, data, enc.Label)
	if err != nil {
		return report, err
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}

	changes := c.clean(ctx, doc)
	report.Trimmed = changes.Trimmed
	report.Deleted = changes.Deleted
	report.Subtitles = doc.Len()
	if err := ctx.Err(); err != nil {
		return report, err
	}

	if changes.Empty() {
		reporter.NoChanges()
		if enc.UTF8Compatible() {
			logging.WithContext(ctx, c.logger).Info("subtitle already clean; nothing written",
				logging.String("input", rc.InputPath))
			return report, nil
		}
		reporter.Converting(rc.OutputPath)
	} else {
		reporter.Changes(changes.Deleted, changes.Trimmed)
		reporter.Saving(rc.OutputPath)
	}

	n, err := c.save(ctx, rc.OutputPath, doc)
	report.BytesWritten = n
	if err != nil {
		return report, err
	}
	report.Written = true
	return report, nil
}

func (c *Cleaner) load(ctx context.Context, data []byte, label string) (*srt.Document, error) {
	logger := logging.WithContext(logging.WithStage(ctx, "load"), c.logger)
	opts := srt.ParseOptions{IgnoreMalformed: c.cfg.SRT.IgnoreMalformed}
	if opts.IgnoreMalformed {
		opts.OnSkip = func(perr *srt.ParseError) {
			logger.Warn("skipping malformed subtitle block",
				logging.Int("line", perr.Line),
				logging.String("reason", perr.Reason),
			)
		}
	}
	doc, err := Load(data, label, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("subtitles loaded",
		logging.Int("count", doc.Len()),
		logging.String("encoding", label),
		logging.Bool("crlf", doc.EOL == "\r\n"),
	)
	return doc, nil
}

func (c *Cleaner) clean(ctx context.Context, doc *srt.Document) Changes {
	logger := logging.WithContext(logging.WithStage(ctx, "clean"), c.logger)
	changes := Clean(doc)
	logger.Info("subtitles cleaned",
		logging.Ints("trimmed", changes.Trimmed),
		logging.Ints("deleted", changes.Deleted),
		logging.Int("remaining", doc.Len()),
	)
	return changes
}

func (c *Cleaner) save(ctx context.Context, path string, doc *srt.Document) (int64, error) {
	logger := logging.WithContext(logging.WithStage(ctx, "save"), c.logger)
	n, err := WriteFile(path, doc)
	if err != nil {
		logger.Error("save failed", logging.String("output", path), logging.Error(err))
		return n, err
	}
	logger.Info("subtitle saved",
		logging.String("output", path),
		logging.String("size", humanize.Bytes(uint64(n))),
	)
	return n, nil
}
