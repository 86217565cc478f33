package srt

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a block that does not follow the SRT grammar.
type ParseError struct {
	// Line is the 1-based line of the offending block line.
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// ParseOptions tunes how strictly Parse treats malformed blocks.
type ParseOptions struct {
	// IgnoreMalformed skips blocks that fail to parse instead of failing.
	IgnoreMalformed bool
	// OnSkip is invoked for every skipped block when IgnoreMalformed is set.
	OnSkip func(*ParseError)
}

type rawBlock struct {
	line  int
	lines []string
}

// Parse decodes SRT text into a document. Lines holding only whitespace
// separate blocks; a block is an index line, a timing line, and zero or more
// text lines.
func Parse(content string, opts ParseOptions) (*Document, error) {
	content = strings.TrimPrefix(content, "\ufeff")
	doc := &Document{EOL: detectEOL(content)}
	normalized := strings.ReplaceAll(content, "\r\n", "\n")

	for _, blk := range splitBlocks(normalized) {
		sub, err := parseBlock(blk)
		if err != nil {
			if opts.IgnoreMalformed {
				if opts.OnSkip != nil {
					opts.OnSkip(err)
				}
				continue
			}
			return nil, err
		}
		doc.Subtitles = append(doc.Subtitles, sub)
	}
	return doc, nil
}

func detectEOL(content string) string {
	if strings.Contains(content, "\r\n") {
		return "\r\n"
	}
	return "\n"
}

func splitBlocks(content string) []rawBlock {
	lines := strings.Split(content, "\n")
	var (
		blocks  []rawBlock
		current rawBlock
	)
	flush := func() {
		if len(current.lines) > 0 {
			blocks = append(blocks, current)
		}
		current = rawBlock{}
	}
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if len(current.lines) == 0 {
			current.line = i + 1
		}
		current.lines = append(current.lines, line)
	}
	flush()
	return blocks
}

func parseBlock(blk rawBlock) (*Subtitle, *ParseError) {
	if len(blk.lines) < 2 {
		return nil, &ParseError{Line: blk.line, Reason: "block needs an index line and a timing line"}
	}
	index, err := strconv.Atoi(strings.TrimSpace(blk.lines[0]))
	if err != nil {
		return nil, &ParseError{Line: blk.line, Reason: fmt.Sprintf("invalid index %q", strings.TrimSpace(blk.lines[0]))}
	}
	start, end, position, err := parseTimingLine(blk.lines[1])
	if err != nil {
		return nil, &ParseError{Line: blk.line + 1, Reason: err.Error()}
	}
	return &Subtitle{
		Index:    index,
		Start:    start,
		End:      end,
		Position: position,
		Text:     strings.Join(blk.lines[2:], "\n"),
	}, nil
}

func parseTimingLine(line string) (Timestamp, Timestamp, string, error) {
	// Example: 00:00:01,234 --> 00:00:04,567 X1:40 X2:600 Y1:20 Y2:50
	parts := strings.SplitN(line, "-->", 2)
	if len(parts) != 2 {
		return 0, 0, "", fmt.Errorf("invalid timing separator in %q", strings.TrimSpace(line))
	}
	start, err := ParseTimestamp(parts[0])
	if err != nil {
		return 0, 0, "", fmt.Errorf("start time: %w", err)
	}
	rest := strings.Fields(parts[1])
	if len(rest) == 0 {
		return 0, 0, "", fmt.Errorf("missing end time in %q", strings.TrimSpace(line))
	}
	end, err := ParseTimestamp(rest[0])
	if err != nil {
		return 0, 0, "", fmt.Errorf("end time: %w", err)
	}
	return start, end, strings.Join(rest[1:], " "), nil
}
