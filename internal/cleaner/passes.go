package cleaner

import (
	"strings"
	"unicode"

	"subclean/internal/srt"
)

// Changes lists what the passes altered.
type Changes struct {
	// Trimmed holds the source index field of every cue whose text was
	// stripped, in document order.
	Trimmed []int
	// Deleted holds the 1-based positions of removed cues, ascending.
	Deleted []int
}

// Empty reports whether the passes left the document untouched.
func (c Changes) Empty() bool {
	return len(c.Trimmed) == 0 && len(c.Deleted) == 0
}

// Clean runs Trim, DeleteEmpty and Renumber on doc.
func Clean(doc *srt.Document) Changes {
	changes := Changes{Trimmed: Trim(doc)}
	changes.Deleted = DeleteEmpty(doc)
	Renumber(doc)
	return changes
}

// isStripSpace matches Unicode whitespace plus the ASCII file, group, record
// and unit separators, which subtitle tools also treat as blank.
func isStripSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Trim strips leading and trailing whitespace from every cue's text and
// returns the index field values of the cues that changed.
func Trim(doc *srt.Document) []int {
	trimmed := []int{}
	if doc == nil {
		return trimmed
	}
	for _, sub := range doc.Subtitles {
		stripped := strings.TrimFunc(sub.Text, isStripSpace)
		if stripped != sub.Text {
			trimmed = append(trimmed, sub.Index)
			sub.Text = stripped
		}
	}
	return trimmed
}

// DeleteEmpty removes cues whose text is empty, keeping the survivors in
// order. It returns the removed cues' 1-based positions in ascending order.
func DeleteEmpty(doc *srt.Document) []int {
	deleted := []int{}
	if doc == nil {
		return deleted
	}
	kept := doc.Subtitles[:0]
	for pos, sub := range doc.Subtitles {
		if sub.Text == "" {
			deleted = append(deleted, pos+1)
			continue
		}
		kept = append(kept, sub)
	}
	clear(doc.Subtitles[len(kept):])
	doc.Subtitles = kept
	return deleted
}

// Renumber sets every cue's index to its 1-based position.
func Renumber(doc *srt.Document) {
	if doc == nil {
		return
	}
	for i, sub := range doc.Subtitles {
		sub.Index = i + 1
	}
}
