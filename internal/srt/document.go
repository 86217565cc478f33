package srt

// Subtitle is a single SRT cue.
type Subtitle struct {
	Index int
	Start Timestamp
	End   Timestamp
	// Position holds any coordinates trailing the end timestamp, e.g. "X1:40 X2:600".
	Position string
	Text     string
}

// Document is an ordered list of cues in display order.
type Document struct {
	Subtitles []*Subtitle
	// EOL is the line terminator used when serializing; empty means "\n".
	EOL string
}

// Len returns the number of cues.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Subtitles)
}

func (d *Document) eol() string {
	if d == nil || d.EOL == "" {
		return "\n"
	}
	return d.EOL
}
