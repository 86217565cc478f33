package srt

import (
	"bytes"
	"io"
	"strconv"
	"strings"
)

// Format renders the document as SRT using the document's line terminator.
// Cue indices are written as stored; callers renumber beforehand.
func Format(doc *Document) []byte {
	var buf bytes.Buffer
	_, _ = WriteTo(&buf, doc)
	return buf.Bytes()
}

// WriteTo streams the SRT rendering of doc to w.
func WriteTo(w io.Writer, doc *Document) (int64, error) {
	if doc == nil {
		return 0, nil
	}
	eol := doc.eol()
	var written int64
	for _, sub := range doc.Subtitles {
		if sub == nil {
			continue
		}
		var b strings.Builder
		b.WriteString(strconv.Itoa(sub.Index))
		b.WriteString(eol)
		b.WriteString(sub.Start.String())
		b.WriteString(" --> ")
		b.WriteString(sub.End.String())
		if sub.Position != "" {
			b.WriteByte(' ')
			b.WriteString(sub.Position)
		}
		b.WriteString(eol)
		if sub.Text != "" {
			b.WriteString(strings.ReplaceAll(sub.Text, "\n", eol))
			b.WriteString(eol)
		}
		b.WriteString(eol)

		n, err := io.WriteString(w, b.String())
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
