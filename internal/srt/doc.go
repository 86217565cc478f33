// Package srt models SubRip subtitle documents and converts them to and from
// text.
//
// Parse keeps cue order, timing, positional coordinates and the text's
// internal line breaks exactly as found, and remembers whether the source used
// CRLF terminators so Format can write the document back the same way. Parse
// works on already-decoded text; charset handling lives in internal/charset.
package srt
