// Package charset guesses and applies subtitle character encodings.
//
// Detection is delegated to chardet and reports a label plus a 0..1
// confidence. Labels, whether detected or supplied by the user, are resolved
// through the IANA registry and then the WHATWG index from golang.org/x/text,
// so both "ISO-8859-1" and "latin1" style names work.
package charset
