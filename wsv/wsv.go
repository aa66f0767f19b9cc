// Package wsv implements the whitespace separated values line layer that
// SML documents are built on. Each line is split into nullable string
// values; the whitespace around them and a trailing comment are recorded
// so that a line can be written back exactly as it was read.
package wsv

import (
	"strings"
	"unicode/utf8"
)

// Line is a single tokenized line.
//
// Values is nil for a line without values (blank or comment only). A nil
// element of Values is the null value, written as "-".
//
// Whitespaces records the literal whitespace around the values: entry 0 is
// the leading whitespace, entry i precedes value i, and entry len(Values) is
// the whitespace after the last value. The trailing entry is only present
// when whitespace or a comment follows the last value.
//
// Comment holds the text after '#', or nil when the line has no comment.
type Line struct {
	Values      []*string
	Whitespaces []string
	Comment     *string
}

// HasValues reports whether the line carries at least one value.
func (l Line) HasValues() bool {
	return len(l.Values) > 0
}

// Value returns a pointer to a copy of s.
func Value(s string) *string {
	return &s
}

// Values returns a non-null value slice for ss.
func Values(ss ...string) []*string {
	values := make([]*string, len(ss))
	for i := range ss {
		values[i] = Value(ss[i])
	}
	return values
}

// EqualFold compares two nullable values case-insensitively. Two null
// values are equal; a null value never equals a string.
func EqualFold(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return strings.EqualFold(*a, *b)
}

// IsWhitespaceRune reports whether r separates values. The line feed is
// not whitespace: it only ends lines.
func IsWhitespaceRune(r rune) bool {
	switch r {
	case 0x09, 0x0B, 0x0C, 0x0D, 0x20, 0x85, 0xA0, 0x1680,
		0x2028, 0x2029, 0x202F, 0x205F, 0x3000:
		return true
	}
	return r >= 0x2000 && r <= 0x200A
}

// IsWhitespace reports whether s consists only of whitespace. The empty
// string is whitespace.
func IsWhitespace(s string) bool {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !IsWhitespaceRune(r) {
			return false
		}
		i += size
	}
	return true
}
