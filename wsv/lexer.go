package wsv

import (
	"strings"
	"unicode/utf8"

	smlerrors "github.com/KimNorgaard/go-sml/errors"
)

const eol = -1

// lexer tokenizes a single line.
type lexer struct {
	input        []rune
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	index        int  // 0-based line index, for errors
}

func newLexer(s string, index int) *lexer {
	l := &lexer{input: []rune(s), index: index}
	l.readChar()
	return l
}

func (l *lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = eol
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

func (l *lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return eol
	}
	return l.input[l.readPosition]
}

// Parse splits text on line feeds and tokenizes every line. Carriage
// returns are not line breaks; they are kept as whitespace.
func Parse(text string) ([]Line, error) {
	raw := strings.Split(text, "\n")
	lines := make([]Line, 0, len(raw))
	for i, s := range raw {
		line, err := ParseLine(s, i)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// ParseLine tokenizes s, which must not contain a line feed. index is the
// 0-based line index used in error positions. s must be valid UTF-8.
func ParseLine(s string, index int) (Line, error) {
	if col, ok := invalidUTF8(s); ok {
		return Line{}, &smlerrors.ParseError{
			Kind:    smlerrors.KindInvalidUTF8,
			Message: "Invalid UTF-8 sequence",
			Line:    index + 1,
			Column:  col + 1,
		}
	}
	return newLexer(s, index).readLine()
}

// invalidUTF8 returns the rune offset of the first invalid byte in s.
func invalidUTF8(s string) (int, bool) {
	if utf8.ValidString(s) {
		return 0, false
	}
	col := 0
	for i := 0; i < len(s); col++ {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return col, true
		}
		i += size
	}
	return 0, false
}

func (l *lexer) readLine() (Line, error) {
	var line Line
	for {
		ws := l.readWhitespace()
		switch l.ch {
		case eol:
			if len(line.Values) == 0 || ws != "" {
				line.Whitespaces = append(line.Whitespaces, ws)
			}
			return line, nil
		case '#':
			line.Whitespaces = append(line.Whitespaces, ws)
			comment := l.readComment()
			line.Comment = &comment
			return line, nil
		}
		line.Whitespaces = append(line.Whitespaces, ws)
		v, err := l.readValue()
		if err != nil {
			return Line{}, err
		}
		line.Values = append(line.Values, v)
	}
}

func (l *lexer) readWhitespace() string {
	position := l.position
	for l.ch != eol && IsWhitespaceRune(l.ch) {
		l.readChar()
	}
	return string(l.input[position:l.position])
}

func (l *lexer) readComment() string {
	l.readChar() // '#'
	position := l.position
	for l.ch != eol {
		l.readChar()
	}
	return string(l.input[position:l.position])
}

func (l *lexer) readValue() (*string, error) {
	if l.ch == '"' {
		return l.readString()
	}
	position := l.position
	for l.ch != eol && l.ch != '#' && !IsWhitespaceRune(l.ch) {
		if l.ch == '"' {
			return nil, l.errorf(smlerrors.KindInvalidQuote, "Invalid double quote in value")
		}
		l.readChar()
	}
	s := string(l.input[position:l.position])
	if s == "-" {
		return nil, nil
	}
	return &s, nil
}

// readString reads a quoted value. Inside quotes "" is a double quote and
// a closing quote directly followed by /" continues the string with a
// line feed.
func (l *lexer) readString() (*string, error) {
	var sb strings.Builder
	l.readChar() // opening '"'
	for {
		switch l.ch {
		case eol:
			return nil, l.errorf(smlerrors.KindStringNotClosed, "String not closed")
		case '"':
			l.readChar()
			switch {
			case l.ch == '"':
				sb.WriteRune('"')
				l.readChar()
			case l.ch == '/':
				if l.peekChar() != '"' {
					return nil, l.errorf(smlerrors.KindInvalidStringLineBreak, "Invalid string line break")
				}
				sb.WriteRune('\n')
				l.readChar()
				l.readChar()
			case l.ch == eol || l.ch == '#' || IsWhitespaceRune(l.ch):
				s := sb.String()
				return &s, nil
			default:
				return nil, l.errorf(smlerrors.KindInvalidAfterString, "Invalid character after string")
			}
		default:
			sb.WriteRune(l.ch)
			l.readChar()
		}
	}
}

func (l *lexer) errorf(kind smlerrors.Kind, msg string) error {
	return &smlerrors.ParseError{
		Kind:    kind,
		Message: msg,
		Line:    l.index + 1,
		Column:  l.position + 1,
	}
}
