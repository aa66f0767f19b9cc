package ast

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KimNorgaard/go-sml/wsv"
)

var (
	// ErrInvalidWhitespace is returned when a whitespace record holds a
	// non-whitespace character.
	ErrInvalidWhitespace = errors.New("sml: whitespace value contains non whitespace character")
	// ErrInvalidComment is returned when a comment contains a line feed.
	ErrInvalidComment = errors.New("sml: comment contains line feed")
)

// Trivia is the formatting of a single line: the whitespace around its
// values and its comment. A nil whitespace record means the indentation
// is synthesized when the line is written.
type Trivia struct {
	whitespaces []string
	comment     *string
}

// TriviaOf returns the formatting recorded on a tokenized line.
func TriviaOf(line wsv.Line) Trivia {
	return Trivia{whitespaces: line.Whitespaces, comment: line.Comment}
}

// Whitespaces returns the recorded whitespace, or nil.
func (t *Trivia) Whitespaces() []string { return t.whitespaces }

// Comment returns the recorded comment, or nil.
func (t *Trivia) Comment() *string { return t.comment }

// SetWhitespaces replaces the whitespace record. Every entry must be
// whitespace only.
func (t *Trivia) SetWhitespaces(ws []string) error {
	for i, s := range ws {
		if !wsv.IsWhitespace(s) {
			return fmt.Errorf("%w: entry %d %q", ErrInvalidWhitespace, i, s)
		}
	}
	t.whitespaces = append([]string(nil), ws...)
	return nil
}

// SetComment replaces the comment; nil removes it.
func (t *Trivia) SetComment(comment *string) error {
	if comment != nil && strings.ContainsRune(*comment, '\n') {
		return ErrInvalidComment
	}
	t.comment = comment
	return nil
}

// SetTrivia replaces both whitespace and comment.
func (t *Trivia) SetTrivia(tr Trivia) {
	*t = tr
}
