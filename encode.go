package sml

import (
	"io"

	"github.com/KimNorgaard/go-sml/ast"
	"github.com/KimNorgaard/go-sml/wsv"
)

// Encoder writes SML documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes doc keeping recorded formatting. Nothing is written when
// an element is named like the end keyword.
func (e *Encoder) Encode(doc *ast.Document) error {
	o, err := newOptions(e.opts)
	if err != nil {
		return err
	}
	lines, err := doc.Lines()
	if err != nil {
		return err
	}
	for i, line := range lines {
		if i > 0 {
			if _, err := io.WriteString(e.w, "\n"); err != nil {
				return err
			}
		}
		var painter wsv.Painter
		if o.colors != nil {
			painter = o.colors.painter(line)
		}
		if _, err := io.WriteString(e.w, wsv.PaintLine(line.Line, painter)); err != nil {
			return err
		}
	}
	return nil
}
