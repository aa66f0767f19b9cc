package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/KimNorgaard/go-sml/ast"
	"github.com/KimNorgaard/go-sml/wsv"
)

// Formatter writes an SML tree ignoring recorded whitespace, comments and
// empty nodes. Lines are separated by line feeds with none after the last.
type Formatter struct {
	w          io.Writer
	indent     string
	endKeyword *string
	depth      int
	started    bool
}

// New returns a new formatter that writes to w. indent is repeated once per
// nesting level; endKeyword closes elements, nil writing the null value.
func New(w io.Writer, indent string, endKeyword *string) *Formatter {
	return &Formatter{w: w, indent: indent, endKeyword: endKeyword}
}

// Format writes the element and its descendants.
func (f *Formatter) Format(root *ast.Element) error {
	return f.writeElement(root)
}

func (f *Formatter) writeLine(s string) error {
	if f.started {
		if _, err := io.WriteString(f.w, "\n"); err != nil {
			return err
		}
	}
	f.started = true
	if _, err := io.WriteString(f.w, strings.Repeat(f.indent, f.depth)); err != nil {
		return err
	}
	_, err := io.WriteString(f.w, s)
	return err
}

func (f *Formatter) writeElement(el *ast.Element) error {
	if f.endKeyword != nil && el.HasName(*f.endKeyword) {
		return fmt.Errorf("%w '%s'", ast.ErrNameIsEndKeyword, *f.endKeyword)
	}
	name := el.Name()
	if err := f.writeLine(wsv.SerializeValue(&name)); err != nil {
		return err
	}
	f.depth++
	for _, child := range el.Nodes() {
		switch n := child.(type) {
		case *ast.Element:
			if err := f.writeElement(n); err != nil {
				return err
			}
		case *ast.Attribute:
			if err := f.writeAttribute(n); err != nil {
				return err
			}
		}
	}
	f.depth--
	return f.writeLine(wsv.SerializeValue(f.endKeyword))
}

func (f *Formatter) writeAttribute(a *ast.Attribute) error {
	name := a.Name()
	return f.writeLine(wsv.SerializeValue(&name) + " " + wsv.SerializeValues(a.Values()))
}
