package ast

import (
	"errors"
	"fmt"

	"github.com/KimNorgaard/go-sml/reliabletxt"
	"github.com/KimNorgaard/go-sml/wsv"
)

const (
	// DefaultRootName is the root name of a constructed document.
	DefaultRootName = "Root"
	// DefaultEndKeyword closes elements unless a document says otherwise.
	DefaultEndKeyword = "End"
)

// ErrInvalidIndentation is returned when a default indentation contains a
// non-whitespace character.
var ErrInvalidIndentation = errors.New("sml: indentation value contains non whitespace character")

var defaultEndKeyword = DefaultEndKeyword

// Document is a root element plus the empty lines around it.
type Document struct {
	root               *Element
	encoding           reliabletxt.Encoding
	endKeyword         *string
	defaultIndentation *string

	emptyNodesBefore []*EmptyNode
	emptyNodesAfter  []*EmptyNode
}

// New returns a document with an empty root element named "Root".
func New() *Document {
	return NewDocument(DefaultRootName)
}

// NewDocument returns a document with an empty root element.
func NewDocument(rootName string) *Document {
	kw := DefaultEndKeyword
	return &Document{
		root:       NewElement(rootName),
		encoding:   reliabletxt.UTF8,
		endKeyword: &kw,
	}
}

// Root returns the root element.
func (d *Document) Root() *Element { return d.root }

// SetRoot replaces the root element.
func (d *Document) SetRoot(root *Element) { d.root = root }

// Encoding returns the encoding the document is saved with.
func (d *Document) Encoding() reliabletxt.Encoding { return d.encoding }

// SetEncoding sets the encoding the document is saved with.
func (d *Document) SetEncoding(enc reliabletxt.Encoding) { d.encoding = enc }

// EndKeyword returns the token closing every element. A nil keyword is
// written as the null value.
func (d *Document) EndKeyword() *string { return d.endKeyword }

// SetEndKeyword sets the token closing every element.
func (d *Document) SetEndKeyword(kw *string) { d.endKeyword = kw }

// DefaultIndentation returns the indentation unit used where no whitespace
// is recorded, and whether one is configured. Without one, a tab is used.
func (d *Document) DefaultIndentation() (string, bool) {
	if d.defaultIndentation == nil {
		return "", false
	}
	return *d.defaultIndentation, true
}

// SetDefaultIndentation sets the indentation unit. It must be empty or
// whitespace only; on error the document is unchanged.
func (d *Document) SetDefaultIndentation(indent string) error {
	if !wsv.IsWhitespace(indent) {
		return fmt.Errorf("%w: %q", ErrInvalidIndentation, indent)
	}
	d.defaultIndentation = &indent
	return nil
}

// ResetDefaultIndentation removes the configured indentation unit.
func (d *Document) ResetDefaultIndentation() { d.defaultIndentation = nil }

// EmptyNodesBefore returns the empty lines preceding the root element.
func (d *Document) EmptyNodesBefore() []*EmptyNode { return d.emptyNodesBefore }

// SetEmptyNodesBefore replaces the empty lines preceding the root element.
func (d *Document) SetEmptyNodesBefore(nodes []*EmptyNode) { d.emptyNodesBefore = nodes }

// EmptyNodesAfter returns the empty lines following the root element.
func (d *Document) EmptyNodesAfter() []*EmptyNode { return d.emptyNodesAfter }

// SetEmptyNodesAfter replaces the empty lines following the root element.
func (d *Document) SetEmptyNodesAfter(nodes []*EmptyNode) { d.emptyNodesAfter = nodes }

// Lines emits the document as tokenized lines, keeping recorded
// formatting.
func (d *Document) Lines() ([]Line, error) {
	e := &emitter{}
	for _, n := range d.emptyNodesBefore {
		e.emitEmptyNode(n, 0, nil)
	}
	e.indentation = d.defaultIndentation
	e.endKeyword = d.endKeyword
	if err := e.emit(d.root, 0); err != nil {
		return nil, err
	}
	for _, n := range d.emptyNodesAfter {
		e.emitEmptyNode(n, 0, nil)
	}
	return e.lines, nil
}

// Text serializes the document keeping recorded formatting. It fails when
// an element is named like the end keyword.
func (d *Document) Text() (string, error) {
	lines, err := d.Lines()
	if err != nil {
		return "", err
	}
	return JoinLines(lines), nil
}

// String is Text without the error. It returns an empty string if an
// element is named like the end keyword.
func (d *Document) String() string {
	s, _ := d.Text()
	return s
}
