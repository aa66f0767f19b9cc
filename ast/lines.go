package ast

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KimNorgaard/go-sml/wsv"
)

// ErrNameIsEndKeyword is returned when an element cannot be written
// because its name would read back as a closing line.
var ErrNameIsEndKeyword = errors.New("sml: element name matches the end keyword")

// LineKind tells which part of the tree a line was emitted for.
type LineKind int

const (
	EmptyLine LineKind = iota
	AttributeLine
	ElementStartLine
	ElementEndLine
)

// Line is a tokenized line tagged with its origin.
type Line struct {
	wsv.Line
	Kind LineKind
}

// NodeLines emits node at the given nesting level. indentation is the unit
// repeated per level where no whitespace is recorded; nil means a tab.
// endKeyword closes elements; nil writes the null value and disables the
// name check.
func NodeLines(node Node, level int, indentation, endKeyword *string) ([]Line, error) {
	e := &emitter{indentation: indentation, endKeyword: endKeyword}
	if err := e.emit(node, level); err != nil {
		return nil, err
	}
	return e.lines, nil
}

// JoinLines serializes lines separated by line feeds.
func JoinLines(lines []Line) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = wsv.SerializeLine(l.Line)
	}
	return strings.Join(parts, "\n")
}

type emitter struct {
	lines       []Line
	indentation *string
	endKeyword  *string
}

func (e *emitter) emit(node Node, level int) error {
	switch n := node.(type) {
	case *EmptyNode:
		e.emitEmptyNode(n, level, e.indentation)
	case *Attribute:
		values := make([]*string, 0, len(n.values)+1)
		values = append(values, &n.name)
		values = append(values, n.values...)
		e.add(AttributeLine, values, e.whitespaces(n.whitespaces, level), n.comment)
	case *Element:
		return e.emitElement(n, level)
	default:
		return fmt.Errorf("sml: unsupported node type %T", node)
	}
	return nil
}

func (e *emitter) emitElement(el *Element, level int) error {
	if e.endKeyword != nil && el.HasName(*e.endKeyword) {
		return fmt.Errorf("%w '%s'", ErrNameIsEndKeyword, *e.endKeyword)
	}
	e.add(ElementStartLine, []*string{&el.name}, e.whitespaces(el.whitespaces, level), el.comment)
	for _, child := range el.nodes {
		if err := e.emit(child, level+1); err != nil {
			return err
		}
	}
	e.add(ElementEndLine, []*string{e.endKeyword}, e.whitespaces(el.end.whitespaces, level), el.end.comment)
	return nil
}

func (e *emitter) emitEmptyNode(n *EmptyNode, level int, indentation *string) {
	e.add(EmptyLine, nil, indentationOf(n.whitespaces, level, indentation), n.comment)
}

func (e *emitter) add(kind LineKind, values []*string, ws []string, comment *string) {
	e.lines = append(e.lines, Line{
		Line: wsv.Line{Values: values, Whitespaces: ws, Comment: comment},
		Kind: kind,
	})
}

func (e *emitter) whitespaces(recorded []string, level int) []string {
	return indentationOf(recorded, level, e.indentation)
}

// indentationOf returns recorded when it is non-empty, else a single
// leading entry of level indentation units.
func indentationOf(recorded []string, level int, indentation *string) []string {
	if len(recorded) > 0 {
		return recorded
	}
	unit := "\t"
	if indentation != nil {
		unit = *indentation
	}
	return []string{strings.Repeat(unit, level)}
}
