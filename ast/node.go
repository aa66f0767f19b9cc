// Package ast defines the SML document tree and writes it back to
// tokenized lines, reusing recorded formatting where present.
package ast

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoValues is returned when an attribute would be left without values.
	ErrNoValues = errors.New("sml: values must contain at least one value")
	// ErrNotFound is returned when a named child does not exist.
	ErrNotFound = errors.New("sml: node not found")
)

// NodeType identifies the variant of a Node.
type NodeType int

const (
	EmptyNodeType NodeType = iota
	AttributeType
	ElementType
)

func (t NodeType) String() string {
	switch t {
	case EmptyNodeType:
		return "EmptyNode"
	case AttributeType:
		return "Attribute"
	case ElementType:
		return "Element"
	}
	return fmt.Sprintf("NodeType(%d)", int(t))
}

// Node is one of *EmptyNode, *Attribute or *Element.
type Node interface {
	// Type returns the variant of the node.
	Type() NodeType
	// Whitespaces returns the recorded whitespace of the node's line.
	Whitespaces() []string
	// Comment returns the recorded comment of the node's line.
	Comment() *string
	// String returns the node serialized on its own.
	String() string

	node()
}

// EmptyNode is a blank or comment-only line.
type EmptyNode struct {
	Trivia
}

// NewEmptyNode returns an empty node without formatting.
func NewEmptyNode() *EmptyNode { return &EmptyNode{} }

func (*EmptyNode) node()          {}
func (*EmptyNode) Type() NodeType { return EmptyNodeType }
func (n *EmptyNode) String() string {
	lines, _ := NodeLines(n, 0, nil, nil)
	return JoinLines(lines)
}

// named holds the case-insensitive name of attributes and elements.
type named struct {
	name string
}

func (n *named) Name() string          { return n.name }
func (n *named) SetName(name string)   { n.name = name }
func (n *named) HasName(s string) bool { return strings.EqualFold(n.name, s) }

// Attribute is a name followed by one or more nullable values.
type Attribute struct {
	Trivia
	named
	values []*string
}

// NewAttribute returns an attribute; values must not be empty.
func NewAttribute(name string, values []*string) (*Attribute, error) {
	a := &Attribute{named: named{name: name}}
	if err := a.SetValues(values); err != nil {
		return nil, err
	}
	return a, nil
}

func (*Attribute) node()          {}
func (*Attribute) Type() NodeType { return AttributeType }
func (a *Attribute) String() string {
	lines, _ := NodeLines(a, 0, nil, nil)
	return JoinLines(lines)
}

// Values returns the attribute's values.
func (a *Attribute) Values() []*string { return a.values }

// SetValues replaces the values. On error the attribute is unchanged.
func (a *Attribute) SetValues(values []*string) error {
	if len(values) == 0 {
		return ErrNoValues
	}
	a.values = append([]*string(nil), values...)
	return nil
}

// SetValue replaces the values with v alone.
func (a *Attribute) SetValue(v *string) {
	a.values = []*string{v}
}

// Value returns the first value.
func (a *Attribute) Value() *string { return a.values[0] }

// ValueAt returns the value at index i.
func (a *Attribute) ValueAt(i int) (*string, error) {
	if i < 0 || i >= len(a.values) {
		return nil, fmt.Errorf("%w: value index %d of attribute %q", ErrNotFound, i, a.name)
	}
	return a.values[i], nil
}
