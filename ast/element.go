package ast

import "fmt"

// Element is a named node owning an ordered list of children. Its closing
// line carries formatting of its own.
type Element struct {
	Trivia
	named
	end   Trivia
	nodes []Node
}

// NewElement returns an element without children.
func NewElement(name string) *Element {
	return &Element{named: named{name: name}}
}

func (*Element) node()          {}
func (*Element) Type() NodeType { return ElementType }

// Text serializes the element with the end keyword "End". It fails when a
// descendant element is itself named "End".
func (e *Element) Text() (string, error) {
	lines, err := NodeLines(e, 0, nil, &defaultEndKeyword)
	if err != nil {
		return "", err
	}
	return JoinLines(lines), nil
}

// String is Text without the error. It returns an empty string when a
// descendant element is named "End".
func (e *Element) String() string {
	s, _ := e.Text()
	return s
}

// StringMinified serializes the element without indentation and with the
// null value as closing token. Recorded formatting is kept.
func (e *Element) StringMinified() string {
	noIndent := ""
	lines, _ := NodeLines(e, 0, &noIndent, nil)
	return JoinLines(lines)
}

// End returns the formatting of the closing line.
func (e *Element) End() *Trivia { return &e.end }

// EndWhitespaces returns the recorded whitespace of the closing line.
func (e *Element) EndWhitespaces() []string { return e.end.whitespaces }

// EndComment returns the recorded comment of the closing line.
func (e *Element) EndComment() *string { return e.end.comment }

// Add appends node as the last child. The element takes ownership; a node
// must not be added to more than one element.
func (e *Element) Add(node Node) {
	e.nodes = append(e.nodes, node)
}

// AddElement appends and returns a new child element.
func (e *Element) AddElement(name string) *Element {
	child := NewElement(name)
	e.Add(child)
	return child
}

// AddAttribute appends and returns a new attribute.
func (e *Element) AddAttribute(name string, values []*string) (*Attribute, error) {
	a, err := NewAttribute(name, values)
	if err != nil {
		return nil, err
	}
	e.Add(a)
	return a, nil
}

// AddString appends an attribute with the single value v.
func (e *Element) AddString(name string, v string) *Attribute {
	a := &Attribute{named: named{name: name}, values: []*string{&v}}
	e.Add(a)
	return a
}

// AddEmptyNode appends and returns a new empty node.
func (e *Element) AddEmptyNode() *EmptyNode {
	n := NewEmptyNode()
	e.Add(n)
	return n
}

// Nodes returns all children in order.
func (e *Element) Nodes() []Node { return e.nodes }

// Elements returns the child elements in order.
func (e *Element) Elements() []*Element {
	return filter[*Element](e.nodes, "", false)
}

// ElementsNamed returns the child elements whose name matches
// case-insensitively.
func (e *Element) ElementsNamed(name string) []*Element {
	return filter[*Element](e.nodes, name, true)
}

// Element returns the first child element named name.
func (e *Element) Element(name string) (*Element, error) {
	elements := e.ElementsNamed(name)
	if len(elements) == 0 {
		return nil, fmt.Errorf("%w: element %q in %q", ErrNotFound, name, e.name)
	}
	return elements[0], nil
}

// HasElements reports whether e has a child element.
func (e *Element) HasElements() bool { return len(e.Elements()) > 0 }

// HasElement reports whether e has a child element named name.
func (e *Element) HasElement(name string) bool { return len(e.ElementsNamed(name)) > 0 }

// Attributes returns the child attributes in order.
func (e *Element) Attributes() []*Attribute {
	return filter[*Attribute](e.nodes, "", false)
}

// AttributesNamed returns the child attributes whose name matches
// case-insensitively.
func (e *Element) AttributesNamed(name string) []*Attribute {
	return filter[*Attribute](e.nodes, name, true)
}

// Attribute returns the first child attribute named name.
func (e *Element) Attribute(name string) (*Attribute, error) {
	attributes := e.AttributesNamed(name)
	if len(attributes) == 0 {
		return nil, fmt.Errorf("%w: attribute %q in %q", ErrNotFound, name, e.name)
	}
	return attributes[0], nil
}

// HasAttributes reports whether e has a child attribute.
func (e *Element) HasAttributes() bool { return len(e.Attributes()) > 0 }

// HasAttribute reports whether e has a child attribute named name.
func (e *Element) HasAttribute(name string) bool { return len(e.AttributesNamed(name)) > 0 }

// EmptyNodes returns the empty children in order.
func (e *Element) EmptyNodes() []*EmptyNode {
	return filter[*EmptyNode](e.nodes, "", false)
}

// Value returns the first value of the attribute named name.
func (e *Element) Value(name string) (*string, error) {
	a, err := e.Attribute(name)
	if err != nil {
		return nil, err
	}
	return a.Value(), nil
}

func filter[T Node](nodes []Node, name string, byName bool) []T {
	var out []T
	for _, n := range nodes {
		t, ok := n.(T)
		if !ok {
			continue
		}
		if byName {
			if nn, ok := n.(interface{ HasName(string) bool }); !ok || !nn.HasName(name) {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}
