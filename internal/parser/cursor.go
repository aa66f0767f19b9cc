package parser

import "github.com/KimNorgaard/go-sml/wsv"

// Cursor is a forward-only view over tokenized lines.
type Cursor struct {
	lines      []wsv.Line
	endKeyword *string
	index      int
}

// NewCursor returns a cursor positioned before the first line.
func NewCursor(lines []wsv.Line, endKeyword *string) *Cursor {
	return &Cursor{lines: lines, endKeyword: endKeyword}
}

// HasLine reports whether unread lines remain.
func (c *Cursor) HasLine() bool {
	return c.index < len(c.lines)
}

// IsEmptyLine reports whether the next line exists and has no values.
func (c *Cursor) IsEmptyLine() bool {
	return c.HasLine() && !c.lines[c.index].HasValues()
}

// Line returns the next line and advances past it.
func (c *Cursor) Line() wsv.Line {
	line := c.lines[c.index]
	c.index++
	return line
}

// LineValues returns the values of the next line and advances past it.
func (c *Cursor) LineValues() []*string {
	return c.Line().Values
}

// EndKeyword returns the keyword that closes elements.
func (c *Cursor) EndKeyword() *string {
	return c.endKeyword
}

// LineIndex returns the number of lines consumed so far, which is the
// 0-based index of the next line.
func (c *Cursor) LineIndex() int {
	return c.index
}
