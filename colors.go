package sml

import (
	"github.com/fatih/color"

	"github.com/KimNorgaard/go-sml/ast"
	"github.com/KimNorgaard/go-sml/wsv"
)

// ColorAttr names the role of a token in colored output.
type ColorAttr int

const (
	ElementColor ColorAttr = iota
	AttributeColor
	ValueColor
	NullColor
	EndKeywordColor
	CommentColor
)

// Colors maps token roles to painting functions. Roles missing from Map
// are painted with Default.
type Colors struct {
	Default func(string) string
	Map     map[ColorAttr]func(string) string
}

// NewColors returns the default palette. Painting follows color.NoColor,
// so output is plain when stdout is not a terminal.
func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string) string{
			ElementColor:    sprint(color.RGB(128, 168, 196).Add(color.Bold)),
			AttributeColor:  sprint(color.RGB(196, 96, 16)),
			ValueColor:      sprint(color.RGB(8, 196, 16)),
			NullColor:       sprint(color.RGB(168, 0, 196)),
			EndKeywordColor: sprint(color.RGB(196, 128, 128)),
			CommentColor:    sprint(color.New(color.FgBlue)),
		},
	}
}

func sprint(c *color.Color) func(string) string {
	f := c.SprintFunc()
	return func(s string) string { return f(s) }
}

func colorDefault(s string) string { return s }

// Color paints s in the color of a.
func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

// Get returns the painting function of a.
func (c *Colors) Get(a ColorAttr) func(string) string {
	if f := c.Map[a]; f != nil {
		return f
	}
	if c.Default != nil {
		return c.Default
	}
	return colorDefault
}

// painter decides the role of every token of line from its kind.
func (c *Colors) painter(line ast.Line) wsv.Painter {
	return func(part wsv.Part, index int, s string) string {
		if part == wsv.PartComment {
			return c.Color(CommentColor, s)
		}
		switch line.Kind {
		case ast.ElementStartLine:
			return c.Color(ElementColor, s)
		case ast.ElementEndLine:
			return c.Color(EndKeywordColor, s)
		case ast.AttributeLine:
			if index == 0 {
				return c.Color(AttributeColor, s)
			}
			if line.Values[index] == nil {
				return c.Color(NullColor, s)
			}
			return c.Color(ValueColor, s)
		}
		return c.Color(ValueColor, s)
	}
}
