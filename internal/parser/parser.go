package parser

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/KimNorgaard/go-sml/ast"
	smlerrors "github.com/KimNorgaard/go-sml/errors"
	"github.com/KimNorgaard/go-sml/wsv"
)

// DefaultMaxDepth bounds element nesting unless configured otherwise.
const DefaultMaxDepth = 1000

// Config controls a Parser.
type Config struct {
	// EndKeyword, when set, closes elements instead of the keyword
	// detected from the end of the input.
	EndKeyword *string
	// MaxDepth bounds element nesting; the root is at depth 1. Zero means
	// DefaultMaxDepth.
	MaxDepth int
	Logger   zerolog.Logger
}

// Parser builds a document from tokenized lines.
type Parser struct {
	lines []wsv.Line
	cfg   Config
}

// New creates a new parser.
func New(lines []wsv.Line, cfg Config) *Parser {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	return &Parser{lines: lines, cfg: cfg}
}

// Parse reads the whole input. On error no document is returned.
func (p *Parser) Parse() (*ast.Document, error) {
	endKeyword := p.cfg.EndKeyword
	if endKeyword == nil {
		kw, err := DetectEndKeyword(p.lines)
		if err != nil {
			return nil, err
		}
		endKeyword = kw
	}
	p.cfg.Logger.Debug().
		Str("end_keyword", wsv.SerializeValue(endKeyword)).
		Int("lines", len(p.lines)).
		Msg("parsing document")

	c := NewCursor(p.lines, endKeyword)
	doc := ast.New()
	doc.SetEndKeyword(endKeyword)
	doc.SetEmptyNodesBefore(readEmptyNodes(c))

	root, err := readRootElement(c)
	if err != nil {
		return nil, err
	}
	if err := p.readElementContent(c, root); err != nil {
		return nil, err
	}
	doc.SetRoot(root)

	doc.SetEmptyNodesAfter(readEmptyNodes(c))
	if c.HasLine() {
		return nil, errorAt(c, smlerrors.KindMultipleRoots, "Only one root element allowed")
	}
	return doc, nil
}

// DetectEndKeyword scans backwards for the last line holding a single
// value, skipping lines without values. The first line is never
// inspected: it opens the root element.
func DetectEndKeyword(lines []wsv.Line) (*string, error) {
	for i := len(lines) - 1; i > 0; i-- {
		values := lines[i].Values
		if len(values) == 1 {
			return values[0], nil
		}
		if len(values) > 1 {
			break
		}
	}
	return nil, smlerrors.New(smlerrors.KindEndKeywordUndetectable, len(lines), "End keyword could not be detected")
}

func readRootElement(c *Cursor) (*ast.Element, error) {
	if !c.HasLine() {
		return nil, errorAt(c, smlerrors.KindRootExpected, "Root element expected")
	}
	line := c.Line()
	if len(line.Values) != 1 || wsv.EqualFold(c.EndKeyword(), line.Values[0]) {
		return nil, errorAtLast(c, smlerrors.KindInvalidRootStart, "Invalid root element start")
	}
	name := line.Values[0]
	if name == nil {
		return nil, errorAtLast(c, smlerrors.KindNullElementName, "Null value as element name is not allowed")
	}
	root := ast.NewElement(*name)
	root.SetTrivia(ast.TriviaOf(line))
	return root, nil
}

// readElementContent reads children until root is closed. Open elements
// are kept on an explicit stack so deep input cannot exhaust the call
// stack.
func (p *Parser) readElementContent(c *Cursor, root *ast.Element) error {
	stack := []*ast.Element{root}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		if !c.HasLine() {
			return errorAtLast(c, smlerrors.KindNotClosed, "Element \""+current.Name()+"\" not closed")
		}
		line := c.Line()
		switch len(line.Values) {
		case 0:
			n := ast.NewEmptyNode()
			n.SetTrivia(ast.TriviaOf(line))
			current.Add(n)
		case 1:
			name := line.Values[0]
			if wsv.EqualFold(c.EndKeyword(), name) {
				current.End().SetTrivia(ast.TriviaOf(line))
				stack = stack[:len(stack)-1]
				continue
			}
			if name == nil {
				return errorAtLast(c, smlerrors.KindNullElementName, "Null value as element name is not allowed")
			}
			if len(stack) >= p.cfg.MaxDepth {
				return errorAtLast(c, smlerrors.KindMaxDepth, fmt.Sprintf("Maximum nesting depth of %d exceeded", p.cfg.MaxDepth))
			}
			child := ast.NewElement(*name)
			child.SetTrivia(ast.TriviaOf(line))
			current.Add(child)
			stack = append(stack, child)
		default:
			name := line.Values[0]
			if name == nil {
				return errorAtLast(c, smlerrors.KindNullAttributeName, "Null value as attribute name is not allowed")
			}
			a, err := ast.NewAttribute(*name, line.Values[1:])
			if err != nil {
				return err
			}
			a.SetTrivia(ast.TriviaOf(line))
			current.Add(a)
		}
	}
	return nil
}

func readEmptyNodes(c *Cursor) []*ast.EmptyNode {
	var nodes []*ast.EmptyNode
	for c.IsEmptyLine() {
		n := ast.NewEmptyNode()
		n.SetTrivia(ast.TriviaOf(c.Line()))
		nodes = append(nodes, n)
	}
	return nodes
}

// errorAt reports against the next unread line.
func errorAt(c *Cursor, kind smlerrors.Kind, msg string) error {
	return smlerrors.New(kind, c.LineIndex()+1, msg)
}

// errorAtLast reports against the line just consumed.
func errorAtLast(c *Cursor, kind smlerrors.Kind, msg string) error {
	return smlerrors.New(kind, c.LineIndex(), msg)
}
