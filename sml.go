package sml

import (
	"bytes"
	"strings"

	"github.com/KimNorgaard/go-sml/ast"
	"github.com/KimNorgaard/go-sml/internal/formatter"
	"github.com/KimNorgaard/go-sml/internal/parser"
	"github.com/KimNorgaard/go-sml/reliabletxt"
	"github.com/KimNorgaard/go-sml/wsv"
)

// Parse parses SML text into a document that keeps every blank line,
// comment and whitespace run of the input.
//
// The end keyword is taken from the last line holding a single value unless
// the EndKeyword option is given. Any error means the input is not a valid
// document; no partial document is returned.
func Parse(text string, opts ...Option) (*ast.Document, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return parse(text, o)
}

func parse(text string, o *options) (*ast.Document, error) {
	lines, err := wsv.Parse(text)
	if err != nil {
		return nil, err
	}
	p := parser.New(lines, parser.Config{
		EndKeyword: o.endKeyword,
		MaxDepth:   o.maxDepth,
		Logger:     o.logger,
	})
	return p.Parse()
}

// ParseBytes decodes data according to its byte order mark, defaulting to
// UTF-8, and parses the text. The detected encoding is recorded on the
// document.
func ParseBytes(data []byte, opts ...Option) (*ast.Document, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	text, enc, err := reliabletxt.Decode(data)
	if err != nil {
		return nil, err
	}
	doc, err := parse(text, o)
	if err != nil {
		return nil, err
	}
	doc.SetEncoding(enc)
	return doc, nil
}

// Load reads and parses the file at path.
func Load(path string, opts ...Option) (*ast.Document, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	text, enc, err := reliabletxt.Load(path)
	if err != nil {
		return nil, err
	}
	doc, err := parse(text, o)
	if err != nil {
		return nil, err
	}
	doc.SetEncoding(enc)
	o.logger.Debug().Str("path", path).Stringer("encoding", enc).Msg("loaded document")
	return doc, nil
}

// Save writes doc to path in the document's encoding, keeping recorded
// formatting.
func Save(doc *ast.Document, path string, opts ...Option) error {
	o, err := newOptions(opts)
	if err != nil {
		return err
	}
	lines, err := doc.Lines()
	if err != nil {
		return err
	}
	if err := reliabletxt.Save(path, ast.JoinLines(lines), doc.Encoding()); err != nil {
		return err
	}
	o.logger.Debug().Str("path", path).Stringer("encoding", doc.Encoding()).Int("lines", len(lines)).Msg("saved document")
	return nil
}

// Marshal serializes doc keeping recorded whitespace and comments. Lines
// without recorded whitespace are indented with the document's default
// indentation, or tabs.
func Marshal(doc *ast.Document, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := NewEncoder(&sb, opts...).Encode(doc); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// MarshalNonPreserving serializes doc ignoring recorded whitespace,
// comments and empty nodes. Indentation is the document's default
// indentation or a tab. When minified is set, indentation is dropped and
// elements are closed with the null value, the shortest closing token.
func MarshalNonPreserving(doc *ast.Document, minified bool) (string, error) {
	indent, ok := doc.DefaultIndentation()
	if !ok {
		indent = "\t"
	}
	endKeyword := doc.EndKeyword()
	if minified {
		indent = ""
		endKeyword = nil
	}
	var buf bytes.Buffer
	if err := formatter.New(&buf, indent, endKeyword).Format(doc.Root()); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Minify is MarshalNonPreserving with minified set.
func Minify(doc *ast.Document) (string, error) {
	return MarshalNonPreserving(doc, true)
}
