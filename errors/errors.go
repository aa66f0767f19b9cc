package errors

import "fmt"

// Kind classifies a ParseError.
type Kind int

const (
	KindUnknown Kind = iota

	// Line layer
	KindStringNotClosed
	KindInvalidQuote
	KindInvalidStringLineBreak
	KindInvalidAfterString
	KindInvalidUTF8

	// Document structure
	KindRootExpected
	KindInvalidRootStart
	KindNullElementName
	KindNullAttributeName
	KindNotClosed
	KindEndKeywordUndetectable
	KindMultipleRoots
	KindMaxDepth
)

var kindNames = map[Kind]string{
	KindUnknown:                "unknown",
	KindStringNotClosed:        "string not closed",
	KindInvalidQuote:           "invalid double quote",
	KindInvalidStringLineBreak: "invalid string line break",
	KindInvalidAfterString:     "invalid character after string",
	KindInvalidUTF8:            "invalid UTF-8",
	KindRootExpected:           "root element expected",
	KindInvalidRootStart:       "invalid root element start",
	KindNullElementName:        "null element name",
	KindNullAttributeName:      "null attribute name",
	KindNotClosed:              "element not closed",
	KindEndKeywordUndetectable: "end keyword undetectable",
	KindMultipleRoots:          "multiple root elements",
	KindMaxDepth:               "max depth exceeded",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseError represents a single error that occurred during parsing.
// Line is 1-based. Column is 1-based and only set by the line layer;
// structural errors report the offending line alone.
type ParseError struct {
	Kind    Kind
	Message string
	Line    int
	Column  int
}

// New returns a ParseError for the given 1-based line.
func New(kind Kind, line int, message string) *ParseError {
	return &ParseError{Kind: kind, Message: message, Line: line}
}

func (e *ParseError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("sml: %s (line %d, column %d)", e.Message, e.Line, e.Column)
	}
	return fmt.Sprintf("sml: %s (line %d)", e.Message, e.Line)
}

// Is reports whether target is a *ParseError of the same Kind, so callers
// can write errors.Is(err, &ParseError{Kind: KindNotClosed}).
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}
