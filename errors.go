package sml

import (
	"errors"

	"github.com/KimNorgaard/go-sml/ast"
	smlerrors "github.com/KimNorgaard/go-sml/errors"
)

// ParseError is the error returned for malformed input. It carries the
// 1-based line of the failure.
type ParseError = smlerrors.ParseError

// Errors returned when building or writing a document.
var (
	ErrNoValues           = ast.ErrNoValues
	ErrNotFound           = ast.ErrNotFound
	ErrInvalidIndentation = ast.ErrInvalidIndentation
	ErrNameIsEndKeyword   = ast.ErrNameIsEndKeyword
)

// IsSyntaxError reports whether err was caused by malformed input, as
// opposed to an I/O or encoding failure.
func IsSyntaxError(err error) bool {
	var perr *ParseError
	return errors.As(err, &perr)
}
