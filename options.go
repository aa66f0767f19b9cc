package sml

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/KimNorgaard/go-sml/internal/parser"
)

// Option configures parsing, loading and encoding.
type Option func(*options) error

type options struct {
	maxDepth   int
	endKeyword *string
	logger     zerolog.Logger
	colors     *Colors
}

func newOptions(opts []Option) (*options, error) {
	o := &options{
		maxDepth: parser.DefaultMaxDepth,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// MaxDepth returns an Option that bounds how deeply elements may nest when
// parsing, the root element counting as depth 1. This keeps adversarial
// input from building arbitrarily deep trees.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("sml: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

// EndKeyword returns an Option that closes elements with kw instead of the
// keyword detected from the end of the input.
func EndKeyword(kw string) Option {
	return func(o *options) error {
		o.endKeyword = &kw
		return nil
	}
}

// WithLogger returns an Option that sends debug events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = l
		return nil
	}
}

// EncodeColors returns an Option that paints encoded tokens with c.
func EncodeColors(c *Colors) Option {
	return func(o *options) error {
		if c == nil {
			return fmt.Errorf("sml: colors must not be nil")
		}
		o.colors = c
		return nil
	}
}
