package wsv_test

import (
	"errors"
	"testing"

	smlerrors "github.com/KimNorgaard/go-sml/errors"
	"github.com/KimNorgaard/go-sml/wsv"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		values      []*string
		whitespaces []string
		comment     *string
	}{
		{
			name:        "Empty",
			input:       "",
			values:      nil,
			whitespaces: []string{""},
		},
		{
			name:        "Only whitespace",
			input:       " \t ",
			values:      nil,
			whitespaces: []string{" \t "},
		},
		{
			name:        "Comment only",
			input:       "\t# note",
			values:      nil,
			whitespaces: []string{"\t"},
			comment:     wsv.Value(" note"),
		},
		{
			name:        "Single value",
			input:       "Root",
			values:      wsv.Values("Root"),
			whitespaces: []string{""},
		},
		{
			name:        "Indented attribute",
			input:       "\tcolor red  green",
			values:      wsv.Values("color", "red", "green"),
			whitespaces: []string{"\t", " ", "  "},
		},
		{
			name:        "Trailing whitespace",
			input:       "a b ",
			values:      wsv.Values("a", "b"),
			whitespaces: []string{"", " ", " "},
		},
		{
			name:        "Comment directly after value",
			input:       "a#c",
			values:      wsv.Values("a"),
			whitespaces: []string{"", ""},
			comment:     wsv.Value("c"),
		},
		{
			name:        "Comment after whitespace",
			input:       "a  # c",
			values:      wsv.Values("a"),
			whitespaces: []string{"", "  "},
			comment:     wsv.Value(" c"),
		},
		{
			name:        "Null value",
			input:       "a -",
			values:      []*string{wsv.Value("a"), nil},
			whitespaces: []string{"", " "},
		},
		{
			name:        "Quoted values",
			input:       `"" "-" "a b" "say ""hi""" "x"/"y"`,
			values:      wsv.Values("", "-", "a b", `say "hi"`, "x\ny"),
			whitespaces: []string{"", " ", " ", " ", " "},
		},
		{
			name:        "Quoted value followed by comment",
			input:       `"a"#c`,
			values:      wsv.Values("a"),
			whitespaces: []string{"", ""},
			comment:     wsv.Value("c"),
		},
		{
			name:        "Hash inside quotes",
			input:       `"#not a comment"`,
			values:      wsv.Values("#not a comment"),
			whitespaces: []string{""},
		},
		{
			name:        "Carriage return is whitespace",
			input:       "End\r",
			values:      wsv.Values("End"),
			whitespaces: []string{"", "\r"},
		},
		{
			name:        "Unicode whitespace",
			input:       "a　b",
			values:      wsv.Values("a", "b"),
			whitespaces: []string{"", "　"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := wsv.ParseLine(tt.input, 0)
			require.NoError(t, err)
			require.Equal(t, tt.values, line.Values)
			require.Equal(t, tt.whitespaces, line.Whitespaces)
			require.Equal(t, tt.comment, line.Comment)
		})
	}
}

func TestParseLine_Errors(t *testing.T) {
	tests := []struct {
		input  string
		kind   smlerrors.Kind
		column int
	}{
		{`"abc`, smlerrors.KindStringNotClosed, 5},
		{`ab"c`, smlerrors.KindInvalidQuote, 3},
		{`"a"b`, smlerrors.KindInvalidAfterString, 4},
		{`"a"/b`, smlerrors.KindInvalidStringLineBreak, 4},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := wsv.ParseLine(tt.input, 4)
			require.Error(t, err)
			require.True(t, errors.Is(err, &smlerrors.ParseError{Kind: tt.kind}))

			var perr *smlerrors.ParseError
			require.True(t, errors.As(err, &perr))
			require.Equal(t, 5, perr.Line)
			require.Equal(t, tt.column, perr.Column)
		})
	}
}

func TestParse(t *testing.T) {
	lines, err := wsv.Parse("Root\n\tcolor red\nEnd\n")
	require.NoError(t, err)
	require.Len(t, lines, 4)
	require.Equal(t, wsv.Values("Root"), lines[0].Values)
	require.Equal(t, wsv.Values("color", "red"), lines[1].Values)
	require.Equal(t, wsv.Values("End"), lines[2].Values)
	require.False(t, lines[3].HasValues())

	_, err = wsv.Parse("Root\n\"open\nEnd")
	require.EqualError(t, err, "sml: String not closed (line 2, column 6)")
}

func TestEqualFold(t *testing.T) {
	require.True(t, wsv.EqualFold(nil, nil))
	require.False(t, wsv.EqualFold(nil, wsv.Value("End")))
	require.False(t, wsv.EqualFold(wsv.Value("-"), nil))
	require.True(t, wsv.EqualFold(wsv.Value("END"), wsv.Value("end")))
}

func TestIsWhitespace(t *testing.T) {
	require.True(t, wsv.IsWhitespace(""))
	require.True(t, wsv.IsWhitespace(" \t  "))
	require.False(t, wsv.IsWhitespace("a"))
	require.False(t, wsv.IsWhitespace(" \ta"))
	require.True(t, wsv.IsWhitespace("\r\u00a0\u3000"))
	require.False(t, wsv.IsWhitespace("\n"))
	require.False(t, wsv.IsWhitespaceRune('\n'))
}

func TestParseLine_InvalidUTF8(t *testing.T) {
	_, err := wsv.ParseLine("a \xff", 1)
	var perr *smlerrors.ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, smlerrors.KindInvalidUTF8, perr.Kind)
	require.EqualError(t, err, "sml: Invalid UTF-8 sequence (line 2, column 3)")

	_, err = wsv.ParseLine("\"ä\" \xc3", 0)
	require.EqualError(t, err, "sml: Invalid UTF-8 sequence (line 1, column 5)")

	line, err := wsv.ParseLine("\ufffd", 0)
	require.NoError(t, err)
	require.Equal(t, wsv.Values("\ufffd"), line.Values)
}
