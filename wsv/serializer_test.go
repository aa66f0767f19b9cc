package wsv_test

import (
	"strings"
	"testing"

	"github.com/KimNorgaard/go-sml/wsv"
	"github.com/stretchr/testify/require"
)

func TestSerializeValue(t *testing.T) {
	tests := []struct {
		name     string
		value    *string
		expected string
	}{
		{"Null", nil, "-"},
		{"Empty", wsv.Value(""), `""`},
		{"Dash", wsv.Value("-"), `"-"`},
		{"Plain", wsv.Value("abc"), "abc"},
		{"Space", wsv.Value("a b"), `"a b"`},
		{"Quote", wsv.Value(`a"b`), `"a""b"`},
		{"Hash", wsv.Value("#x"), `"#x"`},
		{"Line feed", wsv.Value("a\nb"), `"a"/"b"`},
		{"Lone line feed", wsv.Value("\n"), `""/""`},
		{"Double dash", wsv.Value("--"), "--"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, wsv.SerializeValue(tt.value))
		})
	}
}

func TestSerializeLine_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"#only",
		"  # indented comment",
		"Root",
		"\tcolor red  green",
		"a#c",
		"a  # c",
		"a b ",
		`"a b" - "" "-"`,
		`"x"/"y" z`,
		"End\r",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			line, err := wsv.ParseLine(in, 0)
			require.NoError(t, err)
			require.Equal(t, in, wsv.SerializeLine(line))
		})
	}
}

func TestSerializeLine_Synthesized(t *testing.T) {
	line := wsv.Line{
		Values:      wsv.Values("a", "b c"),
		Whitespaces: []string{"\t\t"},
		Comment:     wsv.Value("x"),
	}
	require.Equal(t, "\t\ta \"b c\" #x", wsv.SerializeLine(line))

	line = wsv.Line{Values: []*string{nil}}
	require.Equal(t, "-", wsv.SerializeLine(line))

	line = wsv.Line{Whitespaces: []string{"  "}, Comment: wsv.Value("c")}
	require.Equal(t, "  #c", wsv.SerializeLine(line))
}

func TestSerializeValues(t *testing.T) {
	require.Equal(t, `red - "a b"`, wsv.SerializeValues([]*string{wsv.Value("red"), nil, wsv.Value("a b")}))
}

func TestSerializeLines(t *testing.T) {
	lines, err := wsv.Parse("Root\n  a 1 # x\nEnd\n")
	require.NoError(t, err)
	require.Equal(t, "Root\n  a 1 # x\nEnd\n", wsv.SerializeLines(lines))
}

func TestPaintLine(t *testing.T) {
	line, err := wsv.ParseLine("\tcolor red #c", 0)
	require.NoError(t, err)

	painted := wsv.PaintLine(line, func(part wsv.Part, index int, s string) string {
		if part == wsv.PartComment {
			return "<" + s + ">"
		}
		return strings.Repeat("*", index+1) + s
	})
	require.Equal(t, "\t*color **red <#c>", painted)
}
