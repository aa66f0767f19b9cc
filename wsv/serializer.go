package wsv

import "strings"

// quoteReplacer escapes the content of a quoted value.
var quoteReplacer = strings.NewReplacer(
	`"`, `""`,
	"\n", `"/"`,
)

// Part identifies the token a Painter is asked to decorate.
type Part int

const (
	PartValue Part = iota
	PartComment
)

// Painter decorates a serialized token. index is the position of the
// value within the line and is zero for comments.
type Painter func(part Part, index int, text string) string

// SerializeValue returns the literal token for v.
func SerializeValue(v *string) string {
	if v == nil {
		return "-"
	}
	s := *v
	switch {
	case s == "":
		return `""`
	case s == "-":
		return `"-"`
	case !needsQuotes(s):
		return s
	}
	return `"` + quoteReplacer.Replace(s) + `"`
}

func needsQuotes(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return r == '"' || r == '#' || r == '\n' || IsWhitespaceRune(r)
	})
}

// SerializeValues writes values separated by single spaces.
func SerializeValues(values []*string) string {
	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(SerializeValue(v))
	}
	return sb.String()
}

// SerializeLine writes line using its recorded whitespace. A missing or
// empty separator between two values is written as a single space.
func SerializeLine(line Line) string {
	return PaintLine(line, nil)
}

// PaintLine is SerializeLine with every value and the comment passed
// through p. A nil p leaves tokens untouched.
func PaintLine(line Line, p Painter) string {
	if p == nil {
		p = func(_ Part, _ int, s string) string { return s }
	}
	var sb strings.Builder
	ws := line.Whitespaces
	n := len(line.Values)
	if n == 0 {
		if len(ws) > 0 {
			sb.WriteString(ws[0])
		}
	} else {
		for i, v := range line.Values {
			switch {
			case i < len(ws) && (i == 0 || ws[i] != ""):
				sb.WriteString(ws[i])
			case i > 0:
				sb.WriteByte(' ')
			}
			sb.WriteString(p(PartValue, i, SerializeValue(v)))
		}
		if len(ws) > n {
			sb.WriteString(ws[n])
		} else if line.Comment != nil {
			sb.WriteByte(' ')
		}
	}
	if line.Comment != nil {
		sb.WriteString(p(PartComment, 0, "#"+*line.Comment))
	}
	return sb.String()
}

// SerializeLines writes lines separated by line feeds.
func SerializeLines(lines []Line) string {
	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = SerializeLine(line)
	}
	return strings.Join(parts, "\n")
}
