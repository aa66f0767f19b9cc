/*
Package sml parses and writes SML (Simple Markup Language) documents without
losing formatting.

An SML document is a tree of elements and attributes written one per line.
An element opens with a line holding only its name and closes with a line
holding only the end keyword. Any line with two or more values is an
attribute: a name followed by its values. Blank and comment-only lines are
kept as empty nodes.

	Config
		Name "My App"   # quoted because of the space
		Tags web api
		Server
			Port 8080
		End
	End

Values are whitespace separated. A lone "-" is the null value; values
containing whitespace, '"' or '#' are double-quoted. Names compare
case-insensitively, and the end keyword is detected from the last line of
the document, so a document may close its elements with "End", "Ende" or
even "-".

1. Full-Fidelity Round Trips

Parse keeps every whitespace run and comment of the input. Marshal writes
them back unchanged, so text produced by Marshal survives any number of
Parse/Marshal cycles byte for byte:

	doc, err := sml.Parse(text)
	if err != nil {
		// handle error
	}
	server, err := doc.Root().Element("server")
	if err != nil {
		// handle error
	}
	server.AddString("Host", "localhost")

	out, err := sml.Marshal(doc)

Nodes added programmatically carry no formatting. They are indented with
the document's default indentation, or a tab per level.

2. Compact Output

MarshalNonPreserving ignores recorded formatting and drops comments and
blank lines. Minify additionally drops indentation and closes elements with
"-".

Load and Save read and write files whose encoding is marked by a byte order
mark (UTF-8, UTF-16 and UTF-32); the encoding is kept on the document.
*/
package sml
