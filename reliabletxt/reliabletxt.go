// Package reliabletxt reads and writes text files whose encoding is marked
// by a byte order mark.
package reliabletxt

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// Encoding identifies one of the supported Unicode encodings.
type Encoding int

const (
	UTF8 Encoding = iota
	UTF16
	UTF16Reverse
	UTF32
)

// ErrInvalidUTF8 is returned when UTF-8 input is malformed.
var ErrInvalidUTF8 = errors.New("reliabletxt: invalid UTF-8")

var preambles = []struct {
	enc Encoding
	bom []byte
}{
	// UTF-32 first: its big endian mark starts with two zero bytes no
	// other mark begins with.
	{UTF32, []byte{0x00, 0x00, 0xFE, 0xFF}},
	{UTF8, []byte{0xEF, 0xBB, 0xBF}},
	{UTF16, []byte{0xFE, 0xFF}},
	{UTF16Reverse, []byte{0xFF, 0xFE}},
}

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "UTF-8"
	case UTF16:
		return "UTF-16"
	case UTF16Reverse:
		return "UTF-16 Reverse"
	case UTF32:
		return "UTF-32"
	}
	return fmt.Sprintf("Encoding(%d)", int(e))
}

func (e Encoding) codec() (encoding.Encoding, error) {
	switch e {
	case UTF8:
		return unicode.UTF8BOM, nil
	case UTF16:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), nil
	case UTF16Reverse:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case UTF32:
		return utf32.UTF32(utf32.BigEndian, utf32.UseBOM), nil
	}
	return nil, fmt.Errorf("reliabletxt: unsupported encoding %v", e)
}

// Detect returns the encoding announced by the byte order mark at the
// start of data.
func Detect(data []byte) (Encoding, bool) {
	for _, p := range preambles {
		if bytes.HasPrefix(data, p.bom) {
			return p.enc, true
		}
	}
	return UTF8, false
}

// Decode converts data to text. Data without a byte order mark is read as
// UTF-8.
func Decode(data []byte) (string, Encoding, error) {
	enc, _ := Detect(data)
	if enc == UTF8 && !utf8.Valid(data) {
		return "", enc, ErrInvalidUTF8
	}
	codec, err := enc.codec()
	if err != nil {
		return "", enc, err
	}
	text, err := codec.NewDecoder().Bytes(data)
	if err != nil {
		return "", enc, fmt.Errorf("reliabletxt: decoding %v: %w", enc, err)
	}
	return string(text), enc, nil
}

// Encode converts text to enc, starting with its byte order mark.
func Encode(text string, enc Encoding) ([]byte, error) {
	codec, err := enc.codec()
	if err != nil {
		return nil, err
	}
	data, err := codec.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("reliabletxt: encoding %v: %w", enc, err)
	}
	return data, nil
}

// Load reads and decodes the file at path.
func Load(path string) (string, Encoding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", UTF8, err
	}
	return Decode(data)
}

// Save encodes text and writes it to path.
func Save(path, text string, enc Encoding) error {
	data, err := Encode(text, enc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
