package message

import (
	"strings"

	"github.com/c360/chatstreams/errors"
)

// The canonical textual form of a message interleaves escaped plain runs with
// reference blocks like "{at:123456789}". To keep plain text unambiguous the
// characters \ [ ] { } are reserved and encoded as:
//
//	\ -> \\    [ -> \[    ] -> \]    { -> [[    } -> ]]
//
// Escape is injective and Unescape(Escape(s)) == s for every s.

const reservedChars = `\[]{}`

// Escape encodes the reserved characters of a plain text run for inclusion
// in the canonical stringified form. All other bytes pass through unchanged.
func Escape(unescaped string) string {
	var b strings.Builder
	b.Grow(len(unescaped))

	offset := 0
	for {
		pos := strings.IndexAny(unescaped[offset:], reservedChars)
		if pos < 0 {
			break
		}
		pos += offset
		b.WriteString(unescaped[offset:pos])
		switch unescaped[pos] {
		case '\\':
			b.WriteString(`\\`)
		case '[':
			b.WriteString(`\[`)
		case ']':
			b.WriteString(`\]`)
		case '{':
			b.WriteString("[[")
		case '}':
			b.WriteString("]]")
		}
		offset = pos + 1
	}
	b.WriteString(unescaped[offset:])
	return b.String()
}

// Unescape decodes a string produced by Escape. A reserved lead byte with a
// missing or disallowed continuation yields a MalformedEscapeError.
//
// Lead bytes are \ (followed by one of \ [ ]), [ (followed by [, decoding to
// {), and ] (followed by ], decoding to }). Bare [ or ] with any other
// continuation never appear in valid escaped text.
func Unescape(escaped string) (string, error) {
	var b strings.Builder
	b.Grow(len(escaped))

	offset := 0
	for {
		pos := strings.IndexAny(escaped[offset:], `\[]`)
		if pos < 0 {
			break
		}
		pos += offset
		if pos == len(escaped)-1 {
			return "", &errors.MalformedEscapeError{Input: escaped, Pos: pos}
		}
		b.WriteString(escaped[offset:pos])

		next := escaped[pos+1]
		switch escaped[pos] {
		case '[':
			if next != '[' {
				return "", &errors.MalformedEscapeError{Input: escaped, Pos: pos}
			}
			b.WriteByte('{')
		case ']':
			if next != ']' {
				return "", &errors.MalformedEscapeError{Input: escaped, Pos: pos}
			}
			b.WriteByte('}')
		default: // '\\'
			if next != '\\' && next != '[' && next != ']' {
				return "", &errors.MalformedEscapeError{Input: escaped, Pos: pos}
			}
			b.WriteByte(next)
		}
		offset = pos + 2
	}
	b.WriteString(escaped[offset:])
	return b.String(), nil
}
