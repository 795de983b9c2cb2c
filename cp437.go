package textmode

import "golang.org/x/text/encoding/charmap"

// Glyph returns the code page 437 character for a cell byte. Control codes
// render as blanks.
func Glyph(b byte) rune {
	if b < 0x20 || b == 0x7f {
		return ' '
	}
	return charmap.CodePage437.DecodeByte(b)
}

// Encode converts UTF-8 text to code page 437 bytes, suitable for
// [Console.Write]. Characters without a code page 437 equivalent become '?'.
func Encode(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r == '\n' {
			out = append(out, '\n')
			continue
		}
		b, ok := charmap.CodePage437.EncodeRune(r)
		if !ok {
			b = '?'
		}
		out = append(out, b)
	}
	return out
}
