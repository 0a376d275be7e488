// Package encoding interprets the bytes of PDF text strings.
package encoding

import (
	"unicode/utf16"

	"golang.org/x/text/unicode/norm"
)

// IsUTF16 reports whether s begins with a big-endian UTF-16 byte order
// mark.
func IsUTF16(s string) bool {
	return len(s) >= 2 && s[0] == 0xfe && s[1] == 0xff && len(s)%2 == 0
}

// UTF16Decode decodes big-endian UTF-16 text without a byte order
// mark, normalizing the result to NFKC.
func UTF16Decode(s string) string {
	var u []uint16
	for i := 0; i+1 < len(s); i += 2 {
		u = append(u, uint16(s[i])<<8|uint16(s[i+1]))
	}
	return norm.NFKC.String(string(utf16.Decode(u)))
}

func utf16DecodeLE(s string) string {
	var u []uint16
	for i := 0; i+1 < len(s); i += 2 {
		u = append(u, uint16(s[i+1])<<8|uint16(s[i]))
	}
	return norm.NFKC.String(string(utf16.Decode(u)))
}

// Decode interprets s as text: a UTF-16 byte order mark selects the
// matching UTF-16 decoding, a UTF-8 mark is stripped, and anything
// else is assumed to be UTF-8 already.
func Decode(s string) string {
	if len(s) >= 2 && len(s)%2 == 0 {
		if s[0] == 0xfe && s[1] == 0xff {
			return UTF16Decode(s[2:])
		}
		if s[0] == 0xff && s[1] == 0xfe {
			return utf16DecodeLE(s[2:])
		}
	}
	if len(s) >= 3 && s[0] == 0xef && s[1] == 0xbb && s[2] == 0xbf {
		return s[3:]
	}
	return s
}
