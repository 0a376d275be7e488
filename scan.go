// Byte-level scanning primitives over a PDF buffer.
//
// All primitives are pure functions of an immutable byte slice and a
// zero-based position. Positions out of range are rejected rather than
// read past, and every parse step returns the new position explicitly.

package pdf

import "bytes"

// A scanner provides position-addressed access to a PDF byte buffer.
type scanner struct {
	data []byte
}

func (s *scanner) size() int64 {
	return int64(len(s.data))
}

// byteAt returns the byte at pos, or ok == false if pos is out of range.
func (s *scanner) byteAt(pos int64) (byte, bool) {
	if pos < 0 || pos >= s.size() {
		return 0, false
	}
	return s.data[pos], true
}

func isSpace(c byte) bool {
	switch c {
	case '\x00', '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

func isDelimByte(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isDelim reports whether the byte at pos is whitespace or one of the
// PDF delimiter characters ()<>[]{}/%.
func (s *scanner) isDelim(pos int64) bool {
	c, ok := s.byteAt(pos)
	if !ok {
		return false
	}
	return isSpace(c) || isDelimByte(c)
}

// skipSpace advances past ASCII whitespace and returns the new
// position. The position is returned unchanged if there is none.
func (s *scanner) skipSpace(pos int64) int64 {
	for pos >= 0 && pos < s.size() && isSpace(s.data[pos]) {
		pos++
	}
	return pos
}

// skipLineBreak advances past consecutive \n and \r bytes.
func (s *scanner) skipLineBreak(pos int64) int64 {
	for pos >= 0 && pos < s.size() && (s.data[pos] == '\n' || s.data[pos] == '\r') {
		pos++
	}
	return pos
}

// indexOf returns the position of the first occurrence of str at or
// after from, or -1 if there is none.
func (s *scanner) indexOf(str string, from int64) int64 {
	if from < 0 {
		from = 0
	}
	if from > s.size() {
		return -1
	}
	i := bytes.Index(s.data[from:], []byte(str))
	if i < 0 {
		return -1
	}
	return from + int64(i)
}

// indexOfBack returns the position of the last occurrence of str that
// ends at or before from, or -1 if there is none. Scanning backward
// from the end of the buffer locates the final startxref marker in a
// file holding several historical ones.
func (s *scanner) indexOfBack(str string, from int64) int64 {
	end := from + int64(len(str))
	if end > s.size() {
		end = s.size()
	}
	if end < 0 {
		return -1
	}
	i := bytes.LastIndex(s.data[:end], []byte(str))
	if i < 0 {
		return -1
	}
	return int64(i)
}

// readUInt parses a run of ASCII digits starting exactly at pos.
// It returns the value, the position after the last digit, and whether
// any digit was consumed. Absence of a digit is recoverable: the
// caller decides whether it is fatal.
func (s *scanner) readUInt(pos int64) (uint64, int64, bool) {
	if pos < 0 {
		return 0, pos, false
	}
	p := pos
	var n uint64
	for p < s.size() && isDigit(s.data[p]) {
		n = n*10 + uint64(s.data[p]-'0')
		p++
	}
	if p == pos {
		return 0, pos, false
	}
	return n, p, true
}

// readNumber parses an optionally signed decimal number with at most
// one fractional part, starting exactly at pos. It returns the value,
// the position after the number, and whether at least one digit was
// consumed.
func (s *scanner) readNumber(pos int64) (float64, int64, bool) {
	if pos < 0 {
		return 0, pos, false
	}
	p := pos
	sign := 1.0
	if c, ok := s.byteAt(p); ok && (c == '+' || c == '-') {
		if c == '-' {
			sign = -1
		}
		p++
	}
	var x float64
	ndigit := 0
	for p < s.size() && isDigit(s.data[p]) {
		x = x*10 + float64(s.data[p]-'0')
		p++
		ndigit++
	}
	if c, ok := s.byteAt(p); ok && c == '.' {
		q := p + 1
		frac, scale := 0.0, 1.0
		for q < s.size() && isDigit(s.data[q]) {
			frac = frac*10 + float64(s.data[q]-'0')
			scale *= 10
			q++
			ndigit++
		}
		if q > p+1 {
			x += frac / scale
			p = q
		} else if ndigit > 0 {
			// Trailing dot with no fraction, as in "12.".
			p = q
		}
	}
	if ndigit == 0 {
		return 0, pos, false
	}
	return sign * x, p, true
}

// matchesLiteral reports whether the bytes at pos are exactly str.
func (s *scanner) matchesLiteral(pos int64, str string) bool {
	if pos < 0 || pos+int64(len(str)) > s.size() {
		return false
	}
	return string(s.data[pos:pos+int64(len(str))]) == str
}

// matchesWord reports whether the bytes at pos are exactly str followed
// by a delimiter or the end of the buffer. This keeps a word such as
// "true" from matching inside a longer token.
func (s *scanner) matchesWord(pos int64, str string) bool {
	if !s.matchesLiteral(pos, str) {
		return false
	}
	end := pos + int64(len(str))
	return end == s.size() || s.isDelim(end)
}
