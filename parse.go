// Recursive-descent parsing of PDF values.
//
// parseValue dispatches on the lookahead byte and returns the decoded
// Value together with the position just past it. A container whose
// closing delimiter is never found is a parse failure, not a partially
// valid value.

package pdf

func (s *scanner) parseValue(pos int64) (Value, int64, error) {
	c, ok := s.byteAt(pos)
	if !ok {
		return Value{}, pos, parseErrorf(pos, "unexpected end of input, expected a value")
	}

	switch {
	case isDigit(c):
		// A bare number, or the first number of an "N G R" reference.
		n1, p, _ := s.readNumber(pos)
		if n1 != float64(uint64(n1)) {
			return Value{data: n1}, p, nil
		}
		q := s.skipSpace(p)
		n2, q, ok := s.readUInt(q)
		if !ok {
			return Value{data: n1}, p, nil
		}
		q = s.skipSpace(q)
		if c, ok := s.byteAt(q); !ok || c != 'R' {
			return Value{data: n1}, p, nil
		}
		return Value{data: Ref{Num: uint32(uint64(n1)), Gen: uint16(n2)}}, q + 1, nil

	case c == '-' || c == '+' || c == '.':
		n, p, ok := s.readNumber(pos)
		if !ok {
			return Value{}, pos, parseErrorf(pos, "unexpected symbol %q, expected a number", c)
		}
		return Value{data: n}, p, nil

	case c == '[':
		return s.parseArray(pos)

	case c == '<':
		if c2, ok := s.byteAt(pos + 1); ok && c2 == '<' {
			return s.parseDict(pos)
		}
		return s.parseHexString(pos)

	case c == '/':
		name, p, err := s.parseName(pos)
		if err != nil {
			return Value{}, pos, err
		}
		return Value{data: name}, p, nil

	case c == '(':
		return s.parseLiteralString(pos)

	case c == 't' || c == 'f':
		if s.matchesWord(pos, "true") {
			return Value{data: true}, pos + 4, nil
		}
		if s.matchesWord(pos, "false") {
			return Value{data: false}, pos + 5, nil
		}
		return Value{}, pos, parseErrorf(pos, "unexpected symbol %q, expected a boolean", c)

	case c == 'n':
		if !s.matchesWord(pos, "null") {
			return Value{}, pos, parseErrorf(pos, "invalid null value")
		}
		return Value{}, pos + 4, nil

	case c == '%':
		p := pos
		for p < s.size() && s.data[p] != '\n' && s.data[p] != '\r' {
			p++
		}
		return s.parseValue(s.skipSpace(p))
	}

	end := pos + 20
	if end > s.size() {
		end = s.size()
	}
	return Value{}, pos, &UnknownValueError{Pos: pos, Context: string(s.data[pos:end])}
}

func (s *scanner) parseArray(start int64) (Value, int64, error) {
	var res Array
	pos := start + 1
	for pos < s.size() {
		pos = s.skipSpace(pos)
		if pos == s.size() {
			break
		}
		if s.data[pos] == ']' {
			return Value{data: res}, pos + 1, nil
		}
		var (
			v   Value
			err error
		)
		v, pos, err = s.parseValue(pos)
		if err != nil {
			return Value{}, pos, err
		}
		res = append(res, v)
	}
	return Value{}, pos, parseErrorf(pos, "closing array delimiter ']' not found")
}

func (s *scanner) parseDict(start int64) (Value, int64, error) {
	res := make(Dict)
	pos := start + 2 // past the << mark
	for pos < s.size()-1 {
		pos = s.skipSpace(pos)
		if s.matchesLiteral(pos, ">>") {
			return Value{data: res}, pos + 2, nil
		}
		name, p, err := s.parseName(pos)
		if err != nil {
			return Value{}, pos, err
		}
		pos = s.skipSpace(p)
		var v Value
		v, pos, err = s.parseValue(pos)
		if err != nil {
			return Value{}, pos, err
		}
		res[name] = v
	}
	return Value{}, pos, parseErrorf(pos, "closing dictionary delimiter '>>' not found")
}

// parseName decodes a /Name: every byte after the slash up to the next
// delimiter.
func (s *scanner) parseName(pos int64) (Name, int64, error) {
	if c, ok := s.byteAt(pos); !ok || c != '/' {
		return "", pos, parseErrorf(pos, "invalid name")
	}
	start := pos
	for pos++; pos < s.size(); pos++ {
		if s.isDelim(pos) {
			return Name(s.data[start+1 : pos]), pos, nil
		}
	}
	return "", start, parseErrorf(start, "unterminated name")
}

func unhex(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// parseHexString decodes <hex digits>. Each digit pair is one byte;
// whitespace between digits is ignored; an odd trailing digit is the
// high nibble of a final byte whose low nibble is zero.
func (s *scanner) parseHexString(start int64) (Value, int64, error) {
	var buf []byte
	first := true
	var hi int
	for pos := start + 1; pos < s.size(); pos++ {
		c := s.data[pos]
		switch {
		case c == '>':
			if !first {
				buf = append(buf, byte(hi<<4))
			}
			return Value{data: textString{raw: string(buf), enc: HexString}}, pos + 1, nil
		case isSpace(c) || c == '\v':
			// ignored
		default:
			x := unhex(c)
			if x < 0 {
				return Value{}, pos, parseErrorf(pos, "invalid hexadecimal string")
			}
			if first {
				hi = x
			} else {
				buf = append(buf, byte(hi<<4|x))
			}
			first = !first
		}
	}
	return Value{}, start, parseErrorf(start, "closing hexadecimal string delimiter '>' not found")
}

// parseLiteralString decodes (text), tracking parenthesis depth and a
// backslash escape state. Escapes follow the fixed PDF table: control
// codes, self-escaped delimiters, 1-3 digit octal codes with
// high-order overflow ignored, elided line continuations. A bare line
// break is normalized to \n. The backslash before any other character
// is dropped.
func (s *scanner) parseLiteralString(start int64) (Value, int64, error) {
	var buf []byte
	depth := 1
	esc := false
	for i := start + 1; i < s.size(); i++ {
		c := s.data[i]
		switch c {
		case '\\':
			esc = !esc
			if !esc {
				buf = append(buf, c)
			}

		case 'n':
			if esc {
				c = '\n'
			}
			buf = append(buf, c)
			esc = false
		case 'r':
			if esc {
				c = '\r'
			}
			buf = append(buf, c)
			esc = false
		case 't':
			if esc {
				c = '\t'
			}
			buf = append(buf, c)
			esc = false
		case 'b':
			if esc {
				c = '\b'
			}
			buf = append(buf, c)
			esc = false
		case 'f':
			if esc {
				c = '\f'
			}
			buf = append(buf, c)
			esc = false

		case '0', '1', '2', '3', '4', '5', '6', '7':
			if !esc {
				buf = append(buf, c)
				break
			}
			esc = false
			n := c - '0'
			j := i + 1
			for ; j < i+3 && j < s.size(); j++ {
				c = s.data[j]
				if c < '0' || c > '7' {
					break
				}
				n = n*8 + c - '0'
			}
			buf = append(buf, n)
			i = j - 1

		case '\n':
			if esc {
				// Line continuation: the break contributes nothing.
				if i+1 < s.size() && s.data[i+1] == '\r' {
					i++
				}
			} else {
				buf = append(buf, '\n')
			}
			esc = false
		case '\r':
			if i+1 < s.size() && s.data[i+1] == '\n' {
				i++
			}
			if !esc {
				buf = append(buf, '\n')
			}
			esc = false

		case '(':
			if !esc {
				depth++
			}
			buf = append(buf, c)
			esc = false
		case ')':
			if !esc {
				depth--
				if depth == 0 {
					return Value{data: textString{raw: string(buf), enc: LiteralString}}, i + 1, nil
				}
			}
			buf = append(buf, c)
			esc = false

		default:
			buf = append(buf, c)
			esc = false
		}
	}
	return Value{}, start, parseErrorf(start, "closing literal string delimiter ')' not found")
}
