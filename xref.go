package pdf

// An XRefEntry records where one indirect object lives in the buffer.
// Offset is meaningless when Free is true.
type XRefEntry struct {
	Offset int64
	Num    uint32
	Gen    uint16
	Free   bool
}

// An XRefTable maps object numbers to cross-reference entries.
type XRefTable map[uint32]XRefEntry

// add inserts e unless its object number is already present. Sections
// are loaded newest revision first, so keeping the first insertion
// implements the later-revision-wins rule for incremental updates.
func (t XRefTable) add(e XRefEntry) {
	if _, ok := t[e.Num]; !ok {
		t[e.Num] = e
	}
}

// parseXRefSection reads the cross-reference section at pos into table:
// the xref keyword, then subsections of 20-byte fixed-width records
// ("%010d %05d n\r\n"), until the trailer keyword. It returns the
// position of the trailer keyword.
func (s *scanner) parseXRefSection(pos int64, table XRefTable) (int64, error) {
	pos = s.skipSpace(pos)
	if !s.matchesWord(pos, "xref") {
		return pos, parseErrorf(pos, "expected 'xref'")
	}
	pos = s.skipSpace(pos + 4)

	for {
		start, p, ok := s.readUInt(pos)
		if !ok {
			return pos, parseErrorf(pos, "cannot read object number of the first subsection entry")
		}
		p = s.skipSpace(p)
		count, p, ok := s.readUInt(p)
		if !ok {
			return p, parseErrorf(p, "cannot read subsection entry count")
		}
		p = s.skipSpace(p)
		if int64(count) > (s.size()-p)/20 {
			return p, parseErrorf(p, "cross-reference subsection of %d entries overruns buffer", count)
		}

		for i := uint64(0); i < count; i++ {
			offset, _, ok1 := s.readUInt(p)
			gen, _, ok2 := s.readUInt(p + 11)
			kind, _ := s.byteAt(p + 17)
			if !ok1 || !ok2 || kind != 'n' && kind != 'f' {
				return p, parseErrorf(p, "malformed cross-reference entry")
			}
			e := XRefEntry{Num: uint32(start + i), Gen: uint16(gen)}
			if kind == 'n' {
				e.Offset = int64(offset)
			} else {
				e.Free = true
			}
			table.add(e)
			p += 20
		}

		pos = s.skipSpace(p)
		if s.matchesLiteral(pos, "trailer") {
			return pos, nil
		}
	}
}
