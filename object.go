package pdf

// An Object is one indirect object: the N G of its "N G obj" header,
// its value (almost always a dictionary, occasionally a scalar), and,
// for stream objects, the raw stream bytes.
//
// Stream is a view into the reader's buffer, not a copy. It is valid
// for as long as the underlying buffer is.
type Object struct {
	Num    uint32
	Gen    uint16
	Value  Value
	Stream []byte
}

// parseObject decodes the indirect object starting at pos. If the
// object carries a stream, its length comes from the dictionary's
// Length entry, resolved through one level of indirection when it is
// itself a reference. A missing endstream keyword is tolerated.
func (r *Reader) parseObject(pos int64) (Object, int64, error) {
	var obj Object

	num, p, ok := r.readUInt(pos)
	if !ok {
		return Object{}, pos, parseErrorf(pos, "cannot read object number")
	}
	obj.Num = uint32(num)

	p = r.skipSpace(p)
	gen, p, ok := r.readUInt(p)
	if !ok {
		return Object{}, p, parseErrorf(p, "cannot read generation number")
	}
	obj.Gen = uint16(gen)

	i := r.indexOf("obj", p)
	if i < 0 {
		return Object{}, p, parseErrorf(p, "keyword 'obj' not found")
	}
	p = r.skipSpace(i + 3)

	v, p, err := r.parseValue(p)
	if err != nil {
		return Object{}, p, err
	}
	obj.Value = v
	p = r.skipSpace(p)

	if r.matchesWord(p, "stream") {
		p = r.skipLineBreak(p + int64(len("stream")))

		var length int64
		switch lv := v.Key("Length"); lv.Kind() {
		case NumberKind:
			length = lv.Int64()
		case LinkKind:
			lo, err := r.GetObject(lv.Link().Num, lv.Link().Gen)
			if err != nil {
				return Object{}, p, err
			}
			if lo.Value.Kind() != NumberKind {
				return Object{}, p, parseErrorf(p, "stream length of object %d %d is not a number", obj.Num, obj.Gen)
			}
			length = lo.Value.Int64()
		default:
			return Object{}, p, parseErrorf(p, "incorrect stream length in object %d %d", obj.Num, obj.Gen)
		}
		if length < 0 || p+length > r.size() {
			return Object{}, p, parseErrorf(p, "stream of object %d %d overruns buffer", obj.Num, obj.Gen)
		}

		obj.Stream = r.data[p : p+length : p+length]
		p = r.skipSpace(p + length)
		if r.matchesWord(p, "endstream") {
			p += int64(len("endstream"))
		}
	}

	return obj, p, nil
}
