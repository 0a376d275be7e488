// Package pdf implements reading of classic PDF files.
//
// # Overview
//
// A PDF document is a complex data format built on a fairly simple
// structure: a graph of numbered indirect objects, located through a
// cross-reference table and anchored by a trailer dictionary. This
// package decodes that structure and exposes it along with some
// wrappers to extract basic information. If more complex information
// is needed, it is possible to extract it by interpreting the
// structure exposed by this package.
//
// Specifically, a PDF is a data structure built from Values, each of
// which has one of the following Kinds:
//
//	Null, for the null object.
//	Bool, for a boolean value.
//	Number, for a number (PDF integers and reals are not distinguished).
//	String, for a string constant, written literally or in hexadecimal.
//	Name, for a name constant (as in /Helvetica).
//	Link, for an unresolved reference to an indirect object.
//	Array, for an array of values.
//	Dict, for a dictionary of name-value pairs.
//
// The accessors on Value — Bool, Float64, Name, Key, Index, and so
// on — return a view of the data as the given type. When there is no
// appropriate view, the accessor returns a zero result. Returning zero
// values this way makes it possible to traverse a PDF quickly without
// writing any error checking; on the other hand, it means that
// mistakes can go unreported.
//
// Values are plain data. A reference written as "12 0 R" stays a Link
// until it is passed to Reader.Resolve or reached through Reader.Find,
// which look the object number up in the cross-reference table and
// re-parse the object at its byte offset. Nothing is cached: resolving
// the same reference twice re-parses it twice.
//
// The package handles the classic table-based cross-reference format
// with literal byte offsets, including incremental-update chains.
// Cross-reference streams, object streams, stream filters, and
// encrypted files are out of scope.
package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/inkfold/pdf/internal/mmap"
)

// A Reader is a single PDF document open for reading.
//
// A Reader is not safe for concurrent use. Everything it exposes
// borrows from its backing buffer and is valid until Close.
type Reader struct {
	scanner
	mapping *mmap.File // owned file mapping; nil for caller-supplied buffers
	xref    XRefTable
	trailer Dict
	pages   int // lazily computed page count; -1 until first query

	nresolved int // number of indirect object resolutions performed
}

// Open opens the PDF document in the named file.
// Close should be called when done with the Reader.
func Open(file string) (*Reader, error) {
	return OpenRange(file, 0, 0)
}

// OpenRange opens the PDF document stored in the byte window
// [start, end) of the named file. An end of 0 means the end of the
// file. The window is memory-mapped; the Reader owns the mapping and
// releases it on Close.
func OpenRange(file string, start, end int64) (*Reader, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if end == 0 {
		end = fi.Size()
	}
	if start < 0 || start > end {
		return nil, fmt.Errorf("invalid byte window [%d, %d) for %s", start, end, file)
	}
	m, err := mmap.Map(f, start, end-start)
	if err != nil {
		return nil, fmt.Errorf("mapping %s: %w", file, err)
	}
	r := &Reader{
		scanner: scanner{data: m.Data()},
		mapping: m,
		xref:    make(XRefTable),
		pages:   -1,
	}
	if err := r.load(); err != nil {
		m.Close()
		return nil, err
	}
	return r, nil
}

// NewReader opens the PDF document stored in data. The bytes are not
// copied: the caller must keep data alive and unmodified for the
// Reader's entire lifetime. The Reader takes no ownership and Close is
// a no-op.
func NewReader(data []byte) (*Reader, error) {
	r := &Reader{
		scanner: scanner{data: data},
		xref:    make(XRefTable),
		pages:   -1,
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

// Close releases the file mapping, if the Reader owns one.
func (r *Reader) Close() error {
	if r.mapping != nil {
		err := r.mapping.Close()
		r.mapping = nil
		return err
	}
	return nil
}

// load locates the most recent cross-reference table via the last
// startxref marker, walks the Prev chain from the newest revision to
// the oldest, and parses the trailer dictionary.
func (r *Reader) load() error {
	if !r.matchesLiteral(0, "%PDF-") {
		return &HeaderError{Pos: 0}
	}

	sx := r.indexOfBack("startxref", r.size()-1)
	if sx < 0 {
		return parseErrorf(0, "startxref marker not found")
	}
	p := r.skipSpace(sx + int64(len("startxref")))
	xrefPos, _, ok := r.readUInt(p)
	if !ok {
		return parseErrorf(p, "cannot read cross-reference table position")
	}

	pos, err := r.parseXRefSection(int64(xrefPos), r.xref)
	if err != nil {
		return err
	}
	trailer, pos, err := r.parseTrailerDict(pos)
	if err != nil {
		return err
	}
	r.trailer = trailer

	for prev := trailer["Prev"]; prev.Kind() == NumberKind && prev.Int64() != 0; {
		pos, err = r.parseXRefSection(prev.Int64(), r.xref)
		if err != nil {
			return err
		}
		var older Dict
		older, pos, err = r.parseTrailerDict(pos)
		if err != nil {
			return err
		}
		prev = older["Prev"]
	}
	return nil
}

// parseTrailerDict parses the trailer dictionary following the trailer
// keyword at pos.
func (r *Reader) parseTrailerDict(pos int64) (Dict, int64, error) {
	pos = r.skipSpace(pos + int64(len("trailer")))
	if !r.matchesLiteral(pos, "<<") {
		return nil, pos, parseErrorf(pos, "trailer dictionary not found")
	}
	v, pos, err := r.parseDict(pos)
	if err != nil {
		return nil, pos, err
	}
	return v.data.(Dict), pos, nil
}

// Trailer returns the trailer dictionary of the most recent revision.
func (r *Reader) Trailer() Value {
	return Value{data: r.trailer}
}

// XRef returns the accumulated cross-reference table. The caller must
// not modify it.
func (r *Reader) XRef() XRefTable {
	return r.xref
}

// GetObject resolves an object number to its indirect object by
// re-parsing the object at its recorded byte offset. If the object
// number is absent from the cross-reference table or marked free,
// GetObject returns an empty Object and no error.
//
// The generation number is accepted but not used to disambiguate:
// whatever entry the table holds for the object number is returned.
func (r *Reader) GetObject(num uint32, gen uint16) (Object, error) {
	r.nresolved++
	e, ok := r.xref[num]
	if !ok || e.Free || e.Offset == 0 {
		return Object{}, nil
	}
	obj, _, err := r.parseObject(e.Offset)
	if err != nil {
		return Object{}, err
	}
	return obj, nil
}

// Resolve resolves an indirect reference to its object.
func (r *Reader) Resolve(link Ref) (Object, error) {
	return r.GetObject(link.Num, link.Gen)
}

// Find navigates a /-separated path starting at the trailer
// dictionary; a leading Trailer segment is allowed and stripped. Every
// intermediate segment is looked up in the current dictionary,
// interpreted as a reference, and resolved to the next dictionary. The
// final segment's raw value is returned without dereferencing.
//
// A missing key or an intermediate value that does not lead to a
// dictionary yields a null Value, not an error.
func (r *Reader) Find(path string) (Value, error) {
	var segs []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	if len(segs) > 0 && segs[0] == "Trailer" {
		segs = segs[1:]
	}
	if len(segs) == 0 {
		return Value{}, nil
	}
	last := segs[len(segs)-1]

	dict := r.Trailer()
	for _, seg := range segs[:len(segs)-1] {
		link := dict.Key(seg)
		if link.Kind() != LinkKind {
			return Value{}, nil
		}
		obj, err := r.Resolve(link.Link())
		if err != nil {
			return Value{}, err
		}
		if obj.Value.Kind() != DictKind {
			return Value{}, nil
		}
		dict = obj.Value
	}
	return dict.Key(last), nil
}

// PageCount returns the document's page count, read from
// /Root/Pages/Count on the first call and memoized afterward.
func (r *Reader) PageCount() (int, error) {
	if r.pages < 0 {
		v, err := r.Find("/Root/Pages/Count")
		if err != nil {
			return 0, err
		}
		r.pages = int(v.Int64())
	}
	return r.pages, nil
}
