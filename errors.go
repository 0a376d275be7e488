package pdf

import "fmt"

// A HeaderError reports that the buffer does not begin with the
// %PDF- magic marker.
type HeaderError struct {
	Pos int64
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("not a PDF file: missing %%PDF- header at offset %d", e.Pos)
}

// A ParseError reports a structural violation at a specific byte
// position: a missing closing delimiter, a malformed cross-reference
// subsection, a missing trailer or startxref marker, or an unreadable
// numeric token where one is mandatory.
type ParseError struct {
	Pos int64
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed PDF at offset %d: %s", e.Pos, e.Msg)
}

// An UnknownValueError reports a byte that does not begin any value
// known to the PDF grammar. Context holds up to 20 bytes of input
// starting at the offending position.
type UnknownValueError struct {
	Pos     int64
	Context string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("unknown value at offset %d: %q", e.Pos, e.Context)
}

func parseErrorf(pos int64, format string, args ...any) error {
	return &ParseError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
