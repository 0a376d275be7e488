package pdf

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	"github.com/inkfold/pdf/internal/encoding"
)

// A Value is a single PDF value, such as a number, dictionary, or array.
// The zero Value is a PDF null (Kind() == NullKind, IsNull() == true).
//
// Values are plain data: a Link is an unresolved reference, and the
// Key and Index accessors return whatever the file contains, without
// following references. Use Reader.Resolve or Reader.Find to follow
// them.
type Value struct {
	data any
}

// IsNull reports whether the value is a null. It is equivalent to
// Kind() == NullKind.
func (v Value) IsNull() bool {
	return v.data == nil
}

// A ValueKind specifies the kind of data underlying a Value.
type ValueKind int

// The PDF value kinds.
const (
	NullKind ValueKind = iota
	BoolKind
	NumberKind
	StringKind
	NameKind
	LinkKind
	ArrayKind
	DictKind
)

// A Name is a PDF name, without the leading slash.
type Name string

// A Dict is a PDF dictionary, mapping names to values.
// Keys are case-sensitive and unique.
type Dict map[Name]Value

// An Array is an ordered sequence of PDF values.
type Array []Value

// A Ref identifies an indirect object: the N G of an "N G R" reference
// or an "N G obj" definition.
type Ref struct {
	Num uint32
	Gen uint16
}

func (r Ref) String() string {
	return fmt.Sprintf("%d %d R", r.Num, r.Gen)
}

// A StringEncoding records which of the two PDF string syntaxes a
// string value was written in.
type StringEncoding int

const (
	LiteralString StringEncoding = iota
	HexString
)

// textString is the data representation of a PDF string value:
// the decoded bytes plus the syntax they were written in.
type textString struct {
	raw string
	enc StringEncoding
}

// Kind reports the kind of value underlying v.
func (v Value) Kind() ValueKind {
	switch v.data.(type) {
	default:
		return NullKind
	case bool:
		return BoolKind
	case float64:
		return NumberKind
	case textString:
		return StringKind
	case Name:
		return NameKind
	case Ref:
		return LinkKind
	case Array:
		return ArrayKind
	case Dict:
		return DictKind
	}
}

// Bool returns v's boolean value.
// If v.Kind() != BoolKind, Bool returns false.
func (v Value) Bool() bool {
	x, ok := v.data.(bool)
	if !ok {
		return false
	}
	return x
}

// Float64 returns v's numeric value.
// If v.Kind() != NumberKind, Float64 returns 0.
func (v Value) Float64() float64 {
	x, ok := v.data.(float64)
	if !ok {
		return 0
	}
	return x
}

// Int64 returns v's numeric value truncated to an integer.
// If v.Kind() != NumberKind, Int64 returns 0.
func (v Value) Int64() int64 {
	x, ok := v.data.(float64)
	if !ok {
		return 0
	}
	return int64(x)
}

// RawString returns v's string value as the decoded bytes of the
// literal or hex string, before any character-set interpretation.
// If v.Kind() != StringKind, RawString returns the empty string.
func (v Value) RawString() string {
	x, ok := v.data.(textString)
	if !ok {
		return ""
	}
	return x.raw
}

// Text returns v's string value interpreted as text: if the bytes
// carry a UTF-16 or UTF-8 byte order mark the corresponding decoding
// is applied, otherwise the bytes are assumed to be UTF-8 already.
// If v.Kind() != StringKind, Text returns the empty string.
func (v Value) Text() string {
	x, ok := v.data.(textString)
	if !ok {
		return ""
	}
	return encoding.Decode(x.raw)
}

// StringEncoding reports whether a string value was written in literal
// or hexadecimal syntax. If v.Kind() != StringKind, StringEncoding
// returns LiteralString.
func (v Value) StringEncoding() StringEncoding {
	x, ok := v.data.(textString)
	if !ok {
		return LiteralString
	}
	return x.enc
}

// Name returns v's name value.
// If v.Kind() != NameKind, Name returns the empty string.
// The returned name does not include the leading slash:
// if v corresponds to the name written using the syntax /Helvetica,
// Name() == "Helvetica".
func (v Value) Name() string {
	x, ok := v.data.(Name)
	if !ok {
		return ""
	}
	return string(x)
}

// Link returns v's indirect reference.
// If v.Kind() != LinkKind, Link returns the zero Ref.
func (v Value) Link() Ref {
	x, ok := v.data.(Ref)
	if !ok {
		return Ref{}
	}
	return x
}

// Key returns the value associated with the given name key in the
// dictionary v. Like the result of the Name method, the key should not
// include a leading slash. If v.Kind() != DictKind or the key is
// absent, Key returns a null Value. The result is not dereferenced:
// a value written as an indirect reference is returned as a Link.
func (v Value) Key(key string) Value {
	x, ok := v.data.(Dict)
	if !ok {
		return Value{}
	}
	return x[Name(key)]
}

// Keys returns a sorted list of the keys in the dictionary v.
// If v.Kind() != DictKind, Keys returns nil.
func (v Value) Keys() []string {
	x, ok := v.data.(Dict)
	if !ok {
		return nil
	}
	keys := []string{} // not nil
	for k := range x {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	return keys
}

// Index returns the i'th element in the array v.
// If v.Kind() != ArrayKind or if i is outside the array bounds,
// Index returns a null Value.
func (v Value) Index(i int) Value {
	x, ok := v.data.(Array)
	if !ok || i < 0 || i >= len(x) {
		return Value{}
	}
	return x[i]
}

// Len returns the length of the array v.
// If v.Kind() != ArrayKind, Len returns 0.
func (v Value) Len() int {
	x, ok := v.data.(Array)
	if !ok {
		return 0
	}
	return len(x)
}

// String returns a textual representation of the value v.
// Note that String is not the accessor for values with
// Kind() == StringKind. To access such values, see RawString and Text.
func (v Value) String() string {
	return objfmt(v.data)
}

func objfmt(x any) string {
	switch x := x.(type) {
	default:
		return "null"
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case textString:
		if encoding.IsUTF16(x.raw) {
			return strconv.Quote(encoding.UTF16Decode(x.raw[2:]))
		}
		return strconv.Quote(x.raw)
	case Name:
		return "/" + string(x)
	case Ref:
		return x.String()
	case Dict:
		var keys []string
		for k := range x {
			keys = append(keys, string(k))
		}
		sort.Strings(keys)
		var buf bytes.Buffer
		buf.WriteString("<<")
		for i, k := range keys {
			if i > 0 {
				buf.WriteString(" ")
			}
			buf.WriteString("/")
			buf.WriteString(k)
			buf.WriteString(" ")
			buf.WriteString(objfmt(x[Name(k)].data))
		}
		buf.WriteString(">>")
		return buf.String()
	case Array:
		var buf bytes.Buffer
		buf.WriteString("[")
		for i, elem := range x {
			if i > 0 {
				buf.WriteString(" ")
			}
			buf.WriteString(objfmt(elem.data))
		}
		buf.WriteString("]")
		return buf.String()
	}
}
