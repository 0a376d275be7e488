package pdf

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// encodeValue renders v back into PDF syntax. It exists only to drive
// round-trip tests; writing PDF is otherwise not this package's job.
func encodeValue(v Value) string {
	switch x := v.data.(type) {
	default:
		return "null"
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case Name:
		return "/" + string(x)
	case Ref:
		return fmt.Sprintf("%d %d R", x.Num, x.Gen)
	case textString:
		if x.enc == HexString {
			var b strings.Builder
			b.WriteByte('<')
			for i := 0; i < len(x.raw); i++ {
				fmt.Fprintf(&b, "%02X", x.raw[i])
			}
			b.WriteByte('>')
			return b.String()
		}
		var b strings.Builder
		b.WriteByte('(')
		for i := 0; i < len(x.raw); i++ {
			switch c := x.raw[i]; {
			case c == '(' || c == ')' || c == '\\':
				b.WriteByte('\\')
				b.WriteByte(c)
			case c < 0x20 || c >= 0x7f:
				fmt.Fprintf(&b, "\\%03o", c)
			default:
				b.WriteByte(c)
			}
		}
		b.WriteByte(')')
		return b.String()
	case Array:
		elems := make([]string, len(x))
		for i, e := range x {
			elems[i] = encodeValue(e)
		}
		return "[" + strings.Join(elems, " ") + "]"
	case Dict:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, string(k))
		}
		sort.Strings(keys)
		var b strings.Builder
		b.WriteString("<<")
		for _, k := range keys {
			b.WriteString(" /")
			b.WriteString(k)
			b.WriteByte(' ')
			b.WriteString(encodeValue(x[Name(k)]))
		}
		b.WriteString(" >>")
		return b.String()
	}
}
