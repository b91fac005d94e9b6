package value

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// String returns the display rendering of the value. Undefined renders
// as the empty string so it disappears in output; collections render
// in their debug form; dynamic objects defer to their own String.
func (v Value) String() string {
	switch v.repr {
	case reprUndefined:
		return ""
	case reprNone:
		return "none"
	case reprBool:
		if v.num != 0 {
			return "true"
		}
		return "false"
	case reprInt:
		return strconv.FormatInt(int64(v.num), 10)
	case reprFloat:
		return formatFloat(math.Float64frombits(v.num))
	case reprString:
		return v.str
	case reprSeq, reprMap:
		return v.DebugString()
	default:
		return v.ref.(Object).String()
	}
}

// DebugString returns the developer-facing rendering: strings are
// quoted, sequences render bracketed and comma separated, maps render
// with sorted keys.
func (v Value) DebugString() string {
	switch v.repr {
	case reprUndefined:
		return "undefined"
	case reprString:
		return strconv.Quote(v.str)
	case reprSeq:
		var b strings.Builder
		b.WriteByte('[')
		for i, item := range v.ref.([]Value) {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(item.DebugString())
		}
		b.WriteByte(']')
		return b.String()
	case reprMap:
		m := v.ref.(map[string]Value)
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var b strings.Builder
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Quote(k))
			b.WriteString(": ")
			b.WriteString(m[k].DebugString())
		}
		b.WriteByte('}')
		return b.String()
	case reprDynamic:
		return v.ref.(Object).DebugString()
	default:
		return v.String()
	}
}

// formatFloat keeps a fractional digit on integral floats so they stay
// distinguishable from integers (1.0, not 1).
func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
