package value

import (
	"fmt"
	"math"
)

// FromGoValue converts a plain Go value to an engine value.
// Supported types: nil, string, bool, int, int64, float64, []string,
// []any, map[string]any, and Value itself (returned unchanged).
func FromGoValue(v any) (Value, error) {
	if v == nil {
		return None, nil
	}

	switch val := v.(type) {
	case Value:
		return val, nil

	case string:
		return FromString(val), nil

	case bool:
		return FromBool(val), nil

	case int:
		return FromInt(int64(val)), nil

	case int64:
		return FromInt(val), nil

	case float64:
		return FromFloat(val), nil

	case []string:
		items := make([]Value, len(val))
		for i, s := range val {
			items[i] = FromString(s)
		}
		return FromSlice(items), nil

	case []any:
		items := make([]Value, len(val))
		for i, item := range val {
			ev, err := FromGoValue(item)
			if err != nil {
				return Undefined, fmt.Errorf("list index %d: %w", i, err)
			}
			items[i] = ev
		}
		return FromSlice(items), nil

	case map[string]any:
		m := make(map[string]Value, len(val))
		for k, item := range val {
			ev, err := FromGoValue(item)
			if err != nil {
				return Undefined, fmt.Errorf("map key %q: %w", k, err)
			}
			m[k] = ev
		}
		return FromStringMap(m), nil

	default:
		return Undefined, fmt.Errorf("unsupported type: %T", v)
	}
}

// ToGoValue converts an engine value back to a plain Go value.
// Returns: nil, string, bool, int64, float64, []any or map[string]any.
// Dynamic objects convert through their structural kind; plain objects
// convert to their string rendering.
func ToGoValue(v Value) any {
	switch v.repr {
	case reprUndefined, reprNone:
		return nil
	case reprBool:
		return v.num != 0
	case reprInt:
		return int64(v.num)
	case reprFloat:
		return math.Float64frombits(v.num)
	case reprString:
		return v.str
	case reprSeq:
		items := v.ref.([]Value)
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = ToGoValue(item)
		}
		return out
	case reprMap:
		m := v.ref.(map[string]Value)
		out := make(map[string]any, len(m))
		for k, item := range m {
			out[k] = ToGoValue(item)
		}
		return out
	default:
		obj := v.ref.(Object)
		k := obj.Kind()
		if seq, ok := k.AsSeq(); ok {
			out := make([]any, 0, seq.ItemCount())
			it := Iter(seq)
			for item, more := it.Next(); more; item, more = it.Next() {
				out = append(out, ToGoValue(item))
			}
			return out
		}
		if st, ok := k.AsStruct(); ok {
			fields := st.Fields()
			out := make(map[string]any, len(fields))
			for _, name := range fields {
				fv, present := st.GetField(name)
				if !present {
					fv = Undefined
				}
				out[name] = ToGoValue(fv)
			}
			return out
		}
		return obj.String()
	}
}
