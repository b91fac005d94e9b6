package value

import (
	"math"
	"sort"
)

type valueRepr uint8

const (
	reprUndefined valueRepr = iota
	reprNone
	reprBool
	reprInt
	reprFloat
	reprString
	reprSeq
	reprMap
	reprDynamic
)

// Kind is the coarse classification of a Value as seen by an
// evaluator. Dynamic objects report Seq or Map according to their
// ObjectKind; plain objects report Plain.
type Kind uint8

const (
	KindUndefined Kind = iota
	KindNone
	KindBool
	KindNumber
	KindString
	KindSeq
	KindMap
	KindPlain
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNone:
		return "none"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSeq:
		return "seq"
	case KindMap:
		return "map"
	case KindPlain:
		return "plain"
	default:
		return "unknown"
	}
}

// Value is the engine's generic value handle. It is a small struct
// that copies cheaply; sequence, map and dynamic payloads are held by
// reference, so copies alias the same underlying data and the data
// lives as long as the longest surviving copy.
//
// The zero value is Undefined.
type Value struct {
	repr valueRepr
	// num packs the bool, int and float payloads.
	num uint64
	str string
	// ref holds []Value, map[string]Value or Object payloads.
	ref any
}

// Singleton values shared by the whole process. Undefined doubles as
// the fill element for sparse sequence iteration.
var (
	Undefined = Value{}
	None      = Value{repr: reprNone}
)

// FromBool returns a boolean value.
func FromBool(b bool) Value {
	var n uint64
	if b {
		n = 1
	}
	return Value{repr: reprBool, num: n}
}

// FromInt returns an integer value.
func FromInt(i int64) Value {
	return Value{repr: reprInt, num: uint64(i)}
}

// FromFloat returns a float value.
func FromFloat(f float64) Value {
	return Value{repr: reprFloat, num: math.Float64bits(f)}
}

// FromString returns a string value.
func FromString(s string) Value {
	return Value{repr: reprString, str: s}
}

// FromSlice returns a sequence value aliasing the given slice.
func FromSlice(items []Value) Value {
	return Value{repr: reprSeq, ref: items}
}

// FromStringMap returns a map value aliasing the given map.
func FromStringMap(m map[string]Value) Value {
	return Value{repr: reprMap, ref: m}
}

// FromObject wraps an Object implementation. Ownership of the object
// moves into the value: the object is shared between the value and all
// of its copies and must remain safe for concurrent use.
func FromObject(o Object) Value {
	return Value{repr: reprDynamic, ref: o}
}

// FromSeqObject wraps a bare sequence capability into a complete
// object, synthesizing stringification, debug rendering and kind
// classification.
func FromSeqObject(seq SeqObject) Value {
	return FromObject(&SimpleSeqObject{Seq: seq})
}

// FromStructObject wraps a bare struct capability into a complete
// object, synthesizing stringification, debug rendering and kind
// classification.
func FromStructObject(st StructObject) Value {
	return FromObject(&SimpleStructObject{Struct: st})
}

// Kind returns the coarse classification of the value.
func (v Value) Kind() Kind {
	switch v.repr {
	case reprUndefined:
		return KindUndefined
	case reprNone:
		return KindNone
	case reprBool:
		return KindBool
	case reprInt, reprFloat:
		return KindNumber
	case reprString:
		return KindString
	case reprSeq:
		return KindSeq
	case reprMap:
		return KindMap
	default:
		k := v.ref.(Object).Kind()
		if _, ok := k.AsSeq(); ok {
			return KindSeq
		}
		if _, ok := k.AsStruct(); ok {
			return KindMap
		}
		return KindPlain
	}
}

// IsUndefined reports whether the value is the Undefined sentinel.
func (v Value) IsUndefined() bool { return v.repr == reprUndefined }

// IsNone reports whether the value is None.
func (v Value) IsNone() bool { return v.repr == reprNone }

// IsTrue reports the truthiness of the value: non-zero numbers,
// non-empty strings and collections, and all plain objects are true.
func (v Value) IsTrue() bool {
	switch v.repr {
	case reprUndefined, reprNone:
		return false
	case reprBool:
		return v.num != 0
	case reprInt:
		return int64(v.num) != 0
	case reprFloat:
		return math.Float64frombits(v.num) != 0
	case reprString:
		return v.str != ""
	case reprSeq:
		return len(v.ref.([]Value)) != 0
	case reprMap:
		return len(v.ref.(map[string]Value)) != 0
	default:
		k := v.ref.(Object).Kind()
		if seq, ok := k.AsSeq(); ok {
			return seq.ItemCount() != 0
		}
		if st, ok := k.AsStruct(); ok {
			return FieldCount(st) != 0
		}
		return true
	}
}

// Bool returns the boolean payload.
func (v Value) Bool() (bool, bool) {
	if v.repr != reprBool {
		return false, false
	}
	return v.num != 0, true
}

// Int64 returns the value as an integer. Floats convert when they are
// integral.
func (v Value) Int64() (int64, bool) {
	switch v.repr {
	case reprInt:
		return int64(v.num), true
	case reprFloat:
		f := math.Float64frombits(v.num)
		if f == math.Trunc(f) && !math.IsInf(f, 0) {
			return int64(f), true
		}
	}
	return 0, false
}

// Float64 returns the value as a float.
func (v Value) Float64() (float64, bool) {
	switch v.repr {
	case reprInt:
		return float64(int64(v.num)), true
	case reprFloat:
		return math.Float64frombits(v.num), true
	}
	return 0, false
}

// AsStr returns the string payload.
func (v Value) AsStr() (string, bool) {
	if v.repr != reprString {
		return "", false
	}
	return v.str, true
}

// AsObject returns the wrapped dynamic object, if any.
func (v Value) AsObject() (Object, bool) {
	if v.repr != reprDynamic {
		return nil, false
	}
	return v.ref.(Object), true
}

// Len returns the length of the value for strings, sequences, maps and
// dynamic objects with a structural kind.
func (v Value) Len() (int, bool) {
	switch v.repr {
	case reprString:
		return len([]rune(v.str)), true
	case reprSeq:
		return len(v.ref.([]Value)), true
	case reprMap:
		return len(v.ref.(map[string]Value)), true
	case reprDynamic:
		k := v.ref.(Object).Kind()
		if seq, ok := k.AsSeq(); ok {
			return seq.ItemCount(), true
		}
		if st, ok := k.AsStruct(); ok {
			return FieldCount(st), true
		}
	}
	return 0, false
}

// GetAttr looks up a named attribute: a map entry or a struct object
// field. Absence reports ok false and is never an error.
func (v Value) GetAttr(name string) (Value, bool) {
	switch v.repr {
	case reprMap:
		item, ok := v.ref.(map[string]Value)[name]
		return item, ok
	case reprDynamic:
		if st, ok := v.ref.(Object).Kind().AsStruct(); ok {
			return st.GetField(name)
		}
	}
	return Undefined, false
}

// GetIndex looks up an element by position in a sequence-shaped value,
// or a single character of a string. Negative indexes count from the
// end.
func (v Value) GetIndex(idx int) (Value, bool) {
	switch v.repr {
	case reprString:
		runes := []rune(v.str)
		if idx < 0 {
			idx += len(runes)
		}
		if idx < 0 || idx >= len(runes) {
			return Undefined, false
		}
		return FromString(string(runes[idx])), true
	case reprSeq:
		items := v.ref.([]Value)
		if idx < 0 {
			idx += len(items)
		}
		if idx < 0 || idx >= len(items) {
			return Undefined, false
		}
		return items[idx], true
	case reprDynamic:
		if seq, ok := v.ref.(Object).Kind().AsSeq(); ok {
			if idx < 0 {
				idx += seq.ItemCount()
			}
			if idx < 0 || idx >= seq.ItemCount() {
				return Undefined, false
			}
			return seq.GetItem(idx)
		}
	}
	return Undefined, false
}

// Iter returns an iterator over a sequence-shaped value, or over the
// sorted keys of a map-shaped one.
func (v Value) Iter() (*SeqIter, bool) {
	switch v.repr {
	case reprSeq:
		return Iter(valueSliceSeq(v.ref.([]Value))), true
	case reprMap:
		m := v.ref.(map[string]Value)
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return Iter(SeqFromGoSlice(keys, FromString)), true
	case reprDynamic:
		k := v.ref.(Object).Kind()
		if seq, ok := k.AsSeq(); ok {
			return Iter(seq), true
		}
		if st, ok := k.AsStruct(); ok {
			return Iter(SeqFromGoSlice(st.Fields(), FromString)), true
		}
	}
	return nil, false
}

// Call invokes a callable value: a dynamic object's Call hook.
func (v Value) Call(state State, args []Value) (Value, error) {
	if o, ok := v.AsObject(); ok {
		return o.Call(state, args)
	}
	return Undefined, NewError(InvalidOperation, "value of type "+v.Kind().String()+" is not callable")
}

// CallMethod invokes a named method on a dynamic object value.
func (v Value) CallMethod(state State, name string, args []Value) (Value, error) {
	if o, ok := v.AsObject(); ok {
		return o.CallMethod(state, name, args)
	}
	return Undefined, NewError(UnknownMethod, "object has no method named "+name)
}
