package value

import "fmt"

// State is the interpreter context threaded through call dispatch.
// The value layer treats it as opaque: it only passes it along to
// Call and CallMethod implementations.
type State interface {
	// Name returns the name of the unit being evaluated.
	Name() string
	// Lookup resolves a name in the evaluation context.
	Lookup(name string) (Value, bool)
}

// Object is the interface for dynamic values exposed to the engine.
//
// Most engine values are primitives such as integers, strings or maps.
// Object lets host code expose custom types without a serialization
// step: implement Object and wrap the implementation with FromObject.
// The value takes shared ownership; all clones of that value alias the
// same object.
//
// Objects are held behind shared handles and every method receives the
// same instance, so implementations must be safe for concurrent
// invocation. Any internal mutable state needs its own locking; the
// engine supplies none.
//
// The runtime behavior of an object is determined by its Kind. Embed
// BaseObject to pick up the defaults (plain kind, not callable, no
// methods) and override only what is needed. Stringification via
// String and the separate DebugString rendering are always required.
type Object interface {
	fmt.Stringer

	// DebugString returns the developer-facing rendering of the object.
	DebugString() string

	// Kind describes the structural behavior of the object.
	//
	// The returned classification is only valid for the duration of the
	// call that produced it and must not be retained.
	Kind() ObjectKind

	// Call is invoked when the object itself is called.
	Call(state State, args []Value) (Value, error)

	// CallMethod is invoked when a named method is called on the object.
	//
	// Use ParseArgs or DecodeKwargs to convert args into typed
	// parameters.
	CallMethod(state State, name string, args []Value) (Value, error)
}

// BaseObject provides the default Object behavior: a plain kind, no
// methods and no call support. Embed it and override selectively.
type BaseObject struct{}

// Kind classifies the object as plain: it can be stringified and
// potentially called, but has no sequence or struct behavior.
func (BaseObject) Kind() ObjectKind { return ObjectKind{} }

// Call reports that the object is not callable.
func (BaseObject) Call(state State, args []Value) (Value, error) {
	_ = state
	_ = args
	return Undefined, NewError(InvalidOperation, "tried to call non callable object")
}

// CallMethod reports that no method with the given name exists.
func (BaseObject) CallMethod(state State, name string, args []Value) (Value, error) {
	_ = state
	_ = args
	return Undefined, NewError(UnknownMethod, fmt.Sprintf("object has no method named %s", name))
}

type objectKindTag uint8

const (
	kindPlain objectKindTag = iota
	kindSeq
	kindStruct
)

// ObjectKind classifies the structural behavior of an Object and, for
// sequence and struct objects, carries the capability view to drive
// iteration and field access.
//
// The zero value is the plain kind. New kinds may be added over time,
// so consumers must probe with AsSeq/AsStruct and fall back to plain
// behavior rather than assume the set is closed. A kind borrows its
// view from the object that produced it and is only valid for the
// duration of that call.
type ObjectKind struct {
	tag objectKindTag
	seq SeqObject
	st  StructObject
}

// SeqKind classifies an object as a sequence exposing the given view.
func SeqKind(seq SeqObject) ObjectKind { return ObjectKind{tag: kindSeq, seq: seq} }

// StructKind classifies an object as a struct exposing the given view.
func StructKind(st StructObject) ObjectKind { return ObjectKind{tag: kindStruct, st: st} }

// AsSeq returns the sequence view if the object is sequence-kinded.
func (k ObjectKind) AsSeq() (SeqObject, bool) { return k.seq, k.tag == kindSeq }

// AsStruct returns the struct view if the object is struct-kinded.
func (k ObjectKind) AsStruct() (StructObject, bool) { return k.st, k.tag == kindStruct }

func (k ObjectKind) String() string {
	switch k.tag {
	case kindSeq:
		return "seq"
	case kindStruct:
		return "struct"
	default:
		return "plain"
	}
}

// SeqObject is the capability for objects holding an ordered sequence
// of values (list, tuple, lazily computed range and so on).
//
// For sequences that need no custom call or display behavior, wrap the
// implementation with FromSeqObject and the engine synthesizes the
// rest of the Object surface.
type SeqObject interface {
	// GetItem looks up an item by index.
	//
	// Sequences should provide a value for every index in
	// [0, ItemCount()), but the engine treats indexes inside the range
	// for which ok is false as Undefined rather than failing.
	GetItem(idx int) (v Value, ok bool)

	// ItemCount returns the number of items in the sequence.
	ItemCount() int
}

// StructObject is the capability for objects with named fields (a map
// with string keys).
//
// For structs that need no custom call or display behavior, wrap the
// implementation with FromStructObject and the engine synthesizes the
// rest of the Object surface.
type StructObject interface {
	// GetField looks up a field by name. Absent fields report ok false.
	//
	// Field access must not have side effects: it receives no State and
	// has no error channel. Anything fallible or effectful belongs in a
	// method call instead.
	GetField(name string) (v Value, ok bool)

	// Fields enumerates the field names. Where possible this should
	// align with what GetField answers, but that is a convention, not
	// a checked invariant. Return nil for an anonymous struct.
	Fields() []string
}

// structFieldCounter is the optional fast path for FieldCount.
type structFieldCounter interface {
	FieldCount() int
}

// FieldCount returns the number of fields of a struct object. It uses
// the object's own FieldCount method when implemented and otherwise
// counts the Fields enumeration.
func FieldCount(st StructObject) int {
	if c, ok := st.(structFieldCounter); ok {
		return c.FieldCount()
	}
	return len(st.Fields())
}

// SeqIter traverses a SeqObject. It yields exactly ItemCount values:
// indexes the sequence reports as absent are produced as Undefined,
// so sparse sequences never terminate iteration early.
//
// Forward and backward cursors are independent and meet in the middle,
// which makes reversed traversal a matter of calling NextBack until
// exhaustion. An iterator borrows its sequence and is not meant to
// outlive the traversal that created it.
type SeqIter struct {
	seq   SeqObject
	front int
	back  int
}

// Iter returns a fresh iterator over the full range of seq.
func Iter(seq SeqObject) *SeqIter {
	return &SeqIter{seq: seq, back: seq.ItemCount()}
}

// Next yields the next value front to back.
func (it *SeqIter) Next() (Value, bool) {
	if it.front >= it.back {
		return Undefined, false
	}
	idx := it.front
	it.front++
	return it.item(idx), true
}

// NextBack yields the next value back to front.
func (it *SeqIter) NextBack() (Value, bool) {
	if it.front >= it.back {
		return Undefined, false
	}
	it.back--
	return it.item(it.back), true
}

// Len returns the number of values the iterator has left to yield.
func (it *SeqIter) Len() int { return it.back - it.front }

func (it *SeqIter) item(idx int) Value {
	v, ok := it.seq.GetItem(idx)
	if !ok {
		return Undefined
	}
	return v
}

// Collect drains the iterator front to back into a slice.
func (it *SeqIter) Collect() []Value {
	out := make([]Value, 0, it.Len())
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}
	return out
}

// valueSliceSeq adapts a []Value to the sequence capability by direct
// index and length forwarding.
type valueSliceSeq []Value

func (s valueSliceSeq) GetItem(idx int) (Value, bool) {
	if idx < 0 || idx >= len(s) {
		return Undefined, false
	}
	return s[idx], true
}

func (s valueSliceSeq) ItemCount() int { return len(s) }

// SeqFromSlice exposes a slice of values through the sequence
// capability. The slice is aliased, not copied.
func SeqFromSlice(items []Value) SeqObject { return valueSliceSeq(items) }

// goSliceSeq adapts a native Go slice with an element conversion.
type goSliceSeq[T any] struct {
	items []T
	conv  func(T) Value
}

func (s goSliceSeq[T]) GetItem(idx int) (Value, bool) {
	if idx < 0 || idx >= len(s.items) {
		return Undefined, false
	}
	return s.conv(s.items[idx]), true
}

func (s goSliceSeq[T]) ItemCount() int { return len(s.items) }

// SeqFromGoSlice exposes a native Go slice through the sequence
// capability, converting elements lazily on access.
func SeqFromGoSlice[T any](items []T, conv func(T) Value) SeqObject {
	return goSliceSeq[T]{items: items, conv: conv}
}
