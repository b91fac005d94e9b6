package value

// Shared handles forward every capability operation unchanged to an
// inner implementation, so holding an object through a handle is
// indistinguishable from holding it directly. They exist for nested
// composition: an object that stores another, already shared object
// can expose it without re-wrapping or copying.

// SharedObject is a copyable handle to an Object.
type SharedObject struct {
	inner Object
}

// ShareObject wraps an object in a forwarding handle.
func ShareObject(inner Object) SharedObject { return SharedObject{inner: inner} }

// Inner returns the wrapped object.
func (s SharedObject) Inner() Object { return s.inner }

func (s SharedObject) String() string { return s.inner.String() }

func (s SharedObject) DebugString() string { return s.inner.DebugString() }

func (s SharedObject) Kind() ObjectKind { return s.inner.Kind() }

func (s SharedObject) Call(state State, args []Value) (Value, error) {
	return s.inner.Call(state, args)
}

func (s SharedObject) CallMethod(state State, name string, args []Value) (Value, error) {
	return s.inner.CallMethod(state, name, args)
}

// SharedSeqObject is a copyable handle to a SeqObject.
type SharedSeqObject struct {
	inner SeqObject
}

// ShareSeqObject wraps a sequence capability in a forwarding handle.
func ShareSeqObject(inner SeqObject) SharedSeqObject { return SharedSeqObject{inner: inner} }

// Inner returns the wrapped sequence.
func (s SharedSeqObject) Inner() SeqObject { return s.inner }

func (s SharedSeqObject) GetItem(idx int) (Value, bool) { return s.inner.GetItem(idx) }

func (s SharedSeqObject) ItemCount() int { return s.inner.ItemCount() }

// SharedStructObject is a copyable handle to a StructObject. It also
// forwards the optional FieldCount fast path when the inner
// implementation provides one.
type SharedStructObject struct {
	inner StructObject
}

// ShareStructObject wraps a struct capability in a forwarding handle.
func ShareStructObject(inner StructObject) SharedStructObject {
	return SharedStructObject{inner: inner}
}

// Inner returns the wrapped struct.
func (s SharedStructObject) Inner() StructObject { return s.inner }

func (s SharedStructObject) GetField(name string) (Value, bool) { return s.inner.GetField(name) }

func (s SharedStructObject) Fields() []string { return s.inner.Fields() }

func (s SharedStructObject) FieldCount() int { return FieldCount(s.inner) }
