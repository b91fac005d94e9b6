package value

import (
	"strconv"
	"strings"
)

// SimpleSeqObject completes a bare SeqObject into a full Object for
// the common case of pure data exposure: it classifies the object as a
// sequence and synthesizes a bracketed, comma-separated rendering of
// the debug-formatted elements. Use FromSeqObject rather than
// constructing it directly unless custom field wiring is needed.
type SimpleSeqObject struct {
	BaseObject
	Seq SeqObject
}

func (s *SimpleSeqObject) Kind() ObjectKind { return SeqKind(s.Seq) }

func (s *SimpleSeqObject) String() string { return s.DebugString() }

func (s *SimpleSeqObject) DebugString() string {
	var b strings.Builder
	b.WriteByte('[')
	it := Iter(s.Seq)
	for i := 0; ; i++ {
		v, ok := it.Next()
		if !ok {
			break
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.DebugString())
	}
	b.WriteByte(']')
	return b.String()
}

// SimpleStructObject completes a bare StructObject into a full Object:
// it classifies the object as a struct and synthesizes a map-form
// rendering of `name: value` pairs in Fields enumeration order. Fields
// that GetField does not answer render as undefined.
type SimpleStructObject struct {
	BaseObject
	Struct StructObject
}

func (s *SimpleStructObject) Kind() ObjectKind { return StructKind(s.Struct) }

func (s *SimpleStructObject) String() string { return s.DebugString() }

func (s *SimpleStructObject) DebugString() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, name := range s.Struct.Fields() {
		if i > 0 {
			b.WriteString(", ")
		}
		v, ok := s.Struct.GetField(name)
		if !ok {
			v = Undefined
		}
		b.WriteString(strconv.Quote(name))
		b.WriteString(": ")
		b.WriteString(v.DebugString())
	}
	b.WriteByte('}')
	return b.String()
}
