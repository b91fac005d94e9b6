package value

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// adder is a callable object that sums its integer arguments and
// counts invocations.
type adder struct {
	BaseObject
	calls atomic.Int64
}

func (a *adder) String() string { return "adder" }

func (a *adder) DebugString() string { return "adder()" }

func (a *adder) Call(state State, args []Value) (Value, error) {
	a.calls.Add(1)
	var sum int64
	for _, arg := range args {
		n, ok := arg.Int64()
		if !ok {
			return Undefined, NewErrorf(InvalidArguments, "cannot add %s", arg.Kind())
		}
		sum += n
	}
	return FromInt(sum), nil
}

func (a *adder) CallMethod(state State, name string, args []Value) (Value, error) {
	if name == "reset" {
		a.calls.Store(0)
		return None, nil
	}
	return a.BaseObject.CallMethod(state, name, args)
}

func TestSharedObjectForwards(t *testing.T) {
	inner := &adder{}
	h := ShareObject(inner)

	assert.Equal(t, inner.String(), h.String())
	assert.Equal(t, inner.DebugString(), h.DebugString())
	assert.Equal(t, inner.Kind().String(), h.Kind().String())

	got, err := h.Call(nil, []Value{FromInt(2), FromInt(3)})
	require.NoError(t, err)
	assert.Equal(t, "5", got.String())

	_, err = h.CallMethod(nil, "reset", nil)
	require.NoError(t, err)
	assert.Zero(t, inner.calls.Load())

	_, err = h.CallMethod(nil, "nope", nil)
	require.Error(t, err)
	assert.Equal(t, UnknownMethod, err.(*Error).Kind())
}

func TestSharedSeqObjectForwards(t *testing.T) {
	inner := point{1.0, 2.5, 3.0}
	h := ShareSeqObject(inner)

	assert.Equal(t, inner.ItemCount(), h.ItemCount())
	for i := 0; i < inner.ItemCount(); i++ {
		want, wantOK := inner.GetItem(i)
		got, gotOK := h.GetItem(i)
		require.Equal(t, wantOK, gotOK)
		assert.Equal(t, want.DebugString(), got.DebugString())
	}
	_, ok := h.GetItem(99)
	assert.False(t, ok)

	// A handle is itself a SeqObject, so it wraps like any other.
	assert.Equal(t, "[1.0, 2.5, 3.0]", FromSeqObject(h).DebugString())
}

func TestSharedStructObjectForwards(t *testing.T) {
	counted := 0
	inner := countedStruct{namedPoint: namedPoint{1, 2, 3}, counted: &counted}
	h := ShareStructObject(inner)

	assert.Equal(t, inner.Fields(), h.Fields())
	assert.Equal(t, 3, h.FieldCount())
	assert.Equal(t, 1, counted, "count override must forward through the handle")

	for _, name := range inner.Fields() {
		want, _ := inner.GetField(name)
		got, ok := h.GetField(name)
		require.True(t, ok)
		assert.Equal(t, want.DebugString(), got.DebugString())
	}
}

func TestSharedHandlesConcurrent(t *testing.T) {
	obj := ShareObject(&adder{})
	seq := ShareSeqObject(point{1.0, 2.5, 3.0})
	st := ShareStructObject(namedPoint{1.0, 2.5, 3.0})

	var g errgroup.Group
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			for j := 0; j < 100; j++ {
				got, err := obj.Call(nil, []Value{FromInt(20), FromInt(22)})
				if err != nil {
					return err
				}
				if got.String() != "42" {
					return NewErrorf(InvalidOperation, "unexpected call result %s", got)
				}

				if items := Iter(seq).Collect(); len(items) != 3 {
					return NewErrorf(InvalidOperation, "unexpected item count %d", len(items))
				}

				if v, ok := st.GetField("y"); !ok || v.String() != "2.5" {
					return NewErrorf(InvalidOperation, "unexpected field %s", v)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
