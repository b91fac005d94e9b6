package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromGoValue(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    string
		wantErr bool
	}{
		{
			name:  "nil",
			input: nil,
			want:  "none",
		},
		{
			name:  "string",
			input: "hello",
			want:  `"hello"`,
		},
		{
			name:  "int",
			input: 42,
			want:  "42",
		},
		{
			name:  "int64",
			input: int64(123456789),
			want:  "123456789",
		},
		{
			name:  "float64",
			input: 3.14,
			want:  "3.14",
		},
		{
			name:  "bool",
			input: true,
			want:  "true",
		},
		{
			name:  "string slice",
			input: []string{"a", "b"},
			want:  `["a", "b"]`,
		},
		{
			name:  "any slice",
			input: []any{"x", 1, true},
			want:  `["x", 1, true]`,
		},
		{
			name:  "map",
			input: map[string]any{"key": "value"},
			want:  `{"key": "value"}`,
		},
		{
			name:  "nested",
			input: map[string]any{"items": []any{1, nil}},
			want:  `{"items": [1, none]}`,
		},
		{
			name:    "unsupported",
			input:   make(chan int),
			wantErr: true,
		},
		{
			name:    "unsupported nested",
			input:   []any{func() {}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromGoValue(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.DebugString())
		})
	}
}

func TestFromGoValuePassthrough(t *testing.T) {
	v := FromSeqObject(point{1, 2, 3})
	got, err := FromGoValue(v)
	require.NoError(t, err)
	assert.Equal(t, v.DebugString(), got.DebugString())
}

func TestToGoValue(t *testing.T) {
	tests := []struct {
		name  string
		input Value
		want  any
	}{
		{name: "undefined", input: Undefined, want: nil},
		{name: "none", input: None, want: nil},
		{name: "bool", input: FromBool(true), want: true},
		{name: "int", input: FromInt(7), want: int64(7)},
		{name: "float", input: FromFloat(2.5), want: 2.5},
		{name: "string", input: FromString("s"), want: "s"},
		{
			name:  "seq",
			input: FromSlice([]Value{FromInt(1), FromString("a")}),
			want:  []any{int64(1), "a"},
		},
		{
			name:  "map",
			input: FromStringMap(map[string]Value{"k": FromBool(false)}),
			want:  map[string]any{"k": false},
		},
		{
			name:  "dynamic seq",
			input: FromSeqObject(point{1.0, 2.5, 3.0}),
			want:  []any{1.0, 2.5, 3.0},
		},
		{
			name:  "dynamic struct",
			input: FromStructObject(namedPoint{1.0, 2.5, 3.0}),
			want:  map[string]any{"x": 1.0, "y": 2.5, "z": 3.0},
		},
		{
			name:  "plain object",
			input: FromObject(plainObject{}),
			want:  "plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToGoValue(tt.input))
		})
	}
}

func TestGoRoundTrip(t *testing.T) {
	input := map[string]any{
		"name":  "report",
		"count": int64(3),
		"tags":  []any{"a", "b"},
		"meta":  map[string]any{"draft": true},
	}
	v, err := FromGoValue(input)
	require.NoError(t, err)
	assert.Equal(t, input, ToGoValue(v))
}
