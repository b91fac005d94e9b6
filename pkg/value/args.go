package value

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Optional marks a trailing ParseArgs parameter that callers may omit.
// Set reports whether an argument was provided.
type Optional[T any] struct {
	Value T
	Set   bool
}

type optionalTarget interface {
	setFromValue(v Value) error
}

func (o *Optional[T]) setFromValue(v Value) error {
	if err := decodeInto(v, &o.Value); err != nil {
		return err
	}
	o.Set = true
	return nil
}

// Rest captures all remaining positional arguments when used as the
// last ParseArgs target.
type Rest []Value

// ParseArgs decodes the raw ordered argument list of a call into typed
// Go parameters. Each target must be a pointer: *Value takes the
// argument unconverted, *Rest swallows the remaining arguments, and
// *Optional[T] marks a parameter that may be absent. Everything else
// is converted from the argument's Go shape, so *string, *int64,
// *float64, *bool and tagged struct pointers all work.
//
// Required parameters missing from args fail with MissingArgument,
// surplus arguments fail with TooManyArguments, and conversion
// failures fail with InvalidArguments.
func ParseArgs(args []Value, targets ...any) error {
	idx := 0
	for i, target := range targets {
		if rest, ok := target.(*Rest); ok {
			if i != len(targets)-1 {
				return NewError(InvalidArguments, "rest parameter must be last")
			}
			*rest = append(Rest(nil), args[idx:]...)
			return nil
		}

		opt, isOpt := target.(optionalTarget)
		if idx >= len(args) {
			if isOpt {
				continue
			}
			return NewErrorf(MissingArgument, "missing argument #%d", i+1)
		}

		arg := args[idx]
		idx++
		var err error
		if isOpt {
			err = opt.setFromValue(arg)
		} else {
			err = decodeInto(arg, target)
		}
		if err != nil {
			return WrapError(InvalidArguments, fmt.Sprintf("argument #%d", i+1), err)
		}
	}
	if idx < len(args) {
		return NewErrorf(TooManyArguments, "expected at most %d arguments, got %d", idx, len(args))
	}
	return nil
}

// DecodeKwargs decodes a map-shaped value onto a mapstructure-tagged
// struct, for calls that take keyword-style options as their final
// argument.
func DecodeKwargs(v Value, target any) error {
	if v.Kind() != KindMap {
		return NewErrorf(InvalidArguments, "expected keyword arguments, got %s", v.Kind())
	}
	if err := decodeInto(v, target); err != nil {
		return WrapError(InvalidArguments, "keyword arguments", err)
	}
	return nil
}

func decodeInto(v Value, target any) error {
	if direct, ok := target.(*Value); ok {
		*direct = v
		return nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(ToGoValue(v))
}
