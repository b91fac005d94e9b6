package expr

import (
	"github.com/wrike/minijinja/pkg/value"
)

// Env is the evaluation context for expressions: a named set of
// globals. It implements value.State, so calls and method calls on
// dynamic objects receive it as their execution state.
type Env struct {
	name    string
	globals map[string]value.Value
	strict  bool
}

// NewEnv creates an evaluation context over the given globals.
func NewEnv(name string, globals map[string]value.Value) *Env {
	return &Env{name: name, globals: globals}
}

// SetStrict controls strict mode: when enabled, unresolved names and
// absent attributes fail instead of evaluating to undefined.
func (e *Env) SetStrict(strict bool) { e.strict = strict }

// Name returns the name of the unit being evaluated.
func (e *Env) Name() string { return e.name }

// Lookup resolves a name in the evaluation context.
func (e *Env) Lookup(name string) (value.Value, bool) {
	v, ok := e.globals[name]
	return v, ok
}

// Eval parses and evaluates a source expression.
func (e *Env) Eval(src string) (value.Value, error) {
	node, err := Parse(src, e.name)
	if err != nil {
		return value.Undefined, err
	}
	return e.evalNode(node)
}

func (e *Env) evalNode(node Node) (value.Value, error) {
	switch n := node.(type) {
	case *LiteralNode:
		return n.Value, nil

	case *IdentNode:
		v, ok := e.Lookup(n.Name)
		if !ok {
			if e.strict {
				return value.Undefined, NewEvalErrorf(n.Pos(), "undefined name %q", n.Name)
			}
			return value.Undefined, nil
		}
		return v, nil

	case *AttrNode:
		base, err := e.evalNode(n.Base)
		if err != nil {
			return value.Undefined, err
		}
		if base.IsUndefined() {
			return value.Undefined, NewEvalErrorf(n.Pos(), "cannot access attribute %q of undefined value", n.Name)
		}
		v, ok := base.GetAttr(n.Name)
		if !ok {
			if e.strict {
				return value.Undefined, NewEvalErrorf(n.Pos(), "%s value has no attribute %q", base.Kind(), n.Name)
			}
			return value.Undefined, nil
		}
		return v, nil

	case *IndexNode:
		return e.evalIndex(n)

	case *CallNode:
		callee, err := e.evalNode(n.Callee)
		if err != nil {
			return value.Undefined, err
		}
		args, err := e.evalArgs(n.Args)
		if err != nil {
			return value.Undefined, err
		}
		out, err := callee.Call(e, args)
		if err != nil {
			return value.Undefined, WrapEvalError(n.Pos(), "call failed", err)
		}
		return out, nil

	case *MethodCallNode:
		recv, err := e.evalNode(n.Recv)
		if err != nil {
			return value.Undefined, err
		}
		args, err := e.evalArgs(n.Args)
		if err != nil {
			return value.Undefined, err
		}
		out, err := recv.CallMethod(e, n.Name, args)
		if err != nil {
			return value.Undefined, WrapEvalError(n.Pos(), "method "+n.Name+" failed", err)
		}
		return out, nil

	default:
		return value.Undefined, NewEvalErrorf(node.Pos(), "unsupported expression node %T", node)
	}
}

func (e *Env) evalIndex(n *IndexNode) (value.Value, error) {
	base, err := e.evalNode(n.Base)
	if err != nil {
		return value.Undefined, err
	}
	if base.IsUndefined() {
		return value.Undefined, NewEvalErrorf(n.Pos(), "cannot index undefined value")
	}

	idx, err := e.evalNode(n.Index)
	if err != nil {
		return value.Undefined, err
	}

	if name, ok := idx.AsStr(); ok {
		v, found := base.GetAttr(name)
		if !found {
			if e.strict {
				return value.Undefined, NewEvalErrorf(n.Pos(), "%s value has no attribute %q", base.Kind(), name)
			}
			return value.Undefined, nil
		}
		return v, nil
	}

	if i, ok := idx.Int64(); ok {
		v, found := base.GetIndex(int(i))
		if !found {
			if e.strict {
				return value.Undefined, NewEvalErrorf(n.Pos(), "index %d out of range", i)
			}
			return value.Undefined, nil
		}
		return v, nil
	}

	return value.Undefined, NewEvalErrorf(n.Pos(), "cannot index with %s value", idx.Kind())
}

func (e *Env) evalArgs(nodes []Node) ([]value.Value, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	args := make([]value.Value, len(nodes))
	for i, n := range nodes {
		v, err := e.evalNode(n)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}
