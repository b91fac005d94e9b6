// Package expr provides a small access-expression language over engine
// values: identifiers, literals, attribute access, indexing and calls.
// It is the boundary tooling the CLI and tests use to drive dynamic
// object dispatch; it is not a template language.
package expr

import "github.com/wrike/minijinja/pkg/value"

// Position tracks source location for error reporting.
type Position struct {
	File   string
	Line   int
	Column int
}

// Node is the interface for all expression AST nodes.
type Node interface {
	Pos() Position
	node() // marker method to restrict implementation
}

// nodeBase provides common Position handling for all nodes.
type nodeBase struct {
	pos Position
}

func (n *nodeBase) Pos() Position { return n.pos }
func (n *nodeBase) node()         {}

// IdentNode references a name in the evaluation context.
type IdentNode struct {
	nodeBase
	Name string
}

// LiteralNode holds a constant value (string, number, bool, none).
type LiteralNode struct {
	nodeBase
	Value value.Value
}

// AttrNode represents attribute access `base.name`.
type AttrNode struct {
	nodeBase
	Base Node
	Name string
}

// IndexNode represents index access `base[index]`.
type IndexNode struct {
	nodeBase
	Base  Node
	Index Node
}

// CallNode represents a direct call `callee(args...)`.
type CallNode struct {
	nodeBase
	Callee Node
	Args   []Node
}

// MethodCallNode represents a method call `recv.name(args...)`.
type MethodCallNode struct {
	nodeBase
	Recv Node
	Name string
	Args []Node
}
