package ast

import (
	"lumen/internal/source"
)

// Node is the base interface for all AST nodes
type Node interface {
	INode()
	Loc() *source.Location
}

// Expression represents any node that produces a value.
// The set of implementations is closed to this package.
type Expression interface {
	Node
	expr()
}

// Statement represents any node that performs an action.
// The set of implementations is closed to this package.
type Statement interface {
	Node
	stmt()
}
