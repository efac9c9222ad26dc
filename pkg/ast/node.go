package ast

import "github.com/lpahlavi/jlox/pkg/token"

// Node is implemented by every syntax tree node.
type Node interface {
	Pos() token.Position
}

// nodeImpl carries the source position of a node. It is set once by the
// generated constructors and has no setter.
type nodeImpl struct {
	pos token.Position
}

func (n nodeImpl) Pos() token.Position { return n.pos }
