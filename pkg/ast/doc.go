// Package ast defines the Lox syntax tree.
//
// The Expr and Stmt node types, their constructors, visitor interfaces and
// dispatch functions live in the *_gen.go files, generated from
// pkg/grammar/lox.yml. Edit the grammar, not the generated files.
package ast

//go:generate go run ../../cmd/genast .
