// Package interpreter evaluates resolved Lox programs by walking the syntax
// tree. Each top-level statement runs on its own: a runtime error abandons
// that statement, is recorded as a diagnostic, and evaluation continues with
// the next one.
package interpreter
