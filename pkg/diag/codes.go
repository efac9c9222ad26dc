package diag

import (
	"fmt"
	"slices"
)

// Code is a stable, distinguishable failure category.
type Code int

const (
	// Lexical (1xx).
	UnexpectedCharacter Code = 101
	UnterminatedString  Code = 102
	UnterminatedComment Code = 103

	// Syntax (2xx).
	ExpectExpression        Code = 201
	ExpectToken             Code = 202
	InvalidAssignmentTarget Code = 203
	TooManyArguments        Code = 204
	TooManyParameters       Code = 205

	// Resolution (3xx).
	SelfReferencingInitializer Code = 301
	AlreadyDeclared            Code = 302
	ReturnOutsideFunction      Code = 303
	ReturnValueFromInitializer Code = 304
	ThisOutsideClass           Code = 305
	SuperOutsideClass          Code = 306
	SuperWithoutSuperclass     Code = 307
	SelfInheritance            Code = 308
	BreakOutsideLoop           Code = 309

	// Runtime (4xx).
	OperandMustBeNumber     Code = 401
	OperandsMustBeNumbers   Code = 402
	InvalidPlusOperands     Code = 403
	DivisionByZero          Code = 404
	UndefinedVariable       Code = 405
	UndefinedProperty       Code = 406
	NotCallable             Code = 407
	ArityMismatch           Code = 408
	OnlyInstancesHaveProps  Code = 409
	OnlyInstancesHaveFields Code = 410
	SuperclassMustBeClass   Code = 411
	StackOverflow           Code = 412
	NativeFailure           Code = 413
	InternalFailure         Code = 499
)

type codeInfo struct {
	stage   Stage
	name    string
	message string
}

var registry = map[Code]codeInfo{
	UnexpectedCharacter: {StageLexical, "unexpected-character", "Unexpected character."},
	UnterminatedString:  {StageLexical, "unterminated-string", "Unterminated string."},
	UnterminatedComment: {StageLexical, "unterminated-comment", "Unterminated block comment."},

	ExpectExpression:        {StageSyntax, "expect-expression", "Expect expression."},
	ExpectToken:             {StageSyntax, "expect-token", "Unexpected token."},
	InvalidAssignmentTarget: {StageSyntax, "invalid-assignment-target", "Invalid assignment target."},
	TooManyArguments:        {StageSyntax, "too-many-arguments", "Can't have more than 255 arguments."},
	TooManyParameters:       {StageSyntax, "too-many-parameters", "Can't have more than 255 parameters."},

	SelfReferencingInitializer: {StageResolution, "self-referencing-initializer", "Can't read local variable in its own initializer."},
	AlreadyDeclared:            {StageResolution, "already-declared", "Already a variable with this name in this scope."},
	ReturnOutsideFunction:      {StageResolution, "return-outside-function", "Can't return from top-level code."},
	ReturnValueFromInitializer: {StageResolution, "return-value-from-initializer", "Can't return a value from an initializer."},
	ThisOutsideClass:           {StageResolution, "this-outside-class", "Can't use 'this' outside of a class."},
	SuperOutsideClass:          {StageResolution, "super-outside-class", "Can't use 'super' outside of a class."},
	SuperWithoutSuperclass:     {StageResolution, "super-without-superclass", "Can't use 'super' in a class with no superclass."},
	SelfInheritance:            {StageResolution, "self-inheritance", "A class can't inherit from itself."},
	BreakOutsideLoop:           {StageResolution, "break-outside-loop", "Can't use 'break' outside of a loop."},

	OperandMustBeNumber:     {StageRuntime, "operand-must-be-number", "Operand must be a number."},
	OperandsMustBeNumbers:   {StageRuntime, "operands-must-be-numbers", "Operands must be numbers."},
	InvalidPlusOperands:     {StageRuntime, "invalid-plus-operands", "Operands must be two numbers or two strings."},
	DivisionByZero:          {StageRuntime, "division-by-zero", "Denominator must be non-zero."},
	UndefinedVariable:       {StageRuntime, "undefined-variable", "Undefined variable."},
	UndefinedProperty:       {StageRuntime, "undefined-property", "Undefined property."},
	NotCallable:             {StageRuntime, "not-callable", "Can only call functions and classes."},
	ArityMismatch:           {StageRuntime, "arity-mismatch", "Wrong number of arguments."},
	OnlyInstancesHaveProps:  {StageRuntime, "only-instances-have-properties", "Only instances have properties."},
	OnlyInstancesHaveFields: {StageRuntime, "only-instances-have-fields", "Only instances have fields."},
	SuperclassMustBeClass:   {StageRuntime, "superclass-must-be-class", "Superclass must be a class."},
	StackOverflow:           {StageRuntime, "stack-overflow", "Stack overflow."},
	NativeFailure:           {StageRuntime, "native-failure", "Native function failed."},
	InternalFailure:         {StageRuntime, "internal-failure", "Internal interpreter error."},
}

// Codes returns every registered code in ascending order.
func Codes() []Code {
	out := make([]Code, 0, len(registry))
	for code := range registry {
		out = append(out, code)
	}
	slices.Sort(out)
	return out
}

// Stage returns the stage the code belongs to.
func (c Code) Stage() Stage {
	if info, ok := registry[c]; ok {
		return info.stage
	}
	return 0
}

// Name returns the stable kebab-case name of the code.
func (c Code) Name() string {
	if info, ok := registry[c]; ok {
		return info.name
	}
	return fmt.Sprintf("unknown-%d", int(c))
}

// DefaultMessage returns the canonical message for the code.
func (c Code) DefaultMessage() string {
	if info, ok := registry[c]; ok {
		return info.message
	}
	return ""
}

func (c Code) String() string {
	return fmt.Sprintf("E%03d", int(c))
}
