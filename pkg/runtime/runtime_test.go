package runtime

import (
	"errors"
	"math"
	"testing"

	"github.com/lpahlavi/jlox/pkg/ast"
	"github.com/lpahlavi/jlox/pkg/token"
)

func TestEnvironmentScoping(t *testing.T) {
	global := NewEnvironment(nil)
	global.Define("a", NumberValue{Val: 1})
	inner := NewEnvironment(global)
	inner.Define("b", StringValue{Val: "x"})

	if v, err := inner.Get("a"); err != nil || v != (NumberValue{Val: 1}) {
		t.Fatalf("expected a=1 from parent, got %v %v", v, err)
	}
	if err := inner.Assign("a", NumberValue{Val: 2}); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if v, _ := global.Get("a"); v != (NumberValue{Val: 2}) {
		t.Fatalf("assignment must update the declaring frame, got %v", v)
	}
	if _, err := global.Get("b"); err == nil {
		t.Fatalf("parent must not see child bindings")
	}
	var undefined *UndefinedVariableError
	if err := inner.Assign("missing", NilValue{}); !errors.As(err, &undefined) || undefined.Name != "missing" {
		t.Fatalf("expected UndefinedVariableError, got %v", err)
	}
	if inner.Enclosing() != global || global.Enclosing() != nil {
		t.Fatalf("unexpected enclosing frames")
	}
}

func TestEnvironmentDistances(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("x", NumberValue{Val: 1})
	middle := NewEnvironment(outer)
	middle.Define("x", NumberValue{Val: 2})
	inner := NewEnvironment(middle)

	if v, err := inner.GetAt(2, "x"); err != nil || v != (NumberValue{Val: 1}) {
		t.Fatalf("expected outer x, got %v %v", v, err)
	}
	if v, err := inner.GetAt(1, "x"); err != nil || v != (NumberValue{Val: 2}) {
		t.Fatalf("expected middle x, got %v %v", v, err)
	}
	if err := inner.AssignAt(2, "x", NumberValue{Val: 3}); err != nil {
		t.Fatalf("assign at: %v", err)
	}
	if v, _ := outer.Get("x"); v != (NumberValue{Val: 3}) {
		t.Fatalf("expected outer x=3, got %v", v)
	}
	if _, err := inner.GetAt(0, "x"); err == nil {
		t.Fatalf("expected miss at distance 0")
	}
	if inner.Ancestor(5) != nil {
		t.Fatalf("expected nil beyond the global frame")
	}
	if keys := middle.Keys(); len(keys) != 1 || keys[0] != "x" {
		t.Fatalf("unexpected keys %v", keys)
	}
}

func TestTruthinessAndEquality(t *testing.T) {
	falsy := []Value{nil, NilValue{}, BoolValue{Val: false}}
	truthy := []Value{BoolValue{Val: true}, NumberValue{Val: 0}, StringValue{Val: ""}}
	for _, v := range falsy {
		if IsTruthy(v) {
			t.Fatalf("%v should be falsy", v)
		}
	}
	for _, v := range truthy {
		if !IsTruthy(v) {
			t.Fatalf("%v should be truthy", v)
		}
	}

	class := &ClassValue{Name: "A"}
	a, b := NewInstance(class), NewInstance(class)
	cases := []struct {
		x, y Value
		want bool
	}{
		{NilValue{}, nil, true},
		{NumberValue{Val: 1}, NumberValue{Val: 1}, true},
		{StringValue{Val: "a"}, StringValue{Val: "a"}, true},
		{NumberValue{Val: 1}, StringValue{Val: "1"}, false},
		{BoolValue{Val: false}, NilValue{}, false},
		{a, a, true},
		{a, b, false},
	}
	for _, tc := range cases {
		if got := Equal(tc.x, tc.y); got != tc.want {
			t.Fatalf("Equal(%v, %v): expected %v", tc.x, tc.y, tc.want)
		}
	}
}

func TestStringify(t *testing.T) {
	decl := ast.NewFunctionStmt(token.Position{Line: 1}, token.Token{Kind: token.Identifier, Lexeme: "add"}, nil, nil)
	class := &ClassValue{Name: "Point"}
	cases := []struct {
		v    Value
		want string
	}{
		{NilValue{}, "nil"},
		{BoolValue{Val: true}, "true"},
		{NumberValue{Val: 3}, "3"},
		{NumberValue{Val: 2.5}, "2.5"},
		{NumberValue{Val: -0.125}, "-0.125"},
		{NumberValue{Val: math.Inf(1)}, "Infinity"},
		{StringValue{Val: "hi"}, "hi"},
		{&FunctionValue{Declaration: decl}, "<fn add>"},
		{&NativeFunctionValue{Name: "clock"}, "<native fn>"},
		{class, "Point"},
		{NewInstance(class), "Point instance"},
	}
	for _, tc := range cases {
		if got := Stringify(tc.v); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestClassMethodLookup(t *testing.T) {
	decl := func(name string, params int) *ast.FunctionStmt {
		ps := make([]token.Token, params)
		return ast.NewFunctionStmt(token.Position{}, token.Token{Lexeme: name}, ps, nil)
	}
	base := &ClassValue{Name: "Base", Methods: map[string]*FunctionValue{
		"init":  {Declaration: decl("init", 2), IsInitializer: true},
		"greet": {Declaration: decl("greet", 0)},
	}}
	derived := &ClassValue{Name: "Derived", Superclass: base, Methods: map[string]*FunctionValue{
		"greet": {Declaration: decl("greet", 1)},
	}}
	if m, ok := derived.FindMethod("greet"); !ok || m.Arity() != 1 {
		t.Fatalf("expected derived greet")
	}
	if derived.Arity() != 2 {
		t.Fatalf("expected inherited init arity 2, got %d", derived.Arity())
	}
	if (&ClassValue{Name: "Empty"}).Arity() != 0 {
		t.Fatalf("class without init has arity 0")
	}

	inst := NewInstance(derived)
	got, ok := inst.Get("greet")
	if !ok {
		t.Fatalf("expected bound method")
	}
	bound := got.(*FunctionValue)
	if this, err := bound.Closure.Get("this"); err != nil || this != Value(inst) {
		t.Fatalf("bound method must define this, got %v %v", this, err)
	}
	inst.Set("greet", NumberValue{Val: 1})
	if v, _ := inst.Get("greet"); v != (NumberValue{Val: 1}) {
		t.Fatalf("fields shadow methods, got %v", v)
	}
	if _, ok := inst.Get("missing"); ok {
		t.Fatalf("expected missing property")
	}
}
