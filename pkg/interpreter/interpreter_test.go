package interpreter

import (
	"testing"

	"pint/interpreter-go/pkg/ast"
	"pint/interpreter-go/pkg/runtime"
)

func TestEvaluateLiterals(t *testing.T) {
	wantInt(t, evalExpr(t, ast.Int(42), nil), 42)
	wantBool(t, evalExpr(t, ast.Bool(true), nil), true)
	if v := evalExpr(t, ast.Str("hi"), nil); v.(runtime.StringValue).Val != "hi" {
		t.Fatalf("unexpected string %#v", v)
	}
	if _, ok := evalExpr(t, ast.None(), nil).(runtime.NoneValue); !ok {
		t.Fatalf("expected None")
	}
}

func TestEvaluateListLiteral(t *testing.T) {
	val := evalExpr(t, ast.List(ast.Int(1), ast.Bin("+", ast.Int(1), ast.Int(1)), ast.Str("x")), nil)
	list, ok := val.(*runtime.ListValue)
	if !ok || len(list.Elements) != 3 {
		t.Fatalf("unexpected list %#v", val)
	}
	wantInt(t, list.Elements[1], 2)
}

func TestEvaluateIdentifier(t *testing.T) {
	val := evalExpr(t, ast.ID("x"), map[string]runtime.Value{"x": runtime.IntValue{Val: 7}})
	wantInt(t, val, 7)

	_, err := evalExprErr(ast.ID("missing"), nil)
	wantKind(t, err, runtime.NameError)
}

func TestArithmetic(t *testing.T) {
	wantInt(t, evalExpr(t, ast.Bin("+", ast.Int(40), ast.Int(2)), nil), 42)
	wantInt(t, evalExpr(t, ast.Bin("-", ast.Int(2), ast.Int(5)), nil), -3)
	wantInt(t, evalExpr(t, ast.Bin("*", ast.Int(6), ast.Int(7)), nil), 42)
}

func TestDivisionTruncatesTowardZero(t *testing.T) {
	wantInt(t, evalExpr(t, ast.Bin("/", ast.Int(7), ast.Int(2)), nil), 3)
	wantInt(t, evalExpr(t, ast.Bin("/", ast.Neg(ast.Int(7)), ast.Int(2)), nil), -3)
	wantInt(t, evalExpr(t, ast.Bin("%", ast.Int(7), ast.Int(2)), nil), 1)
	wantInt(t, evalExpr(t, ast.Bin("%", ast.Neg(ast.Int(7)), ast.Int(2)), nil), -1)
}

func TestDivisionByZero(t *testing.T) {
	_, err := evalExprErr(ast.Bin("/", ast.Int(1), ast.Int(0)), nil)
	wantKind(t, err, runtime.DivisionError)
	_, err = evalExprErr(ast.Bin("%", ast.Int(1), ast.Int(0)), nil)
	wantKind(t, err, runtime.DivisionError)
}

func TestStringConcatenation(t *testing.T) {
	val := evalExpr(t, ast.Bin("+", ast.Str("foo"), ast.Str("bar")), nil)
	if val.(runtime.StringValue).Val != "foobar" {
		t.Fatalf("unexpected concatenation %#v", val)
	}
}

func TestListConcatenationBuildsNewList(t *testing.T) {
	left := runtime.NewList([]runtime.Value{runtime.IntValue{Val: 1}, runtime.IntValue{Val: 2}})
	right := runtime.NewList([]runtime.Value{runtime.IntValue{Val: 3}})
	val := evalExpr(t, ast.Bin("+", ast.ID("a"), ast.ID("b")),
		map[string]runtime.Value{"a": left, "b": right})
	list := val.(*runtime.ListValue)
	if len(list.Elements) != len(left.Elements)+len(right.Elements) {
		t.Fatalf("len(l1+l2) = %d, want %d", len(list.Elements), 3)
	}
	wantInt(t, list.Elements[0], 1)
	wantInt(t, list.Elements[2], 3)

	// The result owns fresh storage.
	list.Elements[0] = runtime.IntValue{Val: 9}
	wantInt(t, left.Elements[0], 1)
}

func TestMixedOperandArithmeticIsTypeError(t *testing.T) {
	_, err := evalExprErr(ast.Bin("+", ast.Int(1), ast.Str("a")), nil)
	wantKind(t, err, runtime.TypeError)
	_, err = evalExprErr(ast.Bin("*", ast.Str("a"), ast.Int(2)), nil)
	wantKind(t, err, runtime.TypeError)
	_, err = evalExprErr(ast.Bin("+", ast.Bool(true), ast.Bool(true)), nil)
	wantKind(t, err, runtime.TypeError)
}

func TestComparisons(t *testing.T) {
	wantBool(t, evalExpr(t, ast.Bin("==", ast.List(ast.Int(1)), ast.List(ast.Int(1))), nil), true)
	wantBool(t, evalExpr(t, ast.Bin("!=", ast.Int(1), ast.Str("1")), nil), true)
	wantBool(t, evalExpr(t, ast.Bin("<", ast.Int(2), ast.Int(5)), nil), true)
	wantBool(t, evalExpr(t, ast.Bin("<=", ast.Int(5), ast.Int(5)), nil), true)
	wantBool(t, evalExpr(t, ast.Bin(">", ast.Str("b"), ast.Str("a")), nil), true)
	wantBool(t, evalExpr(t, ast.Bin(">=", ast.Int(4), ast.Int(5)), nil), false)
}

func TestOrderingMismatchedKindsIsTypeError(t *testing.T) {
	_, err := evalExprErr(ast.Bin("<", ast.Int(1), ast.Str("a")), nil)
	wantKind(t, err, runtime.TypeError)
}

func TestAndShortCircuits(t *testing.T) {
	// The right operand would fail with NameError if evaluated.
	val := evalExpr(t, ast.Bin("and", ast.Bool(false), ast.ID("boom")), nil)
	wantBool(t, val, false)

	wantBool(t, evalExpr(t, ast.Bin("and", ast.Bool(true), ast.Bool(false)), nil), false)
	wantBool(t, evalExpr(t, ast.Bin("and", ast.Bool(true), ast.Bool(true)), nil), true)
}

func TestOrShortCircuits(t *testing.T) {
	// Symmetric short-circuit semantics: a true left operand skips the right
	// entirely, observable both through an unbound name and a silent print.
	val := evalExpr(t, ast.Bin("or", ast.Bool(true), ast.ID("boom")), nil)
	wantBool(t, val, true)

	out := mustRun(t, []*ast.FunctionDefinition{
		ast.Fn("noisy", nil,
			ast.Print(ast.Str("evaluated")),
			ast.Ret(ast.Bool(false)),
		),
	},
		ast.Assign("r", ast.Bin("or", ast.Bool(true), ast.Call("noisy"))),
		ast.Print(ast.ID("r")),
	)
	if out != "True\n" {
		t.Fatalf("or must not evaluate its right operand when left is true, got %q", out)
	}

	wantBool(t, evalExpr(t, ast.Bin("or", ast.Bool(false), ast.Bool(true)), nil), true)
	wantBool(t, evalExpr(t, ast.Bin("or", ast.Bool(false), ast.Bool(false)), nil), false)
}

func TestLogicalOperandsMustBeBool(t *testing.T) {
	_, err := evalExprErr(ast.Bin("and", ast.Int(1), ast.Bool(true)), nil)
	wantKind(t, err, runtime.TypeError)
	_, err = evalExprErr(ast.Bin("or", ast.Bool(false), ast.Int(1)), nil)
	wantKind(t, err, runtime.TypeError)
}

func TestUnaryOperators(t *testing.T) {
	wantInt(t, evalExpr(t, ast.Neg(ast.Int(5)), nil), -5)
	wantBool(t, evalExpr(t, ast.Not(ast.Bool(false)), nil), true)

	_, err := evalExprErr(ast.Neg(ast.Str("a")), nil)
	wantKind(t, err, runtime.TypeError)
	_, err = evalExprErr(ast.Not(ast.Int(0)), nil)
	wantKind(t, err, runtime.TypeError)
}

func TestLen(t *testing.T) {
	wantInt(t, evalExpr(t, ast.Call("len", ast.List(ast.Int(1), ast.Int(2))), nil), 2)
	wantInt(t, evalExpr(t, ast.Call("len", ast.List()), nil), 0)

	_, err := evalExprErr(ast.Call("len", ast.Str("abc")), nil)
	wantKind(t, err, runtime.TypeError)
	_, err = evalExprErr(ast.Call("len"), nil)
	wantKind(t, err, runtime.ArityError)
}

func TestRange(t *testing.T) {
	for _, n := range []int64{0, 1, 5} {
		val := evalExpr(t, ast.Call("range", ast.Int(n)), nil)
		list := val.(*runtime.ListValue)
		if int64(len(list.Elements)) != n {
			t.Fatalf("len(range(%d)) = %d", n, len(list.Elements))
		}
		for i, el := range list.Elements {
			wantInt(t, el, int64(i))
		}
	}

	_, err := evalExprErr(ast.Call("range", ast.Neg(ast.Int(1))), nil)
	wantKind(t, err, runtime.ValueError)
	_, err = evalExprErr(ast.Call("range", ast.Str("3")), nil)
	wantKind(t, err, runtime.TypeError)
}

func TestFunctionCall(t *testing.T) {
	out := mustRun(t, []*ast.FunctionDefinition{
		ast.Fn("f", []string{"x"}, ast.Ret(ast.Bin("+", ast.ID("x"), ast.Int(1)))),
	},
		ast.Print(ast.Call("f", ast.Int(41))),
	)
	if out != "42\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestFunctionFallthroughReturnsNone(t *testing.T) {
	out := mustRun(t, []*ast.FunctionDefinition{
		ast.Fn("noop", nil, ast.Assign("x", ast.Int(1))),
	},
		ast.Print(ast.Call("noop")),
	)
	if out != "None\n" {
		t.Fatalf("expected None, got %q", out)
	}
}

func TestCallUndefinedFunction(t *testing.T) {
	_, err := runProgram(nil, ast.Print(ast.Call("nope")))
	wantKind(t, err, runtime.NameError)
}

func TestCallArityMismatch(t *testing.T) {
	fns := []*ast.FunctionDefinition{
		ast.Fn("f", []string{"x", "y"}, ast.Ret(ast.ID("x"))),
	}
	_, err := runProgram(fns, ast.Print(ast.Call("f", ast.Int(1))))
	wantKind(t, err, runtime.ArityError)
	_, err = runProgram(fns, ast.Print(ast.Call("f", ast.Int(1), ast.Int(2), ast.Int(3))))
	wantKind(t, err, runtime.ArityError)
}

func TestCalleeSeesOnlyParameters(t *testing.T) {
	// The callee environment holds just the bound parameters; a caller-local
	// binding is invisible inside the body.
	fns := []*ast.FunctionDefinition{
		ast.Fn("peek", []string{"x"}, ast.Ret(ast.ID("secret"))),
	}
	_, err := runProgram(fns,
		ast.Assign("secret", ast.Int(99)),
		ast.Print(ast.Call("peek", ast.Int(1))),
	)
	wantKind(t, err, runtime.NameError)
}

func TestArgumentsEvaluateInCallerEnvironment(t *testing.T) {
	out := mustRun(t, []*ast.FunctionDefinition{
		ast.Fn("add", []string{"a", "b"}, ast.Ret(ast.Bin("+", ast.ID("a"), ast.ID("b")))),
	},
		ast.Assign("x", ast.Int(40)),
		ast.Print(ast.Call("add", ast.ID("x"), ast.Int(2))),
	)
	if out != "42\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestReturnUnwindsNestedControlFlow(t *testing.T) {
	// return escapes through for and if straight to the call boundary.
	out := mustRun(t, []*ast.FunctionDefinition{
		ast.Fn("firstEven", []string{"l"},
			ast.For("e", ast.ID("l"), ast.Block(
				ast.If(ast.Bin("==", ast.Bin("%", ast.ID("e"), ast.Int(2)), ast.Int(0)),
					ast.Ret(ast.ID("e")),
					nil),
			)),
			ast.Ret(ast.Neg(ast.Int(1))),
		),
	},
		ast.Print(ast.Call("firstEven", ast.List(ast.Int(3), ast.Int(5), ast.Int(8), ast.Int(9)))),
		ast.Print(ast.Call("firstEven", ast.List(ast.Int(3), ast.Int(5)))),
	)
	if out != "8\n-1\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestIndexing(t *testing.T) {
	list := runtime.NewList([]runtime.Value{runtime.IntValue{Val: 10}, runtime.IntValue{Val: 20}})
	bindings := map[string]runtime.Value{"l": list}
	wantInt(t, evalExpr(t, ast.Index(ast.ID("l"), ast.Int(1)), bindings), 20)

	_, err := evalExprErr(ast.Index(ast.ID("l"), ast.Int(2)), bindings)
	wantKind(t, err, runtime.IndexError)
	_, err = evalExprErr(ast.Index(ast.ID("l"), ast.Neg(ast.Int(1))), bindings)
	wantKind(t, err, runtime.IndexError)
	_, err = evalExprErr(ast.Index(ast.ID("l"), ast.Str("0")), bindings)
	wantKind(t, err, runtime.TypeError)
	_, err = evalExprErr(ast.Index(ast.Int(3), ast.Int(0)), nil)
	wantKind(t, err, runtime.TypeError)
}

func TestListConcatenationLaw(t *testing.T) {
	// (l1+l2)[i] == l1[i] for i < len(l1), l2[i-len(l1)] otherwise.
	l1 := ast.List(ast.Int(1), ast.Int(2))
	l2 := ast.List(ast.Int(3), ast.Int(4), ast.Int(5))
	concat := ast.Bin("+", l1, l2)
	for i, want := range []int64{1, 2, 3, 4, 5} {
		wantInt(t, evalExpr(t, ast.Index(concat, ast.Int(int64(i))), nil), want)
	}
	wantInt(t, evalExpr(t, ast.Call("len", concat), nil), 5)
}

func TestPipeSpreadsListLiteral(t *testing.T) {
	// [a, b] | f calls f(a, b): the rewrite inspects parse shape.
	out := mustRun(t, []*ast.FunctionDefinition{
		ast.Fn("sum", []string{"x", "y"}, ast.Ret(ast.Bin("+", ast.ID("x"), ast.ID("y")))),
	},
		ast.Print(ast.Pipe(ast.List(ast.Int(1), ast.Int(2)), "sum")),
	)
	if out != "3\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestPipeDoesNotUnpackListValues(t *testing.T) {
	// x | f passes one argument even when x holds a list.
	out := mustRun(t, []*ast.FunctionDefinition{
		ast.Fn("first", []string{"l"}, ast.Ret(ast.Index(ast.ID("l"), ast.Int(0)))),
	},
		ast.Assign("x", ast.List(ast.Int(7), ast.Int(8))),
		ast.Print(ast.Pipe(ast.ID("x"), "first")),
	)
	if out != "7\n" {
		t.Fatalf("unexpected output %q", out)
	}

	// A two-parameter callee therefore fails on a bound list.
	_, err := runProgram([]*ast.FunctionDefinition{
		ast.Fn("sum", []string{"x", "y"}, ast.Ret(ast.Bin("+", ast.ID("x"), ast.ID("y")))),
	},
		ast.Assign("x", ast.List(ast.Int(1), ast.Int(2))),
		ast.Print(ast.Pipe(ast.ID("x"), "sum")),
	)
	wantKind(t, err, runtime.ArityError)
}

func TestPipeChainsLeftAssociative(t *testing.T) {
	out := mustRun(t, []*ast.FunctionDefinition{
		ast.Fn("sum", []string{"x", "y"}, ast.Ret(ast.Bin("+", ast.ID("x"), ast.ID("y")))),
		ast.Fn("double", []string{"x"}, ast.Ret(ast.Bin("*", ast.Int(2), ast.ID("x")))),
	},
		ast.Print(ast.Pipe(ast.Pipe(ast.List(ast.Int(1), ast.Int(2)), "sum"), "double")),
	)
	if out != "6\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestPipeIntoBuiltin(t *testing.T) {
	out := mustRun(t, nil,
		ast.Print(ast.Pipe(ast.Int(3), "range")),
		ast.Print(ast.Pipe(ast.List(ast.Int(9), ast.Int(9)), "len")),
	)
	if out != "[0, 1, 2]\n2\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRegisterFunctionRejectsDuplicates(t *testing.T) {
	fns := []*ast.FunctionDefinition{
		ast.Fn("f", nil, ast.Ret(ast.Int(1))),
		ast.Fn("f", nil, ast.Ret(ast.Int(2))),
	}
	if _, err := runProgram(fns, ast.Print(ast.Call("f"))); err == nil {
		t.Fatalf("expected duplicate definition to fail")
	}
}

func TestRegisterFunctionRejectsBuiltinNames(t *testing.T) {
	fns := []*ast.FunctionDefinition{
		ast.Fn("len", []string{"x"}, ast.Ret(ast.Int(0))),
	}
	if _, err := runProgram(fns, ast.Print(ast.Int(1))); err == nil {
		t.Fatalf("expected builtin shadowing to fail")
	}
}
