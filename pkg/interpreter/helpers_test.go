package interpreter

import (
	"bytes"
	"errors"
	"testing"

	"pint/interpreter-go/pkg/ast"
	"pint/interpreter-go/pkg/driver"
	"pint/interpreter-go/pkg/runtime"
)

// runProgram executes functions + main and returns the printed output.
func runProgram(fns []*ast.FunctionDefinition, main ...ast.Statement) (string, error) {
	var out bytes.Buffer
	interp := New(&out)
	err := interp.EvaluateProgram(&driver.Program{Functions: fns, Main: ast.Block(main...)})
	return out.String(), err
}

func mustRun(t *testing.T, fns []*ast.FunctionDefinition, main ...ast.Statement) string {
	t.Helper()
	out, err := runProgram(fns, main...)
	if err != nil {
		t.Fatalf("program failed: %v", err)
	}
	return out
}

// evalExpr reduces a single expression with an empty function table and the
// given pre-bound names.
func evalExpr(t *testing.T, expr ast.Expression, bindings map[string]runtime.Value) runtime.Value {
	t.Helper()
	val, err := evalExprErr(expr, bindings)
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}
	return val
}

func evalExprErr(expr ast.Expression, bindings map[string]runtime.Value) (runtime.Value, error) {
	interp := New(&bytes.Buffer{})
	env := runtime.NewEnvironment()
	for name, val := range bindings {
		env.Define(name, val)
	}
	return interp.EvaluateExpression(expr, env)
}

// wantKind asserts that err is an evaluation error of the given kind.
func wantKind(t *testing.T, err error, kind runtime.ErrorKind) {
	t.Helper()
	var evalErr *runtime.Error
	if !errors.As(err, &evalErr) {
		t.Fatalf("expected %s, got %v", kind, err)
	}
	if evalErr.Kind != kind {
		t.Fatalf("expected %s, got %s: %v", kind, evalErr.Kind, err)
	}
}

func wantInt(t *testing.T, val runtime.Value, want int64) {
	t.Helper()
	iv, ok := val.(runtime.IntValue)
	if !ok || iv.Val != want {
		t.Fatalf("expected int %d, got %#v", want, val)
	}
}

func wantBool(t *testing.T, val runtime.Value, want bool) {
	t.Helper()
	bv, ok := val.(runtime.BoolValue)
	if !ok || bv.Val != want {
		t.Fatalf("expected bool %v, got %#v", want, val)
	}
}
