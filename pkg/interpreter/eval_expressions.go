package interpreter

import (
	"fmt"

	"pint/interpreter-go/pkg/ast"
	"pint/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateExpression(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.IntegerLiteral:
		return runtime.IntValue{Val: n.Value}, nil
	case *ast.StringLiteral:
		return runtime.StringValue{Val: n.Value}, nil
	case *ast.BooleanLiteral:
		return runtime.BoolValue{Val: n.Value}, nil
	case *ast.NoneLiteral:
		return runtime.NoneValue{}, nil
	case *ast.ListLiteral:
		values := make([]runtime.Value, 0, len(n.Elements))
		for _, el := range n.Elements {
			val, err := i.evaluateExpression(el, env)
			if err != nil {
				return nil, err
			}
			values = append(values, val)
		}
		return runtime.NewList(values), nil
	case *ast.Identifier:
		return env.Get(n.Name)
	case *ast.UnaryExpression:
		return i.evaluateUnary(n, env)
	case *ast.BinaryExpression:
		return i.evaluateBinary(n, env)
	case *ast.IndexExpression:
		return i.evaluateIndex(n, env)
	case *ast.CallExpression:
		return i.evaluateCall(n.Callee, n.Arguments, env)
	case *ast.PipeExpression:
		return i.evaluatePipe(n, env)
	default:
		return nil, fmt.Errorf("unsupported expression type: %s", n.NodeType())
	}
}

func (i *Interpreter) evaluateUnary(expr *ast.UnaryExpression, env *runtime.Environment) (runtime.Value, error) {
	operand, err := i.evaluateExpression(expr.Operand, env)
	if err != nil {
		return nil, err
	}
	switch expr.Operator {
	case "-":
		iv, ok := operand.(runtime.IntValue)
		if !ok {
			return nil, runtime.Errorf(runtime.TypeError, "unary - requires int, got %s", operand.Kind())
		}
		return runtime.IntValue{Val: -iv.Val}, nil
	case "not":
		bv, ok := operand.(runtime.BoolValue)
		if !ok {
			return nil, runtime.Errorf(runtime.TypeError, "not requires bool, got %s", operand.Kind())
		}
		return runtime.BoolValue{Val: !bv.Val}, nil
	default:
		return nil, fmt.Errorf("unsupported unary operator %s", expr.Operator)
	}
}

func (i *Interpreter) evaluateBinary(expr *ast.BinaryExpression, env *runtime.Environment) (runtime.Value, error) {
	switch expr.Operator {
	case "and", "or":
		return i.evaluateLogical(expr, env)
	}
	leftVal, err := i.evaluateExpression(expr.Left, env)
	if err != nil {
		return nil, err
	}
	rightVal, err := i.evaluateExpression(expr.Right, env)
	if err != nil {
		return nil, err
	}
	switch expr.Operator {
	case "+", "-", "*", "/", "%":
		return evaluateArithmetic(expr.Operator, leftVal, rightVal)
	case "==":
		return runtime.BoolValue{Val: runtime.Equal(leftVal, rightVal)}, nil
	case "!=":
		return runtime.BoolValue{Val: !runtime.Equal(leftVal, rightVal)}, nil
	case "<", "<=", ">", ">=":
		cmp, err := runtime.Compare(leftVal, rightVal)
		if err != nil {
			return nil, err
		}
		return runtime.BoolValue{Val: comparisonOp(expr.Operator, cmp)}, nil
	default:
		return nil, fmt.Errorf("unsupported binary operator %s", expr.Operator)
	}
}

// evaluateLogical short-circuits both combinators: and stops on a false
// left operand, or stops on a true one.
func (i *Interpreter) evaluateLogical(expr *ast.BinaryExpression, env *runtime.Environment) (runtime.Value, error) {
	leftVal, err := i.evaluateExpression(expr.Left, env)
	if err != nil {
		return nil, err
	}
	lb, ok := leftVal.(runtime.BoolValue)
	if !ok {
		return nil, runtime.Errorf(runtime.TypeError, "left operand of %s must be bool, got %s", expr.Operator, leftVal.Kind())
	}
	if expr.Operator == "and" && !lb.Val {
		return runtime.BoolValue{Val: false}, nil
	}
	if expr.Operator == "or" && lb.Val {
		return runtime.BoolValue{Val: true}, nil
	}
	rightVal, err := i.evaluateExpression(expr.Right, env)
	if err != nil {
		return nil, err
	}
	rb, ok := rightVal.(runtime.BoolValue)
	if !ok {
		return nil, runtime.Errorf(runtime.TypeError, "right operand of %s must be bool, got %s", expr.Operator, rightVal.Kind())
	}
	return runtime.BoolValue{Val: rb.Val}, nil
}

func evaluateArithmetic(op string, left, right runtime.Value) (runtime.Value, error) {
	switch lv := left.(type) {
	case runtime.IntValue:
		rv, ok := right.(runtime.IntValue)
		if !ok {
			return nil, runtime.Errorf(runtime.TypeError, "operator %s requires int operands, got %s and %s", op, left.Kind(), right.Kind())
		}
		switch op {
		case "+":
			return runtime.IntValue{Val: lv.Val + rv.Val}, nil
		case "-":
			return runtime.IntValue{Val: lv.Val - rv.Val}, nil
		case "*":
			return runtime.IntValue{Val: lv.Val * rv.Val}, nil
		case "/":
			if rv.Val == 0 {
				return nil, runtime.Errorf(runtime.DivisionError, "division by zero")
			}
			return runtime.IntValue{Val: lv.Val / rv.Val}, nil
		case "%":
			if rv.Val == 0 {
				return nil, runtime.Errorf(runtime.DivisionError, "modulo by zero")
			}
			return runtime.IntValue{Val: lv.Val % rv.Val}, nil
		}
	case runtime.StringValue:
		if op == "+" {
			rv, ok := right.(runtime.StringValue)
			if !ok {
				return nil, runtime.Errorf(runtime.TypeError, "cannot concatenate string and %s", right.Kind())
			}
			return runtime.StringValue{Val: lv.Val + rv.Val}, nil
		}
	case *runtime.ListValue:
		if op == "+" {
			rv, ok := right.(*runtime.ListValue)
			if !ok {
				return nil, runtime.Errorf(runtime.TypeError, "cannot concatenate list and %s", right.Kind())
			}
			// Concatenation builds a new list; the inputs keep their own
			// storage.
			elements := make([]runtime.Value, 0, len(lv.Elements)+len(rv.Elements))
			elements = append(elements, lv.Elements...)
			elements = append(elements, rv.Elements...)
			return runtime.NewList(elements), nil
		}
	}
	return nil, runtime.Errorf(runtime.TypeError, "unsupported operand kinds for %s: %s and %s", op, left.Kind(), right.Kind())
}

func comparisonOp(op string, cmp int) bool {
	switch op {
	case "<":
		return cmp < 0
	case "<=":
		return cmp <= 0
	case ">":
		return cmp > 0
	case ">=":
		return cmp >= 0
	default:
		return false
	}
}

func (i *Interpreter) evaluateIndex(expr *ast.IndexExpression, env *runtime.Environment) (runtime.Value, error) {
	objectVal, err := i.evaluateExpression(expr.Object, env)
	if err != nil {
		return nil, err
	}
	indexVal, err := i.evaluateExpression(expr.Index, env)
	if err != nil {
		return nil, err
	}
	list, ok := objectVal.(*runtime.ListValue)
	if !ok {
		return nil, runtime.Errorf(runtime.TypeError, "cannot index %s", objectVal.Kind())
	}
	idx, ok := indexVal.(runtime.IntValue)
	if !ok {
		return nil, runtime.Errorf(runtime.TypeError, "list index must be int, got %s", indexVal.Kind())
	}
	if idx.Val < 0 || idx.Val >= int64(len(list.Elements)) {
		return nil, runtime.Errorf(runtime.IndexError, "index %d out of range for list of length %d", idx.Val, len(list.Elements))
	}
	return list.Elements[idx.Val], nil
}

// evaluateCall handles builtins and function-table calls alike. Arguments
// evaluate left to right in the caller's environment.
func (i *Interpreter) evaluateCall(callee *ast.Identifier, argExprs []ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	args := make([]runtime.Value, 0, len(argExprs))
	for _, argExpr := range argExprs {
		val, err := i.evaluateExpression(argExpr, env)
		if err != nil {
			return nil, err
		}
		args = append(args, val)
	}
	switch callee.Name {
	case "len":
		return builtinLen(args)
	case "range":
		return builtinRange(args)
	}
	def, ok := i.functions[callee.Name]
	if !ok {
		return nil, runtime.Errorf(runtime.NameError, "undefined function '%s'", callee.Name)
	}
	return i.invokeFunction(def, args)
}

// evaluatePipe applies the static pipe rewrite: a syntactic list literal on
// the left spreads its element expressions as individual arguments, any
// other left expression becomes the sole argument. The rewrite looks at
// parse shape only; a variable holding a list still passes as one argument.
func (i *Interpreter) evaluatePipe(expr *ast.PipeExpression, env *runtime.Environment) (runtime.Value, error) {
	var argExprs []ast.Expression
	if ll, ok := expr.Left.(*ast.ListLiteral); ok {
		argExprs = ll.Elements
	} else {
		argExprs = []ast.Expression{expr.Left}
	}
	return i.evaluateCall(expr.Callee, argExprs, env)
}

func isBuiltin(name string) bool {
	switch name {
	case "len", "range":
		return true
	}
	return false
}

func builtinLen(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, runtime.Errorf(runtime.ArityError, "len expects 1 argument, got %d", len(args))
	}
	list, ok := args[0].(*runtime.ListValue)
	if !ok {
		return nil, runtime.Errorf(runtime.TypeError, "len requires a list, got %s", args[0].Kind())
	}
	return runtime.IntValue{Val: int64(len(list.Elements))}, nil
}

func builtinRange(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, runtime.Errorf(runtime.ArityError, "range expects 1 argument, got %d", len(args))
	}
	n, ok := args[0].(runtime.IntValue)
	if !ok {
		return nil, runtime.Errorf(runtime.TypeError, "range requires an int, got %s", args[0].Kind())
	}
	if n.Val < 0 {
		return nil, runtime.Errorf(runtime.ValueError, "range argument must be non-negative, got %d", n.Val)
	}
	elements := make([]runtime.Value, 0, n.Val)
	for v := int64(0); v < n.Val; v++ {
		elements = append(elements, runtime.IntValue{Val: v})
	}
	return runtime.NewList(elements), nil
}
