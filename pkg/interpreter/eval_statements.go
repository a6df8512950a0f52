package interpreter

import (
	"fmt"

	"pint/interpreter-go/pkg/ast"
	"pint/interpreter-go/pkg/runtime"
)

func (i *Interpreter) executeStatement(node ast.Statement, env *runtime.Environment) error {
	switch n := node.(type) {
	case ast.Expression:
		_, err := i.evaluateExpression(n, env)
		return err
	case *ast.PrintStatement:
		return i.executePrint(n, env)
	case *ast.BlockStatement:
		return i.executeBlock(n, env)
	case *ast.IfStatement:
		return i.executeIf(n, env)
	case *ast.AssignmentStatement:
		return i.executeAssignment(n, env)
	case *ast.IndexAssignmentStatement:
		return i.executeIndexAssignment(n, env)
	case *ast.ForStatement:
		return i.executeFor(n, env)
	case *ast.ReturnStatement:
		return i.executeReturn(n, env)
	default:
		return fmt.Errorf("unsupported statement type: %s", n.NodeType())
	}
}

func (i *Interpreter) executePrint(stmt *ast.PrintStatement, env *runtime.Environment) error {
	val, err := i.evaluateExpression(stmt.Value, env)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(i.out, runtime.Display(val)); err != nil {
		return err
	}
	// Output is line-buffered at most: each print reaches the device before
	// the next statement runs.
	if f, ok := i.out.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// executeBlock sequences statements in the enclosing environment; blocks
// introduce no scope of their own.
func (i *Interpreter) executeBlock(block *ast.BlockStatement, env *runtime.Environment) error {
	for _, stmt := range block.Statements {
		if err := i.executeStatement(stmt, env); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) executeIf(stmt *ast.IfStatement, env *runtime.Environment) error {
	cond, err := i.evaluateExpression(stmt.Condition, env)
	if err != nil {
		return err
	}
	if runtime.IsTruthy(cond) {
		return i.executeStatement(stmt.Then, env)
	}
	if stmt.Else != nil {
		return i.executeStatement(stmt.Else, env)
	}
	return nil
}

func (i *Interpreter) executeAssignment(stmt *ast.AssignmentStatement, env *runtime.Environment) error {
	val, err := i.evaluateExpression(stmt.Value, env)
	if err != nil {
		return err
	}
	env.Define(stmt.Name.Name, val)
	return nil
}

func (i *Interpreter) executeIndexAssignment(stmt *ast.IndexAssignmentStatement, env *runtime.Environment) error {
	objectVal, err := i.evaluateExpression(stmt.Object, env)
	if err != nil {
		return err
	}
	indexVal, err := i.evaluateExpression(stmt.Index, env)
	if err != nil {
		return err
	}
	val, err := i.evaluateExpression(stmt.Value, env)
	if err != nil {
		return err
	}
	list, ok := objectVal.(*runtime.ListValue)
	if !ok {
		return runtime.Errorf(runtime.TypeError, "cannot index-assign into %s", objectVal.Kind())
	}
	idx, ok := indexVal.(runtime.IntValue)
	if !ok {
		return runtime.Errorf(runtime.TypeError, "list index must be int, got %s", indexVal.Kind())
	}
	if idx.Val < 0 || idx.Val >= int64(len(list.Elements)) {
		return runtime.Errorf(runtime.IndexError, "index %d out of range for list of length %d", idx.Val, len(list.Elements))
	}
	// In-place overwrite: visible to every holder of the same list.
	list.Elements[idx.Val] = val
	return nil
}

func (i *Interpreter) executeFor(stmt *ast.ForStatement, env *runtime.Environment) error {
	iterable, err := i.evaluateExpression(stmt.Iterable, env)
	if err != nil {
		return err
	}
	list, ok := iterable.(*runtime.ListValue)
	if !ok {
		return runtime.Errorf(runtime.TypeError, "for requires a list, got %s", iterable.Kind())
	}
	// Snapshot at loop entry: the iteration sequence is fixed even if the
	// body overwrites elements of the source list.
	elements := append([]runtime.Value(nil), list.Elements...)
	for _, el := range elements {
		env.Define(stmt.Variable.Name, el)
		if err := i.executeStatement(stmt.Body, env); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) executeReturn(stmt *ast.ReturnStatement, env *runtime.Environment) error {
	var result runtime.Value = runtime.NoneValue{}
	if stmt.Value != nil {
		val, err := i.evaluateExpression(stmt.Value, env)
		if err != nil {
			return err
		}
		result = val
	}
	return returnSignal{value: result}
}
