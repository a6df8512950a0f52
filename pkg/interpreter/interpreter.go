package interpreter

import (
	"fmt"
	"io"

	"pint/interpreter-go/pkg/ast"
	"pint/interpreter-go/pkg/driver"
	"pint/interpreter-go/pkg/runtime"
)

// Interpreter drives evaluation of Pint AST nodes. The function table is
// populated once, before the top-level statement runs, and is read-only
// afterwards.
type Interpreter struct {
	functions map[string]*ast.FunctionDefinition
	out       io.Writer
}

// New returns an interpreter with an empty function table that prints to out.
func New(out io.Writer) *Interpreter {
	return &Interpreter{
		functions: make(map[string]*ast.FunctionDefinition),
		out:       out,
	}
}

// RegisterFunction adds a definition to the function table. Redefining a
// name, or shadowing a builtin, is a load error.
func (i *Interpreter) RegisterFunction(def *ast.FunctionDefinition) error {
	if def == nil || def.Name == nil {
		return fmt.Errorf("function definition requires a name")
	}
	name := def.Name.Name
	if isBuiltin(name) {
		return fmt.Errorf("cannot redefine builtin '%s'", name)
	}
	if _, ok := i.functions[name]; ok {
		return fmt.Errorf("function '%s' is already defined", name)
	}
	i.functions[name] = def
	return nil
}

// EvaluateProgram registers every function definition, then executes the
// top-level statement under a fresh environment.
func (i *Interpreter) EvaluateProgram(prog *driver.Program) error {
	if prog == nil || prog.Main == nil {
		return fmt.Errorf("program requires a top-level statement")
	}
	for _, fn := range prog.Functions {
		if err := i.RegisterFunction(fn); err != nil {
			return err
		}
	}
	return i.ExecuteStatement(prog.Main, runtime.NewEnvironment())
}

// ExecuteStatement runs one statement outside any call activation; a stray
// return is fatal here.
func (i *Interpreter) ExecuteStatement(stmt ast.Statement, env *runtime.Environment) error {
	if err := i.executeStatement(stmt, env); err != nil {
		if _, ok := err.(returnSignal); ok {
			return fmt.Errorf("return outside function")
		}
		return err
	}
	return nil
}

// EvaluateExpression reduces one expression to a value in the given
// environment.
func (i *Interpreter) EvaluateExpression(expr ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	return i.evaluateExpression(expr, env)
}

// invokeFunction runs a function body in an activation holding only the
// bound parameters. The callee has no view of the caller's locals; lists
// still alias through the argument values themselves.
func (i *Interpreter) invokeFunction(def *ast.FunctionDefinition, args []runtime.Value) (runtime.Value, error) {
	if len(args) != len(def.Params) {
		return nil, runtime.Errorf(runtime.ArityError,
			"function '%s' expects %d arguments, got %d", def.Name.Name, len(def.Params), len(args))
	}
	local := runtime.NewEnvironment()
	for idx, param := range def.Params {
		local.Define(param.Name, args[idx])
	}
	if err := i.executeStatement(def.Body, local); err != nil {
		if ret, ok := err.(returnSignal); ok {
			if ret.value == nil {
				return runtime.NoneValue{}, nil
			}
			return ret.value, nil
		}
		return nil, err
	}
	return runtime.NoneValue{}, nil
}

// returnSignal is the non-local exit raised by a return statement. It
// travels as an error through nested blocks and loops and is caught exactly
// at the call boundary in invokeFunction; it is never a failure.
type returnSignal struct {
	value runtime.Value
}

func (r returnSignal) Error() string {
	return "return"
}
