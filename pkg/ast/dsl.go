package ast

// Sugar constructors used by tests and tooling.

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

func Int(value int64) *IntegerLiteral {
	return NewIntegerLiteral(value)
}

func Str(value string) *StringLiteral {
	return NewStringLiteral(value)
}

func Bool(value bool) *BooleanLiteral {
	return NewBooleanLiteral(value)
}

func None() *NoneLiteral {
	return NewNoneLiteral()
}

func List(elements ...Expression) *ListLiteral {
	return NewListLiteral(elements)
}

func Neg(operand Expression) *UnaryExpression {
	return NewUnaryExpression("-", operand)
}

func Not(operand Expression) *UnaryExpression {
	return NewUnaryExpression("not", operand)
}

func Bin(operator string, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(operator, left, right)
}

func Index(object, index Expression) *IndexExpression {
	return NewIndexExpression(object, index)
}

func Call(name string, args ...Expression) *CallExpression {
	return NewCallExpression(ID(name), args)
}

func Pipe(left Expression, name string) *PipeExpression {
	return NewPipeExpression(left, ID(name))
}

func Assign(name string, value Expression) *AssignmentStatement {
	return NewAssignmentStatement(ID(name), value)
}

func SetIndex(object, index, value Expression) *IndexAssignmentStatement {
	return NewIndexAssignmentStatement(object, index, value)
}

func Print(value Expression) *PrintStatement {
	return NewPrintStatement(value)
}

func If(condition Expression, then, els Statement) *IfStatement {
	return NewIfStatement(condition, then, els)
}

func For(variable string, iterable Expression, body Statement) *ForStatement {
	return NewForStatement(ID(variable), iterable, body)
}

func Ret(value Expression) *ReturnStatement {
	return NewReturnStatement(value)
}

func Block(statements ...Statement) *BlockStatement {
	return NewBlockStatement(statements)
}

func Fn(name string, params []string, body ...Statement) *FunctionDefinition {
	ids := make([]*Identifier, 0, len(params))
	for _, p := range params {
		ids = append(ids, ID(p))
	}
	return NewFunctionDefinition(ID(name), ids, Block(body...))
}

func Prog(functions []*FunctionDefinition, main Statement) *Program {
	return NewProgram(functions, main)
}
