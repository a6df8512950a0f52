package ast

type NodeType string

const (
	NodeIdentifier       NodeType = "Identifier"
	NodeIntegerLiteral   NodeType = "IntegerLiteral"
	NodeStringLiteral    NodeType = "StringLiteral"
	NodeBooleanLiteral   NodeType = "BooleanLiteral"
	NodeNoneLiteral      NodeType = "NoneLiteral"
	NodeListLiteral      NodeType = "ListLiteral"
	NodeUnaryExpression  NodeType = "UnaryExpression"
	NodeBinaryExpression NodeType = "BinaryExpression"
	NodeIndexExpression  NodeType = "IndexExpression"
	NodeCallExpression   NodeType = "CallExpression"
	NodePipeExpression   NodeType = "PipeExpression"

	NodeAssignmentStatement      NodeType = "AssignmentStatement"
	NodeIndexAssignmentStatement NodeType = "IndexAssignmentStatement"
	NodePrintStatement           NodeType = "PrintStatement"
	NodeIfStatement              NodeType = "IfStatement"
	NodeForStatement             NodeType = "ForStatement"
	NodeReturnStatement          NodeType = "ReturnStatement"
	NodeBlockStatement           NodeType = "BlockStatement"

	NodeFunctionDefinition NodeType = "FunctionDefinition"
	NodeProgram            NodeType = "Program"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Marker interfaces. Every expression may appear in statement position.

type Expression interface {
	Node
	expressionNode()
	statementNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

// Identifier

type Identifier struct {
	nodeImpl
	expressionMarker
	statementMarker

	Name string `json:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

// Literals

type IntegerLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Value int64 `json:"value"`
}

func NewIntegerLiteral(value int64) *IntegerLiteral {
	return &IntegerLiteral{nodeImpl: newNodeImpl(NodeIntegerLiteral), Value: value}
}

type StringLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Value string `json:"value"`
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Value: value}
}

type BooleanLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Value bool `json:"value"`
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{nodeImpl: newNodeImpl(NodeBooleanLiteral), Value: value}
}

type NoneLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker
}

func NewNoneLiteral() *NoneLiteral {
	return &NoneLiteral{nodeImpl: newNodeImpl(NodeNoneLiteral)}
}

// ListLiteral constructs a fixed-length list from its element expressions.
// The pipe operator treats a syntactic list literal specially, so the
// evaluator inspects this node shape, not the runtime value it produces.
type ListLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Elements []Expression `json:"elements"`
}

func NewListLiteral(elements []Expression) *ListLiteral {
	return &ListLiteral{nodeImpl: newNodeImpl(NodeListLiteral), Elements: elements}
}

// Compound expressions

type UnaryExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Operator string     `json:"operator"`
	Operand  Expression `json:"operand"`
}

func NewUnaryExpression(operator string, operand Expression) *UnaryExpression {
	return &UnaryExpression{nodeImpl: newNodeImpl(NodeUnaryExpression), Operator: operator, Operand: operand}
}

type BinaryExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Operator string     `json:"operator"`
	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
}

func NewBinaryExpression(operator string, left, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Operator: operator, Left: left, Right: right}
}

type IndexExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Object Expression `json:"object"`
	Index  Expression `json:"index"`
}

func NewIndexExpression(object, index Expression) *IndexExpression {
	return &IndexExpression{nodeImpl: newNodeImpl(NodeIndexExpression), Object: object, Index: index}
}

// CallExpression targets a global function (or builtin) by name; the
// language has no function values, so the callee is always an identifier.
type CallExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Callee    *Identifier  `json:"callee"`
	Arguments []Expression `json:"arguments"`
}

func NewCallExpression(callee *Identifier, arguments []Expression) *CallExpression {
	return &CallExpression{nodeImpl: newNodeImpl(NodeCallExpression), Callee: callee, Arguments: arguments}
}

// PipeExpression is `left | callee`. Chains parse left-associative, so the
// left side of an outer pipe is the inner PipeExpression.
type PipeExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Left   Expression  `json:"left"`
	Callee *Identifier `json:"callee"`
}

func NewPipeExpression(left Expression, callee *Identifier) *PipeExpression {
	return &PipeExpression{nodeImpl: newNodeImpl(NodePipeExpression), Left: left, Callee: callee}
}

// Statements

type AssignmentStatement struct {
	nodeImpl
	statementMarker

	Name  *Identifier `json:"name"`
	Value Expression  `json:"value"`
}

func NewAssignmentStatement(name *Identifier, value Expression) *AssignmentStatement {
	return &AssignmentStatement{nodeImpl: newNodeImpl(NodeAssignmentStatement), Name: name, Value: value}
}

type IndexAssignmentStatement struct {
	nodeImpl
	statementMarker

	Object Expression `json:"object"`
	Index  Expression `json:"index"`
	Value  Expression `json:"value"`
}

func NewIndexAssignmentStatement(object, index, value Expression) *IndexAssignmentStatement {
	return &IndexAssignmentStatement{nodeImpl: newNodeImpl(NodeIndexAssignmentStatement), Object: object, Index: index, Value: value}
}

type PrintStatement struct {
	nodeImpl
	statementMarker

	Value Expression `json:"value"`
}

func NewPrintStatement(value Expression) *PrintStatement {
	return &PrintStatement{nodeImpl: newNodeImpl(NodePrintStatement), Value: value}
}

type IfStatement struct {
	nodeImpl
	statementMarker

	Condition Expression `json:"condition"`
	Then      Statement  `json:"then"`
	Else      Statement  `json:"else,omitempty"`
}

func NewIfStatement(condition Expression, then, els Statement) *IfStatement {
	return &IfStatement{nodeImpl: newNodeImpl(NodeIfStatement), Condition: condition, Then: then, Else: els}
}

type ForStatement struct {
	nodeImpl
	statementMarker

	Variable *Identifier `json:"variable"`
	Iterable Expression  `json:"iterable"`
	Body     Statement   `json:"body"`
}

func NewForStatement(variable *Identifier, iterable Expression, body Statement) *ForStatement {
	return &ForStatement{nodeImpl: newNodeImpl(NodeForStatement), Variable: variable, Iterable: iterable, Body: body}
}

type ReturnStatement struct {
	nodeImpl
	statementMarker

	Value Expression `json:"value,omitempty"`
}

func NewReturnStatement(value Expression) *ReturnStatement {
	return &ReturnStatement{nodeImpl: newNodeImpl(NodeReturnStatement), Value: value}
}

// BlockStatement sequences statements; it introduces no scope of its own.
type BlockStatement struct {
	nodeImpl
	statementMarker

	Statements []Statement `json:"statements"`
}

func NewBlockStatement(statements []Statement) *BlockStatement {
	return &BlockStatement{nodeImpl: newNodeImpl(NodeBlockStatement), Statements: statements}
}

// Definitions

type FunctionDefinition struct {
	nodeImpl

	Name   *Identifier   `json:"name"`
	Params []*Identifier `json:"params"`
	Body   Statement     `json:"body"`
}

func NewFunctionDefinition(name *Identifier, params []*Identifier, body Statement) *FunctionDefinition {
	return &FunctionDefinition{nodeImpl: newNodeImpl(NodeFunctionDefinition), Name: name, Params: params, Body: body}
}

// Program is the parsed unit the evaluator consumes: an unordered set of
// global function definitions plus one top-level statement.
type Program struct {
	nodeImpl

	Functions []*FunctionDefinition `json:"functions"`
	Main      Statement             `json:"main"`
}

func NewProgram(functions []*FunctionDefinition, main Statement) *Program {
	return &Program{nodeImpl: newNodeImpl(NodeProgram), Functions: functions, Main: main}
}
