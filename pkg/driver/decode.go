package driver

import (
	"encoding/json"
	"fmt"

	"pint/interpreter-go/pkg/ast"
)

// DecodeProgram unmarshals a type-tagged JSON document into a Program.
func DecodeProgram(data []byte) (*Program, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	typ, _ := raw["type"].(string)
	if typ != string(ast.NodeProgram) {
		return nil, fmt.Errorf("expected Program node, got %q", typ)
	}
	functionsVal, _ := raw["functions"].([]any)
	functions := make([]*ast.FunctionDefinition, 0, len(functionsVal))
	for _, fnRaw := range functionsVal {
		child, ok := fnRaw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("invalid function entry %T", fnRaw)
		}
		node, err := DecodeNode(child)
		if err != nil {
			return nil, err
		}
		fn, ok := node.(*ast.FunctionDefinition)
		if !ok {
			return nil, fmt.Errorf("expected FunctionDefinition, got %s", node.NodeType())
		}
		functions = append(functions, fn)
	}
	mainRaw, ok := raw["main"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("program missing main statement")
	}
	main, err := decodeStatement(mainRaw)
	if err != nil {
		return nil, err
	}
	return &Program{Functions: functions, Main: main}, nil
}

// DecodeLine unmarshals one type-tagged JSON node. The REPL feeds individual
// lines through this; the result is either a statement or a function
// definition, which the caller tells apart.
func DecodeLine(data []byte) (ast.Node, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return DecodeNode(raw)
}

// DecodeNode maps a {"type": ...} tagged object to its AST node.
func DecodeNode(node map[string]any) (ast.Node, error) {
	typ, _ := node["type"].(string)
	switch ast.NodeType(typ) {
	case ast.NodeIdentifier:
		name, _ := node["name"].(string)
		return ast.NewIdentifier(name), nil
	case ast.NodeIntegerLiteral:
		val, ok := node["value"].(float64)
		if !ok {
			return nil, fmt.Errorf("integer literal requires numeric value, got %T", node["value"])
		}
		return ast.NewIntegerLiteral(int64(val)), nil
	case ast.NodeStringLiteral:
		val, _ := node["value"].(string)
		return ast.NewStringLiteral(val), nil
	case ast.NodeBooleanLiteral:
		val, _ := node["value"].(bool)
		return ast.NewBooleanLiteral(val), nil
	case ast.NodeNoneLiteral:
		return ast.NewNoneLiteral(), nil
	case ast.NodeListLiteral:
		elements, err := decodeExpressionList(node["elements"])
		if err != nil {
			return nil, err
		}
		return ast.NewListLiteral(elements), nil
	case ast.NodeUnaryExpression:
		op, _ := node["operator"].(string)
		operand, err := decodeExpressionField(node, "operand")
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpression(op, operand), nil
	case ast.NodeBinaryExpression:
		op, _ := node["operator"].(string)
		left, err := decodeExpressionField(node, "left")
		if err != nil {
			return nil, err
		}
		right, err := decodeExpressionField(node, "right")
		if err != nil {
			return nil, err
		}
		return ast.NewBinaryExpression(op, left, right), nil
	case ast.NodeIndexExpression:
		object, err := decodeExpressionField(node, "object")
		if err != nil {
			return nil, err
		}
		index, err := decodeExpressionField(node, "index")
		if err != nil {
			return nil, err
		}
		return ast.NewIndexExpression(object, index), nil
	case ast.NodeCallExpression:
		callee, err := decodeIdentifierField(node, "callee")
		if err != nil {
			return nil, err
		}
		args, err := decodeExpressionList(node["arguments"])
		if err != nil {
			return nil, err
		}
		return ast.NewCallExpression(callee, args), nil
	case ast.NodePipeExpression:
		left, err := decodeExpressionField(node, "left")
		if err != nil {
			return nil, err
		}
		callee, err := decodeIdentifierField(node, "callee")
		if err != nil {
			return nil, err
		}
		return ast.NewPipeExpression(left, callee), nil
	case ast.NodeAssignmentStatement:
		name, err := decodeIdentifierField(node, "name")
		if err != nil {
			return nil, err
		}
		value, err := decodeExpressionField(node, "value")
		if err != nil {
			return nil, err
		}
		return ast.NewAssignmentStatement(name, value), nil
	case ast.NodeIndexAssignmentStatement:
		object, err := decodeExpressionField(node, "object")
		if err != nil {
			return nil, err
		}
		index, err := decodeExpressionField(node, "index")
		if err != nil {
			return nil, err
		}
		value, err := decodeExpressionField(node, "value")
		if err != nil {
			return nil, err
		}
		return ast.NewIndexAssignmentStatement(object, index, value), nil
	case ast.NodePrintStatement:
		value, err := decodeExpressionField(node, "value")
		if err != nil {
			return nil, err
		}
		return ast.NewPrintStatement(value), nil
	case ast.NodeIfStatement:
		condition, err := decodeExpressionField(node, "condition")
		if err != nil {
			return nil, err
		}
		then, err := decodeStatementField(node, "then")
		if err != nil {
			return nil, err
		}
		var els ast.Statement
		if elsRaw, ok := node["else"].(map[string]any); ok {
			els, err = decodeStatement(elsRaw)
			if err != nil {
				return nil, err
			}
		}
		return ast.NewIfStatement(condition, then, els), nil
	case ast.NodeForStatement:
		variable, err := decodeIdentifierField(node, "variable")
		if err != nil {
			return nil, err
		}
		iterable, err := decodeExpressionField(node, "iterable")
		if err != nil {
			return nil, err
		}
		body, err := decodeStatementField(node, "body")
		if err != nil {
			return nil, err
		}
		return ast.NewForStatement(variable, iterable, body), nil
	case ast.NodeReturnStatement:
		var value ast.Expression
		if valRaw, ok := node["value"].(map[string]any); ok {
			expr, err := decodeExpression(valRaw)
			if err != nil {
				return nil, err
			}
			value = expr
		}
		return ast.NewReturnStatement(value), nil
	case ast.NodeBlockStatement:
		rawStmts, _ := node["statements"].([]any)
		stmts := make([]ast.Statement, 0, len(rawStmts))
		for _, raw := range rawStmts {
			child, ok := raw.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("invalid block entry %T", raw)
			}
			stmt, err := decodeStatement(child)
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, stmt)
		}
		return ast.NewBlockStatement(stmts), nil
	case ast.NodeFunctionDefinition:
		name, err := decodeIdentifierField(node, "name")
		if err != nil {
			return nil, err
		}
		rawParams, _ := node["params"].([]any)
		params := make([]*ast.Identifier, 0, len(rawParams))
		for _, raw := range rawParams {
			child, ok := raw.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("invalid parameter entry %T", raw)
			}
			param, err := decodeIdentifier(child)
			if err != nil {
				return nil, err
			}
			params = append(params, param)
		}
		body, err := decodeStatementField(node, "body")
		if err != nil {
			return nil, err
		}
		return ast.NewFunctionDefinition(name, params, body), nil
	default:
		return nil, fmt.Errorf("unsupported node type %q", typ)
	}
}

func decodeExpression(raw map[string]any) (ast.Expression, error) {
	node, err := DecodeNode(raw)
	if err != nil {
		return nil, err
	}
	expr, ok := node.(ast.Expression)
	if !ok {
		return nil, fmt.Errorf("%s is not an expression", node.NodeType())
	}
	return expr, nil
}

func decodeStatement(raw map[string]any) (ast.Statement, error) {
	node, err := DecodeNode(raw)
	if err != nil {
		return nil, err
	}
	stmt, ok := node.(ast.Statement)
	if !ok {
		return nil, fmt.Errorf("%s is not a statement", node.NodeType())
	}
	return stmt, nil
}

func decodeIdentifier(raw map[string]any) (*ast.Identifier, error) {
	node, err := DecodeNode(raw)
	if err != nil {
		return nil, err
	}
	id, ok := node.(*ast.Identifier)
	if !ok {
		return nil, fmt.Errorf("expected Identifier, got %s", node.NodeType())
	}
	return id, nil
}

func decodeExpressionField(node map[string]any, field string) (ast.Expression, error) {
	raw, ok := node[field].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s node missing %q", node["type"], field)
	}
	return decodeExpression(raw)
}

func decodeStatementField(node map[string]any, field string) (ast.Statement, error) {
	raw, ok := node[field].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s node missing %q", node["type"], field)
	}
	return decodeStatement(raw)
}

func decodeIdentifierField(node map[string]any, field string) (*ast.Identifier, error) {
	raw, ok := node[field].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s node missing %q", node["type"], field)
	}
	return decodeIdentifier(raw)
}

func decodeExpressionList(raw any) ([]ast.Expression, error) {
	entries, _ := raw.([]any)
	exprs := make([]ast.Expression, 0, len(entries))
	for _, entry := range entries {
		child, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("invalid expression entry %T", entry)
		}
		expr, err := decodeExpression(child)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}
