package driver

import (
	"fmt"
	"os"

	"pint/interpreter-go/pkg/ast"
)

// Program is the unit handed to the evaluator: the global function
// definitions (unordered) and the one top-level statement that runs after
// all of them are registered. Producing it from source text is the parser's
// job; this package only decodes the parsed form.
type Program struct {
	Functions []*ast.FunctionDefinition
	Main      ast.Statement
}

// LoadProgram reads and decodes a JSON-encoded program file.
func LoadProgram(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read program %s: %w", path, err)
	}
	prog, err := DecodeProgram(data)
	if err != nil {
		return nil, fmt.Errorf("decode program %s: %w", path, err)
	}
	return prog, nil
}
