package runtime

import "sort"

// Environment holds one activation's local bindings. Each function call (and
// the top-level program) gets a fresh one; there is no parent chain, since a
// callee sees only its own parameters. Reassignment replaces the binding
// outright, so a lookup always observes the newest value for a name.
type Environment struct {
	values map[string]Value
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// Define inserts or replaces a binding.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get retrieves a binding; an unbound name is a NameError.
func (e *Environment) Get(name string) (Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	return nil, Errorf(NameError, "undefined variable '%s'", name)
}

// Snapshot returns a copy of the current bindings.
func (e *Environment) Snapshot() map[string]Value {
	out := make(map[string]Value, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}

// Keys returns the bound names in sorted order (useful for determinism in tests).
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
