package runtime

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNone Kind = iota
	KindBool
	KindInt
	KindString
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

type NoneValue struct{}

func (NoneValue) Kind() Kind { return KindNone }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

type IntValue struct {
	Val int64
}

func (v IntValue) Kind() Kind { return KindInt }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

// ListValue is always handled as *ListValue so every holder aliases the same
// element storage. Length is fixed at construction; elements may be
// overwritten in place.
type ListValue struct {
	Elements []Value
}

func (v *ListValue) Kind() Kind { return KindList }

// NewList builds a list over the given element slice without copying it.
func NewList(elements []Value) *ListValue {
	return &ListValue{Elements: elements}
}

// IsTruthy reports the conditional interpretation of a value: false for
// None, false, 0, "" and the empty list, true for everything else.
func IsTruthy(val Value) bool {
	switch v := val.(type) {
	case NoneValue:
		return false
	case BoolValue:
		return v.Val
	case IntValue:
		return v.Val != 0
	case StringValue:
		return v.Val != ""
	case *ListValue:
		return len(v.Elements) > 0
	default:
		return true
	}
}

// Equal compares two values structurally. It is total: values of different
// kinds are simply unequal.
func Equal(left, right Value) bool {
	switch lv := left.(type) {
	case NoneValue:
		_, ok := right.(NoneValue)
		return ok
	case BoolValue:
		if rv, ok := right.(BoolValue); ok {
			return lv.Val == rv.Val
		}
	case IntValue:
		if rv, ok := right.(IntValue); ok {
			return lv.Val == rv.Val
		}
	case StringValue:
		if rv, ok := right.(StringValue); ok {
			return lv.Val == rv.Val
		}
	case *ListValue:
		rv, ok := right.(*ListValue)
		if !ok || len(lv.Elements) != len(rv.Elements) {
			return false
		}
		for i := range lv.Elements {
			if !Equal(lv.Elements[i], rv.Elements[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Compare orders two values of the same kind: integers numerically, strings
// lexically, booleans with false < true, lists element-wise with length as
// the tie-breaker. Mismatched or unordered kinds (None) are a TypeError.
func Compare(left, right Value) (int, error) {
	switch lv := left.(type) {
	case IntValue:
		if rv, ok := right.(IntValue); ok {
			return cmpInt(lv.Val, rv.Val), nil
		}
	case StringValue:
		if rv, ok := right.(StringValue); ok {
			return strings.Compare(lv.Val, rv.Val), nil
		}
	case BoolValue:
		if rv, ok := right.(BoolValue); ok {
			return cmpBool(lv.Val, rv.Val), nil
		}
	case *ListValue:
		if rv, ok := right.(*ListValue); ok {
			return compareLists(lv, rv)
		}
	}
	return 0, Errorf(TypeError, "values of kind %s and %s are not ordered", left.Kind(), right.Kind())
}

func compareLists(left, right *ListValue) (int, error) {
	n := len(left.Elements)
	if len(right.Elements) < n {
		n = len(right.Elements)
	}
	for i := 0; i < n; i++ {
		cmp, err := Compare(left.Elements[i], right.Elements[i])
		if err != nil {
			return 0, err
		}
		if cmp != 0 {
			return cmp, nil
		}
	}
	return cmpInt(int64(len(left.Elements)), int64(len(right.Elements))), nil
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	default:
		return 1
	}
}

// Display renders a value the way print shows it: None, True/False, decimal
// integers, raw string text, and lists in [a, b, c] form.
func Display(val Value) string {
	switch v := val.(type) {
	case NoneValue:
		return "None"
	case BoolValue:
		if v.Val {
			return "True"
		}
		return "False"
	case IntValue:
		return strconv.FormatInt(v.Val, 10)
	case StringValue:
		return v.Val
	case *ListValue:
		var b strings.Builder
		b.WriteByte('[')
		for i, el := range v.Elements {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(Display(el))
		}
		b.WriteByte(']')
		return b.String()
	default:
		return fmt.Sprintf("[%s]", val.Kind())
	}
}
