package evaluator

import (
	"fmt"
	"strconv"

	"github.com/nibblelang/nibble/internal/ast"
)

// Kind discriminates the closed set of runtime value variants. It is the
// word substituted into type-mismatch and unknown-operator messages.
type Kind string

const (
	INTEGER_OBJ  Kind = "INTEGER"
	FLOAT_OBJ    Kind = "FLOAT"
	BOOLEAN_OBJ  Kind = "BOOLEAN"
	STRING_OBJ   Kind = "STRING"
	NULL_OBJ     Kind = "NULL"
	RETURN_OBJ   Kind = "RETURN"
	ERROR_OBJ    Kind = "ERROR"
	FUNCTION_OBJ Kind = "FUNCTION"
)

// Object is implemented by every runtime value.
type Object interface {
	Kind() Kind
	Inspect() string
}

// Integer is a 64-bit signed integer value.
type Integer struct{ Value int64 }

func (i *Integer) Kind() Kind      { return INTEGER_OBJ }
func (i *Integer) Inspect() string { return fmt.Sprintf("%d", i.Value) }

// Float is a 64-bit IEEE-754 floating point value.
type Float struct{ Value float64 }

func (f *Float) Kind() Kind      { return FLOAT_OBJ }
func (f *Float) Inspect() string { return formatFloat(f.Value) }

// Boolean is true or false. The evaluator only ever hands out the
// canonical TRUE/FALSE singletons below, so identity comparison between
// two Booleans is meaningful.
type Boolean struct{ Value bool }

func (b *Boolean) Kind() Kind      { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string { return fmt.Sprintf("%t", b.Value) }

// String is raw text with no escape processing.
type String struct{ Value string }

func (s *String) Kind() Kind      { return STRING_OBJ }
func (s *String) Inspect() string { return s.Value }

// Null is the unique absent/missing value.
type Null struct{}

func (n *Null) Kind() Kind      { return NULL_OBJ }
func (n *Null) Inspect() string { return "null" }

// ReturnWrapper signals a pending non-local exit. Inner blocks propagate
// it as-is; the outermost Program, or the function call whose body
// produced it, unwraps it.
type ReturnWrapper struct{ Value Object }

func (r *ReturnWrapper) Kind() Kind      { return RETURN_OBJ }
func (r *ReturnWrapper) Inspect() string { return r.Value.Inspect() }

// Error is a first-class runtime error value. It short-circuits: once
// produced, it propagates through any enclosing block, if, or program
// without further evaluation applying to it.
type Error struct{ Message string }

func (e *Error) Kind() Kind      { return ERROR_OBJ }
func (e *Error) Inspect() string { return "Error: " + e.Message }

// Function is a user-defined function literal closed over the
// environment in which it was created.
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.Block
	Env        *Environment
}

func (f *Function) Kind() Kind { return FUNCTION_OBJ }
func (f *Function) Inspect() string {
	out := "def("
	for i, p := range f.Parameters {
		if i > 0 {
			out += ", "
		}
		out += p.String()
	}
	out += ") " + f.Body.String()
	return out
}

// Canonical singletons. Boolean and Null comparisons by identity are only
// meaningful because the evaluator never constructs other instances of
// these kinds; newBoolean always returns one of TRUE/FALSE.
var (
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
	NULL  = &Null{}
)

func newBoolean(value bool) *Boolean {
	if value {
		return TRUE
	}
	return FALSE
}

func newError(format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

func isError(obj Object) bool {
	if obj == nil {
		return false
	}
	return obj.Kind() == ERROR_OBJ
}

// formatFloat renders a float in plain decimal form (no exponent
// notation), matching the inspect form the REPL and tests expect:
// 2.5, 1.2, 60 -- the smallest decimal string that round-trips.
func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
