// Package diagnostics gives the parser and evaluator a common shape for
// recoverable errors: a phase, a stable code, and a rendered message. The
// rendered message is the exact wording the language's test suite checks
// against, so error templates here are not free to drift from spec
// wording the way a general-purpose diagnostics layer's might.
package diagnostics

import "fmt"

// Phase names the pipeline stage that produced a diagnostic.
type Phase string

const (
	PhaseParser  Phase = "parser"
	PhaseRuntime Phase = "runtime"
)

// Code is a stable identifier for a class of diagnostic, independent of
// its rendered wording.
type Code string

const (
	ErrExpectedToken   Code = "P001" // expected <KIND> but got <KIND>
	ErrNoPrefixParseFn Code = "P002" // no function found to parse <literal>
	ErrBadIntLiteral   Code = "P003" // Could not parse <literal> as integer
	ErrBadFloatLiteral Code = "P004" // Could not parse <literal> as float
	ErrTypeMismatch    Code = "R001" // Type mismatch: <LEFT> <op> <RIGHT>
	ErrUnknownOperator Code = "R002" // Unknown operator: ...
	ErrUnknownIdent    Code = "R003" // identifier not found: <name>
)

var templates = map[Code]string{
	ErrExpectedToken:   "expected %s but got %s",
	ErrNoPrefixParseFn: "no function found to parse %s",
	ErrBadIntLiteral:   "Could not parse %s as integer",
	ErrBadFloatLiteral: "Could not parse %s as float",
	ErrTypeMismatch:    "Type mismatch: %s %s %s",
	ErrUnknownOperator: "Unknown operator: %s",
	ErrUnknownIdent:    "identifier not found: %s",
}

// Diagnostic is a recorded error: the phase it came from, its code, and
// the arguments that fill its template.
type Diagnostic struct {
	Phase Phase
	Code  Code
	Args  []interface{}
}

// New records a Diagnostic's phase, code and template arguments. String()
// and Error() both render its message from the code's template, so the
// parser appends d.String() to its string error list and a *Diagnostic can
// also be used as a Go error.
func New(phase Phase, code Code, args ...interface{}) *Diagnostic {
	return &Diagnostic{Phase: phase, Code: code, Args: args}
}

func (d *Diagnostic) String() string {
	template, ok := templates[d.Code]
	if !ok {
		return fmt.Sprintf("unknown diagnostic code: %s", d.Code)
	}
	return fmt.Sprintf(template, d.Args...)
}

func (d *Diagnostic) Error() string { return d.String() }
