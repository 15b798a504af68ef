package parser_test

import (
	"testing"

	"github.com/nibblelang/nibble/internal/lexer"
	"github.com/nibblelang/nibble/internal/parser"
)

func parseProgram(t *testing.T, input string) (*parser.Parser, string) {
	t.Helper()
	p := parser.New(lexer.New(input))
	program := p.ParseProgram()
	return p, program.String()
}

func TestLetStatementParsesValue(t *testing.T) {
	tests := []struct {
		input    string
		wantName string
		want     string
	}{
		{"let x = 5;", "x", "let x = 5;"},
		{"let y = true;", "y", "let y = true;"},
		{"let foobar = y;", "foobar", "let foobar = y;"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, out := parseProgram(t, tt.input)
			if errs := p.Errors(); len(errs) != 0 {
				t.Fatalf("unexpected parser errors: %v", errs)
			}
			if out != tt.want {
				t.Errorf("program.String() = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestReturnStatementParsesValue(t *testing.T) {
	p, out := parseProgram(t, "return 5;")
	if errs := p.Errors(); len(errs) != 0 {
		t.Fatalf("unexpected parser errors: %v", errs)
	}
	if out != "return 5;" {
		t.Errorf("program.String() = %q, want %q", out, "return 5;")
	}
}

func TestLetStatementMissingAssignRecordsOneError(t *testing.T) {
	p, _ := parseProgram(t, "let x 5;")
	errs := p.Errors()
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if errs[0] != "expected ASSIGN but got INT" {
		t.Errorf("error = %q, want %q", errs[0], "expected ASSIGN but got INT")
	}
}

func TestCallAndPrecedencePrettyPrint(t *testing.T) {
	_, out := parseProgram(t, "sum(a, b, 1, 2 * 3, 4 + 5, sum(6, 7 * 8));")
	want := "sum(a, b, 1, (2 * 3), (4 + 5), sum(6, (7 * 8)))"
	if out != want {
		t.Errorf("program.String() = %q, want %q", out, want)
	}
}

func TestPrecedenceLaw(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"-a * b", "((-a) * b)"},
		{"a + b / c", "(a + (b / c))"},
		{"not (5 < 2) == not (5 < 3 == 5 > 8)", "((not (5 < 2)) == (not ((5 < 3) == (5 > 8))))"},
		{"1 < 2 and 5 < 8", "((1 < 2) and (5 < 8))"},
		{"3 + 4; -5 * 5", "(3 + 4)((-5) * 5)"},
		{"2 ^ 3 ^ 2", "((2 ^ 3) ^ 2)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, out := parseProgram(t, tt.input)
			if errs := p.Errors(); len(errs) != 0 {
				t.Fatalf("unexpected parser errors: %v", errs)
			}
			if out != tt.want {
				t.Errorf("program.String() = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestFunctionLiteralMissingParenRecordsOneError(t *testing.T) {
	p, _ := parseProgram(t, "def(x, y { x + y; };")
	errs := p.Errors()
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
}

func TestFunctionLiteralParsesParametersAndBody(t *testing.T) {
	p, out := parseProgram(t, "def(x, y) { x + y; };")
	if errs := p.Errors(); len(errs) != 0 {
		t.Fatalf("unexpected parser errors: %v", errs)
	}
	want := "def(x, y) {(x + y)}"
	if out != want {
		t.Errorf("program.String() = %q, want %q", out, want)
	}
}

func TestIfElseExpression(t *testing.T) {
	p, out := parseProgram(t, "if (x < y) { x } else { y }")
	if errs := p.Errors(); len(errs) != 0 {
		t.Fatalf("unexpected parser errors: %v", errs)
	}
	want := "if(x < y) {x}else {y}"
	if out != want {
		t.Errorf("program.String() = %q, want %q", out, want)
	}
}

func TestNoPrefixParseFnRecordsError(t *testing.T) {
	p, _ := parseProgram(t, ")")
	errs := p.Errors()
	if len(errs) != 1 || errs[0] != "no function found to parse )" {
		t.Fatalf("got errors %v", errs)
	}
}
