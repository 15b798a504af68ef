package token_test

import (
	"testing"

	"github.com/nibblelang/nibble/internal/token"
)

func TestLookupPunctuation(t *testing.T) {
	tests := []struct {
		lexeme string
		want   token.Kind
	}{
		{"=", token.ASSIGN},
		{"==", token.EQUALS},
		{"!=", token.DIFF},
		{"+", token.PLUS},
		{"-", token.MINUS},
		{"*", token.MULTIPLICATION},
		{"/", token.DIVISION},
		{"^", token.POWER},
		{"<", token.LT},
		{"<=", token.LT_OR_EQUALS},
		{">", token.GT},
		{">=", token.GT_OR_EQUALS},
		{"++", token.INCR},
		{"--", token.DECR},
		{"(", token.LPAREN},
		{")", token.RPAREN},
		{"{", token.LBRACE},
		{"}", token.RBRACE},
		{",", token.COMMA},
		{";", token.SEMICOLON},
		{"", token.EOF},
	}

	for _, tt := range tests {
		t.Run(tt.lexeme, func(t *testing.T) {
			got, ok := token.Lookup(tt.lexeme)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.lexeme)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %s, want %s", tt.lexeme, got, tt.want)
			}
		})
	}

	if _, ok := token.Lookup("$"); ok {
		t.Errorf("Lookup(%q) unexpectedly found", "$")
	}
}

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		ident string
		want  token.Kind
	}{
		{"and", token.AND},
		{"def", token.FUNCTION},
		{"else", token.ELSE},
		{"false", token.FALSE},
		{"if", token.IF},
		{"let", token.LET},
		{"mod", token.MOD},
		{"not", token.NEGATION},
		{"or", token.OR},
		{"return", token.RETURN},
		{"true", token.TRUE},
		{"foobar", token.IDENT},
		{"x", token.IDENT},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			if got := token.LookupIdent(tt.ident); got != tt.want {
				t.Errorf("LookupIdent(%q) = %s, want %s", tt.ident, got, tt.want)
			}
		})
	}
}
