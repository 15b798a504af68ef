// Package parser drives the scanner and builds an AST using Pratt
// (precedence-climbing) parsing: one token of lookahead, a table of
// prefix/infix handlers keyed by token kind, and a precedence ladder that
// decides how far an infix chain extends before control returns to its
// caller.
package parser

import (
	"github.com/nibblelang/nibble/internal/ast"
	"github.com/nibblelang/nibble/internal/diagnostics"
	"github.com/nibblelang/nibble/internal/lexer"
	"github.com/nibblelang/nibble/internal/token"
)

// Precedence levels, lowest to highest. LOGIC sits below EQUALS so that
// `1 < 2 and 5 < 8` parses as `(1 < 2) and (5 < 8)`; the source grammar
// never registers and/or as infix operators at all, which would leave
// them unparsable past the first comparison.
const (
	_ int = iota
	LOWEST
	LOGIC       // and, or
	EQUALS      // == !=
	LESSGREATER // < <= > >=
	SUM         // + -
	PRODUCT     // * /
	POWER       // ^
	PREFIX      // -x, not x
	CALL        // f(x)
)

var precedences = map[token.Kind]int{
	token.AND:            LOGIC,
	token.OR:             LOGIC,
	token.EQUALS:         EQUALS,
	token.DIFF:           EQUALS,
	token.LT:             LESSGREATER,
	token.LT_OR_EQUALS:   LESSGREATER,
	token.GT:             LESSGREATER,
	token.GT_OR_EQUALS:   LESSGREATER,
	token.PLUS:           SUM,
	token.MINUS:          SUM,
	token.MULTIPLICATION: PRODUCT,
	token.DIVISION:       PRODUCT,
	token.POWER:          POWER,
	token.LPAREN:         CALL,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser holds one token of lookahead over a Lexer and accumulates
// human-readable error strings as it goes; it never aborts on a single
// error, recording it and continuing at the next statement.
type Parser struct {
	lex *lexer.Lexer

	current token.Token
	peek    token.Token

	errors []string

	prefixParseFns map[token.Kind]prefixParseFn
	infixParseFns  map[token.Kind]infixParseFn
}

// New returns a Parser primed with two token advances (current and peek
// both point at real tokens) and all of the grammar's prefix/infix
// handlers registered.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{lex: lex}

	p.prefixParseFns = make(map[token.Kind]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.FLOAT, p.parseFloatLiteral)
	p.registerPrefix(token.STR, p.parseStringLiteral)
	p.registerPrefix(token.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(token.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.NEGATION, p.parsePrefixExpression)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.IF, p.parseIfExpression)
	p.registerPrefix(token.FUNCTION, p.parseFunctionLiteral)

	p.infixParseFns = make(map[token.Kind]infixParseFn)
	p.registerInfix(token.PLUS, p.parseInfixExpression)
	p.registerInfix(token.MINUS, p.parseInfixExpression)
	p.registerInfix(token.MULTIPLICATION, p.parseInfixExpression)
	p.registerInfix(token.DIVISION, p.parseInfixExpression)
	p.registerInfix(token.POWER, p.parseInfixExpression)
	p.registerInfix(token.EQUALS, p.parseInfixExpression)
	p.registerInfix(token.DIFF, p.parseInfixExpression)
	p.registerInfix(token.LT, p.parseInfixExpression)
	p.registerInfix(token.LT_OR_EQUALS, p.parseInfixExpression)
	p.registerInfix(token.GT, p.parseInfixExpression)
	p.registerInfix(token.GT_OR_EQUALS, p.parseInfixExpression)
	p.registerInfix(token.AND, p.parseInfixExpression)
	p.registerInfix(token.OR, p.parseInfixExpression)
	p.registerInfix(token.LPAREN, p.parseCallExpression)

	p.advance()
	p.advance()
	return p
}

func (p *Parser) registerPrefix(kind token.Kind, fn prefixParseFn) { p.prefixParseFns[kind] = fn }
func (p *Parser) registerInfix(kind token.Kind, fn infixParseFn)   { p.infixParseFns[kind] = fn }

// Errors returns the parse errors recorded so far, in order of discovery.
func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) advance() {
	p.current = p.peek
	p.peek = p.lex.NextToken()
}

// expectPeek checks peek against kind; on match it advances and reports
// true. On mismatch it records one error and leaves the tokens untouched
// so the caller can decide how to recover.
func (p *Parser) expectPeek(kind token.Kind) bool {
	if p.peek.Kind == kind {
		p.advance()
		return true
	}
	p.errors = append(p.errors, diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrExpectedToken, kind, p.peek.Kind).String())
	return false
}

func peekPrecedence(p *Parser) int {
	if prec, ok := precedences[p.peek.Kind]; ok {
		return prec
	}
	return LOWEST
}

func currentPrecedence(p *Parser) int {
	if prec, ok := precedences[p.current.Kind]; ok {
		return prec
	}
	return LOWEST
}

// ParseProgram drives the statement loop until EOF, appending each
// non-nil statement it parses. Every iteration advances at least one
// token, either through expectPeek's advance-on-match or the loop's tail
// advance, so parsing always terminates.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{Statements: []ast.Statement{}}

	for p.current.Kind != token.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.advance()
	}

	return program
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.current.Kind {
	case token.LET:
		return p.parseLetStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: p.current}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.current, Name: p.current.Literal}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}

	p.advance()
	stmt.Value = p.parseExpression(LOWEST)

	if p.peek.Kind == token.SEMICOLON {
		p.advance()
	}
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.current}

	p.advance()
	stmt.Value = p.parseExpression(LOWEST)

	if p.peek.Kind == token.SEMICOLON {
		p.advance()
	}
	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.current}
	stmt.Expression = p.parseExpression(LOWEST)

	if p.peek.Kind == token.SEMICOLON {
		p.advance()
	}
	return stmt
}

// parseExpression is the Pratt core: find a prefix handler for current,
// invoke it, then keep folding infix operators whose precedence beats
// minPrecedence into the left operand.
func (p *Parser) parseExpression(minPrecedence int) ast.Expression {
	prefix, ok := p.prefixParseFns[p.current.Kind]
	if !ok {
		p.errors = append(p.errors, diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrNoPrefixParseFn, p.current.Literal).String())
		return nil
	}
	left := prefix()

	for p.peek.Kind != token.SEMICOLON && minPrecedence < peekPrecedence(p) {
		infix, ok := p.infixParseFns[p.peek.Kind]
		if !ok {
			return left
		}
		p.advance()
		left = infix(left)
	}

	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.current, Name: p.current.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: p.current}
	value, err := lexer.ParseIntLiteral(p.current.Literal)
	if err != nil {
		p.errors = append(p.errors, diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrBadIntLiteral, p.current.Literal).String())
		return nil
	}
	lit.Value = value
	return lit
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	lit := &ast.FloatLiteral{Token: p.current}
	value, err := lexer.ParseFloatLiteral(p.current.Literal)
	if err != nil {
		p.errors = append(p.errors, diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrBadFloatLiteral, p.current.Literal).String())
		return nil
	}
	lit.Value = value
	return lit
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.current, Value: p.current.Literal}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.current, Value: p.current.Kind == token.TRUE}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.advance()
	exp := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return exp
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	exp := &ast.PrefixExpr{Token: p.current, Operator: p.current.Literal}
	p.advance()
	exp.Right = p.parseExpression(PREFIX)
	return exp
}

// parseInfixExpression reads the operator from current, advances, and
// parses the right operand at the operator's own precedence -- so `^`
// parses left-associatively here, matching precedences[POWER] being one
// step below PREFIX rather than at or above itself.
func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	exp := &ast.InfixExpr{Token: p.current, Operator: p.current.Literal, Left: left}
	prec := currentPrecedence(p)
	p.advance()
	exp.Right = p.parseExpression(prec)
	return exp
}

func (p *Parser) parseIfExpression() ast.Expression {
	exp := &ast.IfExpr{Token: p.current}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.advance()
	exp.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	exp.Consequence = p.parseBlock()

	if p.peek.Kind == token.ELSE {
		p.advance()
		if !p.expectPeek(token.LBRACE) {
			return nil
		}
		exp.Alternative = p.parseBlock()
	}

	return exp
}

func (p *Parser) parseBlock() *ast.Block {
	block := &ast.Block{Token: p.current, Statements: []ast.Statement{}}

	p.advance()
	for p.current.Kind != token.RBRACE && p.current.Kind != token.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.advance()
	}

	return block
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	lit := &ast.FunctionLiteral{Token: p.current}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	lit.Parameters = p.parseFunctionParameters()

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	lit.Body = p.parseBlock()

	return lit
}

func (p *Parser) parseFunctionParameters() []*ast.Identifier {
	identifiers := []*ast.Identifier{}

	if p.peek.Kind == token.RPAREN {
		p.advance()
		return identifiers
	}

	p.advance()
	identifiers = append(identifiers, &ast.Identifier{Token: p.current, Name: p.current.Literal})

	for p.peek.Kind == token.COMMA {
		p.advance()
		p.advance()
		identifiers = append(identifiers, &ast.Identifier{Token: p.current, Name: p.current.Literal})
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return identifiers
}

func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	exp := &ast.CallExpr{Token: p.current, Function: function}
	exp.Arguments = p.parseCallArguments()
	return exp
}

func (p *Parser) parseCallArguments() []ast.Expression {
	args := []ast.Expression{}

	if p.peek.Kind == token.RPAREN {
		p.advance()
		return args
	}

	p.advance()
	args = append(args, p.parseExpression(LOWEST))

	for p.peek.Kind == token.COMMA {
		p.advance()
		p.advance()
		args = append(args, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return args
}
