// Package evaluator reduces an AST to runtime values by walking it
// directly -- no bytecode, no compilation pass. Program and Block both
// evaluate their statements in order; the difference is what happens to
// a ReturnWrapper produced along the way: Program unwraps it (nothing
// outside a program ever sees one), Block passes it through unchanged so
// an enclosing Program or function call can unwrap it instead.
package evaluator

import (
	"github.com/nibblelang/nibble/internal/ast"
	"github.com/nibblelang/nibble/internal/diagnostics"
)

// Eval dispatches on the dynamic type of node. It returns nil for a
// successful LetStatement (whose job is to mutate env rather than produce
// a value), for a Program or Block with no statements or whose last
// statement yielded nil, and for node kinds it does not handle.
func Eval(node ast.Node, env *Environment) Object {
	switch node := node.(type) {
	case *ast.Program:
		return evalProgram(node, env)
	case *ast.ExpressionStatement:
		return Eval(node.Expression, env)
	case *ast.LetStatement:
		value := Eval(node.Value, env)
		if isError(value) {
			return value
		}
		env.Set(node.Name.Name, value)
		return nil
	case *ast.ReturnStatement:
		value := Eval(node.Value, env)
		if isError(value) {
			return value
		}
		return &ReturnWrapper{Value: value}
	case *ast.Block:
		return evalBlock(node, env)

	case *ast.IntegerLiteral:
		return &Integer{Value: node.Value}
	case *ast.FloatLiteral:
		return &Float{Value: node.Value}
	case *ast.StringLiteral:
		return &String{Value: node.Value}
	case *ast.BooleanLiteral:
		return newBoolean(node.Value)
	case *ast.Identifier:
		return evalIdentifier(node, env)

	case *ast.PrefixExpr:
		right := Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return evalPrefixExpression(node.Operator, right)
	case *ast.InfixExpr:
		left := Eval(node.Left, env)
		if isError(left) {
			return left
		}
		right := Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return evalInfixExpression(node.Operator, left, right)
	case *ast.IfExpr:
		return evalIfExpression(node, env)
	case *ast.FunctionLiteral:
		return &Function{Parameters: node.Parameters, Body: node.Body, Env: env}
	case *ast.CallExpr:
		return evalCallExpression(node, env)
	}

	return nil
}

// evalProgram unwraps a ReturnWrapper at the top level (applyFunction does
// the same for a call's body): a `return` at any block nesting depth
// inside the program surfaces here as the program's final value, never as
// a RETURN-kind Object outside it.
func evalProgram(program *ast.Program, env *Environment) Object {
	var result Object
	for _, stmt := range program.Statements {
		result = Eval(stmt, env)

		switch result := result.(type) {
		case *ReturnWrapper:
			return result.Value
		case *Error:
			return result
		}
	}
	return result
}

// evalBlock evaluates statements in order but, unlike evalProgram,
// returns a ReturnWrapper or Error as-is: the caller (another Block, or
// Program) is responsible for deciding whether to unwrap or keep
// propagating it.
func evalBlock(block *ast.Block, env *Environment) Object {
	var result Object
	for _, stmt := range block.Statements {
		result = Eval(stmt, env)

		if result != nil {
			kind := result.Kind()
			if kind == RETURN_OBJ || kind == ERROR_OBJ {
				return result
			}
		}
	}
	return result
}

func evalIdentifier(node *ast.Identifier, env *Environment) Object {
	if value, ok := env.Get(node.Name); ok {
		return value
	}
	return &Error{Message: diagnostics.New(diagnostics.PhaseRuntime, diagnostics.ErrUnknownIdent, node.Name).String()}
}

func evalCallExpression(node *ast.CallExpr, env *Environment) Object {
	function := Eval(node.Function, env)
	if isError(function) {
		return function
	}

	args, errObj := evalExpressions(node.Arguments, env)
	if errObj != nil {
		return errObj
	}

	return applyFunction(function, args)
}

func evalExpressions(exps []ast.Expression, env *Environment) ([]Object, Object) {
	result := make([]Object, 0, len(exps))
	for _, exp := range exps {
		evaluated := Eval(exp, env)
		if isError(evaluated) {
			return nil, evaluated
		}
		result = append(result, evaluated)
	}
	return result, nil
}

// applyFunction binds args to fn's parameters in a new scope enclosed by
// the function's defining environment -- the closure -- evaluates the
// body, and unwraps a top-of-body ReturnWrapper so `return` inside a
// function exits the call rather than the caller's own block.
func applyFunction(fn Object, args []Object) Object {
	function, ok := fn.(*Function)
	if !ok {
		return newError("not a function: %s", fn.Kind())
	}
	if len(args) != len(function.Parameters) {
		return newError("wrong number of arguments: expected %d, got %d", len(function.Parameters), len(args))
	}

	extendedEnv := NewEnclosedEnvironment(function.Env)
	for i, param := range function.Parameters {
		extendedEnv.Set(param.Name, args[i])
	}

	evaluated := Eval(function.Body, extendedEnv)
	return unwrapReturnValue(evaluated)
}

func unwrapReturnValue(obj Object) Object {
	if rv, ok := obj.(*ReturnWrapper); ok {
		return rv.Value
	}
	return obj
}
