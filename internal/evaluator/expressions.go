package evaluator

import (
	"math"

	"github.com/nibblelang/nibble/internal/ast"
	"github.com/nibblelang/nibble/internal/diagnostics"
)

func evalPrefixExpression(operator string, right Object) Object {
	switch operator {
	case "not":
		return evalNotOperator(right)
	case "-":
		return evalMinusPrefixOperator(right)
	default:
		return typeErrorUnknownOperator(operator + string(right.Kind()))
	}
}

// evalNotOperator treats FALSE and NULL as the only falsy inputs; every
// other value, including non-Boolean ones, collapses to FALSE.
func evalNotOperator(right Object) Object {
	switch right {
	case FALSE, NULL:
		return TRUE
	default:
		return FALSE
	}
}

func evalMinusPrefixOperator(right Object) Object {
	switch right := right.(type) {
	case *Integer:
		return &Integer{Value: -right.Value}
	case *Float:
		return &Float{Value: -right.Value}
	default:
		return typeErrorUnknownOperator("-" + string(right.Kind()))
	}
}

func evalInfixExpression(operator string, left, right Object) Object {
	// and/or are defined over any pair of values by identity against the
	// TRUE singleton, never by numeric coercion, so they're resolved
	// before the numeric dispatch below ever sees them.
	switch operator {
	case "and":
		return newBoolean(left == Object(TRUE) && right == Object(TRUE))
	case "or":
		return newBoolean(left == Object(TRUE) || right == Object(TRUE))
	}

	leftNum, leftIsNum := numericValue(left)
	rightNum, rightIsNum := numericValue(right)

	switch {
	case leftIsNum && rightIsNum:
		return evalNumericInfixExpression(operator, left, right, leftNum, rightNum)
	case operator == "==":
		return newBoolean(left == right)
	case operator == "!=":
		return newBoolean(left != right)
	case leftIsNum != rightIsNum:
		return typeMismatchError(left.Kind(), operator, right.Kind())
	default:
		return typeErrorUnknownOperator(string(left.Kind()) + " " + operator + " " + string(right.Kind()))
	}
}

// numericValue reports obj's value as a float64 if it is an Integer or
// Float, regardless of which, so arithmetic can be written once against
// a common representation.
func numericValue(obj Object) (float64, bool) {
	switch obj := obj.(type) {
	case *Integer:
		return float64(obj.Value), true
	case *Float:
		return obj.Value, true
	default:
		return 0, false
	}
}

// evalNumericInfixExpression implements the arithmetic and comparison
// operators over two numeric operands. Division always follows host
// float semantics (5 / 2 == 2.5); every other arithmetic operator stays
// in the integer domain when both operands are Integer. A float result
// that happens to be exactly integral is narrowed back to Integer, so
// 50 / 2 reads as 25, not 25.0.
func evalNumericInfixExpression(operator string, left, right Object, leftNum, rightNum float64) Object {
	switch operator {
	case "<":
		return newBoolean(leftNum < rightNum)
	case "<=":
		return newBoolean(leftNum <= rightNum)
	case ">":
		return newBoolean(leftNum > rightNum)
	case ">=":
		return newBoolean(leftNum >= rightNum)
	case "==":
		return newBoolean(leftNum == rightNum)
	case "!=":
		return newBoolean(leftNum != rightNum)
	}

	leftInt, leftIsInt := left.(*Integer)
	rightInt, rightIsInt := right.(*Integer)
	if leftIsInt && rightIsInt && operator != "/" {
		switch operator {
		case "+":
			return &Integer{Value: leftInt.Value + rightInt.Value}
		case "-":
			return &Integer{Value: leftInt.Value - rightInt.Value}
		case "*":
			return &Integer{Value: leftInt.Value * rightInt.Value}
		case "^":
			return &Integer{Value: integerPower(leftInt.Value, rightInt.Value)}
		default:
			return typeErrorUnknownOperator(string(left.Kind()) + " " + operator + " " + string(right.Kind()))
		}
	}

	var result float64
	switch operator {
	case "+":
		result = leftNum + rightNum
	case "-":
		result = leftNum - rightNum
	case "*":
		result = leftNum * rightNum
	case "/":
		result = leftNum / rightNum
	case "^":
		result = math.Pow(leftNum, rightNum)
	default:
		return typeErrorUnknownOperator(string(left.Kind()) + " " + operator + " " + string(right.Kind()))
	}
	return narrowFloat(result)
}

func integerPower(base, exponent int64) int64 {
	if exponent < 0 {
		return int64(math.Pow(float64(base), float64(exponent)))
	}
	result := int64(1)
	for i := int64(0); i < exponent; i++ {
		result *= base
	}
	return result
}

func narrowFloat(result float64) Object {
	if !math.IsInf(result, 0) && !math.IsNaN(result) && result == math.Trunc(result) {
		return &Integer{Value: int64(result)}
	}
	return &Float{Value: result}
}

// evalIfExpression evaluates the condition and follows the truthiness
// rule: NULL, FALSE, a zero Integer or Float, and the empty String are
// falsy; everything else, including any non-empty Function or Error
// that somehow reached here, is truthy.
func evalIfExpression(node *ast.IfExpr, env *Environment) Object {
	condition := Eval(node.Condition, env)
	if isError(condition) {
		return condition
	}

	if isTruthy(condition) {
		return Eval(node.Consequence, env)
	} else if node.Alternative != nil {
		return Eval(node.Alternative, env)
	}
	return NULL
}

func isTruthy(obj Object) bool {
	switch obj := obj.(type) {
	case *Null:
		return false
	case *Boolean:
		return obj.Value
	case *Integer:
		return obj.Value != 0
	case *Float:
		return obj.Value != 0
	case *String:
		return obj.Value != ""
	default:
		return true
	}
}

func typeMismatchError(left Kind, operator string, right Kind) *Error {
	return &Error{Message: diagnostics.New(diagnostics.PhaseRuntime, diagnostics.ErrTypeMismatch, left, operator, right).String()}
}

func typeErrorUnknownOperator(detail string) *Error {
	return &Error{Message: diagnostics.New(diagnostics.PhaseRuntime, diagnostics.ErrUnknownOperator, detail).String()}
}
