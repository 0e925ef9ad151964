package analyzer

import (
	"math"
	"math/big"

	"github.com/plclang/plc/ast"
	"github.com/plclang/plc/env"
	"github.com/plclang/plc/plcerrors"
)

var (
	minInt32 = big.NewInt(math.MinInt32)
	maxInt32 = big.NewInt(math.MaxInt32)
)

// analyzeExpression type-checks n in scope, sets n's Type slot, and returns
// the resolved type for the caller's convenience.
func analyzeExpression(n ast.Expression, scope *env.Scope) (*env.Type, error) {
	t, err := typeOf(n, scope)
	if err != nil {
		return nil, err
	}
	n.SetType(t)
	return t, nil
}

func typeOf(n ast.Expression, scope *env.Scope) (*env.Type, error) {
	switch n := n.(type) {
	case *ast.Literal:
		return typeOfLiteral(n, scope)
	case *ast.Group:
		return typeOfGroup(n, scope)
	case *ast.Binary:
		return typeOfBinary(n, scope)
	case *ast.Access:
		return typeOfAccess(n, scope)
	case *ast.Function:
		return typeOfFunction(n, scope)
	default:
		return nil, unreachable("expression", n)
	}
}

// typeOfLiteral implements spec §4.4's literal typing table, including the
// representability checks: an Integer literal outside the signed-32-bit
// range, or a Decimal literal that is not finite once converted to a
// 64-bit float, is rejected here even though the interpreter itself keeps
// arbitrary precision (design notes, "Arbitrary-precision numerics").
func typeOfLiteral(n *ast.Literal, scope *env.Scope) (*env.Type, error) {
	switch n.Kind {
	case ast.LiteralNil:
		return scope.LookupType(env.NilName)
	case ast.LiteralBool:
		return scope.LookupType(env.BooleanName)
	case ast.LiteralChar:
		return scope.LookupType(env.CharacterName)
	case ast.LiteralString:
		return scope.LookupType(env.StringName)
	case ast.LiteralInt:
		if n.Int.Cmp(minInt32) < 0 || n.Int.Cmp(maxInt32) > 0 {
			return nil, plcerrors.NewTypeError("integer literal %s is outside the representable 32-bit range", n.Int.String())
		}
		return scope.LookupType(env.IntegerName)
	case ast.LiteralDecimal:
		f, _ := n.Dec.Float64()
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return nil, plcerrors.NewTypeError("decimal literal %s is not representable as a finite 64-bit float", n.Dec.String())
		}
		return scope.LookupType(env.DecimalName)
	default:
		return nil, unreachable("literal", n)
	}
}

// typeOfGroup requires the wrapped expression be a Binary — a parenthesized
// literal or access is redundant and rejected (spec §4.4).
func typeOfGroup(n *ast.Group, scope *env.Scope) (*env.Type, error) {
	if _, ok := n.Inner.(*ast.Binary); !ok {
		return nil, plcerrors.NewTypeError("parentheses must wrap a binary expression")
	}
	return analyzeExpression(n.Inner, scope)
}

var logicalOps = map[string]bool{"&&": true, "||": true}
var comparisonOps = map[string]bool{"<": true, "<=": true, ">": true, ">=": true, "==": true, "!=": true}

// typeOfBinary implements the operator typing table of spec §4.4.
func typeOfBinary(n *ast.Binary, scope *env.Scope) (*env.Type, error) {
	left, err := analyzeExpression(n.Left, scope)
	if err != nil {
		return nil, err
	}
	right, err := analyzeExpression(n.Right, scope)
	if err != nil {
		return nil, err
	}

	switch {
	case logicalOps[n.Op]:
		if left.Name != env.BooleanName || right.Name != env.BooleanName {
			return nil, plcerrors.NewTypeError("'%s' requires Boolean operands, got %s and %s", n.Op, left.Name, right.Name)
		}
		return scope.LookupType(env.BooleanName)

	case comparisonOps[n.Op]:
		comparable, err := scope.LookupType(env.ComparableName)
		if err != nil {
			return nil, err
		}
		if !env.RequireAssignable(comparable, left) || !env.RequireAssignable(comparable, right) {
			return nil, plcerrors.NewTypeError("'%s' requires Comparable operands, got %s and %s", n.Op, left.Name, right.Name)
		}
		if left.Name != right.Name {
			return nil, plcerrors.NewTypeError("'%s' requires both operands to share a type, got %s and %s", n.Op, left.Name, right.Name)
		}
		return scope.LookupType(env.BooleanName)

	case n.Op == "+":
		if left.Name == env.StringName || right.Name == env.StringName {
			return scope.LookupType(env.StringName)
		}
		if !isNumeric(left) {
			return nil, plcerrors.NewTypeError("'+' requires String, Integer, or Decimal operands, got %s", left.Name)
		}
		if right.Name != left.Name {
			return nil, plcerrors.NewTypeError("'+' requires matching operand types, got %s and %s", left.Name, right.Name)
		}
		return left, nil

	case n.Op == "-" || n.Op == "*" || n.Op == "/":
		if !isNumeric(left) {
			return nil, plcerrors.NewTypeError("'%s' requires Integer or Decimal operands, got %s", n.Op, left.Name)
		}
		if right.Name != left.Name {
			return nil, plcerrors.NewTypeError("'%s' requires matching operand types, got %s and %s", n.Op, left.Name, right.Name)
		}
		return left, nil

	default:
		return nil, unreachable("binary operator", n.Op)
	}
}

func isNumeric(t *env.Type) bool {
	return t.Name == env.IntegerName || t.Name == env.DecimalName
}

// typeOfAccess resolves a field read (with a receiver) or a scope variable
// read (without one).
func typeOfAccess(n *ast.Access, scope *env.Scope) (*env.Type, error) {
	if n.HasReceiver {
		receiverType, err := analyzeExpression(n.Receiver, scope)
		if err != nil {
			return nil, err
		}
		field, ok := receiverType.Field(n.Name)
		if !ok {
			return nil, plcerrors.NewNameError("type '%s' has no field '%s'", receiverType.Name, n.Name)
		}
		n.Resolved = field
		return field.Type, nil
	}
	v, err := scope.LookupVariable(n.Name)
	if err != nil {
		return nil, err
	}
	n.Resolved = v
	return v.Type, nil
}

// typeOfFunction resolves a method call (with a receiver, parameter 0 being
// the receiver itself per the self convention) or a scope function call
// (without one), checking arity and per-argument assignability.
func typeOfFunction(n *ast.Function, scope *env.Scope) (*env.Type, error) {
	argTypes := make([]*env.Type, len(n.Args))
	for i, arg := range n.Args {
		t, err := analyzeExpression(arg, scope)
		if err != nil {
			return nil, err
		}
		argTypes[i] = t
	}

	if n.HasReceiver {
		receiverType, err := analyzeExpression(n.Receiver, scope)
		if err != nil {
			return nil, err
		}
		fn, ok := receiverType.Method(n.Name, len(n.Args)+1)
		if !ok {
			if receiverType.HasMethodName(n.Name) {
				return nil, plcerrors.NewArityError("method '%s' on type '%s' does not take %d argument(s)", n.Name, receiverType.Name, len(n.Args))
			}
			return nil, plcerrors.NewNameError("type '%s' has no method '%s'", receiverType.Name, n.Name)
		}
		for i, argType := range argTypes {
			paramType := fn.ParamTypes[i+1]
			if !env.RequireAssignable(paramType, argType) {
				return nil, plcerrors.NewTypeError("argument %d to '%s': cannot assign %s to %s", i+1, n.Name, argType.Name, paramType.Name)
			}
		}
		n.Resolved = fn
		return fn.ReturnType, nil
	}

	fn, err := scope.LookupFunction(n.Name, len(n.Args))
	if err != nil {
		if scope.FunctionExists(n.Name) {
			return nil, plcerrors.NewArityError("'%s' does not take %d argument(s)", n.Name, len(n.Args))
		}
		return nil, err
	}
	for i, argType := range argTypes {
		paramType := fn.ParamTypes[i]
		if !env.RequireAssignable(paramType, argType) {
			return nil, plcerrors.NewTypeError("argument %d to '%s': cannot assign %s to %s", i+1, n.Name, argType.Name, paramType.Name)
		}
	}
	n.Resolved = fn
	return fn.ReturnType, nil
}
