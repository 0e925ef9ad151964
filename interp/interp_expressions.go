package interp

import (
	"github.com/plclang/plc/ast"
	"github.com/plclang/plc/env"
	"github.com/plclang/plc/plcerrors"
	"github.com/plclang/plc/value"
)

func evalExpression(n ast.Expression, scope *env.Scope) (value.Value, error) {
	switch n := n.(type) {
	case *ast.Literal:
		return evalLiteral(n), nil
	case *ast.Group:
		return evalExpression(n.Inner, scope)
	case *ast.Binary:
		return evalBinary(n, scope)
	case *ast.Access:
		return evalAccess(n, scope)
	case *ast.Function:
		return evalCall(n, scope)
	default:
		return value.Value{}, unreachable("expression", n)
	}
}

func evalLiteral(n *ast.Literal) value.Value {
	switch n.Kind {
	case ast.LiteralNil:
		return value.Nil()
	case ast.LiteralBool:
		return value.FromBool(n.Bool)
	case ast.LiteralChar:
		return value.FromChar(n.Char)
	case ast.LiteralString:
		return value.FromString(n.Str)
	case ast.LiteralInt:
		return value.FromInt(n.Int)
	case ast.LiteralDecimal:
		return value.FromDecimal(n.Dec)
	default:
		return value.Nil()
	}
}

// evalBinary implements spec §4.5's operator semantics: short-circuit
// &&/||, same-concrete-type-required ordering comparisons, cross-type-safe
// ==/!=, and the arithmetic table delegated to the value package.
func evalBinary(n *ast.Binary, scope *env.Scope) (value.Value, error) {
	switch n.Op {
	case "&&":
		left, err := evalExpression(n.Left, scope)
		if err != nil {
			return value.Value{}, err
		}
		lb, err := requireBool(left)
		if err != nil {
			return value.Value{}, err
		}
		if !lb {
			return value.FromBool(false), nil
		}
		right, err := evalExpression(n.Right, scope)
		if err != nil {
			return value.Value{}, err
		}
		rb, err := requireBool(right)
		if err != nil {
			return value.Value{}, err
		}
		return value.FromBool(rb), nil

	case "||":
		left, err := evalExpression(n.Left, scope)
		if err != nil {
			return value.Value{}, err
		}
		lb, err := requireBool(left)
		if err != nil {
			return value.Value{}, err
		}
		if lb {
			return value.FromBool(true), nil
		}
		right, err := evalExpression(n.Right, scope)
		if err != nil {
			return value.Value{}, err
		}
		rb, err := requireBool(right)
		if err != nil {
			return value.Value{}, err
		}
		return value.FromBool(rb), nil

	case "==", "!=":
		left, err := evalExpression(n.Left, scope)
		if err != nil {
			return value.Value{}, err
		}
		right, err := evalExpression(n.Right, scope)
		if err != nil {
			return value.Value{}, err
		}
		eq := left.Equal(right)
		if n.Op == "!=" {
			eq = !eq
		}
		return value.FromBool(eq), nil

	case "<", "<=", ">", ">=":
		left, err := evalExpression(n.Left, scope)
		if err != nil {
			return value.Value{}, err
		}
		right, err := evalExpression(n.Right, scope)
		if err != nil {
			return value.Value{}, err
		}
		if left.Kind != right.Kind {
			return value.Value{}, plcerrors.NewRuntimeError("cannot compare %s and %s", left.TypeName(), right.TypeName())
		}
		less := left.Less(right)
		equal := left.Equal(right)
		var result bool
		switch n.Op {
		case "<":
			result = less
		case "<=":
			result = less || equal
		case ">":
			result = !less && !equal
		case ">=":
			result = !less
		}
		return value.FromBool(result), nil

	case "+":
		left, err := evalExpression(n.Left, scope)
		if err != nil {
			return value.Value{}, err
		}
		right, err := evalExpression(n.Right, scope)
		if err != nil {
			return value.Value{}, err
		}
		return value.Add(left, right)

	case "-":
		left, err := evalExpression(n.Left, scope)
		if err != nil {
			return value.Value{}, err
		}
		right, err := evalExpression(n.Right, scope)
		if err != nil {
			return value.Value{}, err
		}
		return value.Sub(left, right)

	case "*":
		left, err := evalExpression(n.Left, scope)
		if err != nil {
			return value.Value{}, err
		}
		right, err := evalExpression(n.Right, scope)
		if err != nil {
			return value.Value{}, err
		}
		return value.Mul(left, right)

	case "/":
		left, err := evalExpression(n.Left, scope)
		if err != nil {
			return value.Value{}, err
		}
		right, err := evalExpression(n.Right, scope)
		if err != nil {
			return value.Value{}, err
		}
		return value.Div(left, right)

	default:
		return value.Value{}, unreachable("binary operator", n.Op)
	}
}

// evalAccess returns a field's value (with a receiver) or a scope
// variable's value (without one).
func evalAccess(n *ast.Access, scope *env.Scope) (value.Value, error) {
	if n.HasReceiver {
		receiverVal, err := evalExpression(n.Receiver, scope)
		if err != nil {
			return value.Value{}, err
		}
		if receiverVal.Kind != value.KindHost {
			return value.Value{}, plcerrors.NewRuntimeError("%s has no field '%s'", receiverVal.TypeName(), n.Name)
		}
		fieldVal, ok := receiverVal.Fields[n.Name]
		if !ok {
			return value.Value{}, plcerrors.NewNameError("%s has no field '%s'", receiverVal.HostType, n.Name)
		}
		return fieldVal, nil
	}
	variable, err := scope.LookupVariable(n.Name)
	if err != nil {
		return value.Value{}, err
	}
	return variable.Value, nil
}

// evalCall implements spec §4.5's call rule: with a receiver, dispatch to
// a method on the receiver value's host type (parameter 0 is the receiver
// itself, the self convention shared with analyzer); without one, invoke
// the function found in scope.
func evalCall(n *ast.Function, scope *env.Scope) (value.Value, error) {
	args := make([]value.Value, len(n.Args))
	for i, argExpr := range n.Args {
		v, err := evalExpression(argExpr, scope)
		if err != nil {
			return value.Value{}, err
		}
		args[i] = v
	}

	if n.HasReceiver {
		receiverVal, err := evalExpression(n.Receiver, scope)
		if err != nil {
			return value.Value{}, err
		}
		if receiverVal.Kind != value.KindHost {
			return value.Value{}, plcerrors.NewRuntimeError("%s has no method '%s'", receiverVal.TypeName(), n.Name)
		}
		hostType, err := scope.LookupType(receiverVal.HostType)
		if err != nil {
			return value.Value{}, err
		}
		fn, ok := hostType.Method(n.Name, len(args)+1)
		if !ok {
			return value.Value{}, plcerrors.NewNameError("type '%s' has no method '%s'", hostType.Name, n.Name)
		}
		return fn.Impl(append([]value.Value{receiverVal}, args...))
	}

	fn, err := scope.LookupFunction(n.Name, len(args))
	if err != nil {
		return value.Value{}, err
	}
	return fn.Impl(args)
}
