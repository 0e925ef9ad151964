package interp

import (
	"github.com/plclang/plc/ast"
	"github.com/plclang/plc/env"
	"github.com/plclang/plc/plcerrors"
	"github.com/plclang/plc/value"
)

// evalStatements runs stmts in order within scope, stopping early and
// propagating the first Return signal or error it encounters.
func evalStatements(stmts []ast.Statement, scope *env.Scope) (signal, error) {
	for _, stmt := range stmts {
		sig, err := evalStatement(stmt, scope)
		if err != nil {
			return signal{}, err
		}
		if sig.returned {
			return sig, nil
		}
	}
	return normalSignal, nil
}

func evalStatement(stmt ast.Statement, scope *env.Scope) (signal, error) {
	switch n := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := evalExpression(n.Expr, scope)
		return normalSignal, err
	case *ast.Declaration:
		return normalSignal, evalDeclaration(n, scope)
	case *ast.Assignment:
		return normalSignal, evalAssignment(n, scope)
	case *ast.If:
		return evalIf(n, scope)
	case *ast.While:
		return evalWhile(n, scope)
	case *ast.For:
		return evalFor(n, scope)
	case *ast.Return:
		return evalReturn(n, scope)
	default:
		return signal{}, unreachable("statement", n)
	}
}

func evalDeclaration(n *ast.Declaration, scope *env.Scope) error {
	v := value.Nil()
	if n.HasValue {
		val, err := evalExpression(n.Value, scope)
		if err != nil {
			return err
		}
		v = val
	}
	variable := env.NewVariable(n.Name, n.Name, nil, false)
	variable.Value = v
	return scope.DefineVariable(variable)
}

// evalAssignment implements spec §4.5's Assignment rule: with a
// sub-receiver, set the named field on the sub-receiver's value; otherwise
// look up and mutate the scope variable, rejecting a write to a constant.
func evalAssignment(n *ast.Assignment, scope *env.Scope) error {
	val, err := evalExpression(n.Value, scope)
	if err != nil {
		return err
	}
	access := n.Receiver
	if access.HasReceiver {
		receiverVal, err := evalExpression(access.Receiver, scope)
		if err != nil {
			return err
		}
		if receiverVal.Kind != value.KindHost {
			return plcerrors.NewRuntimeError("cannot assign a field on a %s value", receiverVal.TypeName())
		}
		receiverVal.Fields[access.Name] = val
		return nil
	}
	variable, err := scope.LookupVariable(access.Name)
	if err != nil {
		return err
	}
	if variable.Constant {
		return plcerrors.NewRuntimeError("cannot assign to constant '%s'", variable.Name)
	}
	variable.Value = val
	return nil
}

func requireBool(v value.Value) (bool, error) {
	if v.Kind != value.KindBool {
		return false, plcerrors.NewRuntimeError("expected Boolean, got %s", v.TypeName())
	}
	return v.Bool, nil
}

// evalIf runs the matching branch in a fresh child scope; an absent else on
// a false condition is simply a no-op.
func evalIf(n *ast.If, scope *env.Scope) (signal, error) {
	cond, err := evalExpression(n.Cond, scope)
	if err != nil {
		return signal{}, err
	}
	b, err := requireBool(cond)
	if err != nil {
		return signal{}, err
	}
	if b {
		return evalStatements(n.Then, scope.Child())
	}
	if n.HasElse {
		return evalStatements(n.Else, scope.Child())
	}
	return normalSignal, nil
}

// evalWhile re-checks the condition before every iteration, running the
// body each time in its own fresh child scope.
func evalWhile(n *ast.While, scope *env.Scope) (signal, error) {
	for {
		cond, err := evalExpression(n.Cond, scope)
		if err != nil {
			return signal{}, err
		}
		b, err := requireBool(cond)
		if err != nil {
			return signal{}, err
		}
		if !b {
			return normalSignal, nil
		}
		sig, err := evalStatements(n.Body, scope.Child())
		if err != nil {
			return signal{}, err
		}
		if sig.returned {
			return sig, nil
		}
	}
}

// evalFor implements spec §4.5's For semantics, resolving the induction
// variable's scoping per the open question in the design notes: init runs
// once to produce a starting value, but every iteration gets its own
// fresh child scope holding a fresh Variable for the induction variable
// (rather than one Variable mutated in place for the whole loop's
// lifetime); the value simply carries forward from one iteration's
// variable to the next's. cond is checked before each iteration; incr runs
// after the body and before the next check, in that same iteration's scope.
func evalFor(n *ast.For, scope *env.Scope) (signal, error) {
	var current value.Value
	hasInduction := n.Init != nil
	if hasInduction {
		val, err := evalExpression(n.Init.Value, scope)
		if err != nil {
			return signal{}, err
		}
		current = val
	}
	for {
		iter := scope.Child()
		if hasInduction {
			variable := env.NewVariable(n.Init.Name, n.Init.Name, nil, false)
			variable.Value = current
			if err := iter.DefineVariable(variable); err != nil {
				return signal{}, err
			}
		}
		cond, err := evalExpression(n.Cond, iter)
		if err != nil {
			return signal{}, err
		}
		b, err := requireBool(cond)
		if err != nil {
			return signal{}, err
		}
		if !b {
			return normalSignal, nil
		}
		sig, err := evalStatements(n.Body, iter.Child())
		if err != nil {
			return signal{}, err
		}
		if sig.returned {
			return sig, nil
		}
		if n.Incr != nil {
			val, err := evalExpression(n.Incr.Value, iter)
			if err != nil {
				return signal{}, err
			}
			current = val
		}
	}
}

func evalReturn(n *ast.Return, scope *env.Scope) (signal, error) {
	v, err := evalExpression(n.Value, scope)
	if err != nil {
		return signal{}, err
	}
	return returnedSignal(v), nil
}
