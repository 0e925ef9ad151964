package analyzer

import (
	"github.com/plclang/plc/ast"
	"github.com/plclang/plc/env"
	"github.com/plclang/plc/plcerrors"
)

// analyzeStatements visits each statement of a body in order, within the
// single scope the caller has already opened for that body.
func analyzeStatements(stmts []ast.Statement, scope *env.Scope) error {
	for _, stmt := range stmts {
		if err := analyzeStatement(stmt, scope); err != nil {
			return err
		}
	}
	return nil
}

func analyzeStatement(stmt ast.Statement, scope *env.Scope) error {
	switch n := stmt.(type) {
	case *ast.ExpressionStmt:
		return analyzeExpressionStmt(n, scope)
	case *ast.Declaration:
		return analyzeDeclaration(n, scope)
	case *ast.Assignment:
		return analyzeAssignment(n, scope)
	case *ast.If:
		return analyzeIf(n, scope)
	case *ast.While:
		return analyzeWhile(n, scope)
	case *ast.For:
		return analyzeFor(n, scope)
	case *ast.Return:
		return analyzeReturn(n, scope)
	default:
		return unreachable("statement", n)
	}
}

// analyzeExpressionStmt rejects every expression-statement shape except a
// bare function call (spec §4.4: "only a function call is a permissible
// statement expression").
func analyzeExpressionStmt(n *ast.ExpressionStmt, scope *env.Scope) error {
	if _, ok := n.Expr.(*ast.Function); !ok {
		return plcerrors.NewTypeError("only a function call is permitted as a statement")
	}
	_, err := analyzeExpression(n.Expr, scope)
	return err
}

// analyzeDeclaration requires at least one of an explicit type or an
// initializer (open question 2, resolved: neither is a hard error), checks
// assignability when both are present, and defines the declared variable
// with the declared type if given, else the initializer's type.
func analyzeDeclaration(n *ast.Declaration, scope *env.Scope) error {
	if !n.HasType && !n.HasValue {
		return plcerrors.NewTypeError("declaration of '%s' needs a type, an initializer, or both", n.Name)
	}
	var declared *env.Type
	if n.HasType {
		t, err := scope.LookupType(n.TypeName)
		if err != nil {
			return err
		}
		declared = t
	}
	var initType *env.Type
	if n.HasValue {
		t, err := analyzeExpression(n.Value, scope)
		if err != nil {
			return err
		}
		initType = t
	}
	if n.HasType && n.HasValue {
		if !env.RequireAssignable(declared, initType) {
			return plcerrors.NewTypeError("cannot assign %s to '%s' of type %s", initType.Name, n.Name, declared.Name)
		}
	}
	varType := declared
	if varType == nil {
		varType = initType
	}
	v := env.NewVariable(n.Name, n.Name, varType, false)
	if err := scope.DefineVariable(v); err != nil {
		return err
	}
	n.Resolved = v
	return nil
}

// analyzeAssignment requires the value's type be assignable to the
// receiver's resolved type. The AST already guarantees Receiver is an
// *ast.Access (parser_statements.go rejects anything else before building
// this node).
func analyzeAssignment(n *ast.Assignment, scope *env.Scope) error {
	receiverType, err := analyzeExpression(n.Receiver, scope)
	if err != nil {
		return err
	}
	valueType, err := analyzeExpression(n.Value, scope)
	if err != nil {
		return err
	}
	if !env.RequireAssignable(receiverType, valueType) {
		return plcerrors.NewTypeError("cannot assign %s to '%s' of type %s", valueType.Name, n.Receiver.Name, receiverType.Name)
	}
	return nil
}

// requireBoolean checks a condition expression's type without needing the
// caller to re-derive env.BooleanName each time.
func requireBoolean(scope *env.Scope, cond ast.Expression, context string) error {
	t, err := analyzeExpression(cond, scope)
	if err != nil {
		return err
	}
	if t.Name != env.BooleanName {
		return plcerrors.NewTypeError("%s condition must be Boolean, got %s", context, t.Name)
	}
	return nil
}

// analyzeIf requires a Boolean condition, a non-empty then-branch, and
// visits each branch in its own child scope.
func analyzeIf(n *ast.If, scope *env.Scope) error {
	if err := requireBoolean(scope, n.Cond, "if"); err != nil {
		return err
	}
	if len(n.Then) == 0 {
		return plcerrors.NewTypeError("if-branch must not be empty")
	}
	if err := analyzeStatements(n.Then, scope.Child()); err != nil {
		return err
	}
	if n.HasElse {
		return analyzeStatements(n.Else, scope.Child())
	}
	return nil
}

// analyzeWhile requires a Boolean condition and visits the body in a child
// scope.
func analyzeWhile(n *ast.While, scope *env.Scope) error {
	if err := requireBoolean(scope, n.Cond, "while"); err != nil {
		return err
	}
	return analyzeStatements(n.Body, scope.Child())
}

// analyzeFor defines the loop variable (if an init clause is present) in a
// fresh child scope, type-checks the condition and the increment clause
// against the loop variable's type, and requires a non-empty body.
func analyzeFor(n *ast.For, scope *env.Scope) error {
	loop := scope.Child()
	var loopVarType *env.Type
	if n.Init != nil {
		t, err := analyzeExpression(n.Init.Value, loop)
		if err != nil {
			return err
		}
		v := env.NewVariable(n.Init.Name, n.Init.Name, t, false)
		if err := loop.DefineVariable(v); err != nil {
			return err
		}
		loopVarType = t
	}
	if err := requireBoolean(loop, n.Cond, "for"); err != nil {
		return err
	}
	if n.Incr != nil {
		incrType, err := analyzeExpression(n.Incr.Value, loop)
		if err != nil {
			return err
		}
		if loopVarType == nil || incrType.Name != loopVarType.Name {
			return plcerrors.NewTypeError("for-loop increment type must match the loop variable's type")
		}
	}
	if len(n.Body) == 0 {
		return plcerrors.NewTypeError("for-loop body must not be empty")
	}
	return analyzeStatements(n.Body, loop.Child())
}

// analyzeReturn checks the returned value's type against the enclosing
// method's declared return type, found via the returnType pseudo-variable.
func analyzeReturn(n *ast.Return, scope *env.Scope) error {
	rv, err := scope.LookupVariable(returnTypeVar)
	if err != nil {
		return err
	}
	valueType, err := analyzeExpression(n.Value, scope)
	if err != nil {
		return err
	}
	if !env.RequireAssignable(rv.Type, valueType) {
		return plcerrors.NewTypeError("cannot return %s from a method declared to return %s", valueType.Name, rv.Type.Name)
	}
	return nil
}
