// Package analyzer implements PLC's static checker: it walks a freshly
// parsed *ast.Source and fills in every Expression's Type slot and every
// Field/Method/Declaration/Access/Function node's Resolved binding (spec
// §4.4), grounded on the teacher's type-checking pass in eval/ but
// rewritten from a visitor into ordinary recursive functions that take the
// scope they run in as an explicit parameter. We deliberately did not mimic
// the teacher's mutable "current scope" field (e.Scp, saved and restored by
// hand at every block boundary, eval/eval_loops.go) — threading the scope
// through the call stack instead makes "the caller's scope is exactly what
// it was before the call" a property of the function signature, not a
// bookkeeping discipline the author has to get right at every exit path.
package analyzer

import (
	"fmt"

	"github.com/plclang/plc/ast"
	"github.com/plclang/plc/env"
	"github.com/plclang/plc/plcerrors"
)

// returnTypeVar is the pseudo-variable name a method body's scope carries
// so Return statements can look up the enclosing method's declared return
// type (spec §4.4's "returnType" binding).
const returnTypeVar = "returnType"

// Analyze type-checks src in the context of root, binding every name and
// annotating every expression's type. root is typically the Scope built by
// an env.Builder (the eight fixed types, plus whatever an embedder
// registered). Analyze is safe to call more than once on the same *ast.
// Source with an equivalent root scope: the testable idempotence property
// (spec §8) requires a second run to produce the same annotations, which
// holds here since every Resolved/Type slot is simply overwritten with the
// same value it already held.
func Analyze(src *ast.Source, root *env.Scope) error {
	scope := root.Child()

	for _, field := range src.Fields {
		if err := analyzeField(field, scope); err != nil {
			return err
		}
	}
	for _, method := range src.Methods {
		if err := defineMethod(method, scope); err != nil {
			return err
		}
	}
	for _, method := range src.Methods {
		if err := analyzeMethodBody(method, scope); err != nil {
			return err
		}
	}

	if _, err := scope.LookupFunction("main", 0); err != nil {
		return plcerrors.NewRuntimeError("main/0 not found")
	}
	mainFn, _ := scope.LookupFunction("main", 0)
	if mainFn.ReturnType == nil || mainFn.ReturnType.Name != env.IntegerName {
		return plcerrors.NewRuntimeError("main/0 not found")
	}
	return nil
}

// analyzeField resolves a LET field's declared type, requires a constant
// field to carry an initializer, and — if an initializer is present —
// analyzes it in scope *before* the field's own variable is defined there,
// so a field cannot reference itself (spec §4.4).
func analyzeField(field *ast.Field, scope *env.Scope) error {
	typ, err := scope.LookupType(field.TypeName)
	if err != nil {
		return err
	}
	if field.Constant && field.Value == nil {
		return plcerrors.NewTypeError("constant field '%s' requires an initializer", field.Name)
	}
	if field.Value != nil {
		initType, err := analyzeExpression(field.Value, scope)
		if err != nil {
			return err
		}
		if !env.RequireAssignable(typ, initType) {
			return plcerrors.NewTypeError("cannot assign %s to field '%s' of type %s", initType.Name, field.Name, typ.Name)
		}
	}
	v := env.NewVariable(field.Name, field.Name, typ, field.Constant)
	if err := scope.DefineVariable(v); err != nil {
		return err
	}
	field.Resolved = v
	return nil
}

// defineMethod resolves a method's parameter/return types and defines it in
// scope ahead of visiting any method body, so that a method may call
// itself (or a method declared after it) recursively (spec §4.4).
func defineMethod(method *ast.Method, scope *env.Scope) error {
	paramTypes := make([]*env.Type, len(method.ParamTypeNames))
	for i, name := range method.ParamTypeNames {
		t, err := scope.LookupType(name)
		if err != nil {
			return err
		}
		paramTypes[i] = t
	}
	returnType, err := scope.LookupType(env.NilName)
	if err != nil {
		return err
	}
	if method.HasReturnType {
		returnType, err = scope.LookupType(method.ReturnTypeName)
		if err != nil {
			return err
		}
	}
	fn := env.NewFunction(method.Name, method.Name, paramTypes, returnType, nil)
	if err := scope.DefineFunction(fn); err != nil {
		return err
	}
	method.Resolved = fn
	return nil
}

// analyzeMethodBody binds each parameter plus the returnType pseudo-
// variable in a fresh child scope, then visits the body's statements in it.
func analyzeMethodBody(method *ast.Method, scope *env.Scope) error {
	body := scope.Child()
	for i, paramName := range method.Params {
		v := env.NewVariable(paramName, paramName, method.Resolved.ParamTypes[i], false)
		if err := body.DefineVariable(v); err != nil {
			return err
		}
	}
	rv := env.NewVariable(returnTypeVar, returnTypeVar, method.Resolved.ReturnType, true)
	if err := body.DefineVariable(rv); err != nil {
		return err
	}
	return analyzeStatements(method.Body, body)
}

// unreachable documents the exhaustiveness invariant spec §9 asks for: the
// AST is a closed sum, so every switch over a Statement or Expression must
// list every concrete variant, with this as the only fallback.
func unreachable(what string, v any) error {
	return fmt.Errorf("analyzer: unreachable %s case %T", what, v)
}
