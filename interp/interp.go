// Package interp implements PLC's tree-walking interpreter (spec §4.5): it
// runs a (possibly un-analyzed) *ast.Source directly against a root
// *env.Scope, evaluating to a value.Value rather than annotating the tree.
// Grounded on the teacher's eval.Evaluator (eval/eval.go and friends), but
// restructured the way analyzer is: the "current scope" is an explicit
// parameter threaded through every eval call rather than a mutable
// Evaluator.Scp field saved and restored by hand around every block
// (eval/eval_loops.go, eval/eval_controls.go). A child scope lives only in
// the stack frame that opened it, so the caller's scope is unconditionally
// whatever it passed in — restoration-on-every-exit-path (spec §5) is a
// consequence of Go's call semantics here, not a discipline to maintain.
package interp

import (
	"github.com/plclang/plc/ast"
	"github.com/plclang/plc/env"
	"github.com/plclang/plc/plcerrors"
	"github.com/plclang/plc/value"
)

// signal is the non-local control-flow channel Return uses to unwind to
// its enclosing method boundary (spec §9's design note: a dedicated
// Normal/Returned sum threaded explicitly through statement evaluation,
// never conflated with Go's error type and never a panic).
type signal struct {
	returned bool
	value    value.Value
}

var normalSignal = signal{}

func returnedSignal(v value.Value) signal {
	return signal{returned: true, value: v}
}

// Run evaluates src against root: it installs every field (evaluating or
// defaulting its initializer) and every method into a child of root, then
// invokes main/0 and returns its result. A missing main/0 is a runtime
// failure, per spec §4.5.
func Run(src *ast.Source, root *env.Scope) (value.Value, error) {
	scope := root.Child()

	for _, field := range src.Fields {
		if err := installField(field, scope); err != nil {
			return value.Value{}, err
		}
	}
	for _, method := range src.Methods {
		installMethod(method, scope)
	}

	main, err := scope.LookupFunction("main", 0)
	if err != nil {
		return value.Value{}, plcerrors.NewRuntimeError("main/0 not found")
	}
	return main.Impl(nil)
}

// installField evaluates a field's initializer (if present, else value.Nil)
// in scope before the field itself is defined there, so a field can never
// observe its own binding while initializing.
func installField(field *ast.Field, scope *env.Scope) error {
	v := value.Nil()
	if field.Value != nil {
		val, err := evalExpression(field.Value, scope)
		if err != nil {
			return err
		}
		v = val
	}
	variable := env.NewVariable(field.Name, field.Name, nil, field.Constant)
	variable.Value = v
	return scope.DefineVariable(variable)
}

// installMethod defines a function in scope whose Impl closes over the
// method's AST body and its defining scope (the lexical closure spec
// §4.5 calls for: "a child scope whose parent is the scope where the
// method was defined"). The RedefinitionError DefineFunction returns for a
// duplicate name/arity is discarded here: the first method with that
// name/arity stays installed and the later one is silently skipped. Only
// the analyzer reports a redefinition as an error.
func installMethod(method *ast.Method, definingScope *env.Scope) {
	paramTypes := make([]*env.Type, len(method.Params))
	fn := env.NewFunction(method.Name, method.Name, paramTypes, nil, func(args []value.Value) (value.Value, error) {
		return invokeMethod(method, definingScope, args)
	})
	_ = definingScope.DefineFunction(fn)
}

// invokeMethod implements the method-call lifecycle of spec §4.5: a fresh
// child of the defining scope, parameters bound to argument values, the
// body evaluated in order, and the payload of a non-local Return signal
// returned if one was raised, else Nil.
func invokeMethod(method *ast.Method, definingScope *env.Scope, args []value.Value) (value.Value, error) {
	if len(args) != len(method.Params) {
		return value.Value{}, plcerrors.NewArityError("'%s' expects %d argument(s), got %d", method.Name, len(method.Params), len(args))
	}
	scope := definingScope.Child()
	for i, paramName := range method.Params {
		variable := env.NewVariable(paramName, paramName, nil, false)
		variable.Value = args[i]
		if err := scope.DefineVariable(variable); err != nil {
			return value.Value{}, err
		}
	}
	sig, err := evalStatements(method.Body, scope)
	if err != nil {
		return value.Value{}, err
	}
	if sig.returned {
		return sig.value, nil
	}
	return value.Nil(), nil
}

// unreachable documents the AST's closed-sum exhaustiveness invariant the
// same way analyzer.unreachable does.
func unreachable(what string, v any) error {
	return plcerrors.NewRuntimeError("interp: unreachable %s case %T", what, v)
}
