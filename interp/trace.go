package interp

import (
	"fmt"
	"strings"

	"github.com/plclang/plc/ast"
	"github.com/plclang/plc/env"
	"github.com/plclang/plc/plcerrors"
	"github.com/plclang/plc/value"
)

const traceIndentSize = 4

// Tracer accumulates a human-readable record of every user-method call
// interp makes, in the teacher's PrintingVisitor indent-buffer idiom
// (print_visitor.go) — adapted from that idiom's Accept/Visit dispatch to
// the explicit scope-threaded calls interp already uses everywhere else.
// It is purely additive debugging support (spec §10, SUPPLEMENTED
// FEATURES): Run never constructs or consults one, and a program that
// never calls Trace behaves exactly as if Tracer didn't exist.
type Tracer struct {
	indent int
	buf    strings.Builder
}

func (t *Tracer) line(format string, args ...any) {
	t.buf.WriteString(strings.Repeat(" ", t.indent))
	fmt.Fprintf(&t.buf, format, args...)
	t.buf.WriteByte('\n')
}

// String returns the accumulated trace log.
func (t *Tracer) String() string {
	return t.buf.String()
}

// Trace behaves exactly like Run, except every user-method call is logged
// to tracer on entry (name and argument values, in display form) and exit
// (the returned value or a propagated error), one indent level per call
// depth — so a recursive method's trace reads as a nested call tree.
func Trace(src *ast.Source, root *env.Scope, tracer *Tracer) (value.Value, error) {
	scope := root.Child()

	for _, field := range src.Fields {
		if err := installField(field, scope); err != nil {
			return value.Value{}, err
		}
	}
	for _, method := range src.Methods {
		installTracedMethod(method, scope, tracer)
	}

	main, err := scope.LookupFunction("main", 0)
	if err != nil {
		return value.Value{}, plcerrors.NewRuntimeError("main/0 not found")
	}
	return main.Impl(nil)
}

// installTracedMethod mirrors installMethod, but its Impl brackets
// invokeMethod with entry/exit lines on tracer. Since the traced closure
// is what every other method's body resolves "method.Name" to via scope,
// a recursive or mutually-recursive call chain is traced automatically —
// no separate threading of tracer through invokeMethod/evalStatements is
// needed.
func installTracedMethod(method *ast.Method, definingScope *env.Scope, tracer *Tracer) {
	paramTypes := make([]*env.Type, len(method.Params))
	fn := env.NewFunction(method.Name, method.Name, paramTypes, nil, func(args []value.Value) (value.Value, error) {
		tracer.line("-> %s(%s)", method.Name, traceArgs(args))
		tracer.indent += traceIndentSize
		result, err := invokeMethod(method, definingScope, args)
		tracer.indent -= traceIndentSize
		if err != nil {
			tracer.line("<- %s error: %v", method.Name, err)
			return result, err
		}
		tracer.line("<- %s = %s", method.Name, result.ToDisplay())
		return result, nil
	})
	_ = definingScope.DefineFunction(fn)
}

func traceArgs(args []value.Value) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.ToDisplay()
	}
	return strings.Join(parts, ", ")
}
