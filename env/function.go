package env

import "github.com/plclang/plc/value"

// Implementation is a host function body: evaluated argument values in,
// a result value or a failure out. User-defined PLC methods don't use this
// field — the interpreter evaluates their AST body directly — but every
// embedder-registered builtin (spec §6's Builder.DefineFunction) is exactly
// one of these.
type Implementation func(args []value.Value) (value.Value, error)

// Function is a named, typed callable: either a host builtin (Implementation
// set, no body) or a user-defined method (Implementation nil; the
// interpreter dispatches to the owning ast.Method's body instead).
type Function struct {
	Name       string
	JVMName    string
	ParamTypes []*Type
	ReturnType *Type
	Impl       Implementation
}

// NewFunction constructs a host Function bound to impl.
func NewFunction(name, jvmName string, paramTypes []*Type, returnType *Type, impl Implementation) *Function {
	return &Function{Name: name, JVMName: jvmName, ParamTypes: paramTypes, ReturnType: returnType, Impl: impl}
}

// Arity returns the function's declared parameter count.
func (f *Function) Arity() int {
	return len(f.ParamTypes)
}
