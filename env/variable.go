package env

import "github.com/plclang/plc/value"

// Variable is a named, typed binding: a field, a parameter, a local
// declaration, or the synthetic "returnType" pseudo-variable the analyzer
// plants in a method's body scope (spec §4.4). Value is only meaningful to
// the interpreter; the analyzer never reads or writes it.
type Variable struct {
	Name     string
	JVMName  string
	Type     *Type
	Constant bool
	Value    value.Value
}

// NewVariable constructs a Variable with no runtime value yet bound.
func NewVariable(name, jvmName string, typ *Type, constant bool) *Variable {
	return &Variable{Name: name, JVMName: jvmName, Type: typ, Constant: constant}
}
