// Package env provides the symbol-table side of the pipeline: types,
// variables, functions, and the scope tree that binds them, grounded on the
// teacher's scope.Scope map-of-maps shape (scope/scope.go) but generalized
// from the teacher's dynamically-typed GoMixObject bindings to the statically-typed
// Type/Variable/Function trio spec §4.3 calls for.
package env

// Type describes one of PLC's nominal types: the eight fixed built-ins
// (Any, Nil, Comparable, Boolean, Integer, Decimal, Character, String) or a
// host type an embedder registers through a Builder. JVMName is the name
// the generator emits in place of Name, letting an embedder alias a PLC
// type onto a differently-named target-language type.
type Type struct {
	Name    string
	JVMName string
	Fields  map[string]*Variable
	Methods map[FunctionKey]*Function
}

// FunctionKey identifies a method within a Type's Methods map by name and
// arity, mirroring the teacher's (name, arity) function-map key convention.
type FunctionKey struct {
	Name  string
	Arity int
}

// NewType constructs an empty Type ready to have fields/methods added.
func NewType(name, jvmName string) *Type {
	return &Type{
		Name:    name,
		JVMName: jvmName,
		Fields:  make(map[string]*Variable),
		Methods: make(map[FunctionKey]*Function),
	}
}

// Field looks up a field declared directly on this type.
func (t *Type) Field(name string) (*Variable, bool) {
	v, ok := t.Fields[name]
	return v, ok
}

// Method looks up a method declared directly on this type by name and arity.
// The arity counts the receiver/self parameter, which is ParamTypes[0], so a
// call with n arguments looks up arity n+1.
func (t *Type) Method(name string, arity int) (*Function, bool) {
	f, ok := t.Methods[FunctionKey{Name: name, Arity: arity}]
	return f, ok
}

// HasMethodName reports whether this type declares a method named name
// under any arity, letting a caller distinguish "no such method" from
// "wrong number of arguments to an existing method".
func (t *Type) HasMethodName(name string) bool {
	for key := range t.Methods {
		if key.Name == name {
			return true
		}
	}
	return false
}

// DefineMethod registers fn under this type's method table.
func (t *Type) DefineMethod(fn *Function) {
	t.Methods[FunctionKey{Name: fn.Name, Arity: len(fn.ParamTypes)}] = fn
}

// The fixed built-in type names, spec §3 and §4.3.
const (
	AnyName        = "Any"
	NilName        = "Nil"
	ComparableName = "Comparable"
	BooleanName    = "Boolean"
	IntegerName    = "Integer"
	DecimalName    = "Decimal"
	CharacterName  = "Character"
	StringName     = "String"
)

// Builtins returns a fresh instance of the eight fixed types. Any and
// Comparable are abstract: per spec §4.3 they never appear as a literal's
// type but are valid assignment targets. Fields/Methods maps are left
// ready for a Builder to populate (e.g. stdlib registering a method on
// String), but the core pipeline never needs them on the four primitives.
//
// JVMName equals Name for every concrete fixed type: the generator's
// byte-exact sample (spec §8 scenario 6) emits field and return-type
// annotations as "Decimal"/"Integer" verbatim, not mapped down to a native
// "double"/"int" — the target language keeps its own arbitrary-precision
// Integer/Decimal classes so PLC's exact-arithmetic semantics survive
// generation. Any and Nil are the exception: neither is ever the resolved
// type of a concrete value (Any never appears as a literal's type, and the
// only Nil-typed expression is the nil literal itself), so both map onto
// the target language's universal "Object" the way a generated-to Java-like
// language would naturally express "no more specific type is known". An
// embedder registering a *host* type is still free to alias it onto a
// differently-named target type via Builder.RegisterType.
func Builtins() map[string]*Type {
	names := []struct{ name, jvm string }{
		{AnyName, "Object"},
		{NilName, "Object"},
		{ComparableName, "Comparable"},
		{BooleanName, BooleanName},
		{IntegerName, IntegerName},
		{DecimalName, DecimalName},
		{CharacterName, CharacterName},
		{StringName, StringName},
	}
	out := make(map[string]*Type, len(names))
	for _, n := range names {
		out[n.name] = NewType(n.name, n.jvm)
	}
	return out
}

// comparableKinds is the closed set of concrete types Comparable admits.
var comparableKinds = map[string]bool{
	IntegerName:   true,
	DecimalName:   true,
	CharacterName: true,
	StringName:    true,
}

// RequireAssignable implements the assignability relation from spec §4.3
// and the glossary: Any accepts anything; Comparable accepts the four
// ordered primitives; otherwise the target and actual type must be the
// same type by nominal (name) equality.
func RequireAssignable(target, actual *Type) bool {
	if target.Name == AnyName {
		return true
	}
	if target.Name == ComparableName {
		return comparableKinds[actual.Name]
	}
	return target.Name == actual.Name
}
