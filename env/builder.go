package env

// Builder assembles the root Scope an embedder hands to the pipeline:
// the eight fixed types pre-defined, plus whatever host types and
// functions the embedder registers on top. This is the "builder API" spec
// §6 asks for so an embedder never has to poke at Scope's internals
// directly.
type Builder struct {
	root  *Scope
	types map[string]*Type
}

// NewBuilder creates a Builder with the eight fixed types already defined
// in a fresh root scope.
func NewBuilder() *Builder {
	b := &Builder{root: NewScope(nil), types: Builtins()}
	for _, t := range b.types {
		_ = b.root.DefineType(t)
	}
	return b
}

// Type returns one of the eight fixed built-in types by name, for
// embedders that need to reference Integer/String/etc. when declaring a
// host function's parameter or return type.
func (b *Builder) Type(name string) *Type {
	return b.types[name]
}

// RegisterType creates a new, empty named type, defines it in the root
// scope, and returns it so the caller can populate it via Type.Fields /
// Type.DefineMethod.
func (b *Builder) RegisterType(name, jvmName string) *Type {
	t := NewType(name, jvmName)
	b.types[name] = t
	_ = b.root.DefineType(t)
	return t
}

// DefineFunction registers a host function in the root scope, to be looked
// up by name and arity the same way a user-defined method is.
func (b *Builder) DefineFunction(fn *Function) {
	_ = b.root.DefineFunction(fn)
}

// DefineVariable registers a host-provided global variable in the root
// scope (e.g. a named constant an embedder wants visible to every PLC
// program).
func (b *Builder) DefineVariable(v *Variable) {
	_ = b.root.DefineVariable(v)
}

// Root returns the assembled root scope, ready to be passed to
// analyzer.Analyze or interp.Run.
func (b *Builder) Root() *Scope {
	return b.root
}
