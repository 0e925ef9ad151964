package env

import "github.com/plclang/plc/plcerrors"

// Scope is one node in the parent-linked tree of bindings described in
// spec §3 and §9: variables and functions live in maps on the current
// node, lookup walks toward the root, and a name may be shadowed in a
// child scope but not redefined within the same scope. This mirrors the
// teacher's scope.Scope (parent pointer plus per-kind maps) generalized
// from dynamic GoMixObject bindings to typed Variable/Function entries,
// plus a Types map so a host-registered type is reachable from anywhere in
// the tree the same way a host function is.
type Scope struct {
	Parent    *Scope
	variables map[string]*Variable
	functions map[FunctionKey]*Function
	types     map[string]*Type
}

// NewScope creates a child of parent. Passing a nil parent creates a root
// scope; the embedder populates exactly one of these via Builder before
// handing it to the analyzer or interpreter.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Parent:    parent,
		variables: make(map[string]*Variable),
		functions: make(map[FunctionKey]*Function),
		types:     make(map[string]*Type),
	}
}

// Child is sugar for NewScope(s), used at every block-entry site (method
// body, if/while/for body, etc.) per the "scoped acquisition" lifecycle in
// spec §3/§5.
func (s *Scope) Child() *Scope {
	return NewScope(s)
}

// LookupVariable walks from s toward the root and returns the nearest
// binding for name, or a NameError if none exists anywhere in the chain.
func (s *Scope) LookupVariable(name string) (*Variable, error) {
	for cur := s; cur != nil; cur = cur.Parent {
		if v, ok := cur.variables[name]; ok {
			return v, nil
		}
	}
	return nil, plcerrors.NewNameError("undefined variable '%s'", name)
}

// DefineVariable binds name in s's own map (never a parent). Redefining a
// name already present in this exact scope is a RedefinitionError;
// shadowing a parent's binding is always allowed.
func (s *Scope) DefineVariable(v *Variable) error {
	if _, exists := s.variables[v.Name]; exists {
		return plcerrors.NewRedefinitionError("'%s' is already defined in this scope", v.Name)
	}
	s.variables[v.Name] = v
	return nil
}

// LookupFunction walks from s toward the root for a function matching both
// name and arity.
func (s *Scope) LookupFunction(name string, arity int) (*Function, error) {
	key := FunctionKey{Name: name, Arity: arity}
	for cur := s; cur != nil; cur = cur.Parent {
		if f, ok := cur.functions[key]; ok {
			return f, nil
		}
	}
	return nil, plcerrors.NewNameError("undefined function '%s/%d'", name, arity)
}

// FunctionExists reports whether any function named name is defined
// anywhere in the chain, regardless of arity. The analyzer uses this to
// tell a plain missing name (NameError) apart from a call whose arity
// doesn't match any overload of an existing name (ArityError).
func (s *Scope) FunctionExists(name string) bool {
	for cur := s; cur != nil; cur = cur.Parent {
		for key := range cur.functions {
			if key.Name == name {
				return true
			}
		}
	}
	return false
}

// DefineFunction binds fn in s's own map, keyed by (name, arity). A method
// is defined before its body is visited (spec §4.4) so recursive calls
// resolve.
func (s *Scope) DefineFunction(fn *Function) error {
	key := FunctionKey{Name: fn.Name, Arity: fn.Arity()}
	if _, exists := s.functions[key]; exists {
		return plcerrors.NewRedefinitionError("'%s/%d' is already defined in this scope", fn.Name, fn.Arity())
	}
	s.functions[key] = fn
	return nil
}

// LookupType walks from s toward the root for a named type. The eight
// fixed types are defined once, in the root scope, by NewBuilder; host
// types registered via Builder.RegisterType join them there.
func (s *Scope) LookupType(name string) (*Type, error) {
	for cur := s; cur != nil; cur = cur.Parent {
		if t, ok := cur.types[name]; ok {
			return t, nil
		}
	}
	return nil, plcerrors.NewNameError("undefined type '%s'", name)
}

// DefineType registers t in s's own map.
func (s *Scope) DefineType(t *Type) error {
	if _, exists := s.types[t.Name]; exists {
		return plcerrors.NewRedefinitionError("type '%s' is already defined in this scope", t.Name)
	}
	s.types[t.Name] = t
	return nil
}
