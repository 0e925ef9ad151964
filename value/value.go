// Package value defines the runtime payloads the interpreter operates on.
// Unlike env.Type (a static, nominal description used by the analyzer), a
// Value carries an actual piece of data: an arbitrary-precision integer, an
// arbitrary-precision decimal, a rune, a string, a bool, or nil. Integer and
// Decimal are backed by math/big and shopspring/decimal respectively so that
// interpretation stays exact regardless of how the analyzer's fixed-width
// range checks constrained the literal that produced them (design notes,
// "Arbitrary-precision numerics").
package value

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Kind tags which payload field of a Value is meaningful.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindChar
	KindString
	KindInt
	KindDecimal
	// KindHost tags a value belonging to an embedder-registered host type
	// (env.Type with Fields/Methods, built via Builder.RegisterType). PLC
	// source has no literal syntax that constructs one of these directly —
	// only a host builtin can return one — but Access/Function with a
	// receiver (spec §4.4/§4.5) still need somewhere to land field reads,
	// field writes, and method dispatch, so the shape is carried here.
	KindHost
)

// Value is a tagged union over PLC's runtime payload shapes. It is passed
// by value throughout the interpreter; the big.Int and decimal.Decimal
// fields are themselves immutable-by-convention (every arithmetic helper
// below returns a new Value rather than mutating in place). Fields is the
// one payload that is intentionally shared by reference: mutating a host
// value's field must be visible through every copy of that Value.
type Value struct {
	Kind     Kind
	Bool     bool
	Char     rune
	Str      string
	Int      *big.Int
	Dec      decimal.Decimal
	HostType string
	Fields   map[string]Value
}

// Nil is the single nil value.
func Nil() Value { return Value{Kind: KindNil} }

// FromBool wraps a bool.
func FromBool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// FromChar wraps a single rune.
func FromChar(r rune) Value { return Value{Kind: KindChar, Char: r} }

// FromString wraps a string.
func FromString(s string) Value { return Value{Kind: KindString, Str: s} }

// FromInt wraps an arbitrary-precision integer.
func FromInt(i *big.Int) Value { return Value{Kind: KindInt, Int: i} }

// FromInt64 wraps a machine integer, for builtins and tests that don't need
// to construct a big.Int by hand.
func FromInt64(i int64) Value { return Value{Kind: KindInt, Int: big.NewInt(i)} }

// FromDecimal wraps an arbitrary-precision decimal.
func FromDecimal(d decimal.Decimal) Value { return Value{Kind: KindDecimal, Dec: d} }

// FromHost wraps a host-type instance: typeName names the env.Type it
// belongs to, fields its initial field bindings. The returned Value's
// Fields map is shared by every copy of it, so field assignment through
// one copy is visible through all of them.
func FromHost(typeName string, fields map[string]Value) Value {
	if fields == nil {
		fields = make(map[string]Value)
	}
	return Value{Kind: KindHost, HostType: typeName, Fields: fields}
}

// TypeName returns the PLC type name this value's kind corresponds to
// (matching the fixed set of env.Type names in spec §3).
func (v Value) TypeName() string {
	switch v.Kind {
	case KindNil:
		return "Nil"
	case KindBool:
		return "Boolean"
	case KindChar:
		return "Character"
	case KindString:
		return "String"
	case KindInt:
		return "Integer"
	case KindDecimal:
		return "Decimal"
	case KindHost:
		return v.HostType
	default:
		return "Unknown"
	}
}

// ToDisplay renders a value the way a running program's output (e.g. the
// stdlib print builtin) should show it to a user: no type decoration.
func (v Value) ToDisplay() string {
	switch v.Kind {
	case KindNil:
		return "nil"
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindChar:
		return string(v.Char)
	case KindString:
		return v.Str
	case KindInt:
		return v.Int.String()
	case KindDecimal:
		return v.Dec.String()
	case KindHost:
		return v.HostType + "{...}"
	default:
		return "<unknown>"
	}
}

// ToDebug renders a value with its type name attached, e.g. "Integer(5)"
// (SPEC_FULL.md §10). The REPL and interp.Trace print ToDisplay's form, not
// this one.
func (v Value) ToDebug() string {
	return v.TypeName() + "(" + v.ToDisplay() + ")"
}

// Equal implements the interpreter's structural equality: nil equals nil,
// and equality never crosses kinds (design notes, open question 3) — two
// values of different kinds are simply unequal, not a type error, since by
// the time an analyzed program reaches ==/!= the analyzer has already
// required both sides to share a concrete type.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindNil:
		return true
	case KindBool:
		return v.Bool == other.Bool
	case KindChar:
		return v.Char == other.Char
	case KindString:
		return v.Str == other.Str
	case KindInt:
		return v.Int.Cmp(other.Int) == 0
	case KindDecimal:
		return v.Dec.Equal(other.Dec)
	default:
		return false
	}
}

// Less implements the natural ordering used by <, <=, >, >= for the four
// Comparable kinds. The caller is responsible for having already verified
// both values share a concrete, ordered kind.
func (v Value) Less(other Value) bool {
	switch v.Kind {
	case KindInt:
		return v.Int.Cmp(other.Int) < 0
	case KindDecimal:
		return v.Dec.LessThan(other.Dec)
	case KindChar:
		return v.Char < other.Char
	case KindString:
		return v.Str < other.Str
	default:
		return false
	}
}
