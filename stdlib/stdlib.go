// Package stdlib is PLC's small embedder-style runtime library
// (SPEC_FULL.md §6/§10): print and a handful of numeric/string helpers,
// registered into a root scope through env.Builder. Grounded on the
// teacher's std package (std/builtins.go's Builtin{Name, Callback} table
// and its io.Writer-taking CallbackFunc convention) but scoped down from
// the teacher's sprawling standard library (lists, sets, maps, JSON,
// regex, HTTP, crypto, file IO) to exactly what PLC's closed type system
// supports — there is no array, map, or struct literal in the language for
// a `len` over a collection or a `push` to reach, so only the String/
// Integer/Decimal-shaped builtins have anywhere to attach.
package stdlib

import (
	"fmt"
	"io"
	"math/big"

	"github.com/plclang/plc/env"
	"github.com/plclang/plc/plcerrors"
	"github.com/plclang/plc/value"
)

// Install registers print, len, abs, absDecimal, and str into builder's
// root scope, writing
// print's output to w (the teacher's CallbackFunc threads an io.Writer the
// same way, std/builtins.go).
func Install(builder *env.Builder, w io.Writer) {
	anyType := builder.Type(env.AnyName)
	nilType := builder.Type(env.NilName)
	stringType := builder.Type(env.StringName)
	integerType := builder.Type(env.IntegerName)
	decimalType := builder.Type(env.DecimalName)

	builder.DefineFunction(env.NewFunction("print", "print", []*env.Type{anyType}, nilType,
		func(args []value.Value) (value.Value, error) {
			fmt.Fprintln(w, args[0].ToDisplay())
			return value.Nil(), nil
		}))

	builder.DefineFunction(env.NewFunction("len", "len", []*env.Type{stringType}, integerType,
		func(args []value.Value) (value.Value, error) {
			return value.FromInt64(int64(len([]rune(args[0].Str)))), nil
		}))

	// PLC has no overloading by parameter type (env.FunctionKey is keyed on
	// name+arity alone, env/scope.go), so the Integer and Decimal forms of
	// "abs" need distinct PLC-visible names even though a host language
	// with overloading would give them the same one.
	builder.DefineFunction(env.NewFunction("abs", "absInt", []*env.Type{integerType}, integerType,
		func(args []value.Value) (value.Value, error) {
			return value.FromInt(new(big.Int).Abs(args[0].Int)), nil
		}))

	builder.DefineFunction(env.NewFunction("absDecimal", "absDecimal", []*env.Type{decimalType}, decimalType,
		func(args []value.Value) (value.Value, error) {
			return value.FromDecimal(args[0].Dec.Abs()), nil
		}))

	builder.DefineFunction(env.NewFunction("str", "str", []*env.Type{anyType}, stringType,
		func(args []value.Value) (value.Value, error) {
			return value.FromString(args[0].ToDisplay()), nil
		}))
}

// RequireArgs is a small defensive helper a host function can use when it
// is invoked outside the normal analyzed-call path (e.g. directly from a
// REPL one-liner) and wants the same ArityError shape as a statically
// checked call would have produced.
func RequireArgs(name string, args []value.Value, want int) error {
	if len(args) != want {
		return plcerrors.NewArityError("'%s' expects %d argument(s), got %d", name, want, len(args))
	}
	return nil
}
