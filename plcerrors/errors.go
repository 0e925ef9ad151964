// Package plcerrors defines the closed taxonomy of failures the pipeline can
// raise: lexer/parser failures that carry a source index, and semantic/
// runtime failures that do not. Every type implements error, so callers that
// don't care about the distinction can treat them uniformly, and callers
// that do can errors.As to the concrete kind.
package plcerrors

import "fmt"

// ParseError is raised by the lexer or the parser. Index is the 0-based
// offset described in spec §4.2: the offending token's start index, or
// last_token.Start plus the lexeme's length in characters when the stream
// has run out.
type ParseError struct {
	Message string
	Index   int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d: %s", e.Index, e.Message)
}

// NewParseError constructs a ParseError with a formatted message.
func NewParseError(index int, format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...), Index: index}
}

// SemanticError is raised by the analyzer or the interpreter. It never
// carries a source index: by the time semantic analysis runs, position
// information has already done its job of producing a well-formed AST.
type SemanticError struct {
	Message string
	Kind    SemanticKind
}

func (e *SemanticError) Error() string {
	return e.Message
}

// SemanticKind narrows a SemanticError to one of the taxonomy entries in
// spec §7, so embedders can branch on failure class without string matching.
type SemanticKind int

const (
	// KindType: wrong type in an assignability check.
	KindType SemanticKind = iota
	// KindName: undefined variable, function, field, method, or type.
	KindName
	// KindArity: function call arity mismatch.
	KindArity
	// KindRuntime: division by zero, type mismatch at interpretation time,
	// assignment to a constant, or a missing main.
	KindRuntime
)

func newSemantic(kind SemanticKind, format string, args ...any) *SemanticError {
	return &SemanticError{Message: fmt.Sprintf(format, args...), Kind: kind}
}

// NewTypeError reports an assignability or operator-typing violation.
func NewTypeError(format string, args ...any) *SemanticError {
	return newSemantic(KindType, format, args...)
}

// NewNameError reports a failed lookup of a variable, function, field,
// method, or type.
func NewNameError(format string, args ...any) *SemanticError {
	return newSemantic(KindName, format, args...)
}

// NewArityError reports a function call whose argument count does not match
// the callee's declared parameter count.
func NewArityError(format string, args ...any) *SemanticError {
	return newSemantic(KindArity, format, args...)
}

// NewRuntimeError reports division by zero, a dynamic type mismatch, an
// assignment to a constant, or a missing main/0 at interpretation time.
func NewRuntimeError(format string, args ...any) *SemanticError {
	return newSemantic(KindRuntime, format, args...)
}

// RedefinitionError is raised by env.Scope when a name is defined twice in
// the same scope. It is distinct from NameError (a lookup failure) even
// though both are name-resolution problems, because callers care about the
// difference: one means "not found", the other "already exists".
type RedefinitionError struct {
	Message string
}

func (e *RedefinitionError) Error() string {
	return e.Message
}

// NewRedefinitionError reports a duplicate definition within one scope.
func NewRedefinitionError(format string, args ...any) *RedefinitionError {
	return &RedefinitionError{Message: fmt.Sprintf(format, args...)}
}
