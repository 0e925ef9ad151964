// Package ast defines PLC's abstract syntax tree: the 26 node variants of
// spec §3, grouped into Source/Field/Method, Statement, and Expression.
// Nodes are built once by the parser, then mutated exactly once by the
// analyzer (to fill in Resolved/Type slots), then treated as read-only by
// the interpreter and the generator.
//
// Design note: the teacher's parser package dispatches over the tree with
// a double-dispatch NodeVisitor (parser/node.go's Accept/Visit pair). Per
// spec §9's explicit redesign flag, this tree is instead walked by ordinary
// exhaustive type switches in analyzer/interp/generator — ast itself
// exposes no visitor interface, only plain struct types and two closed
// sums (Statement, Expression).
package ast

import (
	"math/big"

	"github.com/plclang/plc/env"
	"github.com/shopspring/decimal"
)

// Source is the root of the tree: a program's field declarations followed
// by its method declarations, in source order (spec §3, §4.2's ordering
// rule: every field precedes every method).
type Source struct {
	Fields  []*Field
	Methods []*Method
}

// Field is a top-level `LET [CONST] name : type [= value];` declaration.
// Resolved is filled in by the analyzer with the env.Variable the field
// defines.
type Field struct {
	Name     string
	TypeName string
	Constant bool
	Value    Expression // nil if no initializer
	Resolved *env.Variable
}

// Method is a `DEF name(params) [: returnType] DO ... END` declaration.
// ReturnTypeName is "" when HasReturnType is false (no return type was
// written, which the analyzer resolves to Nil). Resolved is filled in by
// the analyzer with the env.Function the method defines.
type Method struct {
	Name           string
	Params         []string
	ParamTypeNames []string
	ReturnTypeName string
	HasReturnType  bool
	Body           []Statement
	Resolved       *env.Function
}

// ---- Statements -------------------------------------------------------

// Statement is the closed sum of the seven statement shapes in spec §3.
type Statement interface{ isStatement() }

// ExpressionStmt wraps a bare expression statement. Spec §4.4 restricts
// this at analysis time to function calls; the AST shape itself permits
// any expression so the analyzer can produce a precise error.
type ExpressionStmt struct {
	Expr Expression
}

// Declaration is a `LET name [: type] [= value];` local variable
// declaration. At least one of HasType/HasValue must be true (spec §4.4,
// resolved open question 2: having neither is a hard SemanticError).
type Declaration struct {
	Name     string
	TypeName string
	HasType  bool
	Value    Expression
	HasValue bool
	Resolved *env.Variable
}

// Assignment is `receiver = value;`. Receiver is always an *Access per the
// AST invariant in spec §3; any other shape is rejected before an
// Assignment node is even constructed (see parser_statements.go).
type Assignment struct {
	Receiver *Access
	Value    Expression
}

// If is `IF cond DO then... [ELSE else...] END`.
type If struct {
	Cond    Expression
	Then    []Statement
	Else    []Statement
	HasElse bool
}

// ForInit is the optional `ID = expr` clause that introduces a for loop's
// induction variable.
type ForInit struct {
	Name  string
	Value Expression
}

// For is `FOR ( [init] ; cond ; [incr] ) body... END`. Init and Incr are
// nil when absent.
type For struct {
	Init *ForInit
	Cond Expression
	Incr *ForInit
	Body []Statement
}

// While is `WHILE cond DO body... END`.
type While struct {
	Cond Expression
	Body []Statement
}

// Return is `RETURN value;`.
type Return struct {
	Value Expression
}

func (*ExpressionStmt) isStatement() {}
func (*Declaration) isStatement()    {}
func (*Assignment) isStatement()     {}
func (*If) isStatement()             {}
func (*For) isStatement()            {}
func (*While) isStatement()          {}
func (*Return) isStatement()         {}

// ---- Expressions -------------------------------------------------------

// Expression is the closed sum of the five expression shapes in spec §3.
// Every expression carries a mutable Type slot the analyzer fills in;
// Type() is nil until analysis runs (the interpreter may run on a tree
// that was never analyzed, per spec §4.5).
type Expression interface {
	isStatement() // every Expression is also a Statement, spec §3
	isExpression()
	Type() *env.Type
	SetType(t *env.Type)
}

// typed is embedded by every concrete Expression to supply the mutable
// Type slot without repeating the same two methods five times.
type typed struct {
	typ *env.Type
}

func (t *typed) Type() *env.Type      { return t.typ }
func (t *typed) SetType(ty *env.Type) { t.typ = ty }
func (*typed) isStatement()           {}

// LiteralKind tags which field of a Literal is meaningful.
type LiteralKind int

const (
	LiteralNil LiteralKind = iota
	LiteralBool
	LiteralChar
	LiteralString
	LiteralInt
	LiteralDecimal
)

// Literal is a constant appearing directly in source: nil, a bool, a
// character, a string, an arbitrary-precision integer, or an
// arbitrary-precision decimal (spec §3's Literal payload variants).
type Literal struct {
	typed
	Kind LiteralKind
	Bool bool
	Char rune
	Str  string
	Int  *big.Int
	Dec  decimal.Decimal
}

func (*Literal) isExpression() {}

// Group is a parenthesized expression, `(expr)`. Per spec §4.4 its inner
// expression must itself be a Binary — anything else is redundant
// parenthesization and is rejected at analysis time.
type Group struct {
	typed
	Inner Expression
}

func (*Group) isExpression() {}

// Binary is a two-operand operator application. Op is drawn from the
// closed set: &&, ||, <, <=, >, >=, ==, !=, +, -, *, /.
type Binary struct {
	typed
	Op    string
	Left  Expression
	Right Expression
}

func (*Binary) isExpression() {}

// Access is a variable or field read: `name` or `receiver.name`.
// Resolved is filled in by the analyzer with the env.Variable this access
// reads (a field of the receiver's type when HasReceiver, a scope variable
// otherwise).
type Access struct {
	typed
	Receiver    Expression
	HasReceiver bool
	Name        string
	Resolved    *env.Variable
}

func (*Access) isExpression() {}

// Function is a call: `name(args)` or `receiver.name(args)`. Resolved is
// filled in by the analyzer with the env.Function this call invokes (a
// method of the receiver's type when HasReceiver, a scope function
// otherwise).
type Function struct {
	typed
	Receiver    Expression
	HasReceiver bool
	Name        string
	Args        []Expression
	Resolved    *env.Function
}

func (*Function) isExpression() {}
