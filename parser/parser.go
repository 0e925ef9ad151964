// Package parser implements PLC's recursive-descent parser: a token
// sequence in, an *ast.Source out, grounded on the teacher's Pratt parser
// (parser/parser.go) for its overall shape — a cursor over a token slice
// with one-token lookahead and helper methods for expect/check — but
// restructured as a plain precedence-layered recursive descent (spec
// §4.2's grammar is already precedence-ordered, so no operator-precedence
// table is needed) with index-carrying errors instead of the teacher's
// collected string list.
package parser

import (
	"github.com/plclang/plc/ast"
	"github.com/plclang/plc/lexer"
	"github.com/plclang/plc/plcerrors"
	"github.com/plclang/plc/token"
)

// Short local aliases for the token kinds parsePrimary switches on.
const (
	identifierKind = token.Identifier
	integerKind    = token.Integer
	decimalKind    = token.Decimal
	characterKind  = token.Character
	stringKind     = token.String
	operatorKind   = token.Operator
)

// plcErrorAtTok builds a ParseError anchored at tok's own start index, for
// failures detected about a token already consumed (e.g. a malformed
// literal) rather than about the token the cursor currently sits on.
func plcErrorAtTok(tok token.Token, message string) error {
	return plcerrors.NewParseError(tok.Start, "%s", message)
}

// Parser is a cursor over a pre-lexed token slice.
type Parser struct {
	tokens []token.Token
	pos    int
}

// Parse tokenizes src and parses it into an *ast.Source. It is the single
// entry point embedders call; New/Parser exist underneath for tests that
// want to parse an already-tokenized stream.
func Parse(src string) (*ast.Source, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return New(toks).ParseSource()
}

// New wraps a token slice for parsing. Exported so tests can feed a
// hand-built token sequence without going through the lexer.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

// current returns the token at the cursor, or false if the stream is
// exhausted.
func (p *Parser) current() (token.Token, bool) {
	if p.atEnd() {
		return token.Token{}, false
	}
	return p.tokens[p.pos], true
}

// errIndex implements the error-position rule from spec §4.2: the
// offending token's start index if the stream has not run out, otherwise
// last_token.start + last_token.lexeme.length.
func (p *Parser) errIndex() int {
	if tok, ok := p.current(); ok {
		return tok.Start
	}
	if len(p.tokens) == 0 {
		return 0
	}
	last := p.tokens[len(p.tokens)-1]
	return last.End()
}

func (p *Parser) errorf(format string, args ...any) error {
	return plcerrors.NewParseError(p.errIndex(), format, args...)
}

// checkIdent reports whether the current token is an Identifier whose
// lexeme equals kw — PLC's keywords (LET, DEF, IF, ...) are ordinary
// Identifier tokens distinguished only by lexeme, per spec §4.1.
func (p *Parser) checkIdent(kw string) bool {
	tok, ok := p.current()
	return ok && tok.Kind == token.Identifier && tok.Lexeme == kw
}

// checkOp reports whether the current token is an Operator with the given
// lexeme.
func (p *Parser) checkOp(op string) bool {
	tok, ok := p.current()
	return ok && tok.Kind == token.Operator && tok.Lexeme == op
}

// advance consumes and returns the current token. Callers must only call
// this after a successful check/expect.
func (p *Parser) advance() token.Token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

// expectIdent consumes the current token if it is the Identifier kw, else
// fails with a ParseError at the correct index.
func (p *Parser) expectIdent(kw string) (token.Token, error) {
	if !p.checkIdent(kw) {
		return token.Token{}, p.errorf("expected '%s'", kw)
	}
	return p.advance(), nil
}

// expectAnyIdent consumes the current token if it is any Identifier
// (a user-chosen name, not a specific keyword).
func (p *Parser) expectAnyIdent() (token.Token, error) {
	tok, ok := p.current()
	if !ok || tok.Kind != token.Identifier {
		return token.Token{}, p.errorf("expected identifier")
	}
	return p.advance(), nil
}

// expectOp consumes the current token if it is the Operator op, else fails
// with a ParseError at the correct index.
func (p *Parser) expectOp(op string) (token.Token, error) {
	if !p.checkOp(op) {
		return token.Token{}, p.errorf("expected '%s'", op)
	}
	return p.advance(), nil
}

// ParseStatementForTest exposes the statement grammar directly, bypassing
// ParseSource's LET/DEF-only top level. It exists purely for table-driven
// statement/expression tests (spec §8 scenario 3 parses a bare
// assignment, which is not a legal top-level Source construct on its own).
func (p *Parser) ParseStatementForTest() (ast.Statement, error) {
	return p.parseStatement()
}
