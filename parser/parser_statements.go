package parser

import (
	"github.com/plclang/plc/ast"
	"github.com/plclang/plc/plcerrors"
	"github.com/plclang/plc/token"
)

// stopWordSet is a tiny membership helper for the keywords that terminate
// a statement list (END, or END/ELSE for an if-branch).
type stopWordSet map[string]bool

func stopWords(words ...string) stopWordSet {
	s := make(stopWordSet, len(words))
	for _, w := range words {
		s[w] = true
	}
	return s
}

// parseStatements parses zero or more statements until the current token
// is an Identifier whose lexeme is one of stop, failing with a ParseError
// (rather than an infinite loop) if the stream runs out first.
func (p *Parser) parseStatements(stop ...string) ([]ast.Statement, error) {
	stops := stopWords(stop...)
	var stmts []ast.Statement
	for {
		if p.atEnd() {
			return nil, p.errorf("unexpected end of input, expected '%s'", stop[0])
		}
		if tok, ok := p.current(); ok && tok.Kind == token.Identifier && stops[tok.Lexeme] {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch {
	case p.checkIdent("LET"):
		return p.parseDeclaration()
	case p.checkIdent("IF"):
		return p.parseIf()
	case p.checkIdent("FOR"):
		return p.parseFor()
	case p.checkIdent("WHILE"):
		return p.parseWhile()
	case p.checkIdent("RETURN"):
		return p.parseReturn()
	default:
		return p.parseExprOrAssignment()
	}
}

// parseDeclaration parses `'LET' ID (':' ID)? ('=' expr)? ';'`.
func (p *Parser) parseDeclaration() (ast.Statement, error) {
	if _, err := p.expectIdent("LET"); err != nil {
		return nil, err
	}
	nameTok, err := p.expectAnyIdent()
	if err != nil {
		return nil, err
	}
	decl := &ast.Declaration{Name: nameTok.Lexeme}
	if p.checkOp(":") {
		p.advance()
		typeTok, err := p.expectAnyIdent()
		if err != nil {
			return nil, err
		}
		decl.TypeName = typeTok.Lexeme
		decl.HasType = true
	}
	if p.checkOp("=") {
		p.advance()
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		decl.Value = value
		decl.HasValue = true
	}
	if _, err := p.expectOp(";"); err != nil {
		return nil, err
	}
	return decl, nil
}

// parseIf parses `'IF' expr 'DO' stmt* ('ELSE' stmt*)? 'END'`.
func (p *Parser) parseIf() (ast.Statement, error) {
	if _, err := p.expectIdent("IF"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectIdent("DO"); err != nil {
		return nil, err
	}
	then, err := p.parseStatements("ELSE", "END")
	if err != nil {
		return nil, err
	}
	ifStmt := &ast.If{Cond: cond, Then: then}
	if p.checkIdent("ELSE") {
		p.advance()
		elseStmts, err := p.parseStatements("END")
		if err != nil {
			return nil, err
		}
		ifStmt.Else = elseStmts
		ifStmt.HasElse = true
	}
	if _, err := p.expectIdent("END"); err != nil {
		return nil, err
	}
	return ifStmt, nil
}

// parseForInit parses the shared `ID '=' expr` shape used by a for loop's
// init and incr clauses.
func (p *Parser) parseForInit() (*ast.ForInit, error) {
	nameTok, err := p.expectAnyIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectOp("="); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.ForInit{Name: nameTok.Lexeme, Value: value}, nil
}

// parseFor parses `'FOR' '(' (ID '=' expr)? ';' expr ';' (ID '=' expr)? ')' stmt* 'END'`.
func (p *Parser) parseFor() (ast.Statement, error) {
	if _, err := p.expectIdent("FOR"); err != nil {
		return nil, err
	}
	if _, err := p.expectOp("("); err != nil {
		return nil, err
	}
	forStmt := &ast.For{}
	if !p.checkOp(";") {
		init, err := p.parseForInit()
		if err != nil {
			return nil, err
		}
		forStmt.Init = init
	}
	if _, err := p.expectOp(";"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	forStmt.Cond = cond
	if _, err := p.expectOp(";"); err != nil {
		return nil, err
	}
	if !p.checkOp(")") {
		incr, err := p.parseForInit()
		if err != nil {
			return nil, err
		}
		forStmt.Incr = incr
	}
	if _, err := p.expectOp(")"); err != nil {
		return nil, err
	}
	body, err := p.parseStatements("END")
	if err != nil {
		return nil, err
	}
	forStmt.Body = body
	if _, err := p.expectIdent("END"); err != nil {
		return nil, err
	}
	return forStmt, nil
}

// parseWhile parses `'WHILE' expr 'DO' stmt* 'END'`.
func (p *Parser) parseWhile() (ast.Statement, error) {
	if _, err := p.expectIdent("WHILE"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectIdent("DO"); err != nil {
		return nil, err
	}
	body, err := p.parseStatements("END")
	if err != nil {
		return nil, err
	}
	if _, err := p.expectIdent("END"); err != nil {
		return nil, err
	}
	return &ast.While{Cond: cond, Body: body}, nil
}

// parseReturn parses `'RETURN' expr ';'`.
func (p *Parser) parseReturn() (ast.Statement, error) {
	if _, err := p.expectIdent("RETURN"); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectOp(";"); err != nil {
		return nil, err
	}
	return &ast.Return{Value: value}, nil
}

// parseExprOrAssignment parses `expr ('=' expr)? ';'`. When '=' follows,
// the left-hand expression must be an *ast.Access (spec §3's Assignment
// invariant); anything else is a ParseError at the '=' token.
func (p *Parser) parseExprOrAssignment() (ast.Statement, error) {
	left, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.checkOp("=") {
		eqTok := p.advance()
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectOp(";"); err != nil {
			return nil, err
		}
		access, ok := left.(*ast.Access)
		if !ok {
			return nil, plcerrors.NewParseError(eqTok.Start, "assignment target must be a variable or field access")
		}
		return &ast.Assignment{Receiver: access, Value: value}, nil
	}
	if _, err := p.expectOp(";"); err != nil {
		return nil, err
	}
	return &ast.ExpressionStmt{Expr: left}, nil
}
