package parser

import "github.com/plclang/plc/ast"

// parseExpr is the grammar's `expr` entry point, spec §4.2: `expr ::= logical`.
func (p *Parser) parseExpr() (ast.Expression, error) {
	return p.parseLogical()
}

// binaryLayer parses a left-associative chain of one precedence layer:
// next (op next)*, where op is drawn from ops.
func (p *Parser) binaryLayer(ops []string, next func() (ast.Expression, error)) (ast.Expression, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for {
		matched := ""
		for _, op := range ops {
			if p.checkOp(op) {
				matched = op
				break
			}
		}
		if matched == "" {
			return left, nil
		}
		p.advance()
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: matched, Left: left, Right: right}
	}
}

// parseLogical: `equality (('&&'|'||') equality)*`.
func (p *Parser) parseLogical() (ast.Expression, error) {
	return p.binaryLayer([]string{"&&", "||"}, p.parseEquality)
}

// parseEquality: `additive (('<'|'<='|'>'|'>='|'=='|'!=') additive)*`.
func (p *Parser) parseEquality() (ast.Expression, error) {
	return p.binaryLayer([]string{"<", "<=", ">", ">=", "==", "!="}, p.parseAdditive)
}

// parseAdditive: `multiplicative (('+'|'-') multiplicative)*`.
func (p *Parser) parseAdditive() (ast.Expression, error) {
	return p.binaryLayer([]string{"+", "-"}, p.parseMultiplicative)
}

// parseMultiplicative: `secondary (('*'|'/') secondary)*`.
func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	return p.binaryLayer([]string{"*", "/"}, p.parseSecondary)
}

// parseSecondary: `primary ('.' ID ('(' args? ')')?)*`. A dotted suffix
// without call parens builds an Access; with call parens, a Function —
// both carrying the preceding expression as their receiver.
func (p *Parser) parseSecondary() (ast.Expression, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.checkOp(".") {
		p.advance()
		nameTok, err := p.expectAnyIdent()
		if err != nil {
			return nil, err
		}
		if p.checkOp("(") {
			p.advance()
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			if _, err := p.expectOp(")"); err != nil {
				return nil, err
			}
			left = &ast.Function{Receiver: left, HasReceiver: true, Name: nameTok.Lexeme, Args: args}
		} else {
			left = &ast.Access{Receiver: left, HasReceiver: true, Name: nameTok.Lexeme}
		}
	}
	return left, nil
}

// parseArgs parses `expr (',' expr)*`, or returns nil for an empty list.
func (p *Parser) parseArgs() ([]ast.Expression, error) {
	if p.checkOp(")") {
		return nil, nil
	}
	var args []ast.Expression
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.checkOp(",") {
			break
		}
		p.advance()
	}
	return args, nil
}

// parsePrimary parses the grammar's `primary` production: literals, a
// parenthesized expression, or a bare/called identifier.
func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok, ok := p.current()
	if !ok {
		return nil, p.errorf("unexpected end of input, expected an expression")
	}

	switch {
	case tok.Kind == identifierKind && tok.Lexeme == "NIL":
		p.advance()
		return &ast.Literal{Kind: ast.LiteralNil}, nil
	case tok.Kind == identifierKind && tok.Lexeme == "TRUE":
		p.advance()
		return &ast.Literal{Kind: ast.LiteralBool, Bool: true}, nil
	case tok.Kind == identifierKind && tok.Lexeme == "FALSE":
		p.advance()
		return &ast.Literal{Kind: ast.LiteralBool, Bool: false}, nil
	case tok.Kind == integerKind:
		p.advance()
		n, err := decodeInt(tok.Lexeme)
		if err != nil {
			return nil, plcErrorAtTok(tok, err.Error())
		}
		return &ast.Literal{Kind: ast.LiteralInt, Int: n}, nil
	case tok.Kind == decimalKind:
		p.advance()
		d, err := decodeDecimal(tok.Lexeme)
		if err != nil {
			return nil, plcErrorAtTok(tok, err.Error())
		}
		return &ast.Literal{Kind: ast.LiteralDecimal, Dec: d}, nil
	case tok.Kind == characterKind:
		p.advance()
		r, err := decodeChar(tok.Lexeme)
		if err != nil {
			return nil, plcErrorAtTok(tok, err.Error())
		}
		return &ast.Literal{Kind: ast.LiteralChar, Char: r}, nil
	case tok.Kind == stringKind:
		p.advance()
		s, err := decodeString(tok.Lexeme)
		if err != nil {
			return nil, plcErrorAtTok(tok, err.Error())
		}
		return &ast.Literal{Kind: ast.LiteralString, Str: s}, nil
	case tok.Kind == operatorKind && tok.Lexeme == "(":
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectOp(")"); err != nil {
			return nil, err
		}
		return &ast.Group{Inner: inner}, nil
	case tok.Kind == identifierKind:
		p.advance()
		if p.checkOp("(") {
			p.advance()
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			if _, err := p.expectOp(")"); err != nil {
				return nil, err
			}
			return &ast.Function{Name: tok.Lexeme, Args: args}, nil
		}
		return &ast.Access{Name: tok.Lexeme}, nil
	default:
		return nil, p.errorf("unexpected token '%s'", tok.Lexeme)
	}
}
