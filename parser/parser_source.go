package parser

import "github.com/plclang/plc/ast"

// ParseSource parses `field* method*`, enforcing that every field precedes
// every method (spec §4.2's ordering rule): once a DEF has been seen, a
// subsequent LET is a parse error rather than a later field.
func (p *Parser) ParseSource() (*ast.Source, error) {
	src := &ast.Source{}
	seenMethod := false
	for !p.atEnd() {
		switch {
		case p.checkIdent("LET"):
			if seenMethod {
				return nil, p.errorf("field declarations must precede all method declarations")
			}
			field, err := p.parseField()
			if err != nil {
				return nil, err
			}
			src.Fields = append(src.Fields, field)
		case p.checkIdent("DEF"):
			seenMethod = true
			method, err := p.parseMethod()
			if err != nil {
				return nil, err
			}
			src.Methods = append(src.Methods, method)
		default:
			return nil, p.errorf("expected 'LET' or 'DEF'")
		}
	}
	return src, nil
}

// parseField parses `'LET' 'CONST'? ID ':' ID ('=' expr)? ';'`.
func (p *Parser) parseField() (*ast.Field, error) {
	if _, err := p.expectIdent("LET"); err != nil {
		return nil, err
	}
	constant := false
	if p.checkIdent("CONST") {
		p.advance()
		constant = true
	}
	nameTok, err := p.expectAnyIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectOp(":"); err != nil {
		return nil, err
	}
	typeTok, err := p.expectAnyIdent()
	if err != nil {
		return nil, err
	}
	field := &ast.Field{Name: nameTok.Lexeme, TypeName: typeTok.Lexeme, Constant: constant}
	if p.checkOp("=") {
		p.advance()
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		field.Value = value
	}
	if _, err := p.expectOp(";"); err != nil {
		return nil, err
	}
	return field, nil
}

// parseMethod parses `'DEF' ID '(' params? ')' (':' ID)? 'DO' stmt* 'END'`.
func (p *Parser) parseMethod() (*ast.Method, error) {
	if _, err := p.expectIdent("DEF"); err != nil {
		return nil, err
	}
	nameTok, err := p.expectAnyIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectOp("("); err != nil {
		return nil, err
	}
	params, paramTypes, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectOp(")"); err != nil {
		return nil, err
	}
	method := &ast.Method{Name: nameTok.Lexeme, Params: params, ParamTypeNames: paramTypes}
	if p.checkOp(":") {
		p.advance()
		rt, err := p.expectAnyIdent()
		if err != nil {
			return nil, err
		}
		method.ReturnTypeName = rt.Lexeme
		method.HasReturnType = true
	}
	if _, err := p.expectIdent("DO"); err != nil {
		return nil, err
	}
	body, err := p.parseStatements("END")
	if err != nil {
		return nil, err
	}
	method.Body = body
	if _, err := p.expectIdent("END"); err != nil {
		return nil, err
	}
	return method, nil
}

// parseParams parses `ID ':' ID (',' ID ':' ID)*`, returning parallel
// name/type-name slices, or two nils if the parameter list is empty.
func (p *Parser) parseParams() ([]string, []string, error) {
	if p.checkOp(")") {
		return nil, nil, nil
	}
	var names, types []string
	for {
		nameTok, err := p.expectAnyIdent()
		if err != nil {
			return nil, nil, err
		}
		if _, err := p.expectOp(":"); err != nil {
			return nil, nil, err
		}
		typeTok, err := p.expectAnyIdent()
		if err != nil {
			return nil, nil, err
		}
		names = append(names, nameTok.Lexeme)
		types = append(types, typeTok.Lexeme)
		if !p.checkOp(",") {
			break
		}
		p.advance()
	}
	return names, types, nil
}
