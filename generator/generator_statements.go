package generator

import (
	"fmt"
	"strings"

	"github.com/plclang/plc/ast"
)

// emitBlockHeader writes "<header> {" at the current indent, then either
// "}" on the same line for an empty block, or the block's statements at
// one deeper indent followed by a closing "}" on its own line at the
// original indent. indentIn/indentOut are always paired here, so a failure
// partway through emitting a statement still leaves indent untouched by
// the time the error propagates up past this call (the caller never
// inspects e.indent after an error, only the returned error value).
func emitBlockHeader(e *emitter, header string, stmts []ast.Statement) error {
	e.writeIndent()
	e.buf.WriteString(header)
	e.buf.WriteString(" ")
	if len(stmts) == 0 {
		e.buf.WriteString("{}\n")
		return nil
	}
	e.buf.WriteString("{\n")
	e.indentIn()
	for _, stmt := range stmts {
		if err := emitStatement(e, stmt); err != nil {
			e.indentOut()
			return err
		}
	}
	e.indentOut()
	e.line("}")
	return nil
}

// emitMethod emits `<ReturnType> <name>(<ParamType> <param>, ...) { ... }`.
func emitMethod(e *emitter, method *ast.Method) error {
	var params strings.Builder
	for i, name := range method.Params {
		if i > 0 {
			params.WriteString(", ")
		}
		params.WriteString(method.Resolved.ParamTypes[i].JVMName)
		params.WriteByte(' ')
		params.WriteString(name)
	}
	header := fmt.Sprintf("%s %s(%s)", method.Resolved.ReturnType.JVMName, method.Resolved.JVMName, params.String())
	return emitBlockHeader(e, header, method.Body)
}

func emitStatement(e *emitter, stmt ast.Statement) error {
	switch n := stmt.(type) {
	case *ast.ExpressionStmt:
		text, err := renderExpression(n.Expr)
		if err != nil {
			return err
		}
		e.line(text + ";")
		return nil
	case *ast.Declaration:
		return emitDeclaration(e, n)
	case *ast.Assignment:
		return emitAssignment(e, n)
	case *ast.If:
		return emitIf(e, n)
	case *ast.While:
		return emitWhile(e, n)
	case *ast.For:
		return emitFor(e, n)
	case *ast.Return:
		text, err := renderExpression(n.Value)
		if err != nil {
			return err
		}
		e.line("return " + text + ";")
		return nil
	default:
		return fmt.Errorf("generator: unreachable statement case %T", n)
	}
}

func emitDeclaration(e *emitter, n *ast.Declaration) error {
	var sb strings.Builder
	sb.WriteString(n.Resolved.Type.JVMName)
	sb.WriteByte(' ')
	sb.WriteString(n.Resolved.JVMName)
	if n.Value != nil {
		text, err := renderExpression(n.Value)
		if err != nil {
			return err
		}
		sb.WriteString(" = ")
		sb.WriteString(text)
	}
	sb.WriteByte(';')
	e.line(sb.String())
	return nil
}

func emitAssignment(e *emitter, n *ast.Assignment) error {
	receiverText, err := renderExpression(n.Receiver)
	if err != nil {
		return err
	}
	valueText, err := renderExpression(n.Value)
	if err != nil {
		return err
	}
	e.line(fmt.Sprintf("%s = %s;", receiverText, valueText))
	return nil
}

// emitIf writes "if (cond) { ... }" and, when present, " else { ... }" on
// the closing brace's own line (spec §4.6 doesn't pin this down for an
// else clause explicitly; this follows the same "opening brace joins the
// preceding token" convention used everywhere else in §4.6's rules).
func emitIf(e *emitter, n *ast.If) error {
	cond, err := renderExpression(n.Cond)
	if err != nil {
		return err
	}
	if !n.HasElse {
		return emitBlockHeader(e, fmt.Sprintf("if (%s)", cond), n.Then)
	}
	if err := emitIfWithElse(e, cond, n.Then, n.Else); err != nil {
		return err
	}
	return nil
}

// emitIfWithElse joins the then-block's closing brace and the else
// keyword on one line ("} else {"), matching the header-joins-brace style
// used throughout this emitter.
func emitIfWithElse(e *emitter, cond string, then, els []ast.Statement) error {
	e.writeIndent()
	e.buf.WriteString(fmt.Sprintf("if (%s) ", cond))
	if len(then) == 0 {
		e.buf.WriteString("{} else ")
	} else {
		e.buf.WriteString("{\n")
		e.indentIn()
		for _, stmt := range then {
			if err := emitStatement(e, stmt); err != nil {
				e.indentOut()
				return err
			}
		}
		e.indentOut()
		e.writeIndent()
		e.buf.WriteString("} else ")
	}
	if len(els) == 0 {
		e.buf.WriteString("{}\n")
		return nil
	}
	e.buf.WriteString("{\n")
	e.indentIn()
	for _, stmt := range els {
		if err := emitStatement(e, stmt); err != nil {
			e.indentOut()
			return err
		}
	}
	e.indentOut()
	e.line("}")
	return nil
}

func emitWhile(e *emitter, n *ast.While) error {
	cond, err := renderExpression(n.Cond)
	if err != nil {
		return err
	}
	return emitBlockHeader(e, fmt.Sprintf("while (%s)", cond), n.Body)
}

// emitFor writes "for ( init ; cond ; incr ) { ... }" — the one header
// shape spec §4.6 singles out as spacing every clause, unlike if/while's
// tight parens.
func emitFor(e *emitter, n *ast.For) error {
	initText := ""
	if n.Init != nil {
		v, err := renderExpression(n.Init.Value)
		if err != nil {
			return err
		}
		initText = fmt.Sprintf("%s = %s", n.Init.Name, v)
	}
	condText, err := renderExpression(n.Cond)
	if err != nil {
		return err
	}
	incrText := ""
	if n.Incr != nil {
		v, err := renderExpression(n.Incr.Value)
		if err != nil {
			return err
		}
		incrText = fmt.Sprintf("%s = %s", n.Incr.Name, v)
	}
	header := fmt.Sprintf("for ( %s ; %s ; %s )", initText, condText, incrText)
	return emitBlockHeader(e, header, n.Body)
}
