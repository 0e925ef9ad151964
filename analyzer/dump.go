package analyzer

import (
	"fmt"
	"strings"

	"github.com/plclang/plc/ast"
)

const dumpIndentSize = 4

// dumper accumulates a human-readable tree dump, in the teacher's
// PrintingVisitor indent-buffer idiom (print_visitor.go) — adapted from
// that idiom's Accept/Visit dispatch to the exhaustive type switches this
// package already dispatches on everywhere else.
type dumper struct {
	indent int
	buf    strings.Builder
}

func (d *dumper) line(format string, args ...any) {
	d.buf.WriteString(strings.Repeat(" ", d.indent))
	fmt.Fprintf(&d.buf, format, args...)
	d.buf.WriteByte('\n')
}

func (d *dumper) enter(format string, args ...any) {
	d.line(format, args...)
	d.indent += dumpIndentSize
}

func (d *dumper) leave() {
	d.indent -= dumpIndentSize
}

// Dump renders an already-Analyze'd *ast.Source as an indented tree of its
// fields and methods, annotated with every Resolved binding and Type slot
// the analyzer filled in. It is purely additive debugging support (spec
// §10, SUPPLEMENTED FEATURES): nothing on Analyze's own success/failure
// path ever calls it, and it never returns an error — a field or
// expression whose Resolved/Type slot is still nil (an un-analyzed tree)
// is rendered with "?" rather than rejected.
func Dump(src *ast.Source) string {
	d := &dumper{}
	for _, field := range src.Fields {
		dumpField(d, field)
	}
	for _, method := range src.Methods {
		dumpMethod(d, method)
	}
	return d.buf.String()
}

func dumpField(d *dumper, field *ast.Field) {
	typeName := "?"
	if field.Resolved != nil && field.Resolved.Type != nil {
		typeName = field.Resolved.Type.Name
	}
	d.enter("Field %s : %s (constant=%t)", field.Name, typeName, field.Constant)
	if field.Value != nil {
		dumpExpression(d, field.Value)
	}
	d.leave()
}

func dumpMethod(d *dumper, method *ast.Method) {
	returnName := "?"
	if method.Resolved != nil && method.Resolved.ReturnType != nil {
		returnName = method.Resolved.ReturnType.Name
	}
	d.enter("Method %s(%s) : %s", method.Name, strings.Join(method.Params, ", "), returnName)
	for _, stmt := range method.Body {
		dumpStatement(d, stmt)
	}
	d.leave()
}

func dumpStatement(d *dumper, stmt ast.Statement) {
	switch n := stmt.(type) {
	case *ast.ExpressionStmt:
		d.enter("ExpressionStmt")
		dumpExpression(d, n.Expr)
		d.leave()
	case *ast.Declaration:
		typeName := "?"
		if n.Resolved != nil && n.Resolved.Type != nil {
			typeName = n.Resolved.Type.Name
		}
		d.enter("Declaration %s : %s", n.Name, typeName)
		if n.Value != nil {
			dumpExpression(d, n.Value)
		}
		d.leave()
	case *ast.Assignment:
		d.enter("Assignment")
		dumpExpression(d, n.Receiver)
		dumpExpression(d, n.Value)
		d.leave()
	case *ast.If:
		d.enter("If")
		dumpExpression(d, n.Cond)
		for _, s := range n.Then {
			dumpStatement(d, s)
		}
		if n.HasElse {
			for _, s := range n.Else {
				dumpStatement(d, s)
			}
		}
		d.leave()
	case *ast.While:
		d.enter("While")
		dumpExpression(d, n.Cond)
		for _, s := range n.Body {
			dumpStatement(d, s)
		}
		d.leave()
	case *ast.For:
		d.enter("For")
		dumpExpression(d, n.Cond)
		for _, s := range n.Body {
			dumpStatement(d, s)
		}
		d.leave()
	case *ast.Return:
		d.enter("Return")
		dumpExpression(d, n.Value)
		d.leave()
	default:
		d.line("unreachable statement case %T", n)
	}
}

func dumpExpression(d *dumper, expr ast.Expression) {
	typeName := "?"
	if t := expr.Type(); t != nil {
		typeName = t.Name
	}
	switch n := expr.(type) {
	case *ast.Literal:
		d.line("Literal (%s)", typeName)
	case *ast.Group:
		d.enter("Group (%s)", typeName)
		dumpExpression(d, n.Inner)
		d.leave()
	case *ast.Binary:
		d.enter("Binary %s (%s)", n.Op, typeName)
		dumpExpression(d, n.Left)
		dumpExpression(d, n.Right)
		d.leave()
	case *ast.Access:
		d.line("Access %s (%s)", n.Name, typeName)
	case *ast.Function:
		d.enter("Function %s (%s)", n.Name, typeName)
		for _, a := range n.Args {
			dumpExpression(d, a)
		}
		d.leave()
	default:
		d.line("unreachable expression case %T", n)
	}
}
