// Package generator implements PLC's code generator (spec §4.6): given an
// already-analyzed *ast.Source, it emits text for a Java-like target
// language with a synthetic `Main` class, byte-exact down to indentation
// and blank lines. There is no teacher precedent for this package — the
// teacher (akashmaji946-go-mix) is a pure interpreter with no codegen
// stage — so the emitter's shape is grounded on the teacher's own
// io.Writer-based printing conventions (eval's Writer field, main's use of
// fmt.Fprintf against a writer) generalized into a small indent-tracking
// emitter, the way a second backend would naturally be bolted onto that
// style of codebase.
package generator

import (
	"strings"

	"github.com/plclang/plc/ast"
)

const indentUnit = "    "

// emitter accumulates generated text and tracks the current indent level.
// Every block is opened and closed through indentIn/indentOut in the same
// function, so the counter is guaranteed balanced on every path through
// Generate — the "state machine" spec §4.6 asks for is just this counter
// plus the discipline of only mutating it in matched pairs.
type emitter struct {
	buf    strings.Builder
	indent int
}

func (e *emitter) indentIn()  { e.indent++ }
func (e *emitter) indentOut() { e.indent-- }

func (e *emitter) writeIndent() {
	e.buf.WriteString(strings.Repeat(indentUnit, e.indent))
}

// line writes s at the current indent, terminated by a newline.
func (e *emitter) line(s string) {
	e.writeIndent()
	e.buf.WriteString(s)
	e.buf.WriteByte('\n')
}

// blank writes an empty line.
func (e *emitter) blank() {
	e.buf.WriteByte('\n')
}

// Generate emits src's target-language text. src must already carry the
// analyzer's annotations (every Field/Method's Resolved binding, every
// Expression's Type) since Access/Function emission reads the resolved
// binding's jvm_name (spec §4.6).
func Generate(src *ast.Source) (string, error) {
	e := &emitter{}
	e.line("public class Main {")
	e.blank()
	e.indentIn()

	for _, field := range src.Fields {
		s, err := renderField(field)
		if err != nil {
			return "", err
		}
		e.line(s)
	}
	if len(src.Fields) > 0 {
		e.blank()
	}

	e.line("public static void main(String[] args) {")
	e.indentIn()
	e.line("System.exit(new Main().main());")
	e.indentOut()
	e.line("}")

	for _, method := range src.Methods {
		e.blank()
		if err := emitMethod(e, method); err != nil {
			return "", err
		}
	}

	e.indentOut()
	e.blank()
	e.buf.WriteString("}\n")
	return e.buf.String(), nil
}

// renderField renders one field declaration: `[final ]<Type> <name>[ =
// <expr>];`.
func renderField(field *ast.Field) (string, error) {
	var sb strings.Builder
	if field.Constant {
		sb.WriteString("final ")
	}
	sb.WriteString(field.Resolved.Type.JVMName)
	sb.WriteByte(' ')
	sb.WriteString(field.Resolved.JVMName)
	if field.Value != nil {
		exprText, err := renderExpression(field.Value)
		if err != nil {
			return "", err
		}
		sb.WriteString(" = ")
		sb.WriteString(exprText)
	}
	sb.WriteByte(';')
	return sb.String(), nil
}
