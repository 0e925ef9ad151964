// Package repl implements PLC's interactive Read-Eval-Print Loop, grounded
// on the teacher's repl/repl.go: a readline-backed prompt, colorized output
// via fatih/color, and a panic-recovering eval step that keeps the loop
// alive after a bad line instead of exiting.
//
// PLC has no free-floating top-level statements (spec's grammar only
// allows LET fields and DEF methods at source scope, and every program
// needs a main/0: Integer), so unlike the teacher's Go-Mix — which can
// evaluate a single dangling expression — a REPL line here is folded into
// an accumulating buffer of fields/methods and re-run through the full
// lexer-parser-analyzer-interpreter pipeline on every line, inside a
// synthetic main the REPL itself appends.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/plclang/plc/analyzer"
	"github.com/plclang/plc/env"
	"github.com/plclang/plc/interp"
	"github.com/plclang/plc/parser"
	"github.com/plclang/plc/stdlib"
)

// Color definitions mirroring the teacher's repl/repl.go palette: blue for
// separators, green for success/banner text, yellow for evaluation
// results, red for errors, cyan for informational text.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// REPL holds the display configuration for one interactive session,
// mirroring the teacher's Repl struct field-for-field.
type REPL struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New constructs a REPL with the given banner, version, author, separator
// line, license, and prompt text.
func New(banner, version, author, line, license, prompt string) *REPL {
	return &REPL{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner, version/author/license line,
// and a one-line usage reminder to w.
func (r *REPL) PrintBannerInfo(w io.Writer) {
	greenColor.Fprintln(w, r.Banner)
	blueColor.Fprintln(w, r.Line)
	cyanColor.Fprintf(w, "PLC %s (%s)\n", r.Version, r.License)
	cyanColor.Fprintf(w, "Author: %s\n", r.Author)
	blueColor.Fprintln(w, r.Line)
	cyanColor.Fprintln(w, "Enter a LET field, a DEF method, or a statement. Type .exit to quit.")
}

// Start runs the REPL loop against reader/writer until the user types
// ".exit" or sends EOF (Ctrl+D). Each accepted line either grows the
// session's persistent field/method buffer (LET/DEF lines) or runs once
// inside a synthetic main (everything else). A panic anywhere in the
// pipeline is recovered and reported as a runtime error, matching the
// teacher's executeWithRecovery.
func (r *REPL) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  io.NopCloser(reader),
		Stdout: writer,
		Stderr: writer,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	var decls strings.Builder

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(writer, "Goodbye!")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Fprintln(writer, "Goodbye!")
			return
		}

		rl.SaveHistory(line)
		r.evalLine(writer, &decls, line)
	}
}

// isDeclLine reports whether line begins a top-level LET field or DEF
// method, which get appended to the session's persistent buffer rather
// than run once.
func isDeclLine(line string) bool {
	return strings.HasPrefix(line, "LET") || strings.HasPrefix(line, "DEF")
}

// isStatementLine reports whether line already looks like a complete
// statement (starts with a statement keyword, or is itself an
// assignment), so it should be dropped into main's body unwrapped rather
// than folded into a print(...) call.
func isStatementLine(line string) bool {
	for _, kw := range []string{"IF", "WHILE", "FOR", "RETURN", "LET"} {
		if strings.HasPrefix(line, kw) {
			return true
		}
	}
	return strings.Contains(line, "=") && !strings.Contains(line, "==")
}

// evalLine builds a complete program from decls plus line, runs it through
// the full pipeline, and reports the outcome to writer. A LET/DEF line is
// only folded into decls once it has been verified to analyze and run
// cleanly on its own; anything else runs once and is discarded afterward.
func (r *REPL) evalLine(writer io.Writer, decls *strings.Builder, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[runtime error] %v\n", recovered)
		}
	}()

	decl := isDeclLine(line)

	var source string
	switch {
	case decl:
		source = decls.String() + "\n" + line + "\nDEF main(): Integer DO RETURN 0; END\n"
	case isStatementLine(line):
		source = decls.String() + "\nDEF main(): Integer DO " + ensureSemicolon(line) + " RETURN 0; END\n"
	default:
		source = decls.String() + "\nDEF main(): Integer DO print(" + strings.TrimSuffix(line, ";") + "); RETURN 0; END\n"
	}

	tree, err := parser.Parse(source)
	if err != nil {
		redColor.Fprintf(writer, "[parse error] %v\n", err)
		return
	}

	builder := env.NewBuilder()
	stdlib.Install(builder, writer)

	if err := analyzer.Analyze(tree, builder.Root()); err != nil {
		redColor.Fprintf(writer, "[analysis error] %v\n", err)
		return
	}

	if _, err := interp.Run(tree, builder.Root()); err != nil {
		redColor.Fprintf(writer, "[runtime error] %v\n", err)
		return
	}

	if decl {
		decls.WriteString(line)
		decls.WriteString("\n")
		greenColor.Fprintln(writer, "ok")
	}
}

func ensureSemicolon(line string) string {
	if strings.HasSuffix(line, ";") {
		return line
	}
	return line + ";"
}
