// Command plc is PLC's command-line entry point, grounded on the
// teacher's main/main.go: a thin os.Args dispatcher over run/gen/repl
// subcommands, colorized with fatih/color the same way the teacher
// colorizes file-execution output.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/plclang/plc/analyzer"
	"github.com/plclang/plc/env"
	"github.com/plclang/plc/generator"
	"github.com/plclang/plc/interp"
	"github.com/plclang/plc/parser"
	"github.com/plclang/plc/repl"
	"github.com/plclang/plc/stdlib"
)

// VERSION is the current version of the plc toolchain.
var VERSION = "v0.1.0"

// AUTHOR is the contact line shown by --version and the REPL banner.
var AUTHOR = "plc contributors"

// LICENSE is the software license shown by --version and the REPL banner.
var LICENSE = "MIT"

// PROMPT is the prompt string shown by the REPL.
var PROMPT = "plc >>> "

// LINE is the separator line used by --help/--version and the REPL banner.
var LINE = "--------------------------------------------------------------"

// BANNER is the ASCII logo shown at REPL startup.
var BANNER = `
  ____  _     ____
 |  _ \| |   / ___|
 | |_) | |  | |
 |  __/| |__| |___
 |_|   |_____\____|
`

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) < 2 {
		startRepl()
		return
	}

	switch os.Args[1] {
	case "--help", "-h", "help":
		showHelp()
	case "--version", "-v", "version":
		showVersion()
	case "repl":
		startRepl()
	case "run":
		if len(os.Args) < 3 {
			redColor.Fprintln(os.Stderr, "[usage error] run requires a file path")
			os.Exit(1)
		}
		runFile(os.Args[2])
	case "gen":
		if len(os.Args) < 3 {
			redColor.Fprintln(os.Stderr, "[usage error] gen requires a file path")
			os.Exit(1)
		}
		genFile(os.Args[2])
	default:
		redColor.Fprintf(os.Stderr, "[usage error] unknown command %q\n", os.Args[1])
		showHelp()
		os.Exit(1)
	}
}

func showHelp() {
	cyanColor.Println("plc - the PLC language toolchain")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  plc run <file>      Interpret a .plc source file")
	fmt.Println("  plc gen <file>      Print generated target-language source")
	fmt.Println("  plc repl            Start an interactive session")
	fmt.Println("  plc --help          Show this message")
	fmt.Println("  plc --version       Show version information")
}

func showVersion() {
	cyanColor.Printf("plc %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

func startRepl() {
	r := repl.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	r.Start(os.Stdin, os.Stdout)
}

// loadSource reads path, returning a fresh env.Builder and the file's raw
// contents, or exiting the process with a formatted error. Parsing and
// stdlib installation are left to the caller.
func loadSource(path string) (*env.Builder, []byte) {
	content, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[file error] could not read %q: %v\n", path, err)
		os.Exit(1)
	}
	return env.NewBuilder(), content
}

func runFile(path string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[runtime error] %v\n", recovered)
			os.Exit(1)
		}
	}()

	builder, content := loadSource(path)
	stdlib.Install(builder, os.Stdout)

	tree, err := parser.Parse(string(content))
	if err != nil {
		redColor.Fprintf(os.Stderr, "[parse error] %v\n", err)
		os.Exit(1)
	}

	if err := analyzer.Analyze(tree, builder.Root()); err != nil {
		redColor.Fprintf(os.Stderr, "[analysis error] %v\n", err)
		os.Exit(1)
	}

	result, err := interp.Run(tree, builder.Root())
	if err != nil {
		redColor.Fprintf(os.Stderr, "[runtime error] %v\n", err)
		os.Exit(1)
	}

	os.Exit(int(result.Int.Int64()))
}

func genFile(path string) {
	builder, content := loadSource(path)
	stdlib.Install(builder, os.Stdout)

	tree, err := parser.Parse(string(content))
	if err != nil {
		redColor.Fprintf(os.Stderr, "[parse error] %v\n", err)
		os.Exit(1)
	}

	if err := analyzer.Analyze(tree, builder.Root()); err != nil {
		redColor.Fprintf(os.Stderr, "[analysis error] %v\n", err)
		os.Exit(1)
	}

	out, err := generator.Generate(tree)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[generator error] %v\n", err)
		os.Exit(1)
	}

	fmt.Print(out)
}
