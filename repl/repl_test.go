package repl_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/plclang/plc/repl"
	"github.com/stretchr/testify/assert"
)

func TestREPLEchoesPrintedExpression(t *testing.T) {
	r := repl.New("BANNER", "v0.0.0", "test", "----", "MIT", "plc >>> ")
	var out bytes.Buffer
	in := strings.NewReader("1 + 2\n.exit\n")
	r.Start(in, &out)
	assert.Contains(t, out.String(), "3")
}

func TestREPLAccumulatesFieldsAcrossLines(t *testing.T) {
	r := repl.New("BANNER", "v0.0.0", "test", "----", "MIT", "plc >>> ")
	var out bytes.Buffer
	in := strings.NewReader("LET CONST X: Integer = 41;\nprint(X + 1);\n.exit\n")
	r.Start(in, &out)
	assert.Contains(t, out.String(), "ok")
	assert.Contains(t, out.String(), "42")
}

func TestREPLReportsParseErrorWithoutCrashing(t *testing.T) {
	r := repl.New("BANNER", "v0.0.0", "test", "----", "MIT", "plc >>> ")
	var out bytes.Buffer
	in := strings.NewReader("LET CONST = ;\n.exit\n")
	r.Start(in, &out)
	assert.Contains(t, out.String(), "error")
}
