package analyzer_test

import (
	"testing"

	"github.com/plclang/plc/analyzer"
	"github.com/plclang/plc/env"
	"github.com/plclang/plc/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpAnnotatesResolvedTypes(t *testing.T) {
	tree, err := parser.Parse(`
		LET CONST PI: Decimal = 3.14;
		DEF main(): Integer DO
			RETURN 0;
		END
	`)
	require.NoError(t, err)

	builder := env.NewBuilder()
	require.NoError(t, analyzer.Analyze(tree, builder.Root()))

	out := analyzer.Dump(tree)
	assert.Contains(t, out, "Field PI : Decimal (constant=true)")
	assert.Contains(t, out, "Method main() : Integer")
	assert.Contains(t, out, "Return")
	assert.Contains(t, out, "Literal (Integer)")
}

func TestDumpOnUnanalyzedTreeRendersUnknownTypes(t *testing.T) {
	tree, err := parser.Parse(`DEF main(): Integer DO RETURN 0; END`)
	require.NoError(t, err)

	out := analyzer.Dump(tree)
	assert.Contains(t, out, "Method main() : ?")
}
