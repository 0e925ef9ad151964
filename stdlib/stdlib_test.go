package stdlib_test

import (
	"bytes"
	"testing"

	"github.com/plclang/plc/analyzer"
	"github.com/plclang/plc/env"
	"github.com/plclang/plc/interp"
	"github.com/plclang/plc/parser"
	"github.com/plclang/plc/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintWritesDisplayFormToWriter(t *testing.T) {
	tree, err := parser.Parse(`
		DEF main(): Integer DO
			print("hello");
			RETURN 0;
		END
	`)
	require.NoError(t, err)

	var out bytes.Buffer
	builder := env.NewBuilder()
	stdlib.Install(builder, &out)
	require.NoError(t, analyzer.Analyze(tree, builder.Root()))

	_, err = interp.Run(tree, builder.Root())
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out.String())
}

func TestLenOnString(t *testing.T) {
	tree, err := parser.Parse(`
		DEF main(): Integer DO
			RETURN len("hello");
		END
	`)
	require.NoError(t, err)

	var out bytes.Buffer
	builder := env.NewBuilder()
	stdlib.Install(builder, &out)
	require.NoError(t, analyzer.Analyze(tree, builder.Root()))

	result, err := interp.Run(tree, builder.Root())
	require.NoError(t, err)
	assert.Equal(t, "5", result.Int.String())
}

func TestAbsOnInteger(t *testing.T) {
	tree, err := parser.Parse(`
		DEF main(): Integer DO
			RETURN abs(0 - 5);
		END
	`)
	require.NoError(t, err)

	var out bytes.Buffer
	builder := env.NewBuilder()
	stdlib.Install(builder, &out)
	require.NoError(t, analyzer.Analyze(tree, builder.Root()))

	result, err := interp.Run(tree, builder.Root())
	require.NoError(t, err)
	assert.Equal(t, "5", result.Int.String())
}
