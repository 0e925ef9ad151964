package interp_test

import (
	"testing"

	"github.com/plclang/plc/interp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceLogsCallEntryAndExit(t *testing.T) {
	tree, scope := mustAnalyzedSource(t, `
		DEF main(): Integer DO
			RETURN add(1, 2);
		END
		DEF add(a: Integer, b: Integer): Integer DO
			RETURN a + b;
		END
	`)

	var tracer interp.Tracer
	result, err := interp.Trace(tree, scope, &tracer)
	require.NoError(t, err)
	assert.Equal(t, "3", result.Int.String())

	out := tracer.String()
	assert.Contains(t, out, "-> main()")
	assert.Contains(t, out, "-> add(1, 2)")
	assert.Contains(t, out, "<- add = 3")
	assert.Contains(t, out, "<- main = 3")
}

func TestTraceLogsRecursiveCallsNested(t *testing.T) {
	tree, scope := mustAnalyzedSource(t, `
		DEF main(): Integer DO
			RETURN fact(3);
		END
		DEF fact(n: Integer): Integer DO
			IF n < 2 DO
				RETURN 1;
			END
			RETURN n * fact(n - 1);
		END
	`)

	var tracer interp.Tracer
	result, err := interp.Trace(tree, scope, &tracer)
	require.NoError(t, err)
	assert.Equal(t, "6", result.Int.String())
	assert.Contains(t, tracer.String(), "-> fact(3)")
	assert.Contains(t, tracer.String(), "-> fact(1)")
}
