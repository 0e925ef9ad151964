package generator_test

import (
	"testing"

	"github.com/plclang/plc/analyzer"
	"github.com/plclang/plc/env"
	"github.com/plclang/plc/generator"
	"github.com/plclang/plc/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGeneratorByteExactSample covers spec §8 scenario 6 verbatim.
func TestGeneratorByteExactSample(t *testing.T) {
	tree, err := parser.Parse(`LET CONST PI: Decimal = 3.14; DEF main(): Integer DO RETURN 0; END`)
	require.NoError(t, err)

	builder := env.NewBuilder()
	require.NoError(t, analyzer.Analyze(tree, builder.Root()))

	out, err := generator.Generate(tree)
	require.NoError(t, err)

	want := `public class Main {

    final Decimal PI = 3.14;

    public static void main(String[] args) {
        System.exit(new Main().main());
    }

    Integer main() {
        return 0;
    }

}
`
	assert.Equal(t, want, out)
}

func TestGeneratorNoFields(t *testing.T) {
	tree, err := parser.Parse(`DEF main(): Integer DO RETURN 1; END`)
	require.NoError(t, err)

	builder := env.NewBuilder()
	require.NoError(t, analyzer.Analyze(tree, builder.Root()))

	out, err := generator.Generate(tree)
	require.NoError(t, err)

	want := `public class Main {

    public static void main(String[] args) {
        System.exit(new Main().main());
    }

    Integer main() {
        return 1;
    }

}
`
	assert.Equal(t, want, out)
}

func TestGeneratorIfElseAndBinary(t *testing.T) {
	tree, err := parser.Parse(`
		DEF main(): Integer DO
			LET x: Integer = 1;
			IF x < 2 DO
				RETURN 1;
			ELSE
				RETURN 0;
			END
		END
	`)
	require.NoError(t, err)

	builder := env.NewBuilder()
	require.NoError(t, analyzer.Analyze(tree, builder.Root()))

	out, err := generator.Generate(tree)
	require.NoError(t, err)
	assert.Contains(t, out, "Integer x = 1;")
	assert.Contains(t, out, "if (x < 2) {")
	assert.Contains(t, out, "} else {")
}

func TestGeneratorForLoop(t *testing.T) {
	tree, err := parser.Parse(`
		DEF main(): Integer DO
			FOR (i = 0; i < 10; i = i + 1)
				RETURN i;
			END
			RETURN 0;
		END
	`)
	require.NoError(t, err)

	builder := env.NewBuilder()
	require.NoError(t, analyzer.Analyze(tree, builder.Root()))

	out, err := generator.Generate(tree)
	require.NoError(t, err)
	assert.Contains(t, out, "for ( i = 0 ; i < 10 ; i = i + 1 ) {")
}
