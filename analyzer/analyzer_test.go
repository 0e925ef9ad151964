package analyzer_test

import (
	"testing"

	"github.com/plclang/plc/analyzer"
	"github.com/plclang/plc/ast"
	"github.com/plclang/plc/env"
	"github.com/plclang/plc/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *ast.Source {
	t.Helper()
	tree, err := parser.Parse(src)
	require.NoError(t, err)
	return tree
}

// TestMissingMainIsRejected covers spec §8 scenario 4.
func TestMissingMainIsRejected(t *testing.T) {
	tree := mustParse(t, `DEF foo() DO RETURN 0; END`)
	err := analyzer.Analyze(tree, env.NewBuilder().Root())
	require.Error(t, err)
}

func TestValidProgramAnalyzes(t *testing.T) {
	tree := mustParse(t, `
		LET CONST PI: Decimal = 3.14;
		DEF main(): Integer DO
			RETURN 0;
		END
	`)
	err := analyzer.Analyze(tree, env.NewBuilder().Root())
	require.NoError(t, err)
	assert.NotNil(t, tree.Fields[0].Resolved)
	assert.NotNil(t, tree.Methods[0].Resolved)
}

// TestAnalyzerIdempotence covers spec §8's analyzer idempotence property:
// running Analyze a second time on the same tree, over an equivalent root
// scope, leaves the same resolved type name in place.
func TestAnalyzerIdempotence(t *testing.T) {
	src := `
		DEF add(a: Integer, b: Integer): Integer DO
			RETURN a + b;
		END
		DEF main(): Integer DO
			RETURN add(1, 2);
		END
	`
	tree := mustParse(t, src)
	require.NoError(t, analyzer.Analyze(tree, env.NewBuilder().Root()))
	ret := tree.Methods[1].Body[0].(*ast.Return)
	firstTypeName := ret.Value.Type().Name

	require.NoError(t, analyzer.Analyze(tree, env.NewBuilder().Root()))
	assert.Equal(t, firstTypeName, ret.Value.Type().Name)
}

func TestFieldSelfReferenceRejected(t *testing.T) {
	tree := mustParse(t, `
		LET x: Integer = x;
		DEF main(): Integer DO RETURN 0; END
	`)
	err := analyzer.Analyze(tree, env.NewBuilder().Root())
	require.Error(t, err)
}

func TestConstantWithoutInitializerRejected(t *testing.T) {
	tree := mustParse(t, `
		LET CONST x: Integer;
		DEF main(): Integer DO RETURN 0; END
	`)
	err := analyzer.Analyze(tree, env.NewBuilder().Root())
	require.Error(t, err)
}

func TestDeclarationWithoutTypeOrValueRejected(t *testing.T) {
	tree := mustParse(t, `
		DEF main(): Integer DO
			LET x;
			RETURN 0;
		END
	`)
	err := analyzer.Analyze(tree, env.NewBuilder().Root())
	require.Error(t, err)
}

func TestCrossKindComparisonRejected(t *testing.T) {
	tree := mustParse(t, `
		DEF main(): Integer DO
			IF 1 == 1.0 DO
				RETURN 1;
			END
			RETURN 0;
		END
	`)
	err := analyzer.Analyze(tree, env.NewBuilder().Root())
	require.Error(t, err)
}

func TestArityMismatchRejected(t *testing.T) {
	tree := mustParse(t, `
		DEF add(a: Integer, b: Integer): Integer DO RETURN a + b; END
		DEF main(): Integer DO
			RETURN add(1);
		END
	`)
	err := analyzer.Analyze(tree, env.NewBuilder().Root())
	require.Error(t, err)
}

func TestGroupMustWrapBinary(t *testing.T) {
	tree := mustParse(t, `
		DEF main(): Integer DO
			RETURN (1);
		END
	`)
	err := analyzer.Analyze(tree, env.NewBuilder().Root())
	require.Error(t, err)
}

func TestRecursiveMethodCallResolves(t *testing.T) {
	tree := mustParse(t, `
		DEF fact(n: Integer): Integer DO
			IF n == 0 DO
				RETURN 1;
			END
			RETURN n * fact(n - 1);
		END
		DEF main(): Integer DO
			RETURN fact(5);
		END
	`)
	err := analyzer.Analyze(tree, env.NewBuilder().Root())
	require.NoError(t, err)
}
