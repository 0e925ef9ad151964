package parser_test

import (
	"testing"

	"github.com/plclang/plc/ast"
	"github.com/plclang/plc/lexer"
	"github.com/plclang/plc/parser"
	"github.com/plclang/plc/plcerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseAssignment covers scenario 3 of spec §8: "x = y + 1;" parses to
// Assignment(Access(nil, "x"), Binary("+", Access(nil, "y"), Literal(Int 1))).
func TestParseAssignment(t *testing.T) {
	toks, err := lexer.Tokenize("x = y + 1;")
	require.NoError(t, err)

	stmt, err := parser.New(toks).ParseStatementForTest()
	require.NoError(t, err)

	assign, ok := stmt.(*ast.Assignment)
	require.True(t, ok, "expected *ast.Assignment, got %T", stmt)
	assert.Equal(t, "x", assign.Receiver.Name)
	assert.False(t, assign.Receiver.HasReceiver)

	bin, ok := assign.Value.(*ast.Binary)
	require.True(t, ok, "expected *ast.Binary, got %T", assign.Value)
	assert.Equal(t, "+", bin.Op)

	left, ok := bin.Left.(*ast.Access)
	require.True(t, ok)
	assert.Equal(t, "y", left.Name)

	right, ok := bin.Right.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, ast.LiteralInt, right.Kind)
	assert.Equal(t, "1", right.Int.String())
}

func TestParseFieldBeforeMethodOrdering(t *testing.T) {
	_, err := parser.Parse("DEF foo() DO RETURN 0; END LET x: Integer = 1;")
	require.Error(t, err)
}

func TestParseSimpleSource(t *testing.T) {
	src, err := parser.Parse(`
		LET CONST PI: Decimal = 3.14;
		DEF main(): Integer DO
			RETURN 0;
		END
	`)
	require.NoError(t, err)
	require.Len(t, src.Fields, 1)
	require.Len(t, src.Methods, 1)
	assert.Equal(t, "PI", src.Fields[0].Name)
	assert.True(t, src.Fields[0].Constant)
	assert.Equal(t, "main", src.Methods[0].Name)
	assert.True(t, src.Methods[0].HasReturnType)
}

func TestParseIfWithoutElse(t *testing.T) {
	src, err := parser.Parse(`
		DEF main(): Integer DO
			IF TRUE DO
				RETURN 1;
			END
			RETURN 0;
		END
	`)
	require.NoError(t, err)
	ifStmt, ok := src.Methods[0].Body[0].(*ast.If)
	require.True(t, ok)
	assert.False(t, ifStmt.HasElse)
	assert.Len(t, ifStmt.Then, 1)
}

func TestParseForLoop(t *testing.T) {
	src, err := parser.Parse(`
		DEF main(): Integer DO
			FOR (i = 0; i < 10; i = i + 1)
			END
			RETURN 0;
		END
	`)
	require.NoError(t, err)
	forStmt, ok := src.Methods[0].Body[0].(*ast.For)
	require.True(t, ok)
	require.NotNil(t, forStmt.Init)
	assert.Equal(t, "i", forStmt.Init.Name)
	require.NotNil(t, forStmt.Incr)
	assert.Equal(t, "i", forStmt.Incr.Name)
}

func TestParseFunctionCallStatement(t *testing.T) {
	src, err := parser.Parse(`
		DEF main(): Integer DO
			print("hi");
			RETURN 0;
		END
	`)
	require.NoError(t, err)
	stmt, ok := src.Methods[0].Body[0].(*ast.ExpressionStmt)
	require.True(t, ok)
	call, ok := stmt.Expr.(*ast.Function)
	require.True(t, ok)
	assert.Equal(t, "print", call.Name)
	require.Len(t, call.Args, 1)
}

func TestParseErrorCarriesIndex(t *testing.T) {
	_, err := parser.Parse("LET x Integer;")
	require.Error(t, err)
	// The missing ':' is reported at the offending token "Integer", index 6.
	var perr *plcerrors.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 6, perr.Index)
}
