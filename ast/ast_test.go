package ast_test

import (
	"testing"

	"github.com/plclang/plc/ast"
	"github.com/plclang/plc/env"
	"github.com/stretchr/testify/assert"
)

func TestExpressionTypeSlotRoundTrips(t *testing.T) {
	lit := &ast.Literal{Kind: ast.LiteralInt}
	assert.Nil(t, lit.Type())

	integerType := env.NewType(env.IntegerName, env.IntegerName)
	lit.SetType(integerType)
	assert.Same(t, integerType, lit.Type())
}

func TestStatementVariantsSatisfyTheClosedSum(t *testing.T) {
	var stmts []ast.Statement
	stmts = append(stmts,
		&ast.ExpressionStmt{},
		&ast.Declaration{},
		&ast.Assignment{},
		&ast.If{},
		&ast.For{},
		&ast.While{},
		&ast.Return{},
	)
	assert.Len(t, stmts, 7)
}
