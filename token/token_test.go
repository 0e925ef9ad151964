package token_test

import (
	"testing"

	"github.com/plclang/plc/token"
	"github.com/stretchr/testify/assert"
)

func TestEndIsStartPlusLexemeLength(t *testing.T) {
	tok := token.New(token.Identifier, "main", 7)
	assert.Equal(t, 11, tok.End())
}

func TestKindStringNamesEveryKind(t *testing.T) {
	cases := map[token.Kind]string{
		token.Identifier: "Identifier",
		token.Integer:    "Integer",
		token.Decimal:    "Decimal",
		token.Character:  "Character",
		token.String:     "String",
		token.Operator:   "Operator",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
}
