package lexer_test

import (
	"testing"

	"github.com/plclang/plc/lexer"
	"github.com/plclang/plc/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTokenizeBasics covers scenario 1 of spec §8: "LET x = 1;" must
// produce exactly the five tokens with their documented start indices.
func TestTokenizeBasics(t *testing.T) {
	toks, err := lexer.Tokenize("LET x = 1;")
	require.NoError(t, err)
	assert.Equal(t, []token.Token{
		token.New(token.Identifier, "LET", 0),
		token.New(token.Identifier, "x", 4),
		token.New(token.Operator, "=", 6),
		token.New(token.Integer, "1", 8),
		token.New(token.Operator, ";", 9),
	}, toks)
}

// TestNumberSigns covers scenario 2: a sign immediately before a digit is
// folded into the number; a sign followed by whitespace is a bare operator.
func TestNumberSigns(t *testing.T) {
	toks, err := lexer.Tokenize("-1.5")
	require.NoError(t, err)
	assert.Equal(t, []token.Token{
		token.New(token.Decimal, "-1.5", 0),
	}, toks)

	toks, err = lexer.Tokenize("- 1")
	require.NoError(t, err)
	assert.Equal(t, []token.Token{
		token.New(token.Operator, "-", 0),
		token.New(token.Integer, "1", 2),
	}, toks)
}

// TestDotNotFollowedByDigitIsLeftForOperator checks that "1.x" lexes as an
// Integer "1", a separate Operator ".", and an Identifier "x", per the rule that a
// trailing dot not followed by a digit is never consumed into the number.
func TestDotNotFollowedByDigitIsLeftForOperator(t *testing.T) {
	toks, err := lexer.Tokenize("1.x")
	require.NoError(t, err)
	assert.Equal(t, []token.Token{
		token.New(token.Integer, "1", 0),
		token.New(token.Operator, ".", 1),
		token.New(token.Identifier, "x", 2),
	}, toks)
}

func TestTwoCharacterOperators(t *testing.T) {
	toks, err := lexer.Tokenize("<= >= != == && ||")
	require.NoError(t, err)
	var lexemes []string
	for _, tk := range toks {
		lexemes = append(lexemes, tk.Lexeme)
		assert.Equal(t, token.Operator, tk.Kind)
	}
	assert.Equal(t, []string{"<=", ">=", "!=", "==", "&&", "||"}, lexemes)
}

func TestCharacterLiteralsAndEscapes(t *testing.T) {
	toks, err := lexer.Tokenize(`'a' '\n' '\''`)
	require.NoError(t, err)
	require.Len(t, toks, 3)
	for _, tk := range toks {
		assert.Equal(t, token.Character, tk.Kind)
	}
	assert.Equal(t, "'a'", toks[0].Lexeme)
	assert.Equal(t, `'\n'`, toks[1].Lexeme)
	assert.Equal(t, `'\''`, toks[2].Lexeme)
}

func TestStringLiteral(t *testing.T) {
	toks, err := lexer.Tokenize(`"hello\nworld"`)
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, token.String, toks[0].Kind)
	assert.Equal(t, `"hello\nworld"`, toks[0].Lexeme)
}

func TestUnterminatedStringFails(t *testing.T) {
	_, err := lexer.Tokenize(`"hello`)
	require.Error(t, err)
}

func TestNewlineInStringFails(t *testing.T) {
	_, err := lexer.Tokenize("\"hello\nworld\"")
	require.Error(t, err)
}

func TestInvalidEscapeFails(t *testing.T) {
	_, err := lexer.Tokenize(`"\q"`)
	require.Error(t, err)
}

func TestEmptyCharacterLiteralFails(t *testing.T) {
	_, err := lexer.Tokenize("''")
	require.Error(t, err)
}

// TestRoundTrip is the universal property from spec §8: re-lexing any
// literal token's own lexeme must reproduce the same token.
func TestRoundTrip(t *testing.T) {
	inputs := []string{"LET", "x19_a", "123", "-45", "3.14", "-3.14", "'z'", `'\t'`, `"abc"`, `"a\tb"`}
	for _, in := range inputs {
		toks, err := lexer.Tokenize(in)
		require.NoError(t, err)
		require.Len(t, toks, 1, "input %q", in)
		again, err := lexer.Tokenize(toks[0].Lexeme)
		require.NoError(t, err)
		require.Len(t, again, 1, "input %q", in)
		assert.Equal(t, toks[0].Kind, again[0].Kind)
		assert.Equal(t, toks[0].Lexeme, again[0].Lexeme)
	}
}

// TestWhitespaceIsDiscarded checks that any run of Unicode whitespace
// between tokens produces no token of its own.
func TestWhitespaceIsDiscarded(t *testing.T) {
	toks, err := lexer.Tokenize("  \t x \n\r y  ")
	require.NoError(t, err)
	assert.Len(t, toks, 2)
}
