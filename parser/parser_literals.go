package parser

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// decodeInt parses an Integer lexeme (optional sign, digits) into an
// arbitrary-precision integer. The lexer has already guaranteed the
// lexeme's shape, so the only failure mode here would be an internal
// inconsistency.
func decodeInt(lexeme string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(lexeme, 10)
	if !ok {
		return nil, fmt.Errorf("malformed integer literal '%s'", lexeme)
	}
	return n, nil
}

// decodeDecimal parses a Decimal lexeme (optional sign, digits, '.',
// digits) into an arbitrary-precision decimal.
func decodeDecimal(lexeme string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(lexeme)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("malformed decimal literal '%s'", lexeme)
	}
	return d, nil
}

// escapeValue maps the character following a backslash to its decoded rune,
// for both character and string literals (spec §4.1/§4.2).
func escapeValue(c rune) (rune, bool) {
	switch c {
	case 'b':
		return '\b', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case '\'':
		return '\'', true
	case '"':
		return '"', true
	case '\\':
		return '\\', true
	default:
		return 0, false
	}
}

// decodeChar strips the outer quotes from a Character lexeme and decodes
// its single content character (a literal rune, or a backslash escape),
// per spec §4.2: "character literals after decoding must be exactly one
// code point."
func decodeChar(lexeme string) (rune, error) {
	content := []rune(lexeme[1 : len(lexeme)-1])
	if len(content) == 0 {
		return 0, fmt.Errorf("empty character literal")
	}
	if content[0] == '\\' {
		if len(content) != 2 {
			return 0, fmt.Errorf("malformed character escape '%s'", lexeme)
		}
		r, ok := escapeValue(content[1])
		if !ok {
			return 0, fmt.Errorf("invalid escape sequence '\\%c'", content[1])
		}
		return r, nil
	}
	if len(content) != 1 {
		return 0, fmt.Errorf("character literal must decode to exactly one code point")
	}
	return content[0], nil
}

// decodeString strips the outer quotes from a String lexeme and decodes
// its escape sequences.
func decodeString(lexeme string) (string, error) {
	content := []rune(lexeme[1 : len(lexeme)-1])
	var sb []rune
	for i := 0; i < len(content); i++ {
		c := content[i]
		if c != '\\' {
			sb = append(sb, c)
			continue
		}
		i++
		if i >= len(content) {
			return "", fmt.Errorf("malformed escape sequence")
		}
		r, ok := escapeValue(content[i])
		if !ok {
			return "", fmt.Errorf("invalid escape sequence '\\%c'", content[i])
		}
		sb = append(sb, r)
	}
	return string(sb), nil
}
