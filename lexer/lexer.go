// Package lexer implements PLC's tokenizer: source text in, an ordered
// token sequence out. The lexer is a single straight-line scan with no
// backtracking; each call to NextToken consumes exactly one token (or fails).
package lexer

import (
	"strings"
	"unicode"

	"github.com/plclang/plc/plcerrors"
	"github.com/plclang/plc/token"
)

// Lexer scans a source string into tokens. It is a value-oriented cursor
// over a rune slice rather than the raw string so that multi-byte runes
// never split across an index boundary.
type Lexer struct {
	src []rune
	pos int
}

// New returns a Lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{src: []rune(src)}
}

// Tokenize runs the lexer to completion and returns every token in order.
// It is the entry point embedders and the parser actually call; NextToken
// exists underneath it for testability against the scenario table in spec §8.
func Tokenize(src string) ([]token.Token, error) {
	lx := New(src)
	var tokens []token.Token
	for {
		tok, ok, err := lx.NextToken()
		if err != nil {
			return nil, err
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) peek() rune {
	if l.atEnd() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekAt(offset int) rune {
	i := l.pos + offset
	if i < 0 || i >= len(l.src) {
		return 0
	}
	return l.src[i]
}

func (l *Lexer) advance() rune {
	r := l.src[l.pos]
	l.pos++
	return r
}

func isASCIILetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func isIdentStart(r rune) bool {
	return r == '_' || isASCIILetter(r)
}

func isIdentCont(r rune) bool {
	return r == '_' || r == '-' || isASCIILetter(r) || isDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// NextToken consumes and returns the next token, skipping any leading
// whitespace. ok is false at end-of-stream; err is non-nil on a malformed
// literal or a character that matches no classification rule.
func (l *Lexer) NextToken() (tok token.Token, ok bool, err error) {
	l.skipWhitespace()
	if l.atEnd() {
		return token.Token{}, false, nil
	}

	start := l.pos
	c := l.peek()

	switch {
	case isIdentStart(c):
		return l.lexIdentifier(start), true, nil
	case isDigit(c), (c == '+' || c == '-') && isDigit(l.peekAt(1)):
		return l.lexNumber(start)
	case c == '\'':
		return l.lexCharacter(start)
	case c == '"':
		return l.lexString(start)
	default:
		return l.lexOperator(start), true, nil
	}
}

func (l *Lexer) skipWhitespace() {
	for !l.atEnd() && unicode.IsSpace(l.peek()) {
		l.advance()
	}
}

func (l *Lexer) lexIdentifier(start int) token.Token {
	l.advance() // the identifier-start rune already matched
	for !l.atEnd() && isIdentCont(l.peek()) {
		l.advance()
	}
	return token.New(token.Identifier, string(l.src[start:l.pos]), start)
}

// lexNumber implements rule 3: optional sign, one or more digits, optional
// '.' followed by one or more digits. A trailing '.' not followed by a
// digit is deliberately left unconsumed so the next call lexes it as an
// Operator.
func (l *Lexer) lexNumber(start int) (token.Token, bool, error) {
	if l.peek() == '+' || l.peek() == '-' {
		l.advance()
	}
	for !l.atEnd() && isDigit(l.peek()) {
		l.advance()
	}
	isDecimal := false
	if l.peek() == '.' && isDigit(l.peekAt(1)) {
		isDecimal = true
		l.advance() // '.'
		for !l.atEnd() && isDigit(l.peek()) {
			l.advance()
		}
	}
	kind := token.Integer
	if isDecimal {
		kind = token.Decimal
	}
	return token.New(kind, string(l.src[start:l.pos]), start), true, nil
}

// escapeLetters is the fixed set of characters valid after a backslash in
// both character and string literals.
const escapeLetters = "bnrt'\"\\"

// lexCharacter implements rule 4: an opening quote, exactly one content
// character (itself or a backslash escape pair), and a closing quote.
func (l *Lexer) lexCharacter(start int) (token.Token, bool, error) {
	l.advance() // opening '\''
	if l.atEnd() {
		return token.Token{}, false, plcerrors.NewParseError(start, "unterminated character literal")
	}
	c := l.advance()
	if c == '\'' {
		return token.Token{}, false, plcerrors.NewParseError(start, "empty character literal")
	}
	if c == '\\' {
		if l.atEnd() {
			return token.Token{}, false, plcerrors.NewParseError(start, "unterminated character literal")
		}
		esc := l.advance()
		if !strings.ContainsRune(escapeLetters, esc) {
			return token.Token{}, false, plcerrors.NewParseError(start, "invalid escape sequence '\\%c'", esc)
		}
	}
	if l.atEnd() || l.peek() != '\'' {
		return token.Token{}, false, plcerrors.NewParseError(start, "unterminated character literal")
	}
	l.advance() // closing '\''
	return token.New(token.Character, string(l.src[start:l.pos]), start), true, nil
}

// lexString implements rule 5: a double-quoted run of content characters
// and escape pairs. A literal newline inside the quotes is an error, and
// running off the end of input without a closing quote is an error.
func (l *Lexer) lexString(start int) (token.Token, bool, error) {
	l.advance() // opening '"'
	for {
		if l.atEnd() {
			return token.Token{}, false, plcerrors.NewParseError(start, "unterminated string literal")
		}
		c := l.peek()
		if c == '"' {
			l.advance()
			return token.New(token.String, string(l.src[start:l.pos]), start), true, nil
		}
		if c == '\n' {
			return token.Token{}, false, plcerrors.NewParseError(l.pos, "newline in string literal")
		}
		if c == '\\' {
			l.advance()
			if l.atEnd() {
				return token.Token{}, false, plcerrors.NewParseError(start, "unterminated string literal")
			}
			esc := l.advance()
			if !strings.ContainsRune(escapeLetters, esc) {
				return token.Token{}, false, plcerrors.NewParseError(l.pos-1, "invalid escape sequence '\\%c'", esc)
			}
			continue
		}
		l.advance()
	}
}

// twoCharOps is the closed set of two-character operators from rule 6,
// checked before falling back to a single-character operator.
var twoCharOps = []string{"<=", ">=", "!=", "==", "&&", "||"}

// lexOperator implements rule 6: the longest match among ';', the four
// two-character comparison operators, '&&', '||', or any single
// non-whitespace character.
func (l *Lexer) lexOperator(start int) token.Token {
	c := l.advance()
	if c == ';' {
		return token.New(token.Operator, ";", start)
	}
	if !l.atEnd() {
		two := string(c) + string(l.peek())
		for _, op := range twoCharOps {
			if two == op {
				l.advance()
				return token.New(token.Operator, two, start)
			}
		}
	}
	return token.New(token.Operator, string(c), start)
}
