package compiler

import (
	"errors"
	"math"
	"strconv"
	"unicode/utf8"
)

// Lexer holds the mutable state for a single scanning pass over src.
type Lexer struct {
	src []byte
	pos int // index of the next byte to consume
}

func newLexer(src string) *Lexer {
	return &Lexer{src: []byte(src)}
}

// peek returns the byte at the current position without advancing.
func (l *Lexer) peek() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// advance consumes one byte and returns it.
func (l *Lexer) advance() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	b := l.src[l.pos]
	l.pos++
	return b
}

func (l *Lexer) atEnd() bool { return l.pos >= len(l.src) }

func (l *Lexer) skipWhitespace() {
	for !l.atEnd() && isSpace(l.peek()) {
		l.advance()
	}
}

// scanIdent collects a keyword or identifier. The leading letter must still
// be at l.peek().
func (l *Lexer) scanIdent() Token {
	start := l.pos
	for !l.atEnd() && (isLetter(l.peek()) || isDigit(l.peek())) {
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	tt := IDENTIFIER
	if kw, ok := keywords[lexeme]; ok {
		tt = kw
	}
	return Token{Type: tt, Lexeme: lexeme}
}

// scanInt collects a run of decimal digits. Letters are never absorbed, so
// "12ab" lexes as LITERAL then IDENTIFIER. The magnitude must fit an int.
func (l *Lexer) scanInt() (Token, error) {
	start := l.pos
	for !l.atEnd() && isDigit(l.peek()) {
		l.advance()
	}
	digits := string(l.src[start:l.pos])

	v, err := strconv.ParseUint(digits, 10, 32)
	if errors.Is(err, strconv.ErrRange) || v > math.MaxInt32 {
		return Token{}, &NumericOverflowError{Digits: digits}
	}
	if err != nil {
		return Token{}, err
	}
	return Token{Type: LITERAL, Lexeme: digits, Value: uint32(v)}, nil
}

// nextToken skips whitespace and returns the next Token. ok is false once
// the input is exhausted.
func (l *Lexer) nextToken() (tok Token, ok bool, err error) {
	l.skipWhitespace()
	if l.atEnd() {
		return Token{}, false, nil
	}

	ch := l.peek()
	if isLetter(ch) {
		return l.scanIdent(), true, nil
	}
	if isDigit(ch) {
		tok, err := l.scanInt()
		return tok, err == nil, err
	}

	l.advance()
	switch ch {
	case '{':
		return Token{Type: LBRACE, Lexeme: "{"}, true, nil
	case '}':
		return Token{Type: RBRACE, Lexeme: "}"}, true, nil
	case '(':
		return Token{Type: LPAREN, Lexeme: "("}, true, nil
	case ')':
		return Token{Type: RPAREN, Lexeme: ")"}, true, nil
	case ';':
		return Token{Type: SEMICOLON, Lexeme: ";"}, true, nil
	case '~':
		return Token{Type: TILDE, Lexeme: "~"}, true, nil
	case '!':
		return Token{Type: NOT, Lexeme: "!"}, true, nil
	case '-':
		return Token{Type: MINUS, Lexeme: "-"}, true, nil
	case '+':
		return Token{Type: PLUS, Lexeme: "+"}, true, nil
	case '*':
		return Token{Type: STAR, Lexeme: "*"}, true, nil
	case '/':
		return Token{Type: SLASH, Lexeme: "/"}, true, nil
	default:
		return Token{}, false, &UnexpectedCharError{Char: l.charAt(l.pos - 1)}
	}
}

// charAt decodes the character starting at byte offset i so a multi-byte
// UTF-8 character is reported whole rather than as its lead byte.
func (l *Lexer) charAt(i int) rune {
	r, _ := utf8.DecodeRune(l.src[i:])
	return r
}

func isSpace(b byte) bool  { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }
func isLetter(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isDigit(b byte) bool  { return b >= '0' && b <= '9' }

// Lex tokenises src. It returns the complete token sequence, which is empty
// for empty or all-whitespace input, or nil and the first error encountered.
func Lex(src string) ([]Token, error) {
	l := newLexer(src)
	tokens := []Token{}
	for {
		tok, ok, err := l.nextToken()
		if err != nil {
			return nil, err
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}
