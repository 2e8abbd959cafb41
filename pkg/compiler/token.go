package compiler

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input, never emitted by Lex

	// Literals
	IDENTIFIER // function name
	LITERAL    // unsigned decimal integer

	// Keywords
	INT    // "int"
	RETURN // "return"

	// Paired delimiters
	LBRACE // {
	RBRACE // }
	LPAREN // (
	RPAREN // )

	// Punctuation
	SEMICOLON // ;

	// Operators
	TILDE // ~
	NOT   // !
	MINUS // -
	PLUS  // +
	STAR  // *
	SLASH // /
)

var tokenNames = [...]string{
	EOF:        "EOF",
	IDENTIFIER: "IDENTIFIER",
	LITERAL:    "LITERAL",
	INT:        "INT",
	RETURN:     "RETURN",
	LBRACE:     "LBRACE",
	RBRACE:     "RBRACE",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	SEMICOLON:  "SEMICOLON",
	TILDE:      "TILDE",
	NOT:        "NOT",
	MINUS:      "MINUS",
	PLUS:       "PLUS",
	STAR:       "STAR",
	SLASH:      "SLASH",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// keywords maps reserved words to their TokenType.
var keywords = map[string]TokenType{
	"int":    INT,
	"return": RETURN,
}

// Token is a single lexical unit produced by Lex.
//
// Tokens carry no source position.
type Token struct {
	Type   TokenType
	Lexeme string // exact source text; the digits for LITERAL
	Value  uint32 // magnitude of a LITERAL, zero otherwise
}

// IsKeyword reports whether t is one of the reserved words.
func (t Token) IsKeyword() bool {
	return t.Type == INT || t.Type == RETURN
}

// describe renders t for diagnostics.
func (t Token) describe() string {
	switch {
	case t.Type == EOF:
		return "end of input"
	case t.IsKeyword():
		return fmt.Sprintf("keyword %q", t.Lexeme)
	case t.Type == IDENTIFIER:
		return fmt.Sprintf("identifier %q", t.Lexeme)
	case t.Type == LITERAL:
		return fmt.Sprintf("literal %d", t.Value)
	}
	return fmt.Sprintf("%s %q", t.Type, t.Lexeme)
}

func (t Token) String() string {
	if t.Type == EOF {
		return "EOF"
	}
	return fmt.Sprintf("%-10s %q", t.Type, t.Lexeme)
}
