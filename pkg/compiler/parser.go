package compiler

// Parser consumes the flat token slice produced by Lex and builds an AST.
//
// Grammar:
//
//	program    = function* EOF
//	function   = "int" IDENTIFIER "(" ")" "{" statement "}"
//	statement  = "return" expression ";"
//	expression = LITERAL | ("~" | "!" | "-") expression
//
// Every production returns (node, error) and stops at the first mismatch, so
// a node is only built once all of its parts have parsed.
type Parser struct {
	tokens []Token
	pos    int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// atEnd reports whether every token has been consumed.
func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

// peek returns the current token without consuming it, or an EOF token once
// the input is exhausted.
func (p *Parser) peek() Token {
	if p.atEnd() {
		return Token{Type: EOF}
	}
	return p.tokens[p.pos]
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.peek()
	if !p.atEnd() {
		p.pos++
	}
	return tok
}

// expect consumes the current token if it matches tt, otherwise returns an
// error naming the production (ctx) and the required shape (what).
func (p *Parser) expect(tt TokenType, ctx, what string) (Token, error) {
	tok := p.advance()
	if tok.Type != tt {
		return tok, &UnexpectedTokenError{Context: ctx, Expected: what, Found: tok}
	}
	return tok, nil
}

// parseFunction handles: "int" IDENTIFIER "(" ")" "{" statement "}"
func (p *Parser) parseFunction() (*Function, error) {
	if _, err := p.expect(INT, "function", `keyword "int"`); err != nil {
		return nil, err
	}
	name, err := p.expect(IDENTIFIER, "function", "function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(LPAREN, "function "+name.Lexeme, `"("`); err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN, "function "+name.Lexeme, `")"`); err != nil {
		return nil, err
	}
	if _, err := p.expect(LBRACE, "function "+name.Lexeme, `"{"`); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RBRACE, "function "+name.Lexeme, `"}"`); err != nil {
		return nil, err
	}
	return &Function{Name: name.Lexeme, Body: body}, nil
}

// parseStatement handles: "return" expression ";"
func (p *Parser) parseStatement() (Stmt, error) {
	if _, err := p.expect(RETURN, "statement", `keyword "return"`); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMICOLON, "return statement", `";"`); err != nil {
		return nil, err
	}
	return &ReturnStmt{Value: value}, nil
}

// parseExpression consumes exactly one token and recurses for prefix
// operators. A literal always ends the chain.
func (p *Parser) parseExpression() (Expr, error) {
	tok := p.advance()
	if tok.Type == LITERAL {
		return &IntLiteral{Value: int32(tok.Value)}, nil
	}
	if op, ok := unaryOps[tok.Type]; ok {
		operand, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: op, Operand: operand}, nil
	}
	return nil, &ExpectedExpressionError{Found: tok}
}

// parseProgram parses functions until the input runs out. After the first
// function, one token of lookahead decides whether another follows; anything
// other than "int" there is trailing input.
func (p *Parser) parseProgram() (*Program, error) {
	prog := &Program{}
	for !p.atEnd() && (len(prog.Functions) == 0 || p.peek().Type == INT) {
		fn, err := p.parseFunction()
		if err != nil {
			return nil, err
		}
		prog.Functions = append(prog.Functions, fn)
	}
	if !p.atEnd() {
		return nil, &TrailingTokensError{Found: p.peek()}
	}
	return prog, nil
}

// Parse builds a Program from tokens. It returns the first error
// encountered and never a partial AST.
func Parse(tokens []Token) (*Program, error) {
	return NewParser(tokens).parseProgram()
}
