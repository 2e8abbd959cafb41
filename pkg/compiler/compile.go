package compiler

import "fmt"

// Compile runs the front end over src: Lex then Parse. Errors are wrapped
// with the stage that produced them and still match errors.Is/As.
func Compile(src string) (*Program, error) {
	tokens, err := Lex(src)
	if err != nil {
		return nil, fmt.Errorf("lex: %w", err)
	}

	prog, err := Parse(tokens)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	return prog, nil
}
