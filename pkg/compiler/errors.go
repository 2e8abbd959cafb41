package compiler

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is; every concrete error below matches exactly one.
var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrNumericOverflow     = errors.New("numeric literal overflow")
	ErrUnexpectedToken     = errors.New("unexpected token")
	ErrTrailingTokens      = errors.New("unexpected trailing tokens")
	ErrExpectedExpression  = errors.New("expected expression")
)

// UnexpectedCharError reports an input character that starts no token.
type UnexpectedCharError struct {
	Char rune
}

func (e *UnexpectedCharError) Error() string {
	return fmt.Sprintf("unexpected character %q", e.Char)
}

func (e *UnexpectedCharError) Is(target error) bool { return target == ErrUnexpectedCharacter }

// NumericOverflowError reports a digit run too large for an int literal.
type NumericOverflowError struct {
	Digits string
}

func (e *NumericOverflowError) Error() string {
	return fmt.Sprintf("integer literal %s overflows int", e.Digits)
}

func (e *NumericOverflowError) Is(target error) bool { return target == ErrNumericOverflow }

// UnexpectedTokenError reports a token that does not fit the production
// being parsed. Found.Type is EOF when the input ran out.
type UnexpectedTokenError struct {
	Context  string // production being parsed, e.g. "function"
	Expected string
	Found    Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("%s: expected %s, found %s", e.Context, e.Expected, e.Found.describe())
}

func (e *UnexpectedTokenError) Is(target error) bool { return target == ErrUnexpectedToken }

// TrailingTokensError reports tokens left over after the last function.
type TrailingTokensError struct {
	Found Token // first unconsumed token
}

func (e *TrailingTokensError) Error() string {
	return fmt.Sprintf("unexpected trailing tokens starting at %s", e.Found.describe())
}

func (e *TrailingTokensError) Is(target error) bool { return target == ErrTrailingTokens }

// ExpectedExpressionError reports a token that cannot begin an expression.
type ExpectedExpressionError struct {
	Found Token
}

func (e *ExpectedExpressionError) Error() string {
	return fmt.Sprintf("expression: expected integer literal or unary operator, found %s", e.Found.describe())
}

func (e *ExpectedExpressionError) Is(target error) bool { return target == ErrExpectedExpression }
