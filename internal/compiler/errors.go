package compiler

import (
	"fmt"

	"github.com/lookbusy1344/poke/internal/lexer"
)

// ErrorKind enumerates the disjoint parse failure modes. Lex errors
// bubble up verbatim (spec.md §7).
type ErrorKind int

const (
	LexError ErrorKind = iota
	UnexpectedToken
	ExpectedExpression
)

// Error is the compiler's single error type.
type Error struct {
	Kind  ErrorKind
	Line  int
	Lex   *lexer.Error
	Token lexer.Token
}

func (e *Error) Error() string {
	switch e.Kind {
	case LexError:
		return e.Lex.Error()
	case UnexpectedToken:
		return fmt.Sprintf("line %d: unexpected token %s", e.Line+1, e.Token)
	case ExpectedExpression:
		return fmt.Sprintf("line %d: expected expression", e.Line+1)
	default:
		return "unknown parse error"
	}
}

func (e *Error) Unwrap() error {
	if e.Kind == LexError {
		return e.Lex
	}
	return nil
}
