package parser

import (
	"fmt"

	"github.com/corvidae/graphql/ast"
	"github.com/corvidae/graphql/lexer"
)

// ErrorKind is the closed taxonomy of parse failures.
type ErrorKind int

const (
	UnexpectedToken ErrorKind = iota
	UnexpectedEndOfFile
	LexerError
	NestingLimitExceeded
)

// Error is the structured failure returned by every parse entry point.
// Token is populated only for UnexpectedToken and Lex only for
// LexerError; the other kinds carry neither.
type Error struct {
	Kind  ErrorKind
	Token ast.Token
	Lex   *lexer.Error
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnexpectedToken:
		return fmt.Sprintf("Unexpected %s.", describeToken(e.Token))
	case UnexpectedEndOfFile:
		return "Unexpected end of file."
	case LexerError:
		return e.Lex.Error()
	case NestingLimitExceeded:
		return "Nesting limit exceeded."
	default:
		return "Unknown parse error."
	}
}

func describeToken(t ast.Token) string {
	switch t.Kind {
	case ast.Name:
		return fmt.Sprintf("Name %q", t.Text)
	case ast.Scalar:
		return fmt.Sprintf("%q", t.String())
	default:
		return fmt.Sprintf("%q", t.Kind.String())
	}
}
