package ast

import "fmt"

// TokenKind is the closed set of lexical token types the lexer produces.
type TokenKind int

const (
	EOF TokenKind = iota
	Name
	Scalar
	CurlyOpen
	CurlyClose
	ParenOpen
	ParenClose
	BracketOpen
	BracketClose
	Ellipsis
	Colon
	Equals
	At
	Dollar
	ExclamationMark
	Pipe
)

var tokenKindNames = map[TokenKind]string{
	EOF:             "<EOF>",
	Name:            "Name",
	Scalar:          "Scalar",
	CurlyOpen:       "{",
	CurlyClose:      "}",
	ParenOpen:       "(",
	ParenClose:      ")",
	BracketOpen:     "[",
	BracketClose:    "]",
	Ellipsis:        "...",
	Colon:           ":",
	Equals:          "=",
	At:              "@",
	Dollar:          "$",
	ExclamationMark: "!",
	Pipe:            "|",
}

func (k TokenKind) String() string {
	if s, ok := tokenKindNames[k]; ok {
		return s
	}
	return "<unknown>"
}

// ScalarKind distinguishes the three literal forms a Scalar token can take.
type ScalarKind int

const (
	ScalarInt ScalarKind = iota
	ScalarFloat
	ScalarString
)

// ScalarLiteral is the payload of a Scalar token: exactly one of the
// three value fields is meaningful, selected by Kind.
type ScalarLiteral struct {
	Kind        ScalarKind
	IntValue    int64
	FloatValue  float64
	StringValue string
}

// Token is a single lexical unit. For Kind == Name, Text holds the
// identifier; for Kind == Scalar, Lit holds the decoded literal; all
// other kinds carry no payload.
type Token struct {
	Kind TokenKind
	Text string
	Lit  ScalarLiteral
}

// String renders the token the way diagnostic messages quote it.
func (t Token) String() string {
	switch t.Kind {
	case Name:
		return t.Text
	case Scalar:
		switch t.Lit.Kind {
		case ScalarInt:
			return fmt.Sprintf("%d", t.Lit.IntValue)
		case ScalarFloat:
			return fmt.Sprintf("%g", t.Lit.FloatValue)
		default:
			return fmt.Sprintf("%q", t.Lit.StringValue)
		}
	default:
		return t.Kind.String()
	}
}
