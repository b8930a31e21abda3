// Package errors defines the structured failure type returned at the
// parser's external boundary.
package errors

import "fmt"

// Location is a 1-based line/column pair for user-facing diagnostics.
type Location struct {
	Line   int
	Column int
}

// GraphQLError is returned by every parser entry point on failure. It
// never carries a partial AST. Cause holds the structured parser.Error
// for callers that want to switch on the ParseError taxonomy instead
// of matching the formatted message.
type GraphQLError struct {
	Message   string
	Locations []Location
	Cause     error
}

func (e *GraphQLError) Error() string {
	if e == nil {
		return "<nil>"
	}
	str := e.Message
	for _, loc := range e.Locations {
		str += fmt.Sprintf(" at line %d column %d", loc.Line, loc.Column)
	}
	return str
}

func (e *GraphQLError) Unwrap() error {
	return e.Cause
}
