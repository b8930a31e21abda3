// Package graphql exposes the parser's external interface: parsing a
// full document, a standalone value literal, or a standalone type
// reference from source text into a spanned AST.
package graphql

import (
	"github.com/corvidae/graphql/ast"
	"github.com/corvidae/graphql/errors"
	"github.com/corvidae/graphql/parser"
)

// ParseDocumentSource parses source as a complete GraphQL document.
func ParseDocumentSource(source string, opts ...parser.Option) (*ast.Document, *errors.GraphQLError) {
	d, err := parser.New(source, opts...)
	if err != nil {
		return nil, wrapError(err)
	}
	doc, err := parser.ParseDocument(d)
	if err != nil {
		return nil, wrapError(err)
	}
	return doc, nil
}

// ParseValueSource parses source as a single, non-constant input
// value literal — used to decode a variables payload written in
// GraphQL literal syntax rather than JSON.
func ParseValueSource(source string, opts ...parser.Option) (ast.Spanning[ast.Value], *errors.GraphQLError) {
	d, err := parser.New(source, opts...)
	if err != nil {
		var zero ast.Spanning[ast.Value]
		return zero, wrapError(err)
	}
	value, err := parser.ParseValueLiteral(d, false)
	if err != nil {
		var zero ast.Spanning[ast.Value]
		return zero, wrapError(err)
	}
	if _, eofErr := d.Expect(ast.EOF); eofErr != nil {
		var zero ast.Spanning[ast.Value]
		return zero, wrapError(eofErr)
	}
	return value, nil
}

// ParseType parses source as a single type reference, for schema
// introspection callers.
func ParseType(source string, opts ...parser.Option) (ast.Spanning[ast.Type], *errors.GraphQLError) {
	d, err := parser.New(source, opts...)
	if err != nil {
		var zero ast.Spanning[ast.Type]
		return zero, wrapError(err)
	}
	t, err := parser.ParseType(d)
	if err != nil {
		var zero ast.Spanning[ast.Type]
		return zero, wrapError(err)
	}
	if _, eofErr := d.Expect(ast.EOF); eofErr != nil {
		var zero ast.Spanning[ast.Type]
		return zero, wrapError(eofErr)
	}
	return t, nil
}

func wrapError(span *ast.Spanning[*parser.Error]) *errors.GraphQLError {
	return &errors.GraphQLError{
		Message: span.Item.Error(),
		Locations: []errors.Location{{
			Line:   span.Span.Start.Line + 1,
			Column: span.Span.Start.Column + 1,
		}},
		Cause: span.Item,
	}
}
