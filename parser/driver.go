// Package parser implements the recursive-descent GraphQL document and
// value-literal grammar on top of the lexer's token stream.
package parser

import (
	"github.com/corvidae/graphql/ast"
	"github.com/corvidae/graphql/lexer"
)

// Option configures a Driver's behavior beyond the spec's default.
type Option func(*Driver)

// WithMaxDepth bounds recursion through selection sets, list types, and
// list/object value literals. A value of 0 (the default) imposes no
// limit, matching the reference behavior.
func WithMaxDepth(n int) Option {
	return func(d *Driver) { d.maxDepth = n }
}

// Driver wraps a lexer with one-token lookahead and the combinators the
// grammar is built from. It consumes the token stream linearly; callers
// never rewind past the current lookahead.
type Driver struct {
	lex      *lexer.Lexer
	lookahd  ast.Spanning[ast.Token]
	maxDepth int
	depth    int
}

// New creates a Driver over src and primes the first lookahead token.
func New(src string, opts ...Option) (*Driver, *ast.Spanning[*Error]) {
	d := &Driver{lex: lexer.New(src)}
	for _, opt := range opts {
		opt(d)
	}
	if err := d.advance(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Driver) advance() *ast.Spanning[*Error] {
	tok, lexErr := d.lex.Next()
	if lexErr != nil {
		span := ast.StartEnd(lexErr.Span.Start, lexErr.Span.End, &Error{Kind: LexerError, Lex: lexErr.Item})
		return &span
	}
	d.lookahd = tok
	return nil
}

// Peek returns the current lookahead without consuming it.
func (d *Driver) Peek() ast.Spanning[ast.Token] {
	return d.lookahd
}

// Next consumes and returns the current lookahead, advancing to the
// next token (or surfacing the lex error that prevented that).
func (d *Driver) Next() (ast.Spanning[ast.Token], *ast.Spanning[*Error]) {
	tok := d.lookahd
	if err := d.advance(); err != nil {
		return ast.Spanning[ast.Token]{}, err
	}
	return tok, nil
}

func (d *Driver) unexpected() *ast.Spanning[*Error] {
	tok := d.lookahd
	if tok.Item.Kind == ast.EOF {
		span := ast.StartEnd(tok.Span.Start, tok.Span.End, &Error{Kind: UnexpectedEndOfFile})
		return &span
	}
	span := ast.StartEnd(tok.Span.Start, tok.Span.End, &Error{Kind: UnexpectedToken, Token: tok.Item})
	return &span
}

// Expect consumes the lookahead iff it has kind k, else reports
// UnexpectedToken (or UnexpectedEndOfFile at EOF).
func (d *Driver) Expect(k ast.TokenKind) (ast.Spanning[ast.Token], *ast.Spanning[*Error]) {
	if d.lookahd.Item.Kind != k {
		return ast.Spanning[ast.Token]{}, d.unexpected()
	}
	return d.Next()
}

// ExpectName consumes the lookahead iff it is a Name token.
func (d *Driver) ExpectName() (ast.Spanning[string], *ast.Spanning[*Error]) {
	if d.lookahd.Item.Kind != ast.Name {
		var zero ast.Spanning[string]
		return zero, d.unexpected()
	}
	tok, err := d.Next()
	if err != nil {
		var zero ast.Spanning[string]
		return zero, err
	}
	return ast.StartEnd(tok.Span.Start, tok.Span.End, tok.Item.Text), nil
}

// Skip consumes the lookahead iff it has kind k, reporting by its
// absence (nil, nil) rather than an error: "not present" is not a
// failure for the optional groups the grammar is built from.
func (d *Driver) Skip(k ast.TokenKind) (*ast.Spanning[ast.Token], *ast.Spanning[*Error]) {
	if d.lookahd.Item.Kind != k {
		return nil, nil
	}
	tok, err := d.Next()
	if err != nil {
		return nil, err
	}
	return &tok, nil
}

// enterNesting increments the recursion depth and enforces maxDepth;
// callers must pair every successful call with a deferred leaveNesting.
func (d *Driver) enterNesting(at ast.Position) *ast.Spanning[*Error] {
	d.depth++
	if d.maxDepth > 0 && d.depth > d.maxDepth {
		span := ast.ZeroWidth(at, &Error{Kind: NestingLimitExceeded})
		return &span
	}
	return nil
}

func (d *Driver) leaveNesting() {
	d.depth--
}

// DelimitedNonEmptyList parses `open item (item)* close`; an empty
// body (close immediately after open) is UnexpectedToken at close. It
// returns the span covering open through close alongside the items.
func DelimitedNonEmptyList[T any](d *Driver, open ast.TokenKind, item func(*Driver) (T, *ast.Spanning[*Error]), close ast.TokenKind) ([]T, ast.Span, *ast.Spanning[*Error]) {
	openTok, err := d.Expect(open)
	if err != nil {
		return nil, ast.Span{}, err
	}
	if d.lookahd.Item.Kind == close {
		return nil, ast.Span{}, d.unexpected()
	}
	var items []T
	for d.lookahd.Item.Kind != close {
		v, err := item(d)
		if err != nil {
			return nil, ast.Span{}, err
		}
		items = append(items, v)
	}
	closeTok, err := d.Expect(close)
	if err != nil {
		return nil, ast.Span{}, err
	}
	return items, ast.Span{Start: openTok.Span.Start, End: closeTok.Span.End}, nil
}

// DelimitedList parses `open item* close`, allowing an empty body. It
// returns the span covering open through close alongside the items.
func DelimitedList[T any](d *Driver, open ast.TokenKind, item func(*Driver) (T, *ast.Spanning[*Error]), close ast.TokenKind) ([]T, ast.Span, *ast.Spanning[*Error]) {
	openTok, err := d.Expect(open)
	if err != nil {
		return nil, ast.Span{}, err
	}
	var items []T
	for d.lookahd.Item.Kind != close {
		v, err := item(d)
		if err != nil {
			return nil, ast.Span{}, err
		}
		items = append(items, v)
	}
	closeTok, err := d.Expect(close)
	if err != nil {
		return nil, ast.Span{}, err
	}
	return items, ast.Span{Start: openTok.Span.Start, End: closeTok.Span.End}, nil
}
