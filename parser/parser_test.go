package parser_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidae/graphql/ast"
	"github.com/corvidae/graphql/lexer"
	"github.com/corvidae/graphql/parser"
)

func parseDoc(t *testing.T, src string) *ast.Document {
	t.Helper()
	d, err := parser.New(src)
	require.Nil(t, err)
	doc, err := parser.ParseDocument(d)
	require.Nil(t, err, "unexpected parse error")
	return doc
}

func parseDocErr(t *testing.T, src string) *parser.Error {
	t.Helper()
	d, err := parser.New(src)
	if err != nil {
		return err.Item
	}
	_, perr := parser.ParseDocument(d)
	require.NotNil(t, perr)
	return perr.Item
}

// E1: shorthand query.
func TestShorthandQuery(t *testing.T) {
	doc := parseDoc(t, "{ hero }")
	require.Len(t, doc.Definitions, 1)
	op, ok := doc.Definitions[0].(*ast.Operation)
	require.True(t, ok)
	assert.Equal(t, ast.Query, op.Type)
	assert.Nil(t, op.Name)
	require.Len(t, op.SelectionSet, 1)
	field, ok := op.SelectionSet[0].(*ast.Field)
	require.True(t, ok)
	assert.Equal(t, "hero", field.Name.Item)
	assert.Nil(t, field.Alias)
}

// E2: named query with variable, alias, and argument.
func TestNamedQueryWithVariableAliasArgument(t *testing.T) {
	doc := parseDoc(t, `query Hero($id: ID!) { character: hero(id: $id) { name } }`)
	require.Len(t, doc.Definitions, 1)
	op, ok := doc.Definitions[0].(*ast.Operation)
	require.True(t, ok)
	assert.Equal(t, ast.Query, op.Type)
	require.NotNil(t, op.Name)
	assert.Equal(t, "Hero", op.Name.Item)

	require.Len(t, op.VariableDefinitions, 1)
	varDef := op.VariableDefinitions[0]
	assert.Equal(t, "id", varDef.Name.Item)
	nonNull, ok := varDef.Type.(*ast.NonNullNamedType)
	require.True(t, ok)
	assert.Equal(t, "ID", nonNull.Name)

	require.Len(t, op.SelectionSet, 1)
	field, ok := op.SelectionSet[0].(*ast.Field)
	require.True(t, ok)
	require.NotNil(t, field.Alias)
	assert.Equal(t, "character", field.Alias.Item)
	assert.Equal(t, "hero", field.Name.Item)

	require.Len(t, field.Arguments, 1)
	arg := field.Arguments[0]
	assert.Equal(t, "id", arg.Name.Item)
	varVal, ok := arg.Value.Item.(*ast.VariableValue)
	require.True(t, ok)
	assert.Equal(t, "id", varVal.Name)

	require.Len(t, field.SelectionSet, 1)
	inner, ok := field.SelectionSet[0].(*ast.Field)
	require.True(t, ok)
	assert.Equal(t, "name", inner.Name.Item)
}

// E3: named fragment spread alongside a field.
func TestNamedFragmentSpread(t *testing.T) {
	doc := parseDoc(t, `{ hero { ...heroFields name } } fragment heroFields on Character { id }`)
	require.Len(t, doc.Definitions, 2)

	op := doc.Definitions[0].(*ast.Operation)
	hero := op.SelectionSet[0].(*ast.Field)
	require.Len(t, hero.SelectionSet, 2)
	spread, ok := hero.SelectionSet[0].(*ast.FragmentSpread)
	require.True(t, ok)
	assert.Equal(t, "heroFields", spread.Name.Item)

	frag := doc.Definitions[1].(*ast.Fragment)
	assert.Equal(t, "heroFields", frag.Name.Item)
	assert.Equal(t, "Character", frag.TypeCondition.Item)
}

// E4: directive-only inline fragment (no type condition).
func TestDirectiveOnlyInlineFragment(t *testing.T) {
	doc := parseDoc(t, `{ hero { ... @include(if: $cond) { name } } }`)
	op := doc.Definitions[0].(*ast.Operation)
	hero := op.SelectionSet[0].(*ast.Field)
	require.Len(t, hero.SelectionSet, 1)
	inline, ok := hero.SelectionSet[0].(*ast.InlineFragment)
	require.True(t, ok)
	assert.Nil(t, inline.TypeCondition)
	require.Len(t, inline.Directives, 1)
	assert.Equal(t, "include", inline.Directives[0].Name.Item)
	require.Len(t, inline.SelectionSet, 1)
}

// E4b: inline fragment with an explicit type condition.
func TestTypedInlineFragment(t *testing.T) {
	doc := parseDoc(t, `{ hero { ... on Droid { primaryFunction } } }`)
	op := doc.Definitions[0].(*ast.Operation)
	hero := op.SelectionSet[0].(*ast.Field)
	inline, ok := hero.SelectionSet[0].(*ast.InlineFragment)
	require.True(t, ok)
	require.NotNil(t, inline.TypeCondition)
	assert.Equal(t, "Droid", inline.TypeCondition.Item)
}

// E4c: bare inline fragment, no type condition and no directives.
func TestBareInlineFragment(t *testing.T) {
	doc := parseDoc(t, `{ hero { ... { name } } }`)
	op := doc.Definitions[0].(*ast.Operation)
	hero := op.SelectionSet[0].(*ast.Field)
	inline, ok := hero.SelectionSet[0].(*ast.InlineFragment)
	require.True(t, ok)
	assert.Nil(t, inline.TypeCondition)
	assert.Nil(t, inline.Directives)
}

// E6: a fragment definition cannot be named "on".
func TestFragmentNamedOnIsRejected(t *testing.T) {
	err := parseDocErr(t, `fragment on on Character { id }`)
	assert.Equal(t, parser.UnexpectedToken, err.Kind)
}

func TestEmptyDocumentIsUnexpectedEOF(t *testing.T) {
	err := parseDocErr(t, "")
	assert.Equal(t, parser.UnexpectedEndOfFile, err.Kind)
}

func TestTrailingWhitespaceAndCommentsAreAccepted(t *testing.T) {
	doc := parseDoc(t, "{ hero }\n# trailing comment\n  \n")
	require.Len(t, doc.Definitions, 1)
}

func TestEmptySelectionSetIsRejected(t *testing.T) {
	err := parseDocErr(t, "{ }")
	assert.Equal(t, parser.UnexpectedToken, err.Kind)
}

func TestLeadingZeroNumberSurfacesAsLexerError(t *testing.T) {
	err := parseDocErr(t, "{ hero(id: 0123) }")
	assert.Equal(t, parser.LexerError, err.Kind)
	assert.Equal(t, lexer.InvalidNumber, err.Lex.Kind)
}

func TestUnknownEscapeSurfacesAsLexerError(t *testing.T) {
	err := parseDocErr(t, `{ hero(name: "\q") }`)
	assert.Equal(t, parser.LexerError, err.Kind)
	assert.Equal(t, lexer.UnknownEscapeSequence, err.Lex.Kind)
}

// A second '!' after a type is a syntax error: the promotion to
// non-null consumes the first '!' and does not re-enter.
func TestDoubleNonNullBangIsRejected(t *testing.T) {
	err := parseDocErr(t, "query Q($x: Int!!) { hero }")
	assert.Equal(t, parser.UnexpectedToken, err.Kind)
}

func TestListTypePromotedToNonNull(t *testing.T) {
	doc := parseDoc(t, "query Q($x: [Int!]!) { hero }")
	op := doc.Definitions[0].(*ast.Operation)
	varType := op.VariableDefinitions[0].Type
	outer, ok := varType.(*ast.NonNullListType)
	require.True(t, ok)
	inner, ok := outer.Type.(*ast.NonNullNamedType)
	require.True(t, ok)
	assert.Equal(t, "Int", inner.Name)
}

func TestNestingLimitExceeded(t *testing.T) {
	d, err := parser.New("{ a { b { c { d } } } }", parser.WithMaxDepth(2))
	require.Nil(t, err)
	_, perr := parser.ParseDocument(d)
	require.NotNil(t, perr)
	assert.Equal(t, parser.NestingLimitExceeded, perr.Item.Kind)
}

func TestListAndObjectValueLiterals(t *testing.T) {
	doc := parseDoc(t, `{ hero(ids: [1, 2, 3], filter: {active: true, tag: null}) }`)
	op := doc.Definitions[0].(*ast.Operation)
	field := op.SelectionSet[0].(*ast.Field)
	require.Len(t, field.Arguments, 2)

	list, ok := field.Arguments[0].Value.Item.(*ast.ListValue)
	require.True(t, ok)
	require.Len(t, list.Values, 3)
	first, ok := list.Values[0].Item.(*ast.IntValue)
	require.True(t, ok)
	assert.Equal(t, int64(1), first.Value)

	obj, ok := field.Arguments[1].Value.Item.(*ast.ObjectValue)
	require.True(t, ok)
	require.Len(t, obj.Fields, 2)
	assert.Equal(t, "active", obj.Fields[0].Name.Item)
	boolVal, ok := obj.Fields[0].Value.Item.(*ast.BooleanValue)
	require.True(t, ok)
	assert.True(t, boolVal.Value)
	_, isNull := obj.Fields[1].Value.Item.(*ast.NullValue)
	assert.True(t, isNull)
}

func TestEmptyListAndObjectValuesAreAllowed(t *testing.T) {
	doc := parseDoc(t, `{ hero(ids: [], filter: {}) }`)
	field := doc.Definitions[0].(*ast.Operation).SelectionSet[0].(*ast.Field)
	list := field.Arguments[0].Value.Item.(*ast.ListValue)
	assert.Nil(t, list.Values)
	obj := field.Arguments[1].Value.Item.(*ast.ObjectValue)
	assert.Nil(t, obj.Fields)
}

func TestVariableDefaultValueConstantRejectsVariableReference(t *testing.T) {
	err := parseDocErr(t, `query Q($x: Int = $y) { hero }`)
	assert.Equal(t, parser.UnexpectedToken, err.Kind)
}

func TestMultipleDirectivesOnField(t *testing.T) {
	doc := parseDoc(t, `{ hero @include(if: true) @skip(if: false) }`)
	field := doc.Definitions[0].(*ast.Operation).SelectionSet[0].(*ast.Field)
	require.Len(t, field.Directives, 2)
	assert.Equal(t, "include", field.Directives[0].Name.Item)
	assert.Equal(t, "skip", field.Directives[1].Name.Item)
}

func TestSpanCoversFullToken(t *testing.T) {
	doc := parseDoc(t, "{ hero }")
	op := doc.Definitions[0].(*ast.Operation)
	assert.Equal(t, 0, op.Span.Start.Index)
	assert.Equal(t, 8, op.Span.End.Index)
}

func TestDocumentStructureMatchesExpectedShape(t *testing.T) {
	doc := parseDoc(t, "{ a b }")
	op := doc.Definitions[0].(*ast.Operation)
	names := make([]string, len(op.SelectionSet))
	for i, sel := range op.SelectionSet {
		names[i] = sel.(*ast.Field).Name.Item
	}
	if diff := cmp.Diff([]string{"a", "b"}, names); diff != "" {
		t.Errorf("selection names mismatch (-want +got):\n%s", diff)
	}
}
