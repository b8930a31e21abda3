package parser

import "github.com/corvidae/graphql/ast"

// ParseValueLiteral parses a single input value. When isConstant is
// true, variable references are rejected (default-value position);
// the flag is threaded unchanged into nested lists and objects.
func ParseValueLiteral(d *Driver, isConstant bool) (ast.Spanning[ast.Value], *ast.Spanning[*Error]) {
	tok := d.Peek()

	switch tok.Item.Kind {
	case ast.Dollar:
		if isConstant {
			var zero ast.Spanning[ast.Value]
			return zero, d.unexpected()
		}
		return parseVariableValue(d)

	case ast.Scalar:
		d.Next()
		switch tok.Item.Lit.Kind {
		case ast.ScalarInt:
			return ast.StartEnd[ast.Value](tok.Span.Start, tok.Span.End, &ast.IntValue{
				Span: tok.Span, Value: tok.Item.Lit.IntValue,
			}), nil
		case ast.ScalarFloat:
			return ast.StartEnd[ast.Value](tok.Span.Start, tok.Span.End, &ast.FloatValue{
				Span: tok.Span, Value: tok.Item.Lit.FloatValue,
			}), nil
		default:
			return ast.StartEnd[ast.Value](tok.Span.Start, tok.Span.End, &ast.StringValue{
				Span: tok.Span, Value: tok.Item.Lit.StringValue,
			}), nil
		}

	case ast.Name:
		d.Next()
		switch tok.Item.Text {
		case "true", "false":
			return ast.StartEnd[ast.Value](tok.Span.Start, tok.Span.End, &ast.BooleanValue{
				Span: tok.Span, Value: tok.Item.Text == "true",
			}), nil
		case "null":
			return ast.StartEnd[ast.Value](tok.Span.Start, tok.Span.End, &ast.NullValue{Span: tok.Span}), nil
		default:
			return ast.StartEnd[ast.Value](tok.Span.Start, tok.Span.End, &ast.EnumValue{
				Span: tok.Span, Value: tok.Item.Text,
			}), nil
		}

	case ast.BracketOpen:
		return parseListValue(d, isConstant)

	case ast.CurlyOpen:
		return parseObjectValue(d, isConstant)
	}

	var zero ast.Spanning[ast.Value]
	return zero, d.unexpected()
}

func parseVariableValue(d *Driver) (ast.Spanning[ast.Value], *ast.Spanning[*Error]) {
	dollar, err := d.Expect(ast.Dollar)
	if err != nil {
		var zero ast.Spanning[ast.Value]
		return zero, err
	}
	name, err := d.ExpectName()
	if err != nil {
		var zero ast.Spanning[ast.Value]
		return zero, err
	}
	return ast.StartEnd[ast.Value](dollar.Span.Start, name.Span.End, &ast.VariableValue{
		Span: ast.Span{Start: dollar.Span.Start, End: name.Span.End},
		Name: name.Item,
	}), nil
}

func parseListValue(d *Driver, isConstant bool) (ast.Spanning[ast.Value], *ast.Spanning[*Error]) {
	if err := d.enterNesting(d.Peek().Span.Start); err != nil {
		var zero ast.Spanning[ast.Value]
		return zero, err
	}
	defer d.leaveNesting()

	values, span, err := DelimitedList(d, ast.BracketOpen, func(d *Driver) (ast.Spanning[ast.Value], *ast.Spanning[*Error]) {
		return ParseValueLiteral(d, isConstant)
	}, ast.BracketClose)
	if err != nil {
		var zero ast.Spanning[ast.Value]
		return zero, err
	}
	return ast.StartEnd[ast.Value](span.Start, span.End, &ast.ListValue{Span: span, Values: values}), nil
}

func parseObjectValue(d *Driver, isConstant bool) (ast.Spanning[ast.Value], *ast.Spanning[*Error]) {
	if err := d.enterNesting(d.Peek().Span.Start); err != nil {
		var zero ast.Spanning[ast.Value]
		return zero, err
	}
	defer d.leaveNesting()

	fields, span, err := DelimitedList(d, ast.CurlyOpen, func(d *Driver) (ast.ObjectField, *ast.Spanning[*Error]) {
		return parseObjectField(d, isConstant)
	}, ast.CurlyClose)
	if err != nil {
		var zero ast.Spanning[ast.Value]
		return zero, err
	}
	return ast.StartEnd[ast.Value](span.Start, span.End, &ast.ObjectValue{Span: span, Fields: fields}), nil
}

func parseObjectField(d *Driver, isConstant bool) (ast.ObjectField, *ast.Spanning[*Error]) {
	name, err := d.ExpectName()
	if err != nil {
		return ast.ObjectField{}, err
	}
	if _, err := d.Expect(ast.Colon); err != nil {
		return ast.ObjectField{}, err
	}
	value, err := ParseValueLiteral(d, isConstant)
	if err != nil {
		return ast.ObjectField{}, err
	}
	return ast.ObjectField{
		Name:  ast.StartEnd(name.Span.Start, value.Span.End, name.Item),
		Value: value,
	}, nil
}
