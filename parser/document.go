package parser

import "github.com/corvidae/graphql/ast"

// ParseDocument parses a full GraphQL document: one or more
// definitions up to end of file. The first parseDefinition call must
// succeed, so an empty document is UnexpectedEndOfFile.
func ParseDocument(d *Driver) (*ast.Document, *ast.Spanning[*Error]) {
	start := d.Peek().Span.Start
	var defs []ast.Definition

	for {
		def, err := parseDefinition(d)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
		if d.Peek().Item.Kind == ast.EOF {
			break
		}
	}

	end := d.Peek().Span.End
	return &ast.Document{Span: ast.Span{Start: start, End: end}, Definitions: defs}, nil
}

func parseDefinition(d *Driver) (ast.Definition, *ast.Spanning[*Error]) {
	tok := d.Peek()
	switch {
	case tok.Item.Kind == ast.CurlyOpen:
		return parseOperationDefinition(d)
	case tok.Item.Kind == ast.Name && (tok.Item.Text == "query" || tok.Item.Text == "mutation"):
		return parseOperationDefinition(d)
	case tok.Item.Kind == ast.Name && tok.Item.Text == "fragment":
		return parseFragmentDefinition(d)
	default:
		return nil, d.unexpected()
	}
}

func parseOperationDefinition(d *Driver) (*ast.Operation, *ast.Spanning[*Error]) {
	if d.Peek().Item.Kind == ast.CurlyOpen {
		selSet, span, err := parseSelectionSet(d)
		if err != nil {
			return nil, err
		}
		return &ast.Operation{Span: span, Type: ast.Query, SelectionSet: selSet}, nil
	}

	start := d.Peek().Span.Start
	opType, err := parseOperationType(d)
	if err != nil {
		return nil, err
	}

	var name *ast.Spanning[string]
	if d.Peek().Item.Kind == ast.Name {
		n, err := d.ExpectName()
		if err != nil {
			return nil, err
		}
		name = &n
	}

	vars, err := parseVariableDefinitions(d)
	if err != nil {
		return nil, err
	}
	directives, err := parseDirectives(d)
	if err != nil {
		return nil, err
	}
	selSet, selSpan, err := parseSelectionSet(d)
	if err != nil {
		return nil, err
	}

	return &ast.Operation{
		Span:                ast.Span{Start: start, End: selSpan.End},
		Type:                opType,
		Name:                name,
		VariableDefinitions: vars,
		Directives:          directives,
		SelectionSet:        selSet,
	}, nil
}

func parseOperationType(d *Driver) (ast.OperationType, *ast.Spanning[*Error]) {
	tok := d.Peek()
	if tok.Item.Kind == ast.Name {
		switch tok.Item.Text {
		case "query":
			d.Next()
			return ast.Query, nil
		case "mutation":
			d.Next()
			return ast.Mutation, nil
		}
	}
	return 0, d.unexpected()
}

func parseFragmentDefinition(d *Driver) (*ast.Fragment, *ast.Spanning[*Error]) {
	kw, err := d.ExpectName() // "fragment"
	if err != nil {
		return nil, err
	}
	name, err := d.ExpectName()
	if err != nil {
		return nil, err
	}
	if name.Item == "on" {
		span := ast.StartEnd(name.Span.Start, name.Span.End, &Error{Kind: UnexpectedToken, Token: ast.Token{Kind: ast.Name, Text: "on"}})
		return nil, &span
	}
	if _, err := expectKeyword(d, "on"); err != nil {
		return nil, err
	}
	typeCond, err := d.ExpectName()
	if err != nil {
		return nil, err
	}
	directives, err := parseDirectives(d)
	if err != nil {
		return nil, err
	}
	selSet, selSpan, err := parseSelectionSet(d)
	if err != nil {
		return nil, err
	}
	return &ast.Fragment{
		Span:          ast.Span{Start: kw.Span.Start, End: selSpan.End},
		Name:          name,
		TypeCondition: typeCond,
		Directives:    directives,
		SelectionSet:  selSet,
	}, nil
}

func expectKeyword(d *Driver, keyword string) (ast.Spanning[string], *ast.Spanning[*Error]) {
	tok := d.Peek()
	if tok.Item.Kind != ast.Name || tok.Item.Text != keyword {
		var zero ast.Spanning[string]
		return zero, d.unexpected()
	}
	return d.ExpectName()
}

func parseSelectionSet(d *Driver) ([]ast.Selection, ast.Span, *ast.Spanning[*Error]) {
	if err := d.enterNesting(d.Peek().Span.Start); err != nil {
		return nil, ast.Span{}, err
	}
	defer d.leaveNesting()

	return DelimitedNonEmptyList(d, ast.CurlyOpen, parseSelection, ast.CurlyClose)
}

func parseSelection(d *Driver) (ast.Selection, *ast.Spanning[*Error]) {
	if d.Peek().Item.Kind == ast.Ellipsis {
		return parseFragmentSelection(d)
	}
	return parseField(d)
}

func parseField(d *Driver) (*ast.Field, *ast.Spanning[*Error]) {
	alias, err := d.ExpectName()
	if err != nil {
		return nil, err
	}

	var aliasPtr *ast.Spanning[string]
	name := alias
	if colon, err := d.Skip(ast.Colon); err != nil {
		return nil, err
	} else if colon != nil {
		aliasPtr = &alias
		name, err = d.ExpectName()
		if err != nil {
			return nil, err
		}
	}

	end := name.Span.End

	var arguments []ast.Argument
	if d.Peek().Item.Kind == ast.ParenOpen {
		arguments, err = parseArguments(d)
		if err != nil {
			return nil, err
		}
		end = arguments[len(arguments)-1].Span.End
	}

	directives, err := parseDirectives(d)
	if err != nil {
		return nil, err
	}
	if len(directives) > 0 {
		end = directives[len(directives)-1].Span.End
	}

	var selSet []ast.Selection
	if d.Peek().Item.Kind == ast.CurlyOpen {
		var span ast.Span
		selSet, span, err = parseSelectionSet(d)
		if err != nil {
			return nil, err
		}
		end = span.End
	}

	return &ast.Field{
		Span:         ast.Span{Start: alias.Span.Start, End: end},
		Alias:        aliasPtr,
		Name:         name,
		Arguments:    arguments,
		Directives:   directives,
		SelectionSet: selSet,
	}, nil
}

// parseFragmentSelection parses the production following "...",
// dispatching on the token that immediately follows the ellipsis.
func parseFragmentSelection(d *Driver) (ast.Selection, *ast.Spanning[*Error]) {
	spread, err := d.Expect(ast.Ellipsis)
	if err != nil {
		return nil, err
	}
	start := spread.Span.Start

	tok := d.Peek()
	switch {
	case tok.Item.Kind == ast.Name && tok.Item.Text == "on":
		d.Next()
		typeCond, err := d.ExpectName()
		if err != nil {
			return nil, err
		}
		directives, err := parseDirectives(d)
		if err != nil {
			return nil, err
		}
		selSet, span, err := parseSelectionSet(d)
		if err != nil {
			return nil, err
		}
		return &ast.InlineFragment{
			Span:          ast.Span{Start: start, End: span.End},
			TypeCondition: &typeCond,
			Directives:    directives,
			SelectionSet:  selSet,
		}, nil

	case tok.Item.Kind == ast.CurlyOpen:
		selSet, span, err := parseSelectionSet(d)
		if err != nil {
			return nil, err
		}
		return &ast.InlineFragment{
			Span:         ast.Span{Start: start, End: span.End},
			SelectionSet: selSet,
		}, nil

	case tok.Item.Kind == ast.Name:
		name, err := d.ExpectName()
		if err != nil {
			return nil, err
		}
		end := name.Span.End
		directives, err := parseDirectives(d)
		if err != nil {
			return nil, err
		}
		if len(directives) > 0 {
			end = directives[len(directives)-1].Span.End
		}
		return &ast.FragmentSpread{
			Span:       ast.Span{Start: start, End: end},
			Name:       name,
			Directives: directives,
		}, nil

	case tok.Item.Kind == ast.At:
		directives, err := parseDirectives(d)
		if err != nil {
			return nil, err
		}
		selSet, span, err := parseSelectionSet(d)
		if err != nil {
			return nil, err
		}
		return &ast.InlineFragment{
			Span:         ast.Span{Start: start, End: span.End},
			Directives:   directives,
			SelectionSet: selSet,
		}, nil

	default:
		return nil, d.unexpected()
	}
}

func parseArguments(d *Driver) ([]ast.Argument, *ast.Spanning[*Error]) {
	args, _, err := DelimitedNonEmptyList(d, ast.ParenOpen, parseArgument, ast.ParenClose)
	return args, err
}

func parseArgument(d *Driver) (ast.Argument, *ast.Spanning[*Error]) {
	name, err := d.ExpectName()
	if err != nil {
		return ast.Argument{}, err
	}
	if _, err := d.Expect(ast.Colon); err != nil {
		return ast.Argument{}, err
	}
	value, err := ParseValueLiteral(d, false)
	if err != nil {
		return ast.Argument{}, err
	}
	return ast.Argument{
		Span:  ast.Span{Start: name.Span.Start, End: value.Span.End},
		Name:  name,
		Value: value,
	}, nil
}

func parseDirectives(d *Driver) ([]ast.Directive, *ast.Spanning[*Error]) {
	if d.Peek().Item.Kind != ast.At {
		return nil, nil
	}
	var directives []ast.Directive
	for d.Peek().Item.Kind == ast.At {
		dir, err := parseDirective(d)
		if err != nil {
			return nil, err
		}
		directives = append(directives, dir)
	}
	return directives, nil
}

func parseDirective(d *Driver) (ast.Directive, *ast.Spanning[*Error]) {
	at, err := d.Expect(ast.At)
	if err != nil {
		return ast.Directive{}, err
	}
	name, err := d.ExpectName()
	if err != nil {
		return ast.Directive{}, err
	}
	end := name.Span.End
	var args []ast.Argument
	if d.Peek().Item.Kind == ast.ParenOpen {
		args, err = parseArguments(d)
		if err != nil {
			return ast.Directive{}, err
		}
		end = args[len(args)-1].Span.End
	}
	return ast.Directive{
		Span:      ast.Span{Start: at.Span.Start, End: end},
		Name:      name,
		Arguments: args,
	}, nil
}

func parseVariableDefinitions(d *Driver) ([]ast.VariableDefinition, *ast.Spanning[*Error]) {
	if d.Peek().Item.Kind != ast.ParenOpen {
		return nil, nil
	}
	vars, _, err := DelimitedNonEmptyList(d, ast.ParenOpen, parseVariableDefinition, ast.ParenClose)
	return vars, err
}

func parseVariableDefinition(d *Driver) (ast.VariableDefinition, *ast.Spanning[*Error]) {
	dollar, err := d.Expect(ast.Dollar)
	if err != nil {
		return ast.VariableDefinition{}, err
	}
	name, err := d.ExpectName()
	if err != nil {
		return ast.VariableDefinition{}, err
	}
	if _, err := d.Expect(ast.Colon); err != nil {
		return ast.VariableDefinition{}, err
	}
	varType, err := ParseType(d)
	if err != nil {
		return ast.VariableDefinition{}, err
	}

	end := varType.Span.End
	var defaultValue *ast.Spanning[ast.Value]
	if eq, err := d.Skip(ast.Equals); err != nil {
		return ast.VariableDefinition{}, err
	} else if eq != nil {
		v, err := ParseValueLiteral(d, true)
		if err != nil {
			return ast.VariableDefinition{}, err
		}
		defaultValue = &v
		end = v.Span.End
	}

	return ast.VariableDefinition{
		Span:         ast.Span{Start: dollar.Span.Start, End: end},
		Name:         ast.StartEnd(dollar.Span.Start, name.Span.End, name.Item),
		Type:         varType.Item,
		DefaultValue: defaultValue,
	}, nil
}

// ParseType parses a Type production: a named type or a bracketed
// list type, optionally promoted to its non-null form by a trailing
// '!'. A second '!' is a syntax error.
func ParseType(d *Driver) (ast.Spanning[ast.Type], *ast.Spanning[*Error]) {
	var base ast.Spanning[ast.Type]

	if d.Peek().Item.Kind == ast.BracketOpen {
		if err := d.enterNesting(d.Peek().Span.Start); err != nil {
			return ast.Spanning[ast.Type]{}, err
		}
		defer d.leaveNesting()
		open, err := d.Expect(ast.BracketOpen)
		if err != nil {
			return ast.Spanning[ast.Type]{}, err
		}
		inner, err := ParseType(d)
		if err != nil {
			return ast.Spanning[ast.Type]{}, err
		}
		close, err := d.Expect(ast.BracketClose)
		if err != nil {
			return ast.Spanning[ast.Type]{}, err
		}
		span := ast.Span{Start: open.Span.Start, End: close.Span.End}
		base = ast.StartEnd[ast.Type](span.Start, span.End, &ast.ListType{Span: span, Type: inner.Item})
	} else {
		name, err := d.ExpectName()
		if err != nil {
			return ast.Spanning[ast.Type]{}, err
		}
		base = ast.StartEnd[ast.Type](name.Span.Start, name.Span.End, &ast.NamedType{Span: name.Span, Name: name.Item})
	}

	if d.Peek().Item.Kind != ast.ExclamationMark {
		return base, nil
	}
	bang, err := d.Expect(ast.ExclamationMark)
	if err != nil {
		return ast.Spanning[ast.Type]{}, err
	}
	span := ast.Span{Start: base.Span.Start, End: bang.Span.End}

	switch t := base.Item.(type) {
	case *ast.NamedType:
		return ast.StartEnd[ast.Type](span.Start, span.End, &ast.NonNullNamedType{Span: span, Name: t.Name}), nil
	case *ast.ListType:
		return ast.StartEnd[ast.Type](span.Start, span.End, &ast.NonNullListType{Span: span, Type: t.Type}), nil
	default:
		return base, nil
	}
}
