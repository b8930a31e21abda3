package ast

// Value is the recursive, tagged representation of an input value
// literal: a scalar, enum, variable reference, or nested list/object.
type Value interface {
	Spanned
	isValue()
}

var (
	_ Value = (*NullValue)(nil)
	_ Value = (*IntValue)(nil)
	_ Value = (*FloatValue)(nil)
	_ Value = (*StringValue)(nil)
	_ Value = (*BooleanValue)(nil)
	_ Value = (*EnumValue)(nil)
	_ Value = (*VariableValue)(nil)
	_ Value = (*ListValue)(nil)
	_ Value = (*ObjectValue)(nil)
)

type NullValue struct{ Span Span }

func (n *NullValue) GetSpan() Span { return n.Span }
func (*NullValue) isValue()        {}

type IntValue struct {
	Span  Span
	Value int64
}

func (n *IntValue) GetSpan() Span { return n.Span }
func (*IntValue) isValue()        {}

type FloatValue struct {
	Span  Span
	Value float64
}

func (n *FloatValue) GetSpan() Span { return n.Span }
func (*FloatValue) isValue()        {}

// StringValue always owns its decoded text; escape sequences have
// already been resolved by the lexer.
type StringValue struct {
	Span  Span
	Value string
}

func (n *StringValue) GetSpan() Span { return n.Span }
func (*StringValue) isValue()        {}

type BooleanValue struct {
	Span  Span
	Value bool
}

func (n *BooleanValue) GetSpan() Span { return n.Span }
func (*BooleanValue) isValue()        {}

// EnumValue is an unquoted name that is none of true, false, or null.
type EnumValue struct {
	Span  Span
	Value string
}

func (n *EnumValue) GetSpan() Span { return n.Span }
func (*EnumValue) isValue()        {}

// VariableValue is a $name reference. Never produced while parsing in
// constant mode (see parser.ParseValueLiteral).
type VariableValue struct {
	Span Span
	Name string
}

func (n *VariableValue) GetSpan() Span { return n.Span }
func (*VariableValue) isValue()        {}

// ListValue preserves source order; it may be empty.
type ListValue struct {
	Span   Span
	Values []Spanning[Value]
}

func (n *ListValue) GetSpan() Span { return n.Span }
func (*ListValue) isValue()        {}

// ObjectField is one key/value pair of an ObjectValue. Duplicate keys
// are not rejected at this layer.
type ObjectField struct {
	Name  Spanning[string]
	Value Spanning[Value]
}

// ObjectValue preserves the source order of its fields; it may be empty.
type ObjectValue struct {
	Span   Span
	Fields []ObjectField
}

func (n *ObjectValue) GetSpan() Span { return n.Span }
func (*ObjectValue) isValue()        {}
