package ast

// Selection is one entry of a selection set: a field, a fragment
// spread, or an inline fragment.
type Selection interface {
	Spanned
	isSelection()
}

var (
	_ Selection = (*Field)(nil)
	_ Selection = (*FragmentSpread)(nil)
	_ Selection = (*InlineFragment)(nil)
)

// Field is Alias? Name Arguments? Directives? SelectionSet?. Alias is
// non-nil only when the source wrote "alias: name".
type Field struct {
	Span         Span
	Alias        *Spanning[string]
	Name         Spanning[string]
	Arguments    []Argument
	Directives   []Directive
	SelectionSet []Selection
}

func (f *Field) GetSpan() Span { return f.Span }
func (*Field) isSelection()    {}

// FragmentSpread is "...Name Directives?".
type FragmentSpread struct {
	Span       Span
	Name       Spanning[string]
	Directives []Directive
}

func (f *FragmentSpread) GetSpan() Span { return f.Span }
func (*FragmentSpread) isSelection()    {}

// InlineFragment is "...TypeCondition? Directives? SelectionSet".
type InlineFragment struct {
	Span          Span
	TypeCondition *Spanning[string]
	Directives    []Directive
	SelectionSet  []Selection
}

func (f *InlineFragment) GetSpan() Span { return f.Span }
func (*InlineFragment) isSelection()    {}

// Argument is one name/value pair of an Arguments list.
type Argument struct {
	Span  Span
	Name  Spanning[string]
	Value Spanning[Value]
}

// Directive is "@name Arguments?".
type Directive struct {
	Span      Span
	Name      Spanning[string]
	Arguments []Argument
}

// VariableDefinition is "$name : Type (= value)?", keyed by Name.
type VariableDefinition struct {
	Span         Span
	Name         Spanning[string]
	Type         Type
	DefaultValue *Spanning[Value]
}
