package ast

import "fmt"

// Type is a type reference as it appears in a variable definition:
// a name, a list of another type, or either wrapped non-null by a
// trailing '!'.
type Type interface {
	Spanned
	String() string
	isType()
}

var (
	_ Type = (*NamedType)(nil)
	_ Type = (*ListType)(nil)
	_ Type = (*NonNullNamedType)(nil)
	_ Type = (*NonNullListType)(nil)
)

type NamedType struct {
	Span Span
	Name string
}

func (t *NamedType) GetSpan() Span  { return t.Span }
func (t *NamedType) String() string { return t.Name }
func (*NamedType) isType()          {}

type ListType struct {
	Span Span
	Type Type
}

func (t *ListType) GetSpan() Span  { return t.Span }
func (t *ListType) String() string { return fmt.Sprintf("[%s]", t.Type.String()) }
func (*ListType) isType()          {}

// NonNullNamedType is produced only by a trailing '!' on a NamedType.
type NonNullNamedType struct {
	Span Span
	Name string
}

func (t *NonNullNamedType) GetSpan() Span  { return t.Span }
func (t *NonNullNamedType) String() string { return t.Name + "!" }
func (*NonNullNamedType) isType()          {}

// NonNullListType is produced only by a trailing '!' on a ListType.
type NonNullListType struct {
	Span Span
	Type Type
}

func (t *NonNullListType) GetSpan() Span  { return t.Span }
func (t *NonNullListType) String() string { return fmt.Sprintf("[%s]!", t.Type.String()) }
func (*NonNullListType) isType()          {}
