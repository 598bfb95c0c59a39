package model

import (
	"github.com/schemakit/schemakit/core/schema"
)

// Field belongs to exactly one owning object-like type.
type Field struct {
	model       *Model
	owner       ObjectType
	name        string
	typeName    string
	list        bool
	nonNull     bool
	itemNonNull bool
	reference   bool
	relation    *schema.RelationDecl
	description string
}

func newField(m *Model, decl schema.FieldDecl) *Field {
	return &Field{
		model:       m,
		name:        decl.Name,
		typeName:    decl.Type,
		list:        decl.List,
		nonNull:     decl.NonNull,
		itemNonNull: decl.ItemNonNull,
		reference:   decl.Reference,
		relation:    decl.Relation,
		description: decl.Description,
	}
}

// Name returns the field name within its owning type.
func (f *Field) Name() string { return f.name }

// Owner returns the type the field belongs to.
func (f *Field) Owner() ObjectType { return f.owner }

// TypeName returns the declared target type name, without modifiers.
func (f *Field) TypeName() string { return f.typeName }

// Type resolves the target type through the fallback lookup: the result is
// never nil, an invalid placeholder stands in for undefined names.
func (f *Field) Type() Type { return f.model.TypeOrInvalid(f.typeName) }

// IsList reports whether the target type is wrapped in a list.
func (f *Field) IsList() bool { return f.list }

// IsNonNull reports whether the outer type is non-nullable.
func (f *Field) IsNonNull() bool { return f.nonNull }

// IsItemNonNull reports whether list items are non-nullable.
func (f *Field) IsItemNonNull() bool { return f.itemNonNull }

// IsReference reports whether the field points at a root entity by key.
func (f *Field) IsReference() bool { return f.reference }

// IsRelation reports whether the field declares a relation.
func (f *Field) IsRelation() bool { return f.relation != nil }

// InverseOf returns the declared counterpart field name on the target type,
// empty for forward relations and for non-relation fields.
func (f *Field) InverseOf() string {
	if f.relation == nil {
		return ""
	}
	return f.relation.InverseOf
}

// Description returns the field description, including any text appended by
// the enrichment pass.
func (f *Field) Description() string { return f.description }

// appendDescription adds generated text after the declared description,
// separated by a blank line. Used only by the model's enrichment pass.
func (f *Field) appendDescription(text string) {
	if f.description != "" {
		f.description += "\n\n"
	}
	f.description += text
}
