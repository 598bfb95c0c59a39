// Package idl defines the abstract syntax tree of the interface description
// language: type definitions, field definitions and type references, in the
// document's native tree shape. The AST is structurally parallel to the
// domain model but shares no runtime objects with it; semantic metadata
// (entity kinds, references, relations, key fields) travels as directives.
package idl

// Document is the root of an IDL schema AST.
type Document struct {
	Definitions []Definition
}

// Definition is a top-level type definition node. The set is closed:
// object, input object, scalar and enum definitions.
type Definition interface {
	// DefName returns the defined type's name.
	DefName() string

	defNode()
}

// Directive names used by the model exporter and the transformers.
const (
	DirectiveRootEntity      = "rootEntity"
	DirectiveChildEntity     = "childEntity"
	DirectiveEntityExtension = "entityExtension"
	DirectiveValueObject     = "valueObject"
	DirectiveKey             = "key"
	DirectiveReference       = "reference"
	DirectiveRelation        = "relation"
)

// Directive is a named annotation with optional string arguments.
type Directive struct {
	Name      string
	Arguments map[string]string
}

// ObjectTypeDefinition defines an object type: an entity, entity extension
// or value object, discriminated by its kind directive.
type ObjectTypeDefinition struct {
	Name        string
	Description string
	Directives  []Directive
	Fields      []*FieldDefinition
}

func (d *ObjectTypeDefinition) DefName() string { return d.Name }
func (d *ObjectTypeDefinition) defNode()        {}

// HasDirective reports whether the definition carries the named directive.
func (d *ObjectTypeDefinition) HasDirective(name string) bool {
	for _, dir := range d.Directives {
		if dir.Name == name {
			return true
		}
	}
	return false
}

// IsRootEntity reports whether the definition is marked as a root entity.
func (d *ObjectTypeDefinition) IsRootEntity() bool {
	return d.HasDirective(DirectiveRootEntity)
}

// IsChildEntity reports whether the definition is marked as a child entity.
func (d *ObjectTypeDefinition) IsChildEntity() bool {
	return d.HasDirective(DirectiveChildEntity)
}

// FieldDefinition defines a field of an object type.
type FieldDefinition struct {
	Name        string
	Description string
	Type        TypeRef
	Directives  []Directive
}

// HasDirective reports whether the field carries the named directive.
func (f *FieldDefinition) HasDirective(name string) bool {
	for _, dir := range f.Directives {
		if dir.Name == name {
			return true
		}
	}
	return false
}

// IsReference reports whether the field is marked as a by-key reference.
func (f *FieldDefinition) IsReference() bool {
	return f.HasDirective(DirectiveReference)
}

// IsRelation reports whether the field is marked as a relation.
func (f *FieldDefinition) IsRelation() bool {
	return f.HasDirective(DirectiveRelation)
}

// IsKey reports whether the field is the designated key field.
func (f *FieldDefinition) IsKey() bool {
	return f.HasDirective(DirectiveKey)
}

// InputObjectTypeDefinition defines an input object type.
type InputObjectTypeDefinition struct {
	Name        string
	Description string
	Fields      []*InputValueDefinition
}

func (d *InputObjectTypeDefinition) DefName() string { return d.Name }
func (d *InputObjectTypeDefinition) defNode()        {}

// InputValueDefinition defines a field of an input object type.
type InputValueDefinition struct {
	Name string
	Type TypeRef
}

// ScalarTypeDefinition defines a scalar type.
type ScalarTypeDefinition struct {
	Name        string
	Description string
}

func (d *ScalarTypeDefinition) DefName() string { return d.Name }
func (d *ScalarTypeDefinition) defNode()        {}

// EnumTypeDefinition defines an enum type.
type EnumTypeDefinition struct {
	Name        string
	Description string
	Values      []string
}

func (d *EnumTypeDefinition) DefName() string { return d.Name }
func (d *EnumTypeDefinition) defNode()        {}

// TypeRef is a possibly wrapped reference to a named type.
type TypeRef interface {
	String() string

	typeRefNode()
}

// NamedType refers to a type by name.
type NamedType struct {
	Name string
}

func (t *NamedType) String() string { return t.Name }
func (t *NamedType) typeRefNode()   {}

// ListType wraps an element type in a list.
type ListType struct {
	OfType TypeRef
}

func (t *ListType) String() string { return "[" + t.OfType.String() + "]" }
func (t *ListType) typeRefNode()   {}

// NonNullType marks the wrapped type as non-nullable.
type NonNullType struct {
	OfType TypeRef
}

func (t *NonNullType) String() string { return t.OfType.String() + "!" }
func (t *NonNullType) typeRefNode()   {}

// NamedTypeOf returns the innermost named type of a reference.
func NamedTypeOf(t TypeRef) *NamedType {
	for {
		switch v := t.(type) {
		case *NamedType:
			return v
		case *ListType:
			t = v.OfType
		case *NonNullType:
			t = v.OfType
		}
	}
}
