package model

import (
	"fmt"

	"github.com/schemakit/schemakit/core/schema"
)

// KindInvalid marks the placeholder type returned by fallback lookups.
// It is not declarable.
const KindInvalid = schema.TypeKind("invalid")

// Type is a named element of the domain model. The kind set is closed:
// root entity, child entity, entity extension, value object, scalar, enum,
// plus the invalid sentinel.
type Type interface {
	Name() string
	Kind() schema.TypeKind
	Description() string

	// IsObjectType reports whether the type owns fields.
	IsObjectType() bool

	// Validate appends kind-specific diagnostics to the context.
	Validate(c *schema.ValidationContext)
}

// ObjectType is implemented by all field-bearing types.
type ObjectType interface {
	Type
	Fields() []*Field
	FieldByName(name string) (*Field, bool)
}

// objectBase is the shared implementation of field-bearing types.
type objectBase struct {
	model       *Model
	name        string
	kind        schema.TypeKind
	description string
	fields      []*Field
	location    *schema.MessageLocation
}

func (t *objectBase) Name() string          { return t.name }
func (t *objectBase) Kind() schema.TypeKind { return t.kind }
func (t *objectBase) Description() string   { return t.description }
func (t *objectBase) IsObjectType() bool    { return true }

// Fields returns the type's fields in declaration order.
func (t *objectBase) Fields() []*Field { return t.fields }

// FieldByName returns the field with the given name.
func (t *objectBase) FieldByName(name string) (*Field, bool) {
	for _, f := range t.fields {
		if f.Name() == name {
			return f, true
		}
	}
	return nil, false
}

// validateFields holds the checks common to all object-like types.
func (t *objectBase) validateFields(c *schema.ValidationContext) {
	if len(t.fields) == 0 {
		c.Add(schema.SeverityError, fmt.Sprintf("type %q has no fields", t.name), t.location)
	}

	seen := make(map[string]bool, len(t.fields))
	for _, f := range t.fields {
		if seen[f.Name()] {
			c.Add(schema.SeverityError,
				fmt.Sprintf("duplicate field %q on type %q", f.Name(), t.name), t.location)
		}
		seen[f.Name()] = true

		target, ok := t.model.TypeByName(f.TypeName())
		if !ok {
			c.Add(schema.SeverityError,
				fmt.Sprintf("field %q of type %q references undefined type %q",
					f.Name(), t.name, f.TypeName()), t.location)
			continue
		}

		if f.IsReference() {
			if _, ok := target.(*RootEntityType); !ok {
				c.Add(schema.SeverityError,
					fmt.Sprintf("field %q of type %q is a reference but %q is not a root entity",
						f.Name(), t.name, f.TypeName()), t.location)
			}
		}
		if f.IsRelation() {
			if t.kind != schema.KindRootEntity {
				c.Add(schema.SeverityError,
					fmt.Sprintf("field %q declares a relation but %q is not a root entity",
						f.Name(), t.name), t.location)
			}
			if _, ok := target.(*RootEntityType); !ok {
				c.Add(schema.SeverityError,
					fmt.Sprintf("relation field %q of type %q must target a root entity, %q is not one",
						f.Name(), t.name, f.TypeName()), t.location)
			}
		}
	}
}

// RootEntityType is a top-level, independently addressable entity type.
type RootEntityType struct {
	objectBase
	namespacePath []string
	keyFieldName  string
	profileName   string
}

// NamespacePath returns the declared namespace path, empty for the root
// namespace.
func (t *RootEntityType) NamespacePath() []string { return t.namespacePath }

// KeyFieldName returns the declared key field name, empty if none.
func (t *RootEntityType) KeyFieldName() string { return t.keyFieldName }

// KeyField returns the designated key field, if one is declared and exists.
func (t *RootEntityType) KeyField() (*Field, bool) {
	if t.keyFieldName == "" {
		return nil, false
	}
	return t.FieldByName(t.keyFieldName)
}

// PermissionProfile resolves the profile guarding this type. Types without
// an explicit profile use the default profile.
func (t *RootEntityType) PermissionProfile() (*PermissionProfile, bool) {
	name := t.profileName
	if name == "" {
		name = DefaultProfileName
	}
	return t.model.PermissionProfile(name)
}

func (t *RootEntityType) Validate(c *schema.ValidationContext) {
	t.validateFields(c)

	if t.keyFieldName != "" {
		kf, ok := t.FieldByName(t.keyFieldName)
		if !ok {
			c.Add(schema.SeverityError,
				fmt.Sprintf("key field %q of root entity %q is not declared", t.keyFieldName, t.name),
				t.location)
		} else if kf.IsList() {
			c.Add(schema.SeverityError,
				fmt.Sprintf("key field %q of root entity %q must not be a list", t.keyFieldName, t.name),
				t.location)
		}
	}

	if t.profileName != "" {
		if _, ok := t.model.PermissionProfile(t.profileName); !ok {
			c.Add(schema.SeverityError,
				fmt.Sprintf("root entity %q names unknown permission profile %q", t.name, t.profileName),
				t.location)
		}
	}
}

// ChildEntityType is an entity that exists only nested under a root entity.
type ChildEntityType struct {
	objectBase
}

func (t *ChildEntityType) Validate(c *schema.ValidationContext) { t.validateFields(c) }

// EntityExtensionType is a field group mixed into an entity.
type EntityExtensionType struct {
	objectBase
}

func (t *EntityExtensionType) Validate(c *schema.ValidationContext) { t.validateFields(c) }

// ValueObjectType is an embedded composite value without identity.
type ValueObjectType struct {
	objectBase
}

func (t *ValueObjectType) Validate(c *schema.ValidationContext) { t.validateFields(c) }

// ScalarType is a scalar, either built-in or declared.
type ScalarType struct {
	name        string
	description string
	builtin     bool
}

func (t *ScalarType) Name() string          { return t.name }
func (t *ScalarType) Kind() schema.TypeKind { return schema.KindScalar }
func (t *ScalarType) Description() string   { return t.description }
func (t *ScalarType) IsObjectType() bool    { return false }

// IsBuiltin reports whether the scalar is part of the fixed built-in set.
func (t *ScalarType) IsBuiltin() bool { return t.builtin }

func (t *ScalarType) Validate(c *schema.ValidationContext) {}

// EnumType is a closed set of named values.
type EnumType struct {
	name        string
	description string
	values      []string
	location    *schema.MessageLocation
}

func (t *EnumType) Name() string          { return t.name }
func (t *EnumType) Kind() schema.TypeKind { return schema.KindEnum }
func (t *EnumType) Description() string   { return t.description }
func (t *EnumType) IsObjectType() bool    { return false }

// Values returns the enum members in declaration order.
func (t *EnumType) Values() []string { return t.values }

func (t *EnumType) Validate(c *schema.ValidationContext) {
	if len(t.values) == 0 {
		c.Add(schema.SeverityError, fmt.Sprintf("enum %q has no values", t.name), t.location)
	}
	seen := make(map[string]bool, len(t.values))
	for _, v := range t.values {
		if seen[v] {
			c.Add(schema.SeverityError,
				fmt.Sprintf("duplicate value %q in enum %q", v, t.name), t.location)
		}
		seen[v] = true
	}
}

// InvalidType is the placeholder returned by fallback lookups so callers
// that must always obtain some Type never need to branch on nil.
type InvalidType struct {
	name string
}

func (t *InvalidType) Name() string          { return t.name }
func (t *InvalidType) Kind() schema.TypeKind { return KindInvalid }
func (t *InvalidType) Description() string   { return "" }
func (t *InvalidType) IsObjectType() bool    { return false }

func (t *InvalidType) Validate(c *schema.ValidationContext) {}

// IsInvalid reports whether t is the invalid placeholder.
func IsInvalid(t Type) bool {
	_, ok := t.(*InvalidType)
	return ok
}
