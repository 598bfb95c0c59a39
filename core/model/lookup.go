package model

import (
	"fmt"

	"github.com/schemakit/schemakit/core/schema"
)

// TypeByName returns the type with the given name. This is the tolerant
// lookup: it never fails.
func (m *Model) TypeByName(name string) (Type, bool) {
	t, ok := m.typesByName[name]
	return t, ok
}

// TypeOrInvalid returns the type with the given name, or an invalid
// placeholder carrying that name, so callers always obtain some Type.
func (m *Model) TypeOrInvalid(name string) Type {
	if t, ok := m.typesByName[name]; ok {
		return t
	}
	return &InvalidType{name: name}
}

// RequireType returns the type with the given name or fails. A failure
// indicates a broken invariant upstream, not a reportable schema mistake.
func (m *Model) RequireType(name string) (Type, error) {
	t, ok := m.typesByName[name]
	if !ok {
		return nil, fmt.Errorf("reference to undefined type %q", name)
	}
	return t, nil
}

// typeAs narrows a tolerant lookup to a concrete kind.
func typeAs[T Type](m *Model, name string) (T, bool) {
	var zero T
	t, ok := m.typesByName[name]
	if !ok {
		return zero, false
	}
	narrowed, ok := t.(T)
	if !ok {
		return zero, false
	}
	return narrowed, true
}

// requireTypeAs narrows a strict lookup to a concrete kind. A name that
// resolves to a different kind fails with an error naming both kinds.
func requireTypeAs[T Type](m *Model, name string, want schema.TypeKind) (T, error) {
	var zero T
	t, ok := m.typesByName[name]
	if !ok {
		return zero, fmt.Errorf("reference to undefined type %q", name)
	}
	narrowed, ok := t.(T)
	if !ok {
		return zero, fmt.Errorf("type %q is of kind %s, expected %s", name, t.Kind(), want)
	}
	return narrowed, nil
}

// orInvalid is the fallback form of a narrowed lookup: the concrete type on
// a hit, the invalid placeholder on a miss or kind mismatch.
func orInvalid[T Type](m *Model, name string) Type {
	if t, ok := typeAs[T](m, name); ok {
		return t
	}
	return &InvalidType{name: name}
}

// RootEntityTypeByName returns the root entity type with the given name.
func (m *Model) RootEntityTypeByName(name string) (*RootEntityType, bool) {
	return typeAs[*RootEntityType](m, name)
}

// RootEntityTypeOrInvalid returns the root entity type with the given name,
// or the invalid placeholder.
func (m *Model) RootEntityTypeOrInvalid(name string) Type {
	return orInvalid[*RootEntityType](m, name)
}

// RequireRootEntityType returns the root entity type with the given name or
// fails with an undefined-type or wrong-kind error.
func (m *Model) RequireRootEntityType(name string) (*RootEntityType, error) {
	return requireTypeAs[*RootEntityType](m, name, schema.KindRootEntity)
}

// ChildEntityTypeByName returns the child entity type with the given name.
func (m *Model) ChildEntityTypeByName(name string) (*ChildEntityType, bool) {
	return typeAs[*ChildEntityType](m, name)
}

// ChildEntityTypeOrInvalid returns the child entity type with the given
// name, or the invalid placeholder.
func (m *Model) ChildEntityTypeOrInvalid(name string) Type {
	return orInvalid[*ChildEntityType](m, name)
}

// RequireChildEntityType returns the child entity type with the given name
// or fails with an undefined-type or wrong-kind error.
func (m *Model) RequireChildEntityType(name string) (*ChildEntityType, error) {
	return requireTypeAs[*ChildEntityType](m, name, schema.KindChildEntity)
}

// EntityExtensionTypeByName returns the entity extension type with the
// given name.
func (m *Model) EntityExtensionTypeByName(name string) (*EntityExtensionType, bool) {
	return typeAs[*EntityExtensionType](m, name)
}

// EntityExtensionTypeOrInvalid returns the entity extension type with the
// given name, or the invalid placeholder.
func (m *Model) EntityExtensionTypeOrInvalid(name string) Type {
	return orInvalid[*EntityExtensionType](m, name)
}

// RequireEntityExtensionType returns the entity extension type with the
// given name or fails with an undefined-type or wrong-kind error.
func (m *Model) RequireEntityExtensionType(name string) (*EntityExtensionType, error) {
	return requireTypeAs[*EntityExtensionType](m, name, schema.KindEntityExtension)
}

// ValueObjectTypeByName returns the value object type with the given name.
func (m *Model) ValueObjectTypeByName(name string) (*ValueObjectType, bool) {
	return typeAs[*ValueObjectType](m, name)
}

// ValueObjectTypeOrInvalid returns the value object type with the given
// name, or the invalid placeholder.
func (m *Model) ValueObjectTypeOrInvalid(name string) Type {
	return orInvalid[*ValueObjectType](m, name)
}

// RequireValueObjectType returns the value object type with the given name
// or fails with an undefined-type or wrong-kind error.
func (m *Model) RequireValueObjectType(name string) (*ValueObjectType, error) {
	return requireTypeAs[*ValueObjectType](m, name, schema.KindValueObject)
}

// ScalarTypeByName returns the scalar type with the given name.
func (m *Model) ScalarTypeByName(name string) (*ScalarType, bool) {
	return typeAs[*ScalarType](m, name)
}

// ScalarTypeOrInvalid returns the scalar type with the given name, or the
// invalid placeholder.
func (m *Model) ScalarTypeOrInvalid(name string) Type {
	return orInvalid[*ScalarType](m, name)
}

// RequireScalarType returns the scalar type with the given name or fails
// with an undefined-type or wrong-kind error.
func (m *Model) RequireScalarType(name string) (*ScalarType, error) {
	return requireTypeAs[*ScalarType](m, name, schema.KindScalar)
}

// EnumTypeByName returns the enum type with the given name.
func (m *Model) EnumTypeByName(name string) (*EnumType, bool) {
	return typeAs[*EnumType](m, name)
}

// EnumTypeOrInvalid returns the enum type with the given name, or the
// invalid placeholder.
func (m *Model) EnumTypeOrInvalid(name string) Type {
	return orInvalid[*EnumType](m, name)
}

// RequireEnumType returns the enum type with the given name or fails with
// an undefined-type or wrong-kind error.
func (m *Model) RequireEnumType(name string) (*EnumType, error) {
	return requireTypeAs[*EnumType](m, name, schema.KindEnum)
}
