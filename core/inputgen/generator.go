// Package inputgen derives mutation input type definitions from an IDL
// document. The create-input transformer appends one input object type per
// root entity and child entity type, mapping each source field to the shape
// of data required to create a new instance: embedded values recurse into
// the element's own create input, references collapse to the target's key
// field type, and relations collapse to raw identifiers.
package inputgen

import (
	"fmt"

	"github.com/schemakit/schemakit/core/idl"
)

// systemFieldNames are managed by the system and never appear in create
// inputs.
var systemFieldNames = map[string]bool{
	"id":        true,
	"createdAt": true,
	"updatedAt": true,
}

// IsSystemFieldName reports whether the field name is system-managed.
func IsSystemFieldName(name string) bool { return systemFieldNames[name] }

// CreateInputName returns the name of the create-input type derived for a
// source type. The same function is used when defining an input type and
// when nesting it inside another one.
func CreateInputName(typeName string) string {
	return "Create" + typeName + "Input"
}

// Generator derives create-input definitions for the entity types of a
// document. It holds no state across invocations; distinct documents may be
// transformed concurrently.
type Generator struct {
	resolve idl.TypeResolver
}

// New creates a generator using the given lookup helper to resolve type
// names to their definition nodes.
func New(resolve idl.TypeResolver) *Generator {
	return &Generator{resolve: resolve}
}

// Generate returns a new document holding the original definitions plus one
// create-input definition per root entity type, then one per child entity
// type, each group in declaration order. The input document is not mutated.
//
// A list-of-list field type is a declaration error and fails generation
// immediately; it is never collected as a diagnostic.
func (g *Generator) Generate(doc *idl.Document) (*idl.Document, error) {
	out := &idl.Document{
		Definitions: append(make([]idl.Definition, 0, len(doc.Definitions)), doc.Definitions...),
	}

	var roots, children []*idl.ObjectTypeDefinition
	for _, def := range doc.Definitions {
		obj, ok := def.(*idl.ObjectTypeDefinition)
		if !ok {
			continue
		}
		switch {
		case obj.IsRootEntity():
			roots = append(roots, obj)
		case obj.IsChildEntity():
			children = append(children, obj)
		}
	}

	for _, obj := range append(roots, children...) {
		input, err := g.buildCreateInput(obj)
		if err != nil {
			return nil, err
		}
		out.Definitions = append(out.Definitions, input)
	}

	return out, nil
}

// buildCreateInput synthesizes the create-input definition for one source
// object type, keeping the source's field order after exclusions.
func (g *Generator) buildCreateInput(obj *idl.ObjectTypeDefinition) (*idl.InputObjectTypeDefinition, error) {
	input := &idl.InputObjectTypeDefinition{
		Name: CreateInputName(obj.Name),
	}

	for _, field := range obj.Fields {
		if IsSystemFieldName(field.Name) {
			continue
		}
		t, err := g.inputFieldType(obj, field)
		if err != nil {
			return nil, err
		}
		input.Fields = append(input.Fields, &idl.InputValueDefinition{
			Name: field.Name,
			Type: t,
		})
	}

	return input, nil
}

// inputFieldType maps a source field's type reference to its input
// representation. Non-null wrappers are transparent: nullability affects
// IDL-level strictness, not input-shape derivation.
func (g *Generator) inputFieldType(obj *idl.ObjectTypeDefinition, field *idl.FieldDefinition) (idl.TypeRef, error) {
	t := unwrapNonNull(field.Type)

	if list, ok := t.(*idl.ListType); ok {
		elem := unwrapNonNull(list.OfType)
		if _, ok := elem.(*idl.ListType); ok {
			return nil, fmt.Errorf("field %s.%s: list of list is not supported", obj.Name, field.Name)
		}
		named, ok := elem.(*idl.NamedType)
		if !ok {
			return nil, fmt.Errorf("field %s.%s: malformed type reference %s", obj.Name, field.Name, field.Type)
		}
		if target, ok := g.resolve(named.Name).(*idl.ObjectTypeDefinition); ok {
			if field.IsRelation() {
				// Callers supply identifiers of existing entities to
				// relate, not nested data.
				return &idl.ListType{OfType: &idl.NamedType{Name: "ID"}}, nil
			}
			return &idl.ListType{OfType: &idl.NamedType{Name: CreateInputName(target.Name)}}, nil
		}
		return &idl.ListType{OfType: &idl.NamedType{Name: named.Name}}, nil
	}

	named, ok := t.(*idl.NamedType)
	if !ok {
		return nil, fmt.Errorf("field %s.%s: malformed type reference %s", obj.Name, field.Name, field.Type)
	}
	if target, ok := g.resolve(named.Name).(*idl.ObjectTypeDefinition); ok {
		switch {
		case field.IsReference():
			// Callers supply the key value directly, not a nested object.
			return keyFieldType(target), nil
		case field.IsRelation():
			return &idl.NamedType{Name: "ID"}, nil
		default:
			// Embedded composition recurses by name, not by inlining, so
			// mutually composing types stay representable.
			return &idl.NamedType{Name: CreateInputName(target.Name)}, nil
		}
	}
	return &idl.NamedType{Name: named.Name}, nil
}

// keyFieldType returns the type of the target's designated key field, with
// modifiers stripped. Targets without a marked key field fall back to ID.
func keyFieldType(target *idl.ObjectTypeDefinition) idl.TypeRef {
	kf := idl.KeyField(target)
	if kf == nil {
		return &idl.NamedType{Name: "ID"}
	}
	return &idl.NamedType{Name: idl.NamedTypeOf(kf.Type).Name}
}

func unwrapNonNull(t idl.TypeRef) idl.TypeRef {
	if nn, ok := t.(*idl.NonNullType); ok {
		return nn.OfType
	}
	return t
}
