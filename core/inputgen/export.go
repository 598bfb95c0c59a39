package inputgen

import (
	"github.com/schemakit/schemakit/core/idl"
	"github.com/schemakit/schemakit/core/model"
)

// Export renders a materialized model as an IDL document. The document is
// structurally parallel to the model: one object definition per object-like
// type with its kind, key, reference and relation metadata as directives,
// plus scalar and enum definitions for the declared (non-built-in) types.
// Built-in scalars stay implicit, like the model's built-in set.
func Export(m *model.Model) *idl.Document {
	doc := &idl.Document{}

	for _, t := range m.Types() {
		switch v := t.(type) {
		case *model.RootEntityType:
			doc.Definitions = append(doc.Definitions, exportObject(v, v.KeyFieldName(), idl.DirectiveRootEntity))
		case *model.ChildEntityType:
			doc.Definitions = append(doc.Definitions, exportObject(v, "", idl.DirectiveChildEntity))
		case *model.EntityExtensionType:
			doc.Definitions = append(doc.Definitions, exportObject(v, "", idl.DirectiveEntityExtension))
		case *model.ValueObjectType:
			doc.Definitions = append(doc.Definitions, exportObject(v, "", idl.DirectiveValueObject))
		case *model.ScalarType:
			if v.IsBuiltin() {
				continue
			}
			doc.Definitions = append(doc.Definitions, &idl.ScalarTypeDefinition{
				Name:        v.Name(),
				Description: v.Description(),
			})
		case *model.EnumType:
			doc.Definitions = append(doc.Definitions, &idl.EnumTypeDefinition{
				Name:        v.Name(),
				Description: v.Description(),
				Values:      v.Values(),
			})
		}
	}

	return doc
}

func exportObject(t model.ObjectType, keyFieldName, kindDirective string) *idl.ObjectTypeDefinition {
	def := &idl.ObjectTypeDefinition{
		Name:        t.Name(),
		Description: t.Description(),
		Directives:  []idl.Directive{{Name: kindDirective}},
	}

	for _, f := range t.Fields() {
		fd := &idl.FieldDefinition{
			Name:        f.Name(),
			Description: f.Description(),
			Type:        exportTypeRef(f),
		}
		if keyFieldName != "" && f.Name() == keyFieldName {
			fd.Directives = append(fd.Directives, idl.Directive{Name: idl.DirectiveKey})
		}
		if f.IsReference() {
			fd.Directives = append(fd.Directives, idl.Directive{Name: idl.DirectiveReference})
		}
		if f.IsRelation() {
			dir := idl.Directive{Name: idl.DirectiveRelation}
			if inv := f.InverseOf(); inv != "" {
				dir.Arguments = map[string]string{"inverseOf": inv}
			}
			fd.Directives = append(fd.Directives, dir)
		}
		def.Fields = append(def.Fields, fd)
	}

	return def
}

// exportTypeRef rebuilds the wrapped type reference from the field's
// declared modifiers: innermost the named type, then item non-null, list,
// and outer non-null.
func exportTypeRef(f *model.Field) idl.TypeRef {
	var t idl.TypeRef = &idl.NamedType{Name: f.TypeName()}
	if f.IsList() {
		if f.IsItemNonNull() {
			t = &idl.NonNullType{OfType: t}
		}
		t = &idl.ListType{OfType: t}
	}
	if f.IsNonNull() {
		t = &idl.NonNullType{OfType: t}
	}
	return t
}

// DeriveDocument is the full pipeline over a model: export it to an IDL
// document and append the create-input definitions.
func DeriveDocument(m *model.Model) (*idl.Document, error) {
	doc := Export(m)
	return New(doc.Resolver()).Generate(doc)
}
