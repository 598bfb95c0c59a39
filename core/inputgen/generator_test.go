package inputgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemakit/schemakit/core/idl"
)

func named(name string) *idl.NamedType  { return &idl.NamedType{Name: name} }
func nonNull(t idl.TypeRef) idl.TypeRef { return &idl.NonNullType{OfType: t} }
func listOf(t idl.TypeRef) idl.TypeRef  { return &idl.ListType{OfType: t} }
func dir(name string) idl.Directive     { return idl.Directive{Name: name} }

// blogDocument models a small blog schema: User and Post root entities,
// a Comment child entity, an Address value object and a Tag without a key.
func blogDocument() *idl.Document {
	return &idl.Document{Definitions: []idl.Definition{
		&idl.ObjectTypeDefinition{
			Name:       "User",
			Directives: []idl.Directive{dir(idl.DirectiveRootEntity)},
			Fields: []*idl.FieldDefinition{
				{Name: "id", Type: named("ID"), Directives: []idl.Directive{dir(idl.DirectiveKey)}},
				{Name: "createdAt", Type: named("DateTime")},
				{Name: "updatedAt", Type: named("DateTime")},
				{Name: "name", Type: nonNull(named("String"))},
			},
		},
		&idl.ObjectTypeDefinition{
			Name:       "Post",
			Directives: []idl.Directive{dir(idl.DirectiveRootEntity)},
			Fields: []*idl.FieldDefinition{
				{Name: "id", Type: named("ID"), Directives: []idl.Directive{dir(idl.DirectiveKey)}},
				{Name: "title", Type: nonNull(named("String"))},
				{Name: "author", Type: named("User"), Directives: []idl.Directive{dir(idl.DirectiveReference)}},
				{Name: "related", Type: listOf(named("Post")), Directives: []idl.Directive{dir(idl.DirectiveRelation)}},
				{Name: "comments", Type: listOf(nonNull(named("Comment")))},
				{Name: "address", Type: named("Address")},
				{Name: "tags", Type: listOf(named("String"))},
			},
		},
		&idl.ObjectTypeDefinition{
			Name:       "Comment",
			Directives: []idl.Directive{dir(idl.DirectiveChildEntity)},
			Fields: []*idl.FieldDefinition{
				{Name: "id", Type: named("ID")},
				{Name: "text", Type: named("String")},
				{Name: "author", Type: named("User"), Directives: []idl.Directive{dir(idl.DirectiveRelation)}},
			},
		},
		&idl.ObjectTypeDefinition{
			Name:       "Address",
			Directives: []idl.Directive{dir(idl.DirectiveValueObject)},
			Fields: []*idl.FieldDefinition{
				{Name: "street", Type: named("String")},
			},
		},
	}}
}

func generate(t *testing.T, doc *idl.Document) *idl.Document {
	t.Helper()
	out, err := New(doc.Resolver()).Generate(doc)
	require.NoError(t, err)
	return out
}

func inputByName(t *testing.T, doc *idl.Document, name string) *idl.InputObjectTypeDefinition {
	t.Helper()
	def := doc.Resolver()(name)
	require.NotNil(t, def, "definition %s not found", name)
	input, ok := def.(*idl.InputObjectTypeDefinition)
	require.True(t, ok, "definition %s is %T", name, def)
	return input
}

func TestGenerate_AppendsInputsRootsFirst(t *testing.T) {
	doc := blogDocument()
	out := generate(t, doc)

	require.Len(t, out.Definitions, len(doc.Definitions)+3)

	var appended []string
	for _, def := range out.Definitions[len(doc.Definitions):] {
		appended = append(appended, def.DefName())
	}
	// Root entities in declaration order, then child entities.
	assert.Equal(t, []string{"CreateUserInput", "CreatePostInput", "CreateCommentInput"}, appended)
}

func TestGenerate_DoesNotMutateInput(t *testing.T) {
	doc := blogDocument()
	before := len(doc.Definitions)
	generate(t, doc)
	assert.Len(t, doc.Definitions, before)
}

func TestGenerate_PostInput(t *testing.T) {
	out := generate(t, blogDocument())
	input := inputByName(t, out, "CreatePostInput")

	var fields []string
	for _, f := range input.Fields {
		fields = append(fields, f.Name+": "+f.Type.String())
	}
	// Non-null modifiers stripped, references collapsed to the target's key
	// type, relations to identifiers, embedded objects recursed by name and
	// scalar lists kept as-is.
	assert.Equal(t, []string{
		"title: String",
		"author: ID",
		"related: [ID]",
		"comments: [CreateCommentInput]",
		"address: CreateAddressInput",
		"tags: [String]",
	}, fields)
}

func TestGenerate_ExcludesSystemFields(t *testing.T) {
	out := generate(t, blogDocument())
	input := inputByName(t, out, "CreateUserInput")

	require.Len(t, input.Fields, 1)
	assert.Equal(t, "name", input.Fields[0].Name)
}

func TestGenerate_ReferenceKeyTypeFallsBackToID(t *testing.T) {
	doc := &idl.Document{Definitions: []idl.Definition{
		&idl.ObjectTypeDefinition{
			Name:       "Keyless",
			Directives: []idl.Directive{dir(idl.DirectiveRootEntity)},
			Fields:     []*idl.FieldDefinition{{Name: "label", Type: named("String")}},
		},
		&idl.ObjectTypeDefinition{
			Name:       "Holder",
			Directives: []idl.Directive{dir(idl.DirectiveRootEntity)},
			Fields: []*idl.FieldDefinition{
				{Name: "target", Type: named("Keyless"), Directives: []idl.Directive{dir(idl.DirectiveReference)}},
			},
		},
	}}
	out := generate(t, doc)
	input := inputByName(t, out, "CreateHolderInput")

	require.Len(t, input.Fields, 1)
	assert.Equal(t, "ID", input.Fields[0].Type.String())
}

func TestGenerate_ReferenceUsesDeclaredKeyType(t *testing.T) {
	doc := &idl.Document{Definitions: []idl.Definition{
		&idl.ObjectTypeDefinition{
			Name:       "Country",
			Directives: []idl.Directive{dir(idl.DirectiveRootEntity)},
			Fields: []*idl.FieldDefinition{
				{Name: "isoCode", Type: nonNull(named("String")), Directives: []idl.Directive{dir(idl.DirectiveKey)}},
			},
		},
		&idl.ObjectTypeDefinition{
			Name:       "Shipment",
			Directives: []idl.Directive{dir(idl.DirectiveRootEntity)},
			Fields: []*idl.FieldDefinition{
				{Name: "destination", Type: named("Country"), Directives: []idl.Directive{dir(idl.DirectiveReference)}},
			},
		},
	}}
	out := generate(t, doc)
	input := inputByName(t, out, "CreateShipmentInput")

	require.Len(t, input.Fields, 1)
	// Key field type with the non-null modifier stripped.
	assert.Equal(t, "String", input.Fields[0].Type.String())
}

func TestGenerate_ListOfListFails(t *testing.T) {
	doc := &idl.Document{Definitions: []idl.Definition{
		&idl.ObjectTypeDefinition{
			Name:       "Grid",
			Directives: []idl.Directive{dir(idl.DirectiveRootEntity)},
			Fields: []*idl.FieldDefinition{
				{Name: "cells", Type: listOf(listOf(named("Int")))},
			},
		},
	}}
	_, err := New(doc.Resolver()).Generate(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Grid.cells")
	assert.Contains(t, err.Error(), "list of list")
}

func TestGenerate_PlainObjectsIgnored(t *testing.T) {
	doc := &idl.Document{Definitions: []idl.Definition{
		&idl.ObjectTypeDefinition{
			Name:       "Address",
			Directives: []idl.Directive{dir(idl.DirectiveValueObject)},
			Fields:     []*idl.FieldDefinition{{Name: "street", Type: named("String")}},
		},
		&idl.ScalarTypeDefinition{Name: "Money"},
	}}
	out := generate(t, doc)
	// Neither value objects nor scalars get a create input of their own.
	assert.Len(t, out.Definitions, 2)
}

func TestGenerate_MutualComposition(t *testing.T) {
	doc := &idl.Document{Definitions: []idl.Definition{
		&idl.ObjectTypeDefinition{
			Name:       "Order",
			Directives: []idl.Directive{dir(idl.DirectiveRootEntity)},
			Fields: []*idl.FieldDefinition{
				{Name: "items", Type: listOf(named("OrderItem"))},
			},
		},
		&idl.ObjectTypeDefinition{
			Name:       "OrderItem",
			Directives: []idl.Directive{dir(idl.DirectiveChildEntity)},
			Fields: []*idl.FieldDefinition{
				{Name: "parent", Type: named("Order")},
			},
		},
	}}
	out := generate(t, doc)

	order := inputByName(t, out, "CreateOrderInput")
	assert.Equal(t, "[CreateOrderItemInput]", order.Fields[0].Type.String())
	item := inputByName(t, out, "CreateOrderItemInput")
	// Recursion is by name, so mutual composition stays representable.
	assert.Equal(t, "CreateOrderInput", item.Fields[0].Type.String())
}
