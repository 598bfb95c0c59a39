package idl

// TypeResolver returns the definition node for a type name, or nil when the
// document does not define it.
type TypeResolver func(name string) Definition

// Resolver builds a name-based resolver over the document's definitions.
// Later definitions with a duplicate name overwrite earlier entries, mirroring
// the model's lookup table semantics.
func (d *Document) Resolver() TypeResolver {
	byName := make(map[string]Definition, len(d.Definitions))
	for _, def := range d.Definitions {
		byName[def.DefName()] = def
	}
	return func(name string) Definition {
		return byName[name]
	}
}

// KeyField returns the designated key field of an object type definition,
// or nil when none is marked.
func KeyField(def *ObjectTypeDefinition) *FieldDefinition {
	for _, f := range def.Fields {
		if f.IsKey() {
			return f
		}
	}
	return nil
}
