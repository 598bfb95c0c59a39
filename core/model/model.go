package model

import (
	"fmt"
	"sync"

	"github.com/schemakit/schemakit/core/schema"
)

// Model is the registry of all declared and built-in types. It is built once
// from immutable configuration and never mutated afterwards, except for the
// description enrichment pass that runs at the end of construction.
type Model struct {
	types         []Type
	typesByName   map[string]Type
	profiles      map[string]*PermissionProfile
	rootNamespace *Namespace
	declMessages  []schema.ValidationMessage
	enriched      bool

	relOnce   sync.Once
	relations []*Relation
}

// NewModel builds a model from the given project configuration.
//
// Construction never fails: cross-references are resolved by name against
// the fully materialized type list, so declaration order does not matter and
// broken references surface as diagnostics through Validate, not as errors.
func NewModel(cfg schema.ProjectConfig) *Model {
	m := &Model{
		declMessages: cfg.ValidationMessages,
	}

	// 1. Compile permission profiles.
	m.profiles = compileProfiles(cfg.PermissionProfiles)

	// 2. Materialize the type list: built-ins first, then one type per
	// declaration. Each type holds a back-reference to the model so field
	// targets resolve lazily against the final list.
	m.types = builtinTypes()
	for _, decl := range cfg.Types {
		m.types = append(m.types, m.newType(decl))
	}

	// 3. Build the namespace tree from the root entity types.
	m.rootNamespace = buildNamespaceTree(m.RootEntityTypes())

	// 4. Name lookup table. Later duplicates overwrite earlier entries;
	// validation still reports the duplication, so the map is authoritative
	// for lookup only, not for uniqueness.
	m.typesByName = make(map[string]Type, len(m.types))
	for _, t := range m.types {
		m.typesByName[t.Name()] = t
	}

	// 5. Description enrichment, now that all cross-type links resolve.
	m.enrichFieldDescriptions()

	return m
}

func (m *Model) newType(decl schema.TypeDecl) Type {
	base := objectBase{
		model:       m,
		name:        decl.Name,
		kind:        decl.Kind,
		description: decl.Description,
		location:    decl.Location,
	}
	for _, fd := range decl.Fields {
		base.fields = append(base.fields, newField(m, fd))
	}

	var t Type
	switch decl.Kind {
	case schema.KindRootEntity:
		t = &RootEntityType{
			objectBase:    base,
			namespacePath: decl.Namespace,
			keyFieldName:  decl.KeyField,
			profileName:   decl.PermissionProfile,
		}
	case schema.KindChildEntity:
		t = &ChildEntityType{objectBase: base}
	case schema.KindEntityExtension:
		t = &EntityExtensionType{objectBase: base}
	case schema.KindValueObject:
		t = &ValueObjectType{objectBase: base}
	case schema.KindScalar:
		t = &ScalarType{name: decl.Name, description: decl.Description}
	case schema.KindEnum:
		t = &EnumType{
			name:        decl.Name,
			description: decl.Description,
			values:      decl.Values,
			location:    decl.Location,
		}
	default:
		// Unknown kinds were flagged at parse time; keep the name
		// resolvable so the type count stays stable.
		return &InvalidType{name: decl.Name}
	}

	if obj, ok := t.(ObjectType); ok {
		for _, f := range obj.Fields() {
			f.owner = obj
		}
	}
	return t
}

// enrichFieldDescriptions appends a generated sentence to every reference
// field's description, naming the referenced root entity and its key field.
// Guarded so a second invocation is a no-op rather than a double append.
func (m *Model) enrichFieldDescriptions() {
	if m.enriched {
		return
	}
	m.enriched = true

	for _, obj := range m.ObjectTypes() {
		for _, f := range obj.Fields() {
			if !f.IsReference() {
				continue
			}
			target, ok := f.Type().(*RootEntityType)
			if !ok {
				continue
			}
			keyRef := "key"
			if kf, ok := target.KeyField(); ok {
				keyRef = fmt.Sprintf("%q field", kf.Name())
			}
			f.appendDescription(fmt.Sprintf("References a %s by its %s.", target.Name(), keyRef))
		}
	}
}

// Types returns all types, built-ins first, then declarations in order.
func (m *Model) Types() []Type {
	types := make([]Type, len(m.types))
	copy(types, m.types)
	return types
}

// RootEntityTypes returns all root entity types in declaration order.
func (m *Model) RootEntityTypes() []*RootEntityType {
	var types []*RootEntityType
	for _, t := range m.types {
		if rt, ok := t.(*RootEntityType); ok {
			types = append(types, rt)
		}
	}
	return types
}

// ChildEntityTypes returns all child entity types in declaration order.
func (m *Model) ChildEntityTypes() []*ChildEntityType {
	var types []*ChildEntityType
	for _, t := range m.types {
		if ct, ok := t.(*ChildEntityType); ok {
			types = append(types, ct)
		}
	}
	return types
}

// EntityExtensionTypes returns all entity extension types in declaration order.
func (m *Model) EntityExtensionTypes() []*EntityExtensionType {
	var types []*EntityExtensionType
	for _, t := range m.types {
		if et, ok := t.(*EntityExtensionType); ok {
			types = append(types, et)
		}
	}
	return types
}

// ValueObjectTypes returns all value object types in declaration order.
func (m *Model) ValueObjectTypes() []*ValueObjectType {
	var types []*ValueObjectType
	for _, t := range m.types {
		if vt, ok := t.(*ValueObjectType); ok {
			types = append(types, vt)
		}
	}
	return types
}

// ScalarTypes returns all scalar types, built-ins included.
func (m *Model) ScalarTypes() []*ScalarType {
	var types []*ScalarType
	for _, t := range m.types {
		if st, ok := t.(*ScalarType); ok {
			types = append(types, st)
		}
	}
	return types
}

// EnumTypes returns all enum types in declaration order.
func (m *Model) EnumTypes() []*EnumType {
	var types []*EnumType
	for _, t := range m.types {
		if et, ok := t.(*EnumType); ok {
			types = append(types, et)
		}
	}
	return types
}

// ObjectTypes returns all field-bearing types in declaration order.
func (m *Model) ObjectTypes() []ObjectType {
	var types []ObjectType
	for _, t := range m.types {
		if obj, ok := t.(ObjectType); ok {
			types = append(types, obj)
		}
	}
	return types
}
