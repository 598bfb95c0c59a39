package schema

// TypeKind discriminates the declared kind of a type definition.
type TypeKind string

const (
	KindRootEntity      TypeKind = "rootEntity"
	KindChildEntity     TypeKind = "childEntity"
	KindEntityExtension TypeKind = "entityExtension"
	KindValueObject     TypeKind = "valueObject"
	KindScalar          TypeKind = "scalar"
	KindEnum            TypeKind = "enum"
)

// IsObjectKind reports whether types of this kind own fields.
func (k TypeKind) IsObjectKind() bool {
	switch k {
	case KindRootEntity, KindChildEntity, KindEntityExtension, KindValueObject:
		return true
	}
	return false
}

// IsValid reports whether k is one of the declarable kinds.
func (k TypeKind) IsValid() bool {
	return k.IsObjectKind() || k == KindScalar || k == KindEnum
}

// ProjectConfig is the full input for building a model.
type ProjectConfig struct {
	// Types is the ordered sequence of type declarations.
	Types []TypeDecl `yaml:"types"`

	// PermissionProfiles maps profile names to their rule bundles.
	PermissionProfiles map[string]PermissionProfileDecl `yaml:"permissionProfiles,omitempty"`

	// ValidationMessages carries diagnostics from the parse stage.
	// They are merged through the model's validation result unchanged.
	ValidationMessages []ValidationMessage `yaml:"-"`
}

// TypeDecl is a raw type declaration.
type TypeDecl struct {
	// Name is the type name, unique within a project.
	Name string `yaml:"name"`

	// Kind discriminates the type. See TypeKind constants.
	Kind TypeKind `yaml:"kind"`

	// Description for documentation.
	Description string `yaml:"description,omitempty"`

	// Namespace is the declared namespace path (root entities only).
	// Empty means the root namespace.
	Namespace []string `yaml:"namespace,omitempty"`

	// KeyField names the designated key field (root entities only).
	KeyField string `yaml:"keyField,omitempty"`

	// PermissionProfile names the profile guarding this type.
	PermissionProfile string `yaml:"permissionProfile,omitempty"`

	// Fields are the declared fields, in order (object kinds only).
	Fields []FieldDecl `yaml:"fields,omitempty"`

	// Values lists the members of an enum (enum kind only).
	Values []string `yaml:"values,omitempty"`

	// Location points at the declaration's origin, when known.
	Location *MessageLocation `yaml:"-"`
}

// FieldDecl is a raw field declaration.
type FieldDecl struct {
	// Name of the field within its owning type.
	Name string `yaml:"name"`

	// Type is the target type name, without modifiers.
	Type string `yaml:"type"`

	// List wraps the target type in a list.
	List bool `yaml:"list,omitempty"`

	// NonNull marks the outer type as non-nullable.
	NonNull bool `yaml:"nonNull,omitempty"`

	// ItemNonNull marks list items as non-nullable. Only meaningful
	// together with List.
	ItemNonNull bool `yaml:"itemNonNull,omitempty"`

	// Reference marks the field as a by-key reference to a root entity.
	Reference bool `yaml:"reference,omitempty"`

	// Relation carries relation metadata, nil for non-relation fields.
	Relation *RelationDecl `yaml:"relation,omitempty"`

	// Description for documentation.
	Description string `yaml:"description,omitempty"`
}

// RelationDecl declares an association between root entities.
// An empty block declares a forward relation without a named counterpart.
type RelationDecl struct {
	// InverseOf names the field on the target type that declares the
	// other side of the same association.
	InverseOf string `yaml:"inverseOf,omitempty"`
}

// PermissionProfileDecl declares a named, reusable bundle of access rules.
type PermissionProfileDecl struct {
	Permissions []PermissionDecl `yaml:"permissions"`
}

// PermissionDecl is a single access rule inside a profile.
type PermissionDecl struct {
	// Roles that this rule applies to.
	Roles []string `yaml:"roles"`

	// Access granted to those roles. See Access constants.
	Access string `yaml:"access"`
}

// Access levels for permission rules.
const (
	AccessRead      = "read"
	AccessReadWrite = "readWrite"
	AccessCreate    = "create"
	AccessUpdate    = "update"
	AccessDelete    = "delete"
)
