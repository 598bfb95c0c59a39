/*
Package schema defines the raw declaration types for domain model definitions.

A project definition is a set of typed entity declarations, enumerations,
scalars, and permission profiles. Declarations are plain data: they carry no
cross-references and no derived information. The model package materializes
them into a resolved, validated type graph.

# Definition files

A minimal definition in YAML:

	types:
	  - name: User
	    kind: rootEntity
	    keyField: id
	    fields:
	      - { name: id, type: ID, nonNull: true }
	      - { name: email, type: String }

	  - name: Post
	    kind: rootEntity
	    namespace: [content]
	    fields:
	      - { name: id, type: ID, nonNull: true }
	      - { name: title, type: String }
	      - { name: author, type: User, reference: true }

	permissionProfiles:
	  default:
	    permissions:
	      - { roles: [admin], access: readWrite }

# Type kinds

  - rootEntity:      top-level entity with its own key field
  - childEntity:     entity nested under a root entity
  - entityExtension: field group mixed into an entity
  - valueObject:     embedded composite value without identity
  - scalar:          custom scalar
  - enum:            closed set of named values

# Field classification

A field whose target is a root entity and which is marked `reference: true`
points at that entity by key. A field carrying a `relation` block declares an
association resolved via identifiers. Every other object-typed field is
embedded composition.

# Diagnostics

Structural problems found while reading definition files are collected as
ValidationMessages on the parsed config, not returned as errors. They are
merged into the model's validation result so callers see one ordered list.
*/
package schema
