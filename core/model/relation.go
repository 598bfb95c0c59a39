package model

import "fmt"

// Relation is a computed description of an association between two root
// entity types, derived from relation-classified fields. The declaring side
// is From; To is the target, with ToField set to the counterpart field when
// one is declared or implied.
type Relation struct {
	FromType  *RootEntityType
	FromField *Field
	ToType    *RootEntityType
	ToField   *Field
}

// Identifier returns a normalized, order-independent key over the two sides
// of the relation. Two relations describing the same association from
// opposite ends produce the same identifier.
func (r *Relation) Identifier() string {
	a := r.FromType.Name() + "." + r.FromField.Name()
	b := r.ToType.Name()
	if r.ToField != nil {
		b += "." + r.ToField.Name()
	}
	if b < a {
		a, b = b, a
	}
	return a + "~" + b
}

func (r *Relation) String() string {
	return fmt.Sprintf("relation %s.%s -> %s", r.FromType.Name(), r.FromField.Name(), r.ToType.Name())
}

// ExplicitRelations returns the relations declared by this type's relation
// fields, in field order. Each is paired with the implied counterpart field
// on the target when one is declared there.
func (t *RootEntityType) ExplicitRelations() []*Relation {
	var rels []*Relation
	for _, f := range t.Fields() {
		if !f.IsRelation() {
			continue
		}
		target, ok := t.model.RootEntityTypeByName(f.TypeName())
		if !ok {
			// Undefined or non-root targets are a validation concern.
			continue
		}
		rels = append(rels, &Relation{
			FromType:  t,
			FromField: f,
			ToType:    target,
			ToField:   counterpartField(t, f, target),
		})
	}
	return rels
}

// counterpartField finds the field on the target that declares the other
// side of the same association: either the field named by this side's
// inverseOf, or a relation field on the target whose inverseOf names this
// field.
func counterpartField(owner *RootEntityType, f *Field, target *RootEntityType) *Field {
	if inv := f.InverseOf(); inv != "" {
		if rf, ok := target.FieldByName(inv); ok {
			return rf
		}
		return nil
	}
	for _, rf := range target.Fields() {
		if rf.IsRelation() && rf.InverseOf() == f.Name() && rf.TypeName() == owner.Name() {
			return rf
		}
	}
	return nil
}

// Relations returns the global relation set: the identifier-deduplicated
// union of every root entity's explicit relations, first occurrence kept in
// iteration order. The set is a pure function of the finalized type list and
// is computed once per model, safe to share across readers.
func (m *Model) Relations() []*Relation {
	m.relOnce.Do(func() {
		seen := make(map[string]bool)
		for _, rt := range m.RootEntityTypes() {
			for _, rel := range rt.ExplicitRelations() {
				id := rel.Identifier()
				if seen[id] {
					continue
				}
				seen[id] = true
				m.relations = append(m.relations, rel)
			}
		}
	})
	return m.relations
}
