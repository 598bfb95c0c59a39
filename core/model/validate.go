package model

import (
	"fmt"

	"github.com/schemakit/schemakit/core/schema"
)

// Validate checks the model and returns all diagnostics: messages carried
// over from the parse stage, duplicate-name errors, and the per-kind checks
// of every type. Passing a shared context pools diagnostics across multiple
// validated components; passing nil uses a fresh one.
func (m *Model) Validate(ctx *schema.ValidationContext) schema.ValidationResult {
	if ctx == nil {
		ctx = schema.NewValidationContext()
	}

	for _, msg := range m.declMessages {
		ctx.AddMessage(msg)
	}

	m.checkDuplicateNames(ctx)

	for _, t := range m.types {
		t.Validate(ctx)
	}

	return ctx.Result()
}

// checkDuplicateNames reports every non-built-in member of a duplicated
// name. Built-ins are exempt even when shadowed; a declaration that shadows
// a built-in gets the reserved-name wording instead of the generic one, so
// callers can tell the remediation paths apart.
func (m *Model) checkDuplicateNames(ctx *schema.ValidationContext) {
	count := make(map[string]int, len(m.types))
	for _, t := range m.types {
		count[t.Name()]++
	}

	for _, t := range m.types {
		if count[t.Name()] < 2 {
			continue
		}
		if st, ok := t.(*ScalarType); ok && st.IsBuiltin() {
			continue
		}
		loc := typeLocation(t)
		if IsBuiltinName(t.Name()) {
			ctx.Add(schema.SeverityError,
				fmt.Sprintf("type name %q is reserved by a built-in type", t.Name()), loc)
		} else {
			ctx.Add(schema.SeverityError,
				fmt.Sprintf("duplicate type name %q", t.Name()), loc)
		}
	}
}

func typeLocation(t Type) *schema.MessageLocation {
	switch v := t.(type) {
	case *RootEntityType:
		return v.location
	case *ChildEntityType:
		return v.location
	case *EntityExtensionType:
		return v.location
	case *ValueObjectType:
		return v.location
	case *EnumType:
		return v.location
	}
	return nil
}
