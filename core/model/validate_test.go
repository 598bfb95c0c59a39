package model

import (
	"strings"
	"testing"

	"github.com/schemakit/schemakit/core/schema"
)

func errorsContaining(result schema.ValidationResult, substr string) []schema.ValidationMessage {
	var found []schema.ValidationMessage
	for _, msg := range result.Messages() {
		if msg.Severity == schema.SeverityError && strings.Contains(msg.Message, substr) {
			found = append(found, msg)
		}
	}
	return found
}

func TestValidate_CleanModel(t *testing.T) {
	m := NewModel(testConfig())
	result := m.Validate(nil)
	if result.HasErrors() {
		t.Errorf("clean model should validate, got:\n%s", result)
	}
}

func TestValidate_DuplicateTypeNames(t *testing.T) {
	cfg := testConfig()
	cfg.Types = append(cfg.Types, schema.TypeDecl{
		Name: "User", Kind: schema.KindValueObject,
		Fields: []schema.FieldDecl{{Name: "name", Type: "String"}},
	})
	m := NewModel(cfg)

	// One error per non-built-in member of the duplicated name.
	result := m.Validate(nil)
	dups := errorsContaining(result, `duplicate type name "User"`)
	if len(dups) != 2 {
		t.Errorf("duplicate errors = %d, want 2:\n%s", len(dups), result)
	}
}

func TestValidate_BuiltinShadowing(t *testing.T) {
	cfg := testConfig()
	cfg.Types = append(cfg.Types, schema.TypeDecl{
		Name: "DateTime", Kind: schema.KindScalar,
	})
	m := NewModel(cfg)

	result := m.Validate(nil)

	// Exactly one diagnostic: the declaration, not the built-in, and with
	// the reserved wording rather than the generic duplicate wording.
	reserved := errorsContaining(result, `reserved by a built-in type`)
	if len(reserved) != 1 {
		t.Fatalf("reserved errors = %d, want 1:\n%s", len(reserved), result)
	}
	if !strings.Contains(reserved[0].Message, `"DateTime"`) {
		t.Errorf("reserved error = %q, want it to name DateTime", reserved[0].Message)
	}
	if dups := errorsContaining(result, "duplicate type name"); len(dups) != 0 {
		t.Errorf("builtin shadowing should not use duplicate wording: %v", dups)
	}
}

func TestValidate_UndefinedFieldTarget(t *testing.T) {
	cfg := testConfig()
	cfg.Types[0].Fields = append(cfg.Types[0].Fields,
		schema.FieldDecl{Name: "avatar", Type: "Image"})
	m := NewModel(cfg)

	result := m.Validate(nil)
	if len(errorsContaining(result, `references undefined type "Image"`)) != 1 {
		t.Errorf("undefined target not reported:\n%s", result)
	}
}

func TestValidate_ReferenceToNonRootEntity(t *testing.T) {
	cfg := testConfig()
	cfg.Types[0].Fields = append(cfg.Types[0].Fields,
		schema.FieldDecl{Name: "home", Type: "Address", Reference: true})
	m := NewModel(cfg)

	result := m.Validate(nil)
	if len(errorsContaining(result, "is not a root entity")) != 1 {
		t.Errorf("bad reference target not reported:\n%s", result)
	}
}

func TestValidate_RelationOutsideRootEntity(t *testing.T) {
	cfg := testConfig()
	cfg.Types[2].Fields = append(cfg.Types[2].Fields,
		schema.FieldDecl{Name: "owner", Type: "User", Relation: &schema.RelationDecl{}})
	m := NewModel(cfg)

	result := m.Validate(nil)
	if len(errorsContaining(result, "is not a root entity")) == 0 {
		t.Errorf("relation on value object not reported:\n%s", result)
	}
}

func TestValidate_MissingKeyField(t *testing.T) {
	cfg := testConfig()
	cfg.Types[0].KeyField = "uuid"
	m := NewModel(cfg)

	result := m.Validate(nil)
	if len(errorsContaining(result, `key field "uuid"`)) != 1 {
		t.Errorf("missing key field not reported:\n%s", result)
	}
}

func TestValidate_UnknownPermissionProfile(t *testing.T) {
	cfg := testConfig()
	cfg.Types[0].PermissionProfile = "nonexistent"
	m := NewModel(cfg)

	result := m.Validate(nil)
	if len(errorsContaining(result, `unknown permission profile "nonexistent"`)) != 1 {
		t.Errorf("unknown profile not reported:\n%s", result)
	}
}

func TestValidate_CarriesParseMessages(t *testing.T) {
	cfg := testConfig()
	carried := schema.NewWarning("legacy syntax", &schema.MessageLocation{File: "old.yaml"})
	cfg.ValidationMessages = []schema.ValidationMessage{carried}
	m := NewModel(cfg)

	result := m.Validate(nil)
	msgs := result.Messages()
	if len(msgs) == 0 || msgs[0].Message != "legacy syntax" {
		t.Errorf("carried message should come first, got %v", msgs)
	}
}

func TestValidate_SharedContextPools(t *testing.T) {
	ctx := schema.NewValidationContext()
	ctx.Add(schema.SeverityError, "from another component", nil)

	m := NewModel(testConfig())
	result := m.Validate(ctx)

	if len(errorsContaining(result, "from another component")) != 1 {
		t.Error("externally supplied context should be pooled into the result")
	}
}

func TestValidate_DoesNotMutateModel(t *testing.T) {
	cfg := testConfig()
	cfg.Types = append(cfg.Types, schema.TypeDecl{Name: "Color", Kind: schema.KindEnum})
	m := NewModel(cfg)

	first := m.Validate(nil)
	second := m.Validate(nil)
	if len(first.Messages()) != len(second.Messages()) {
		t.Errorf("repeated validation diverged: %d vs %d",
			len(first.Messages()), len(second.Messages()))
	}
}
