package model

import (
	"strings"
	"testing"

	"github.com/schemakit/schemakit/core/schema"
)

func profileConfig() schema.ProjectConfig {
	return schema.ProjectConfig{
		Types: []schema.TypeDecl{
			{
				Name: "Order", Kind: schema.KindRootEntity, KeyField: "id",
				PermissionProfile: "restricted",
				Fields:            []schema.FieldDecl{{Name: "id", Type: "ID"}},
			},
			{
				Name: "Customer", Kind: schema.KindRootEntity, KeyField: "id",
				Fields: []schema.FieldDecl{{Name: "id", Type: "ID"}},
			},
		},
		PermissionProfiles: map[string]schema.PermissionProfileDecl{
			"default": {Permissions: []schema.PermissionDecl{
				{Roles: []string{"admin"}, Access: schema.AccessReadWrite},
			}},
			"restricted": {Permissions: []schema.PermissionDecl{
				{Roles: []string{"accounting"}, Access: schema.AccessRead},
				{Roles: []string{"admin"}, Access: schema.AccessReadWrite},
			}},
		},
	}
}

func TestPermissionProfileLookup(t *testing.T) {
	m := NewModel(profileConfig())

	p, ok := m.PermissionProfile("restricted")
	if !ok {
		t.Fatal("restricted profile not found")
	}
	if p.Name() != "restricted" {
		t.Errorf("Name() = %q", p.Name())
	}
	perms := p.Permissions()
	if len(perms) != 2 {
		t.Fatalf("Permissions() length = %d, want 2", len(perms))
	}
	if perms[0].Access != schema.AccessRead || perms[0].Roles[0] != "accounting" {
		t.Errorf("first permission = %+v", perms[0])
	}

	if _, ok := m.PermissionProfile("nope"); ok {
		t.Error("lookup of unknown profile should report absence")
	}
}

func TestRequirePermissionProfile(t *testing.T) {
	m := NewModel(profileConfig())

	if _, err := m.RequirePermissionProfile("default"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	_, err := m.RequirePermissionProfile("nope")
	if err == nil {
		t.Fatal("expected error for unknown profile")
	}
	if !strings.Contains(err.Error(), `undefined permission profile "nope"`) {
		t.Errorf("error = %q", err)
	}
}

func TestDefaultPermissionProfile(t *testing.T) {
	m := NewModel(profileConfig())

	p, ok := m.DefaultPermissionProfile()
	if !ok {
		t.Fatal("default profile not found")
	}
	if p.Name() != DefaultProfileName {
		t.Errorf("Name() = %q", p.Name())
	}
}

func TestRootEntityProfileResolution(t *testing.T) {
	m := NewModel(profileConfig())

	order, _ := m.RootEntityTypeByName("Order")
	p, ok := order.PermissionProfile()
	if !ok || p.Name() != "restricted" {
		t.Errorf("Order profile = %v, %v", p, ok)
	}

	// Customer names no profile and falls back to the default.
	customer, _ := m.RootEntityTypeByName("Customer")
	p, ok = customer.PermissionProfile()
	if !ok || p.Name() != DefaultProfileName {
		t.Errorf("Customer profile = %v, %v", p, ok)
	}
}

func TestPermissionsAreCopied(t *testing.T) {
	m := NewModel(profileConfig())

	p, _ := m.PermissionProfile("restricted")
	perms := p.Permissions()
	perms[0].Access = schema.AccessDelete

	again := p.Permissions()
	if again[0].Access != schema.AccessRead {
		t.Error("mutating the returned slice must not affect the profile")
	}
}
