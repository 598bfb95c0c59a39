package model

import (
	"fmt"

	"github.com/schemakit/schemakit/core/schema"
)

// DefaultProfileName marks the profile applied to types that do not name
// one. It is resolved through the normal lookup; declaring it is the schema
// author's responsibility.
const DefaultProfileName = "default"

// Permission is a single access rule inside a profile.
type Permission struct {
	Roles  []string
	Access string
}

// PermissionProfile is a named, immutable bundle of access rules.
type PermissionProfile struct {
	name        string
	permissions []Permission
}

// Name returns the profile name.
func (p *PermissionProfile) Name() string { return p.name }

// Permissions returns the profile's rules in declaration order.
func (p *PermissionProfile) Permissions() []Permission {
	perms := make([]Permission, len(p.permissions))
	copy(perms, p.permissions)
	return perms
}

func compileProfiles(decls map[string]schema.PermissionProfileDecl) map[string]*PermissionProfile {
	profiles := make(map[string]*PermissionProfile, len(decls))
	for name, decl := range decls {
		profile := &PermissionProfile{name: name}
		for _, pd := range decl.Permissions {
			roles := make([]string, len(pd.Roles))
			copy(roles, pd.Roles)
			profile.permissions = append(profile.permissions, Permission{
				Roles:  roles,
				Access: pd.Access,
			})
		}
		profiles[name] = profile
	}
	return profiles
}

// PermissionProfile returns the profile with the given name.
func (m *Model) PermissionProfile(name string) (*PermissionProfile, bool) {
	p, ok := m.profiles[name]
	return p, ok
}

// RequirePermissionProfile returns the profile with the given name or fails.
func (m *Model) RequirePermissionProfile(name string) (*PermissionProfile, error) {
	p, ok := m.profiles[name]
	if !ok {
		return nil, fmt.Errorf("reference to undefined permission profile %q", name)
	}
	return p, nil
}

// DefaultPermissionProfile returns the designated default profile, if declared.
func (m *Model) DefaultPermissionProfile() (*PermissionProfile, bool) {
	return m.PermissionProfile(DefaultProfileName)
}
