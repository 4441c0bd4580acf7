package credentials

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/24KD1A0503/jn/internal/models"
)

// DemoIdentities are the four built-in accounts used when no other
// identity source is configured.
func DemoIdentities() []Seed {
	return []Seed{
		{Username: "priya_sharma", Password: "Tourist@123", Role: models.RoleTourist, DisplayName: "Priya Sharma"},
		{Username: "officer_singh", Password: "Police@789", Role: models.RolePolice, DisplayName: "Officer Singh"},
		{Username: "dr_patel", Password: "Doctor@101", Role: models.RoleHospital, DisplayName: "Dr. Patel"},
		{Username: "tourism_admin", Password: "Tourism@202", Role: models.RoleTourism, DisplayName: "Tourism Admin"},
	}
}

// DemoFor returns the demo identity for a role.
func DemoFor(role models.Role) (Seed, bool) {
	for _, s := range DemoIdentities() {
		if s.Role == role {
			return s, true
		}
	}
	return Seed{}, false
}

type StaticSource []Seed

func (s StaticSource) Seeds(context.Context) ([]Seed, error) {
	out := make([]Seed, len(s))
	copy(out, s)
	return out, nil
}

// FileSource reads identities from a YAML document of the form
//
//	users:
//	  - username: priya_sharma
//	    password_hash: $2a$12$...
//	    role: tourist
//	    display_name: Priya Sharma
type FileSource struct {
	Path string
}

type identityFile struct {
	Users []Seed `yaml:"users"`
}

func (f FileSource) Seeds(context.Context) ([]Seed, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, err
	}
	var doc identityFile
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.Path, err)
	}
	return doc.Users, nil
}
