package credentials

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/24KD1A0503/jn/internal/models"
)

var fast = BcryptVerifier{Cost: bcrypt.MinCost}

func demoStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(DemoIdentities(), fast)
	require.NoError(t, err)
	return s
}

func TestStore_LookupAndVerifyDemoIdentities(t *testing.T) {
	s := demoStore(t)
	require.Equal(t, 4, s.Len())

	for _, seed := range DemoIdentities() {
		t.Run(seed.Username, func(t *testing.T) {
			rec, err := s.Lookup(seed.Username)
			require.NoError(t, err)
			assert.Equal(t, seed.Username, rec.ID)
			assert.Equal(t, seed.DisplayName, rec.DisplayName)
			assert.Equal(t, seed.Role, rec.Role)
			assert.NotEqual(t, seed.Password, rec.PasswordHash, "plaintext must not be stored")

			assert.Equal(t, Match, s.Verify(rec, seed.Password, seed.Role))
			assert.Equal(t, PasswordMismatch, s.Verify(rec, seed.Password+"x", seed.Role))
		})
	}
}

func TestStore_VerifyChecksPasswordBeforeRole(t *testing.T) {
	s := demoStore(t)
	rec, err := s.Lookup("officer_singh")
	require.NoError(t, err)

	assert.Equal(t, RoleMismatch, s.Verify(rec, "Police@789", models.RoleTourist))
	assert.Equal(t, PasswordMismatch, s.Verify(rec, "wrong", models.RoleTourist))
}

func TestStore_LookupUnknown(t *testing.T) {
	s := demoStore(t)
	_, err := s.Lookup("nonexistent_user")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Lookup("")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNew_RejectsBadSeeds(t *testing.T) {
	cases := map[string][]Seed{
		"empty username": {{Password: "x", Role: models.RoleTourist}},
		"unknown role":   {{Username: "a", Password: "x", Role: "admin"}},
		"no password":    {{Username: "a", Role: models.RoleTourist}},
		"duplicate": {
			{Username: "a", Password: "x", Role: models.RoleTourist},
			{Username: "a", Password: "y", Role: models.RolePolice},
		},
	}
	for name, seeds := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(seeds, fast)
			assert.Error(t, err)
		})
	}

	_, err := New(DemoIdentities(), nil)
	assert.Error(t, err)
}

func TestNew_KeepsExistingHashAndHashesLegacyPlaintext(t *testing.T) {
	pre, err := fast.Hash("Secret@1")
	require.NoError(t, err)

	s, err := New([]Seed{
		{Username: "hashed", PasswordHash: pre, Role: models.RolePolice},
		{Username: "legacy", PasswordHash: "Plain@1", Role: models.RoleHospital, DisplayName: "  Legacy Row "},
	}, fast)
	require.NoError(t, err)

	rec, err := s.Lookup("hashed")
	require.NoError(t, err)
	assert.Equal(t, pre, rec.PasswordHash)
	assert.Equal(t, "hashed", rec.DisplayName, "display name falls back to username")
	assert.Equal(t, Match, s.Verify(rec, "Secret@1", models.RolePolice))

	rec, err = s.Lookup("legacy")
	require.NoError(t, err)
	assert.True(t, IsBcryptHash(rec.PasswordHash))
	assert.Equal(t, "Legacy Row", rec.DisplayName)
	assert.Equal(t, Match, s.Verify(rec, "Plain@1", models.RoleHospital))
}

func TestNew_CopiesInput(t *testing.T) {
	seeds := DemoIdentities()
	s, err := New(seeds, fast)
	require.NoError(t, err)

	seeds[0].Role = models.RolePolice
	rec, err := s.Lookup("priya_sharma")
	require.NoError(t, err)
	assert.Equal(t, models.RoleTourist, rec.Role)
}

func TestLoad_FromSources(t *testing.T) {
	t.Run("static", func(t *testing.T) {
		s, err := Load(context.Background(), StaticSource(DemoIdentities()), fast)
		require.NoError(t, err)
		assert.Equal(t, []string{"dr_patel", "officer_singh", "priya_sharma", "tourism_admin"}, s.Usernames())
	})

	t.Run("empty source", func(t *testing.T) {
		_, err := Load(context.Background(), StaticSource(nil), fast)
		assert.Error(t, err)
	})

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "users.yaml")
		doc := "users:\n" +
			"  - username: ranger_rao\n" +
			"    password: Ranger@1\n" +
			"    role: tourism\n" +
			"    display_name: Ranger Rao\n"
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

		s, err := Load(context.Background(), FileSource{Path: path}, fast)
		require.NoError(t, err)
		rec, err := s.Lookup("ranger_rao")
		require.NoError(t, err)
		assert.Equal(t, "Ranger Rao", rec.DisplayName)
		assert.Equal(t, Match, s.Verify(rec, "Ranger@1", models.RoleTourism))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(context.Background(), FileSource{Path: filepath.Join(t.TempDir(), "none.yaml")}, fast)
		assert.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("users: [unterminated"), 0o600))
		_, err := Load(context.Background(), FileSource{Path: path}, fast)
		assert.Error(t, err)
	})
}

func TestDemoFor(t *testing.T) {
	for _, r := range models.Roles {
		seed, ok := DemoFor(r)
		require.True(t, ok, r)
		assert.Equal(t, r, seed.Role)
	}
	_, ok := DemoFor("admin")
	assert.False(t, ok)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "match", Match.String())
	assert.Equal(t, "password_mismatch", PasswordMismatch.String())
	assert.Equal(t, "role_mismatch", RoleMismatch.String())
	assert.Equal(t, "outcome(9)", Outcome(9).String())
}
