package credentials

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/24KD1A0503/jn/internal/models"
)

var ErrNotFound = errors.New("user not found")

type Outcome int

const (
	Match Outcome = iota
	PasswordMismatch
	RoleMismatch
)

func (o Outcome) String() string {
	switch o {
	case Match:
		return "match"
	case PasswordMismatch:
		return "password_mismatch"
	case RoleMismatch:
		return "role_mismatch"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Seed is the load form of an identity. Exactly one of Password or
// PasswordHash is expected; a Password is hashed when the store is built.
type Seed struct {
	Username     string      `yaml:"username"`
	Password     string      `yaml:"password,omitempty"`
	PasswordHash string      `yaml:"password_hash,omitempty"`
	Role         models.Role `yaml:"role"`
	DisplayName  string      `yaml:"display_name"`
}

// Source yields identities once, at process start.
type Source interface {
	Seeds(ctx context.Context) ([]Seed, error)
}

// Store answers lookups against a fixed identity table. It is never
// mutated after New returns, so concurrent reads need no locking.
type Store struct {
	users    map[string]models.UserRecord
	verifier CredentialVerifier
}

func New(seeds []Seed, v CredentialVerifier) (*Store, error) {
	if v == nil {
		return nil, errors.New("credentials: nil verifier")
	}
	users := make(map[string]models.UserRecord, len(seeds))
	for i, s := range seeds {
		if s.Username == "" {
			return nil, fmt.Errorf("credentials: seed %d: empty username", i)
		}
		if !s.Role.Valid() {
			return nil, fmt.Errorf("credentials: %s: unknown role %q", s.Username, s.Role)
		}
		if _, dup := users[s.Username]; dup {
			return nil, fmt.Errorf("credentials: duplicate username %q", s.Username)
		}

		hash := s.PasswordHash
		switch {
		case hash != "" && IsBcryptHash(hash):
		case hash != "":
			// legacy rows that kept plaintext in the hash column
			h, err := v.Hash(hash)
			if err != nil {
				return nil, fmt.Errorf("credentials: %s: hash: %w", s.Username, err)
			}
			hash = h
		case s.Password != "":
			h, err := v.Hash(s.Password)
			if err != nil {
				return nil, fmt.Errorf("credentials: %s: hash: %w", s.Username, err)
			}
			hash = h
		default:
			return nil, fmt.Errorf("credentials: %s: no password", s.Username)
		}

		name := strings.TrimSpace(s.DisplayName)
		if name == "" {
			name = s.Username
		}
		users[s.Username] = models.UserRecord{
			ID:           s.Username,
			Username:     s.Username,
			PasswordHash: hash,
			Role:         s.Role,
			DisplayName:  name,
		}
	}
	return &Store{users: users, verifier: v}, nil
}

// Load reads all seeds from src and builds a Store.
func Load(ctx context.Context, src Source, v CredentialVerifier) (*Store, error) {
	seeds, err := src.Seeds(ctx)
	if err != nil {
		return nil, fmt.Errorf("credentials: load: %w", err)
	}
	if len(seeds) == 0 {
		return nil, errors.New("credentials: source returned no identities")
	}
	return New(seeds, v)
}

func (s *Store) Lookup(username string) (models.UserRecord, error) {
	rec, ok := s.users[username]
	if !ok {
		return models.UserRecord{}, ErrNotFound
	}
	return rec, nil
}

// Verify checks the password before the role.
func (s *Store) Verify(rec models.UserRecord, password string, role models.Role) Outcome {
	if !s.verifier.Compare(rec.PasswordHash, password) {
		return PasswordMismatch
	}
	if rec.Role != role {
		return RoleMismatch
	}
	return Match
}

func (s *Store) Len() int { return len(s.users) }

func (s *Store) Usernames() []string {
	out := make([]string, 0, len(s.users))
	for u := range s.users {
		out = append(out, u)
	}
	sort.Strings(out)
	return out
}
