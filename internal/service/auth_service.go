package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/24KD1A0503/jn/internal/credentials"
	"github.com/24KD1A0503/jn/internal/models"
	"github.com/24KD1A0503/jn/internal/utils"
)

// CredentialStore is what login needs from the identity table.
type CredentialStore interface {
	Lookup(username string) (models.UserRecord, error)
	Verify(rec models.UserRecord, password string, role models.Role) credentials.Outcome
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type AuthService struct {
	store  CredentialStore
	issuer utils.TokenIssuer
	log    zerolog.Logger
}

func NewAuthService(store CredentialStore, issuer utils.TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{store: store, issuer: issuer, log: log}
}

// Login checks, in order: required fields, username, password, role. The
// first failing check decides the error.
func (a *AuthService) Login(ctx context.Context, in LoginInput) (*models.Session, error) {
	l := a.log.With().Str("username", in.Username).Str("role", in.Role).Logger()
	l.Info().Bool("hasPassword", in.Password != "").Msg("login attempt")

	if in.Username == "" || in.Password == "" || in.Role == "" {
		l.Info().Msg("login rejected: missing required fields")
		return nil, ErrMissingFields
	}

	rec, err := a.store.Lookup(in.Username)
	if err != nil {
		if errors.Is(err, credentials.ErrNotFound) {
			l.Info().Msg("login rejected: user not found")
			return nil, ErrInvalidUsername
		}
		return nil, fmt.Errorf("lookup %q: %w", in.Username, err)
	}

	switch a.store.Verify(rec, in.Password, models.Role(in.Role)) {
	case credentials.PasswordMismatch:
		l.Info().Msg("login rejected: password mismatch")
		return nil, ErrInvalidPassword
	case credentials.RoleMismatch:
		l.Info().Msg("login rejected: role mismatch")
		return nil, ErrInvalidRole
	}

	user := rec.Public()
	tok, err := a.issuer.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	l.Info().Msg("login successful")
	return &models.Session{Token: tok, User: user}, nil
}
