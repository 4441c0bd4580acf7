package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/24KD1A0503/jn/internal/models"
)

type Claims struct {
	UserID   string      `json:"uid"`
	Username string      `json:"username"`
	Name     string      `json:"name"`
	Role     models.Role `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) User() models.User {
	return models.User{ID: c.UserID, Username: c.Username, FullName: c.Name, Role: c.Role}
}

// TokenIssuer mints session tokens. Clients treat them as opaque.
type TokenIssuer interface {
	Issue(u models.User) (string, error)
}

// TokenVerifier checks a token previously minted by an issuer.
type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}

const tokenIssuer = "jatayu-netra"

// JWTManager signs HS256 tokens. Every token carries a fresh jti, so two
// logins in the same second still get different tokens.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (m *JWTManager) Issue(u models.User) (string, error) {
	now := m.now()
	return jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: u.ID, Username: u.Username, Name: u.FullName, Role: u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}).SignedString(m.secret)
}

func (m *JWTManager) Verify(token string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, err
	}
	if c, ok := t.Claims.(*Claims); ok && t.Valid {
		return c, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}

// RandomSecret is used when no SESSION_SECRET is configured; tokens then
// stop verifying after a restart.
func RandomSecret(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
