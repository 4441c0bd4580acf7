package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/24KD1A0503/jn/internal/models"
	"github.com/24KD1A0503/jn/internal/service"
	"github.com/24KD1A0503/jn/internal/utils"
)

type Authenticator interface {
	Login(ctx context.Context, in service.LoginInput) (*models.Session, error)
}

type AuthHTTP struct {
	svc Authenticator
	log zerolog.Logger
}

func NewAuthHTTP(s Authenticator, log zerolog.Logger) *AuthHTTP {
	return &AuthHTTP{svc: s, log: log}
}

const maxLoginBody = 16 << 10

// POST /api/auth/login
// A body that does not decode into three strings (bad JSON, a numeric
// username) is answered 400 like a body with missing fields.
func (h *AuthHTTP) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in service.LoginInput
		r.Body = http.MaxBytesReader(w, r.Body, maxLoginBody)
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			h.log.Info().Err(err).Msg("login rejected: unreadable body")
			utils.Error(w, http.StatusBadRequest, service.Message(service.ErrMissingFields))
			return
		}

		sess, err := h.svc.Login(r.Context(), in)
		if err != nil {
			switch service.Kind(err) {
			case service.KindValidation:
				utils.Error(w, http.StatusBadRequest, service.Message(err))
			case service.KindAuth:
				utils.Error(w, http.StatusUnauthorized, service.Message(err))
			default:
				h.log.Error().Err(err).Str("username", in.Username).Msg("login failed")
				utils.Error(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		utils.OK(w, sess)
	}
}

// GET /api/auth/me
func (h *AuthHTTP) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := utils.ClaimsFrom(r.Context())
		if !ok {
			utils.Error(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		utils.OK(w, map[string]models.User{"user": c.User()})
	}
}
