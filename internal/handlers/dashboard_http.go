package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/24KD1A0503/jn/internal/models"
	"github.com/24KD1A0503/jn/internal/service"
	"github.com/24KD1A0503/jn/internal/utils"
)

type DashboardBuilder interface {
	For(u models.User) (*models.DashboardView, error)
}

type DashboardHTTP struct {
	svc DashboardBuilder
	log zerolog.Logger
}

func NewDashboardHTTP(s DashboardBuilder, log zerolog.Logger) *DashboardHTTP {
	return &DashboardHTTP{svc: s, log: log}
}

// GET /api/dashboard
func (h *DashboardHTTP) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := utils.ClaimsFrom(r.Context())
		if !ok {
			utils.Error(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		view, err := h.svc.For(c.User())
		if err != nil {
			if errors.Is(err, service.ErrUnknownRole) {
				utils.Error(w, http.StatusForbidden, service.Message(err))
				return
			}
			h.log.Error().Err(err).Msg("dashboard failed")
			utils.Error(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		utils.OK(w, view)
	}
}
