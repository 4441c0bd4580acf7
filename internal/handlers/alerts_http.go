package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/24KD1A0503/jn/internal/models"
	"github.com/24KD1A0503/jn/internal/utils"
)

type AlertStreamer interface {
	Serve(w http.ResponseWriter, r *http.Request, role models.Role) error
}

// GET /ws/alerts (websocket). Role checks happen in the router.
func Alerts(s AlertStreamer, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role, _ := utils.RoleFrom(r.Context())
		if err := s.Serve(w, r, role); err != nil {
			// the upgrader has already written the HTTP error
			log.Warn().Err(err).Msg("alert stream upgrade failed")
		}
	}
}
