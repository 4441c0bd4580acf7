package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/24KD1A0503/jn/internal/utils"
)

// WithAuth verifies a bearer token when one is present and stores its
// claims in the request context. Requests without a valid token pass
// through unauthenticated; RequireAuth decides what to do with them.
// Browsers cannot set headers on websocket upgrades, so a "token" query
// parameter is accepted as well.
func WithAuth(log zerolog.Logger, v utils.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var tok string
			if h := r.Header.Get("Authorization"); h != "" {
				parts := strings.SplitN(h, " ", 2)
				if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
					tok = strings.TrimSpace(parts[1])
				}
			} else {
				tok = r.URL.Query().Get("token")
			}

			if tok == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := v.Verify(tok)
			if err != nil {
				log.Debug().Err(err).Msg("token rejected")
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(utils.WithClaims(r.Context(), claims)))
		})
	}
}
