package middleware

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/24KD1A0503/jn/internal/utils"
)

// Recoverer turns a panic into the generic 500 envelope. The panic value
// is logged, never sent to the client.
func Recoverer(l zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					l.Error().Interface("panic", rec).Str("path", r.URL.Path).Msg("server error")
					utils.Error(w, http.StatusInternalServerError, "Internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
