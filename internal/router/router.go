package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/24KD1A0503/jn/internal/config"
	"github.com/24KD1A0503/jn/internal/handlers"
	"github.com/24KD1A0503/jn/internal/middleware"
	"github.com/24KD1A0503/jn/internal/models"
	"github.com/24KD1A0503/jn/internal/realtime"
	"github.com/24KD1A0503/jn/internal/service"
	"github.com/24KD1A0503/jn/internal/utils"
)

// Deps are the collaborators built once in main and shared by all requests.
type Deps struct {
	Auth      *service.AuthService
	Dashboard *service.DashboardService
	Tokens    utils.TokenVerifier
	Hub       *realtime.Hub
}

func New(log zerolog.Logger, cfg config.Config, d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(middleware.WithAuth(log, d.Tokens))

	notFound := func(w http.ResponseWriter, r *http.Request) {
		log.Info().Str("path", r.URL.Path).Str("method", r.Method).Msg("route not found")
		utils.Error(w, http.StatusNotFound, "Route not found")
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	// Health
	r.Get("/health", handlers.Health(cfg.ServiceName, cfg.Port))

	ah := handlers.NewAuthHTTP(d.Auth, log)
	var pub handlers.SOSPublisher
	if d.Hub != nil {
		pub = d.Hub
	}
	sh := handlers.NewSOSHTTP(pub, log)
	dh := handlers.NewDashboardHTTP(d.Dashboard, log)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", ah.Login())
		r.With(middleware.RequireAuth).Get("/auth/me", ah.Me())
		r.Post("/emergency/sos", sh.Create())
		r.With(middleware.RequireAuth).Get("/dashboard", dh.Get())
	})

	if d.Hub != nil {
		ws := realtime.NewServer(d.Hub, cfg.Origins)
		r.With(middleware.RequireRoles(models.RolePolice, models.RoleHospital, models.RoleTourism)).
			Get("/ws/alerts", handlers.Alerts(ws, log))
	}

	return r
}
