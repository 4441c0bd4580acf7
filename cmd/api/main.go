package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/24KD1A0503/jn/internal/config"
	"github.com/24KD1A0503/jn/internal/credentials"
	"github.com/24KD1A0503/jn/internal/database"
	"github.com/24KD1A0503/jn/internal/realtime"
	"github.com/24KD1A0503/jn/internal/repository/postgres"
	"github.com/24KD1A0503/jn/internal/router"
	"github.com/24KD1A0503/jn/internal/service"
	"github.com/24KD1A0503/jn/internal/utils"
	"github.com/24KD1A0503/jn/pkg/logger"
)

func main() {
	// config + logger
	cfg, err := config.Load()
	if err != nil {
		l := logger.New("prod")
		l.Fatal().Err(err).Msg("config load failed")
	}
	l := logger.New(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// identities, loaded once
	store, err := loadCredentials(ctx, cfg, l)
	if err != nil {
		l.Fatal().Err(err).Msg("credential load failed")
	}
	l.Info().Int("users", store.Len()).Strs("usernames", store.Usernames()).Msg("credential store ready")

	secret := cfg.SessionSecret
	if secret == "" {
		if secret, err = utils.RandomSecret(32); err != nil {
			l.Fatal().Err(err).Msg("session secret")
		}
		l.Warn().Msg("SESSION_SECRET not set; tokens will not survive a restart")
	}
	tokens := utils.NewJWTManager(secret, cfg.TokenTTL)

	hub := realtime.NewHub(l)
	go hub.Run(ctx)

	// http
	r := router.New(l, cfg, router.Deps{
		Auth:      service.NewAuthService(store, tokens, l),
		Dashboard: service.NewDashboardService(),
		Tokens:    tokens,
		Hub:       hub,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		l.Info().Str("addr", srv.Addr).Msg("api listening")
		l.Info().Str("url", "http://localhost:"+cfg.Port+"/health").Msg("health check")
		l.Info().Str("url", "http://localhost:"+cfg.Port+"/api/auth/login").Msg("login endpoint")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal().Err(err).Msg("server error")
		}
	}()

	// graceful shutdown
	<-ctx.Done()
	l.Info().Msg("shutdown signal received")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(sctx)
	l.Info().Msg("shutdown complete")
}

func loadCredentials(ctx context.Context, cfg config.Config, l zerolog.Logger) (*credentials.Store, error) {
	v := credentials.BcryptVerifier{Cost: cfg.BcryptCost}

	switch {
	case cfg.DBURL != "":
		pool, err := database.Open(ctx, cfg.DBURL)
		if err != nil {
			return nil, err
		}
		defer pool.Close()
		l.Info().Msg("loading identities from postgres")
		return credentials.Load(ctx, postgres.NewUserRepo(pool), v)
	case cfg.UsersFile != "":
		l.Info().Str("path", cfg.UsersFile).Msg("loading identities from file")
		return credentials.Load(ctx, credentials.FileSource{Path: cfg.UsersFile}, v)
	default:
		l.Info().Msg("loading built-in demo identities")
		return credentials.Load(ctx, credentials.StaticSource(credentials.DemoIdentities()), v)
	}
}
