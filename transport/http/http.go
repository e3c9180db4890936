package http

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lagoon/config"
	_ "lagoon/docs"
	"lagoon/transport/http/middleware"
	"lagoon/transport/http/router"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/rs/zerolog/log"
)

type ServerState int

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

type HTTP struct {
	Config     *config.Config
	Router     router.Router
	State      ServerState
	app        middleware.AppMiddleware
	auth       middleware.AuthRole
	mux        *chi.Mux
	httpServer *http.Server
}

func New(cfg *config.Config, r router.Router, app middleware.AppMiddleware, auth middleware.AuthRole) *HTTP {
	return &HTTP{
		Config: cfg,
		Router: r,
		app:    app,
		auth:   auth,
	}
}

func (h *HTTP) Serve() {
	h.setup()

	h.httpServer = &http.Server{
		Addr:              net.JoinHostPort("0.0.0.0", h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

func (h *HTTP) Adaptor() http.HandlerFunc {
	h.setup()

	return h.mux.ServeHTTP
}

func (h *HTTP) setup() {
	h.setupRoutes()
	h.setupGracefulShutdown()
	h.State = ServerStateReady
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	if h.Config.App.CORS.Enable {
		h.mux.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.Config.App.CORS.AllowedOrigins,
			AllowedMethods:   h.Config.App.CORS.AllowedMethods,
			AllowedHeaders:   h.Config.App.CORS.AllowedHeaders,
			AllowCredentials: h.Config.App.CORS.AllowCredentials,
			MaxAge:           h.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	h.mux.Use(h.app.Tracing)
	h.mux.Use(h.app.RateLimit())
	h.mux.Use(h.auth.APIKey)
	h.mux.Use(h.auth.Auth)
	h.mux.Use(h.auth.RBAC)

	h.mux.Get("/swagger/*", httpSwagger.Handler())

	h.Router.SetupRoutes(h.mux)
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer os.Exit(0)

	if h.Config.Server.Env == "development" {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")
		h.shutdown()

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.State = ServerStateInGracePeriod

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.State = ServerStateInCleanupPeriod

	h.shutdown()

	time.Sleep(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

func (h *HTTP) shutdown() {
	if h.httpServer == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := h.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down HTTP server cleanly")
	}
}
