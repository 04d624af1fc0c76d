package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rpupo63/editorial-backend/config"
	"github.com/rpupo63/editorial-backend/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(store database.Storage) (Server, error) {
	c := config.New()

	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	startupTime := time.Now()

	router := newRouter(store, withConfig(c), withStartupTime(startupTime))

	// Get timeout values from config with sensible defaults
	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 30)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 30)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 120)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,  // Timeout for reading the entire request
		WriteTimeout: writeTimeout, // Timeout for writing the response
		IdleTimeout:  idleTimeout,  // Timeout for idle connections
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
	logger      *zerolog.Logger
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func withLogger(logger zerolog.Logger) func(*router) {
	return func(r *router) {
		r.logger = &logger
	}
}

// NewRouter builds the full route tree from env-style configuration.
func NewRouter(store database.Storage, c map[string]string) *chi.Mux {
	return newRouter(store, withConfig(c), withStartupTime(time.Now()))
}

func newRouter(store database.Storage, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}
	if router.logger == nil {
		consoleLogger := zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
		router.logger = &consoleLogger
	}

	feed := feedConfig{
		Title:       config.GetString(router.config, "FEED_TITLE", "Editorial"),
		Link:        config.GetString(router.config, "FEED_LINK", "http://localhost:8080"),
		Description: config.GetString(router.config, "FEED_DESCRIPTION", "Latest articles"),
		Limit:       config.GetInt(router.config, "FEED_LIMIT", 50),
	}
	handlers := initializeHandlers(store, feed, router.startupTime)

	chiRouter := chi.NewRouter()
	chiRouter.Use(middleware.RequestID)
	chiRouter.Use(middleware.RealIP)
	chiRouter.Use(HTTPLoggingMiddleware(*router.logger))
	chiRouter.Use(LogInternalServerErrors)

	acceptedOrigins := config.GetList(router.config, "ACCEPTED_ORIGINS")
	if len(acceptedOrigins) > 0 {
		chiRouter.Use(corsMiddleware(acceptedOrigins))
	}

	requestTimeout := time.Duration(config.GetInt(router.config, "REQUEST_TIMEOUT_SECONDS", 30)) * time.Second
	chiRouter.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))
		setupPublicRoutes(r, handlers)

		// Admin endpoints exist only when a password is configured
		if backendPassword := config.GetString(router.config, "BACKEND_PASSWORD", ""); backendPassword != "" {
			setupAdminRoutes(r, handlers, newAuthMiddleware(backendPassword))
		}
	})

	chiRouter.NotFound(spaHandler(config.GetString(router.config, "PUBLIC_DIR", "")))

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
