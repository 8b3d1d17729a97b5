package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/noveltopia/noveltopia-api/internal/api"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// All origins permitted, matching the original deployment.
	r.Use(cors.AllowAll().Handler)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.passwordHasher,
		app.passwordVerifier,
		app.logger,
	)
	bookHandler := api.NewBookHandler(app.bookStore, app.logger)

	// Register routes
	r.Post("/signup", authHandler.Signup)
	r.Post("/writebook", bookHandler.WriteBook)
	r.Post("/login", authHandler.Login)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
