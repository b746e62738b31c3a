// Package main provides the API router setup.
package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/yingyang-dd/AI-menu-building-competitation/internal/config"
)

// NewRouter creates the API router with all routes configured.
func NewRouter(logger zerolog.Logger, builder Builder, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(cfg.Server.WriteTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"menu-builder"}`))
	})

	buildHandler := NewBuildHandler(logger, builder)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/menus", func(r chi.Router) {
			r.Post("/build", buildHandler.Build)
		})
	})

	return r
}
