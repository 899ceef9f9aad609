package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/scorekeeper/internal/api/handler"
	"github.com/mcoot/scorekeeper/internal/api/middleware"
	"github.com/mcoot/scorekeeper/internal/metrics"
	"github.com/mcoot/scorekeeper/internal/services/everdell"
	"github.com/mcoot/scorekeeper/internal/services/flip7"
	"github.com/mcoot/scorekeeper/internal/services/phase10"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	Metrics         *metrics.Recorder
	EverdellService *everdell.Service
	Flip7Service    *flip7.Service
	Phase10Service  *phase10.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	everdellHandler := handler.NewEverdellHandler(cfg.EverdellService)
	flip7Handler := handler.NewFlip7Handler(cfg.Flip7Service)
	phase10Handler := handler.NewPhase10Handler(cfg.Phase10Service)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger, cfg.Metrics))

	api.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	// Everdell routes
	ev := api.PathPrefix("/everdell/games").Subrouter()
	ev.HandleFunc("", everdellHandler.List).Methods(http.MethodGet)
	ev.HandleFunc("", everdellHandler.Create).Methods(http.MethodPost)
	ev.HandleFunc("/{id}", everdellHandler.Get).Methods(http.MethodGet)
	ev.HandleFunc("/{id}", everdellHandler.Delete).Methods(http.MethodDelete)
	ev.HandleFunc("/{id}/scores", everdellHandler.AddScore).Methods(http.MethodPost)
	ev.HandleFunc("/{id}/rows", everdellHandler.Rows).Methods(http.MethodGet)

	// Flip 7 routes
	f7 := api.PathPrefix("/flip7/games").Subrouter()
	f7.HandleFunc("", flip7Handler.List).Methods(http.MethodGet)
	f7.HandleFunc("", flip7Handler.Create).Methods(http.MethodPost)
	f7.HandleFunc("/{id}", flip7Handler.Get).Methods(http.MethodGet)
	f7.HandleFunc("/{id}", flip7Handler.Delete).Methods(http.MethodDelete)
	f7.HandleFunc("/{id}/rounds", flip7Handler.AddRound).Methods(http.MethodPost)

	// Phase 10 routes
	p10 := api.PathPrefix("/phase10").Subrouter()
	p10.HandleFunc("/games", phase10Handler.List).Methods(http.MethodGet)
	p10.HandleFunc("/games", phase10Handler.Create).Methods(http.MethodPost)
	p10.HandleFunc("/games/{id}", phase10Handler.Get).Methods(http.MethodGet)
	p10.HandleFunc("/games/{id}", phase10Handler.Delete).Methods(http.MethodDelete)
	p10.HandleFunc("/games/{id}/rounds", phase10Handler.AddRound).Methods(http.MethodPost)
	p10.HandleFunc("/phases/{phase}", phase10Handler.Phase).Methods(http.MethodGet)

	// Prometheus scrape endpoint sits outside the versioned API
	r.Handle("/metrics", cfg.Metrics.Handler()).Methods(http.MethodGet)

	return r
}
