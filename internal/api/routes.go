package api

import (
	"net/http"

	"github.com/MyelinBots/leaderboard-go/internal/api/handlers"
	"github.com/MyelinBots/leaderboard-go/internal/healthcheck"
	"github.com/MyelinBots/leaderboard-go/internal/middleware"
	"github.com/gorilla/mux"
)

func SetupRouter(h *handlers.Handler) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.LoggerMiddleware)

	r.HandleFunc("/", h.Root).Methods(http.MethodGet)
	r.HandleFunc("/healthz", healthcheck.HealthCheckHandler()).Methods(http.MethodGet)

	apiRoutes := r.PathPrefix("/api").Subrouter()
	apiRoutes.HandleFunc("/users", h.GetUsers).Methods(http.MethodGet)
	apiRoutes.HandleFunc("/users", h.AddUser).Methods(http.MethodPost)
	apiRoutes.HandleFunc("/claimPoints", h.ClaimPoints).Methods(http.MethodPost)
	apiRoutes.HandleFunc("/claimHistory", h.GetClaimHistory).Methods(http.MethodGet)
	apiRoutes.HandleFunc("/claimHistory/{userId}", h.GetClaimHistory).Methods(http.MethodGet)
	apiRoutes.HandleFunc("/seedUsers", h.SeedUsers).Methods(http.MethodPost)

	return r
}
