package handlers

import (
	"net/http"

	"github.com/MyelinBots/leaderboard-go/internal/services/claims"
	"github.com/MyelinBots/leaderboard-go/internal/services/leaderboard"
	"github.com/MyelinBots/leaderboard-go/internal/services/users"
)

type Handler struct {
	users       users.UserService
	claims      claims.ClaimService
	leaderboard leaderboard.LeaderboardService
}

func NewHandler(userService users.UserService, claimService claims.ClaimService, leaderboardService leaderboard.LeaderboardService) *Handler {
	return &Handler{
		users:       userService,
		claims:      claimService,
		leaderboard: leaderboardService,
	}
}

// Root is a plain-text banner confirming the API is up.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Leaderboard API is running!"))
}
