package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MyelinBots/leaderboard-go/internal/db/repositories/claimhistory"
	"github.com/MyelinBots/leaderboard-go/internal/services/claims"
	"github.com/gorilla/mux"
)

type claimPointsRequest struct {
	UserID string `json:"userId"`
}

// ClaimPoints awards a random 1..10 points to the requested user.
func (h *Handler) ClaimPoints(w http.ResponseWriter, r *http.Request) {
	var req claimPointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		respondError(w, http.StatusBadRequest, "User ID is required.")
		return
	}

	result, err := h.claims.ClaimPoints(r.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, claims.ErrUserNotFound) {
			respondError(w, http.StatusBadRequest, "User does not exist.")
			return
		}
		respondServerError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"msg": fmt.Sprintf("Successfully claimed %d points for %s", result.PointsClaimed, result.User.Name),
		"user": map[string]interface{}{
			"id":          result.User.ID,
			"name":        result.User.Name,
			"totalPoints": result.User.TotalPoints,
		},
		"pointsClaimed": result.PointsClaimed,
		"leaderboard":   result.Leaderboard,
	})
}

// GetClaimHistory serves the claim log, optionally filtered to one user.
func (h *Handler) GetClaimHistory(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	history, err := h.claims.GetHistory(r.Context(), userID)
	if err != nil {
		respondServerError(w, err)
		return
	}
	if history == nil {
		history = []*claimhistory.HistoryEntry{}
	}
	respondJSON(w, http.StatusOK, history)
}
