package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MyelinBots/leaderboard-go/internal/services/users"
)

type addUserRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// GetUsers serves the ranked leaderboard.
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	lb, err := h.leaderboard.GetLeaderboard(r.Context())
	if err != nil {
		respondServerError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, lb)
}

// AddUser creates a new user with zero points.
func (h *Handler) AddUser(w http.ResponseWriter, r *http.Request) {
	var req addUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Please enter a user name.")
		return
	}

	result, err := h.users.AddUser(r.Context(), req.Name, req.Avatar)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrEmptyName):
			respondError(w, http.StatusBadRequest, "Please enter a user name.")
		case errors.Is(err, users.ErrDuplicateName):
			respondError(w, http.StatusBadRequest, "User with this name already exists.")
		default:
			respondServerError(w, err)
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"msg":         "User added successfully",
		"user":        result.User,
		"leaderboard": result.Leaderboard,
	})
}

// SeedUsers bootstraps the starter roster when the store is empty.
func (h *Handler) SeedUsers(w http.ResponseWriter, r *http.Request) {
	result, err := h.users.SeedUsers(r.Context())
	if err != nil {
		respondServerError(w, err)
		return
	}

	if !result.Seeded {
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"msg": "Users already exist, no seeding performed.",
		})
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"msg":         "Initial users seeded successfully",
		"leaderboard": result.Leaderboard,
	})
}
