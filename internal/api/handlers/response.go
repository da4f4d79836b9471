package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/MyelinBots/leaderboard-go/internal/logger"
)

type errorResponse struct {
	Msg string `json:"msg"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Msg: msg})
}

// respondServerError logs the internal detail and returns a generic message.
func respondServerError(w http.ResponseWriter, err error) {
	logger.Error("%v", err)
	respondError(w, http.StatusInternalServerError, "Server Error")
}
