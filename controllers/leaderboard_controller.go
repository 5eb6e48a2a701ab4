package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"joinus_server/services"

	log "github.com/sirupsen/logrus"
)

// LeaderboardController struct
type LeaderboardController struct {
	LeaderboardService *services.LeaderboardService
}

// NewLeaderboardController initializes the leaderboard controller
func NewLeaderboardController(service *services.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{LeaderboardService: service}
}

// HandleGetLeaderboards - Compute the three ranked categories in one pass.
// scope=past restricts scoring to events that already happened.
func (c *LeaderboardController) HandleGetLeaderboards(w http.ResponseWriter, r *http.Request) {
	viewerID := r.URL.Query().Get("viewerId")
	scope := r.URL.Query().Get("scope")

	set, err := c.LeaderboardService.Leaderboards(context.TODO(), viewerID, scope)
	if err != nil {
		log.Errorf("Failed to compute leaderboards: %v", err)
		http.Error(w, `{"error": "Failed to compute leaderboards"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(set)
}
