package routes

import (
	"joinus_server/controllers"
	"joinus_server/services"

	"github.com/gorilla/mux"
)

// RegisterLeaderboardRoutes sets up the leaderboard route under /api/leaderboards
func RegisterLeaderboardRoutes(r *mux.Router, leaderboardService *services.LeaderboardService) {
	controller := controllers.NewLeaderboardController(leaderboardService)

	r.HandleFunc("/api/leaderboards", controller.HandleGetLeaderboards).Methods("GET")
}
