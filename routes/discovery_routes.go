package routes

import (
	"joinus_server/controllers"
	"joinus_server/services"

	"github.com/gorilla/mux"
)

// RegisterDiscoveryRoutes sets up routes for the discovery feed under /api/discover
func RegisterDiscoveryRoutes(r *mux.Router, discoveryService *services.DiscoveryService) {
	controller := controllers.NewDiscoveryController(discoveryService)

	r.HandleFunc("/api/discover", controller.HandleDiscoverEvents).Methods("GET")
}
