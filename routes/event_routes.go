package routes

import (
	"joinus_server/controllers"
	"joinus_server/services"

	"github.com/gorilla/mux"
)

// RegisterEventRoutes sets up routes for event CRUD under /api/events
func RegisterEventRoutes(r *mux.Router, eventService *services.EventService) {
	controller := controllers.NewEventController(eventService)

	eventRouter := r.PathPrefix("/api/events").Subrouter()

	eventRouter.HandleFunc("", controller.HandleCreateEvent).Methods("POST")
	eventRouter.HandleFunc("/mine", controller.HandleListMyEvents).Methods("GET")
	eventRouter.HandleFunc("/{eventId}", controller.HandleGetEvent).Methods("GET")
	eventRouter.HandleFunc("/{eventId}", controller.HandleUpdateEvent).Methods("PUT")
}
