package routes

import (
	"joinus_server/controllers"
	"joinus_server/services"

	"github.com/gorilla/mux"
)

// RegisterRatingRoutes sets up rating routes under /api/ratings
func RegisterRatingRoutes(r *mux.Router, ratingService *services.RatingService) {
	controller := controllers.NewRatingController(ratingService)

	ratingRouter := r.PathPrefix("/api/ratings").Subrouter()

	ratingRouter.HandleFunc("", controller.HandleRateGuest).Methods("POST")
	ratingRouter.HandleFunc("", controller.HandleGetGuestRatings).Methods("GET")
}
