package routes

import (
	"joinus_server/controllers"
	"joinus_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes sets up profile routes under /api/profiles
func RegisterUserProfileRoutes(r *mux.Router, profileService *services.UserProfileService) {
	controller := controllers.NewUserProfileController(profileService)

	profileRouter := r.PathPrefix("/api/profiles").Subrouter()

	profileRouter.HandleFunc("", controller.HandleAddUserProfile).Methods("POST")
	profileRouter.HandleFunc("/{userId}", controller.HandleGetUserProfile).Methods("GET")
	profileRouter.HandleFunc("/{userId}", controller.HandleDeleteUserProfile).Methods("DELETE")
}
