package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"joinus_server/models"
	"joinus_server/services"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// UserProfileController struct
type UserProfileController struct {
	UserProfileService *services.UserProfileService
}

// NewUserProfileController initializes the user profile controller
func NewUserProfileController(service *services.UserProfileService) *UserProfileController {
	return &UserProfileController{UserProfileService: service}
}

// HandleAddUserProfile - Create or replace a user profile
func (c *UserProfileController) HandleAddUserProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if profile.UserID == "" {
		http.Error(w, `{"error": "userId is required"}`, http.StatusBadRequest)
		return
	}

	stored, err := c.UserProfileService.AddUserProfile(context.TODO(), profile)
	if err != nil {
		log.Errorf("Failed to store profile: %v", err)
		http.Error(w, `{"error": "Failed to store profile"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(stored)
}

// HandleGetUserProfile - Fetch a user profile by id
func (c *UserProfileController) HandleGetUserProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	profile, err := c.UserProfileService.GetUserProfile(context.TODO(), userID)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			http.Error(w, `{"error": "Profile not found"}`, http.StatusNotFound)
			return
		}
		log.Errorf("Failed to fetch profile %s: %v", userID, err)
		http.Error(w, `{"error": "Failed to fetch profile"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// HandleDeleteUserProfile - Remove a user profile
func (c *UserProfileController) HandleDeleteUserProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	if err := c.UserProfileService.DeleteUserProfile(context.TODO(), userID); err != nil {
		log.Errorf("Failed to delete profile %s: %v", userID, err)
		http.Error(w, `{"error": "Failed to delete profile"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}
