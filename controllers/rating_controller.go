package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"joinus_server/services"

	log "github.com/sirupsen/logrus"
)

// RatingController struct
type RatingController struct {
	RatingService *services.RatingService
}

// NewRatingController initializes the rating controller
func NewRatingController(service *services.RatingService) *RatingController {
	return &RatingController{RatingService: service}
}

// HandleRateGuest - Host rates a guest for an event
func (c *RatingController) HandleRateGuest(w http.ResponseWriter, r *http.Request) {
	var request struct {
		EventID  string `json:"eventId"`
		GuestID  string `json:"guestId"`
		RaterID  string `json:"raterId"`
		Positive bool   `json:"positive"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.EventID == "" || request.GuestID == "" || request.RaterID == "" {
		http.Error(w, `{"error": "Missing required fields: eventId, guestId, raterId"}`, http.StatusBadRequest)
		return
	}

	rating, err := c.RatingService.RateGuest(context.TODO(), request.EventID, request.GuestID, request.RaterID, request.Positive)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotOwner):
			http.Error(w, `{"error": "Only event owners can rate guests"}`, http.StatusForbidden)
		case errors.Is(err, services.ErrGuestNotApproved):
			http.Error(w, `{"error": "Guest was not approved for this event"}`, http.StatusConflict)
		case errors.Is(err, services.ErrItemNotFound):
			http.Error(w, `{"error": "Event not found"}`, http.StatusNotFound)
		default:
			log.Errorf("Failed to rate guest: %v", err)
			http.Error(w, `{"error": "Failed to rate guest"}`, http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(rating)
}

// HandleGetGuestRatings - Fetch the ratings a guest has received
func (c *RatingController) HandleGetGuestRatings(w http.ResponseWriter, r *http.Request) {
	guestID := r.URL.Query().Get("guestId")
	if guestID == "" {
		http.Error(w, `{"error": "guestId is required"}`, http.StatusBadRequest)
		return
	}

	ratings, err := c.RatingService.GetRatingsByGuest(context.TODO(), guestID)
	if err != nil {
		log.Errorf("Failed to fetch ratings for guest %s: %v", guestID, err)
		http.Error(w, `{"error": "Failed to fetch ratings"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ratings)
}
