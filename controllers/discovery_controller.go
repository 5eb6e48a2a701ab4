package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"joinus_server/models"
	"joinus_server/services"

	log "github.com/sirupsen/logrus"
)

// DiscoveryController struct
type DiscoveryController struct {
	DiscoveryService *services.DiscoveryService
}

// NewDiscoveryController initializes the discovery controller
func NewDiscoveryController(service *services.DiscoveryService) *DiscoveryController {
	return &DiscoveryController{DiscoveryService: service}
}

// HandleDiscoverEvents - Returns one page of the viewer's filtered event feed.
// All filter state arrives as query parameters; a missing parameter leaves
// that filter off.
func (c *DiscoveryController) HandleDiscoverEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	viewerID := q.Get("viewerId")

	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	minSpots, err := strconv.Atoi(q.Get("minSpots"))
	if err != nil || minSpots < 0 {
		minSpots = 0
	}

	params := models.FilterParams{
		Query:             q.Get("q"),
		Date:              q.Get("date"),
		PriceBucket:       q.Get("priceBucket"),
		FoodType:          q.Get("foodType"),
		Kashrut:           q.Get("kashrut"),
		WeddingStyle:      q.Get("weddingStyle"),
		MinAvailableSpots: minSpots,
		IncludeApplied:    q.Get("includeApplied") == "true",
	}

	result, err := c.DiscoveryService.Discover(context.TODO(), viewerID, params, page)
	if err != nil {
		log.Errorf("Failed to build discovery feed: %v", err)
		http.Error(w, `{"error": "Failed to fetch events"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
