package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"joinus_server/services"
	"joinus_server/socket"

	socketio "github.com/googollee/go-socket.io"
	log "github.com/sirupsen/logrus"
)

// AnnouncementController struct
type AnnouncementController struct {
	AnnouncementService *services.AnnouncementService
	SocketServer        *socketio.Server
}

// NewAnnouncementController initializes the announcement controller
func NewAnnouncementController(service *services.AnnouncementService, socketServer *socketio.Server) *AnnouncementController {
	return &AnnouncementController{AnnouncementService: service, SocketServer: socketServer}
}

// HandlePostAnnouncement - Host posts an announcement; it is also pushed to
// the event's socket room.
func (c *AnnouncementController) HandlePostAnnouncement(w http.ResponseWriter, r *http.Request) {
	var request struct {
		EventID  string `json:"eventId"`
		AuthorID string `json:"authorId"`
		Content  string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.EventID == "" || request.AuthorID == "" || request.Content == "" {
		http.Error(w, `{"error": "Missing required fields: eventId, authorId, content"}`, http.StatusBadRequest)
		return
	}

	announcement, err := c.AnnouncementService.PostAnnouncement(context.TODO(), request.EventID, request.AuthorID, request.Content)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotOwner):
			http.Error(w, `{"error": "Only event owners can post announcements"}`, http.StatusForbidden)
		case errors.Is(err, services.ErrItemNotFound):
			http.Error(w, `{"error": "Event not found"}`, http.StatusNotFound)
		default:
			log.Errorf("Failed to post announcement: %v", err)
			http.Error(w, `{"error": "Failed to post announcement"}`, http.StatusInternalServerError)
		}
		return
	}

	if c.SocketServer != nil {
		socket.BroadcastAnnouncement(c.SocketServer, *announcement)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(announcement)
}

// HandleListAnnouncements - Fetch an event's announcements, newest first
func (c *AnnouncementController) HandleListAnnouncements(w http.ResponseWriter, r *http.Request) {
	eventID := r.URL.Query().Get("eventId")
	if eventID == "" {
		http.Error(w, `{"error": "eventId is required"}`, http.StatusBadRequest)
		return
	}

	announcements, err := c.AnnouncementService.ListAnnouncements(context.TODO(), eventID)
	if err != nil {
		log.Errorf("Failed to list announcements for event %s: %v", eventID, err)
		http.Error(w, `{"error": "Failed to fetch announcements"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(announcements)
}
