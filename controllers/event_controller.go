package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"joinus_server/models"
	"joinus_server/services"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

var validate = validator.New()

// EventController struct
type EventController struct {
	EventService *services.EventService
}

// NewEventController initializes the event controller
func NewEventController(service *services.EventService) *EventController {
	return &EventController{EventService: service}
}

// CreateEventRequest is the payload for creating or editing an event
type CreateEventRequest struct {
	UserID          string   `json:"userId" validate:"required"`
	Name            string   `json:"name" validate:"required"`
	Description     string   `json:"description"`
	DateTime        string   `json:"dateTime" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	NumberOfGuests  int      `json:"numberOfGuests" validate:"required,gt=0"`
	FoodType        string   `json:"foodType"`
	Kashrut         string   `json:"kashrut"`
	WeddingStyle    string   `json:"weddingStyle"`
	PaymentMode     string   `json:"paymentMode" validate:"omitempty,oneof=payWhatYouWant fixed"`
	PricePerGuest   int      `json:"pricePerGuest" validate:"gte=0"`
	Location        string   `json:"location"`
	DisplayLocation string   `json:"displayLocation"`
	PhotoKeys       []string `json:"photoKeys"`
}

func (req CreateEventRequest) toEvent() models.Event {
	return models.Event{
		Name:            req.Name,
		Description:     req.Description,
		DateTime:        req.DateTime,
		NumberOfGuests:  req.NumberOfGuests,
		FoodType:        req.FoodType,
		Kashrut:         req.Kashrut,
		WeddingStyle:    req.WeddingStyle,
		PaymentMode:     req.PaymentMode,
		PricePerGuest:   req.PricePerGuest,
		Location:        req.Location,
		DisplayLocation: req.DisplayLocation,
		PhotoKeys:       req.PhotoKeys,
	}
}

// HandleCreateEvent - Creates a new event owned by the caller
func (c *EventController) HandleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	event, err := c.EventService.CreateEvent(context.TODO(), req.toEvent(), req.UserID)
	if err != nil {
		log.Errorf("Failed to create event: %v", err)
		http.Error(w, `{"error": "Failed to create event"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(event)
}

// HandleUpdateEvent - Edits an event; only owners may edit
func (c *EventController) HandleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["eventId"]

	var req CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	event := req.toEvent()
	event.EventID = eventID

	updated, err := c.EventService.UpdateEvent(context.TODO(), event, req.UserID)
	if err != nil {
		if errors.Is(err, services.ErrNotOwner) {
			http.Error(w, `{"error": "Only event owners can edit"}`, http.StatusForbidden)
			return
		}
		if errors.Is(err, services.ErrItemNotFound) {
			http.Error(w, `{"error": "Event not found"}`, http.StatusNotFound)
			return
		}
		log.Errorf("Failed to update event %s: %v", eventID, err)
		http.Error(w, `{"error": "Failed to update event"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

// HandleGetEvent - Fetch a single event by id
func (c *EventController) HandleGetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["eventId"]

	event, err := c.EventService.GetEvent(context.TODO(), eventID)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			http.Error(w, `{"error": "Event not found"}`, http.StatusNotFound)
			return
		}
		log.Errorf("Failed to fetch event %s: %v", eventID, err)
		http.Error(w, `{"error": "Failed to fetch event"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(event)
}

// HandleListMyEvents - Fetch the events the caller hosts
func (c *EventController) HandleListMyEvents(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("ownerId")
	if ownerID == "" {
		http.Error(w, `{"error": "ownerId is required"}`, http.StatusBadRequest)
		return
	}

	events, err := c.EventService.ListEventsByOwner(context.TODO(), ownerID)
	if err != nil {
		log.Errorf("Failed to list events for owner %s: %v", ownerID, err)
		http.Error(w, `{"error": "Failed to fetch events"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(events)
}

// writeValidationError renders per-field validation messages
func writeValidationError(w http.ResponseWriter, err error) {
	fields := map[string]string{}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldError := range validationErrors {
			fields[fieldError.Field()] = fmt.Sprintf("failed on '%s' validation", fieldError.Tag())
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":  "Validation failed",
		"fields": fields,
	})
}
