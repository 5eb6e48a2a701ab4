package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"joinus_server/models"
	"joinus_server/services"

	log "github.com/sirupsen/logrus"
)

// ChatController struct
type ChatController struct {
	ChatService *services.ChatService
}

// NewChatController initializes the chat controller
func NewChatController(service *services.ChatService) *ChatController {
	return &ChatController{ChatService: service}
}

// HandleRequestToJoin - Opens a chat thread for a guest on an event
func (c *ChatController) HandleRequestToJoin(w http.ResponseWriter, r *http.Request) {
	var request struct {
		EventID string `json:"eventId"`
		GuestID string `json:"guestId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.EventID == "" || request.GuestID == "" {
		http.Error(w, `{"error": "Missing required fields: eventId, guestId"}`, http.StatusBadRequest)
		return
	}

	chat, err := c.ChatService.RequestToJoin(context.TODO(), request.EventID, request.GuestID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyApplied):
			http.Error(w, `{"error": "Already applied to this event"}`, http.StatusConflict)
		case errors.Is(err, services.ErrNotOwner):
			http.Error(w, `{"error": "Hosts cannot apply to their own event"}`, http.StatusForbidden)
		case errors.Is(err, services.ErrItemNotFound):
			http.Error(w, `{"error": "Event not found"}`, http.StatusNotFound)
		default:
			log.Errorf("Failed to open chat: %v", err)
			http.Error(w, `{"error": "Failed to open chat"}`, http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(chat)
}

// HandleGetChatsByEvent - Fetch every thread on an event (host view)
func (c *ChatController) HandleGetChatsByEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.URL.Query().Get("eventId")
	if eventID == "" {
		http.Error(w, `{"error": "eventId is required"}`, http.StatusBadRequest)
		return
	}

	chats, err := c.ChatService.GetChatsByEvent(context.TODO(), eventID)
	if err != nil {
		log.Errorf("Failed to fetch chats for event %s: %v", eventID, err)
		http.Error(w, `{"error": "Failed to fetch chats"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(chats)
}

// HandleGetChatsByGuest - Fetch every thread a guest has opened
func (c *ChatController) HandleGetChatsByGuest(w http.ResponseWriter, r *http.Request) {
	guestID := r.URL.Query().Get("guestId")
	if guestID == "" {
		http.Error(w, `{"error": "guestId is required"}`, http.StatusBadRequest)
		return
	}

	chats, err := c.ChatService.GetChatsByGuest(context.TODO(), guestID)
	if err != nil {
		log.Errorf("Failed to fetch chats for guest %s: %v", guestID, err)
		http.Error(w, `{"error": "Failed to fetch chats"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(chats)
}

// HandleSetChatStatus - Approve or reject a join request
func (c *ChatController) HandleSetChatStatus(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ChatID  string `json:"chatId"`
		Status  string `json:"status"`
		ActorID string `json:"actorId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.ChatID == "" || request.Status == "" || request.ActorID == "" {
		http.Error(w, `{"error": "Missing required fields: chatId, status, actorId"}`, http.StatusBadRequest)
		return
	}

	chat, err := c.ChatService.SetStatus(context.TODO(), request.ChatID, request.Status, request.ActorID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			http.Error(w, `{"error": "Invalid status"}`, http.StatusBadRequest)
		case errors.Is(err, services.ErrNotOwner):
			http.Error(w, `{"error": "Only event owners can decide"}`, http.StatusForbidden)
		case errors.Is(err, services.ErrEventFull):
			http.Error(w, `{"error": "Event has no available spots"}`, http.StatusConflict)
		case errors.Is(err, services.ErrItemNotFound):
			http.Error(w, `{"error": "Chat not found"}`, http.StatusNotFound)
		default:
			log.Errorf("Failed to set chat status: %v", err)
			http.Error(w, `{"error": "Failed to update chat"}`, http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(chat)
}

// HandleSendMessage - Stores a new message on a chat thread
func (c *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var message models.Message
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if message.ChatID == "" || message.SenderID == "" || message.Content == "" {
		http.Error(w, `{"error": "Missing required fields: chatId, senderId, or content"}`, http.StatusBadRequest)
		return
	}

	stored, err := c.ChatService.SendMessage(context.TODO(), message)
	if err != nil {
		log.Errorf("Failed to send message: %v", err)
		http.Error(w, `{"error": "Failed to send message"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stored)
}

// HandleGetMessages - Fetch messages for a chat thread
func (c *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	chatID := r.URL.Query().Get("chatId")
	if chatID == "" {
		http.Error(w, `{"error": "chatId is required"}`, http.StatusBadRequest)
		return
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 50
	}

	messages, err := c.ChatService.GetMessages(context.TODO(), chatID, limit)
	if err != nil {
		log.Errorf("Failed to fetch messages for chat %s: %v", chatID, err)
		http.Error(w, `{"error": "Failed to fetch messages"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messages)
}

// HandleMarkMessagesAsRead - Mark messages received by user as read
func (c *ChatController) HandleMarkMessagesAsRead(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ChatID string `json:"chatId"`
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := c.ChatService.MarkMessagesAsRead(context.TODO(), request.ChatID, request.UserID); err != nil {
		http.Error(w, `{"error": "Failed to mark messages as read"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}

// HandleUnreadCount - How many messages on a chat are unread for the user
func (c *ChatController) HandleUnreadCount(w http.ResponseWriter, r *http.Request) {
	chatID := r.URL.Query().Get("chatId")
	userID := r.URL.Query().Get("userId")
	if chatID == "" || userID == "" {
		http.Error(w, `{"error": "chatId and userId are required"}`, http.StatusBadRequest)
		return
	}

	count, err := c.ChatService.UnreadCount(context.TODO(), chatID, userID)
	if err != nil {
		log.Errorf("Failed to count unread messages for chat %s: %v", chatID, err)
		http.Error(w, `{"error": "Failed to count unread messages"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"unreadCount": count})
}
