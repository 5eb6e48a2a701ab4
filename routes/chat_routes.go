package routes

import (
	"joinus_server/controllers"
	"joinus_server/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for chat-related operations under /api/chat
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService) {
	controller := controllers.NewChatController(chatService)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()

	chatRouter.HandleFunc("/request", controller.HandleRequestToJoin).Methods("POST")
	chatRouter.HandleFunc("/by-event", controller.HandleGetChatsByEvent).Methods("GET")
	chatRouter.HandleFunc("/by-guest", controller.HandleGetChatsByGuest).Methods("GET")
	chatRouter.HandleFunc("/status", controller.HandleSetChatStatus).Methods("PATCH")
	chatRouter.HandleFunc("/message", controller.HandleSendMessage).Methods("POST")
	chatRouter.HandleFunc("/messages", controller.HandleGetMessages).Methods("GET")
	chatRouter.HandleFunc("/messages/mark-as-read", controller.HandleMarkMessagesAsRead).Methods("POST")
	chatRouter.HandleFunc("/messages/unread-count", controller.HandleUnreadCount).Methods("GET")
}
