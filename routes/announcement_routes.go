package routes

import (
	"joinus_server/controllers"
	"joinus_server/services"

	socketio "github.com/googollee/go-socket.io"
	"github.com/gorilla/mux"
)

// RegisterAnnouncementRoutes sets up announcement routes under /api/announcements
func RegisterAnnouncementRoutes(r *mux.Router, announcementService *services.AnnouncementService, socketServer *socketio.Server) {
	controller := controllers.NewAnnouncementController(announcementService, socketServer)

	announcementRouter := r.PathPrefix("/api/announcements").Subrouter()

	announcementRouter.HandleFunc("", controller.HandlePostAnnouncement).Methods("POST")
	announcementRouter.HandleFunc("", controller.HandleListAnnouncements).Methods("GET")
}
