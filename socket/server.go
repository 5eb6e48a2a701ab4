package socket

import (
	"context"
	"time"

	"joinus_server/models"
	"joinus_server/services"
	"joinus_server/utils"

	socketio "github.com/googollee/go-socket.io"
	log "github.com/sirupsen/logrus"
)

// typingDebounce is the quiet period before a typing indicator is relayed;
// the timer restarts on every keystroke so only the final event fires.
const typingDebounce = 300 * time.Millisecond

type typingPayload struct {
	ChatID string `json:"chatId"`
	UserID string `json:"userId"`
}

// NewSocketServer initializes the real-time channel: chat rooms for message
// delivery and event rooms for announcement pushes.
func NewSocketServer(chatService *services.ChatService) *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext(utils.NewDebouncer(typingDebounce))
		log.Debugf("Socket connected: %s", s.ID())
		return nil
	})

	server.OnEvent("/", "joinChat", func(s socketio.Conn, chatID string) {
		if chatID == "" {
			log.Warn("Invalid chatId in joinChat request")
			return
		}
		s.Join(chatRoom(chatID))
	})

	server.OnEvent("/", "joinEvent", func(s socketio.Conn, eventID string) {
		if eventID == "" {
			log.Warn("Invalid eventId in joinEvent request")
			return
		}
		s.Join(eventRoom(eventID))
	})

	server.OnEvent("/", "sendMessage", func(s socketio.Conn, message models.Message) {
		if message.ChatID == "" || message.SenderID == "" || message.Content == "" {
			log.Warn("Dropping malformed sendMessage payload")
			return
		}

		stored, err := chatService.SendMessage(context.Background(), message)
		if err != nil {
			log.Errorf("Failed to store socket message: %v", err)
			s.Emit("error", "failed to send message")
			return
		}
		server.BroadcastToRoom("/", chatRoom(stored.ChatID), "newMessage", stored)

		// nudge the counterpart to refresh their unread badge
		server.BroadcastToRoom("/", chatRoom(stored.ChatID), "unreadUpdate", map[string]string{
			"chatId":   stored.ChatID,
			"senderId": stored.SenderID,
		})
	})

	server.OnEvent("/", "typing", func(s socketio.Conn, payload typingPayload) {
		debouncer, ok := s.Context().(*utils.Debouncer)
		if !ok || payload.ChatID == "" {
			return
		}
		debouncer.Do(func() {
			server.BroadcastToRoom("/", chatRoom(payload.ChatID), "typing", payload)
		})
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		log.Errorf("Socket error: %v", e)
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		if debouncer, ok := s.Context().(*utils.Debouncer); ok {
			debouncer.Stop()
		}
		log.Debugf("Socket disconnected: %s (%s)", s.ID(), reason)
	})

	return server
}

// BroadcastAnnouncement pushes a freshly posted announcement to everyone in
// the event's room.
func BroadcastAnnouncement(server *socketio.Server, announcement models.Announcement) {
	server.BroadcastToRoom("/", eventRoom(announcement.EventID), "announcement", announcement)
}

func chatRoom(chatID string) string   { return "chat:" + chatID }
func eventRoom(eventID string) string { return "event:" + eventID }
