package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"joinus_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrAlreadyApplied is returned when a guest already has a thread for an event
	ErrAlreadyApplied = errors.New("guest already has a chat for this event")
	// ErrEventFull is returned when approving a chat would exceed event capacity
	ErrEventFull = errors.New("event has no available spots")
	// ErrInvalidStatus is returned for an unknown chat status value
	ErrInvalidStatus = errors.New("invalid chat status")
)

// ChatService struct
type ChatService struct {
	Dynamo DocumentStore
	Events *EventService
}

// RequestToJoin opens a chat thread for a guest on an event. A guest holds at
// most one thread per event; owners cannot apply to their own events.
func (s *ChatService) RequestToJoin(ctx context.Context, eventID, guestID string) (*models.Chat, error) {
	event, err := s.Events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.IsOwnedBy(guestID) {
		return nil, ErrNotOwner
	}

	applied, err := s.AppliedEventIDs(ctx, guestID)
	if err != nil {
		return nil, err
	}
	if _, ok := applied[eventID]; ok {
		return nil, ErrAlreadyApplied
	}

	chat := models.Chat{
		ChatID:    uuid.New().String(),
		EventID:   eventID,
		GuestID:   guestID,
		Status:    models.StatusPending,
		CreatedAt: time.Now().Format(time.RFC3339),
	}

	log.Infof("Opening chat %s: guest %s -> event %s", chat.ChatID, guestID, eventID)
	if err := s.Dynamo.PutItem(ctx, models.ChatsTable, chat); err != nil {
		return nil, fmt.Errorf("failed to store chat: %w", err)
	}
	return &chat, nil
}

// GetChat retrieves a chat thread by id
func (s *ChatService) GetChat(ctx context.Context, chatID string) (*models.Chat, error) {
	key := map[string]types.AttributeValue{
		"chatId": &types.AttributeValueMemberS{Value: chatID},
	}

	item, err := s.Dynamo.GetItem(ctx, models.ChatsTable, key)
	if err != nil {
		return nil, err
	}

	var chat models.Chat
	if err := attributevalue.UnmarshalMap(item, &chat); err != nil {
		return nil, fmt.Errorf("failed to parse chat: %w", err)
	}
	return &chat, nil
}

// GetChatsByEvent fetches every thread opened on an event
func (s *ChatService) GetChatsByEvent(ctx context.Context, eventID string) ([]models.Chat, error) {
	keyCondition := "eventId = :eventId"
	expressionValues := map[string]types.AttributeValue{
		":eventId": &types.AttributeValueMemberS{Value: eventID},
	}

	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.ChatsTable, "eventId-index", keyCondition, expressionValues, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chats for event: %w", err)
	}

	var chats []models.Chat
	if err := attributevalue.UnmarshalListOfMaps(items, &chats); err != nil {
		return nil, fmt.Errorf("failed to parse chats: %w", err)
	}
	return chats, nil
}

// GetChatsByGuest fetches every thread a guest has opened, any status
func (s *ChatService) GetChatsByGuest(ctx context.Context, guestID string) ([]models.Chat, error) {
	keyCondition := "guestId = :guestId"
	expressionValues := map[string]types.AttributeValue{
		":guestId": &types.AttributeValueMemberS{Value: guestID},
	}

	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.ChatsTable, "guestId-index", keyCondition, expressionValues, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chats for guest: %w", err)
	}

	var chats []models.Chat
	if err := attributevalue.UnmarshalListOfMaps(items, &chats); err != nil {
		return nil, fmt.Errorf("failed to parse chats: %w", err)
	}
	return chats, nil
}

// AppliedEventIDs returns the ids of every event the guest has a thread for,
// regardless of status. Discovery uses it to hide already-applied events.
func (s *ChatService) AppliedEventIDs(ctx context.Context, guestID string) (map[string]struct{}, error) {
	chats, err := s.GetChatsByGuest(ctx, guestID)
	if err != nil {
		return nil, err
	}

	applied := make(map[string]struct{}, len(chats))
	for _, chat := range chats {
		applied[chat.EventID] = struct{}{}
	}
	return applied, nil
}

// SetStatus moves a chat thread between pending/approved/rejected. Only an
// event owner may decide, and approval is capacity-guarded.
func (s *ChatService) SetStatus(ctx context.Context, chatID, status, actorID string) (*models.Chat, error) {
	if status != models.StatusPending && status != models.StatusApproved && status != models.StatusRejected {
		return nil, ErrInvalidStatus
	}

	chat, err := s.GetChat(ctx, chatID)
	if err != nil {
		return nil, err
	}

	event, err := s.Events.GetEvent(ctx, chat.EventID)
	if err != nil {
		return nil, err
	}
	if !event.IsOwnedBy(actorID) {
		return nil, ErrNotOwner
	}

	if status == models.StatusApproved && chat.Status != models.StatusApproved {
		counts, err := s.Events.ApprovedCounts(ctx, []models.Event{*event})
		if err != nil {
			return nil, err
		}
		if event.NumberOfGuests-counts[event.EventID] <= 0 {
			return nil, ErrEventFull
		}
	}

	key := map[string]types.AttributeValue{
		"chatId": &types.AttributeValueMemberS{Value: chatID},
	}
	updateExpression := "SET #status = :status, updatedAt = :updatedAt"
	expressionValues := map[string]types.AttributeValue{
		":status":    &types.AttributeValueMemberS{Value: status},
		":updatedAt": &types.AttributeValueMemberS{Value: time.Now().Format(time.RFC3339)},
	}
	expressionNames := map[string]string{
		"#status": "status", // status is a DynamoDB reserved word
	}

	log.Infof("Chat %s status -> %s (by %s)", chatID, status, actorID)
	if _, err := s.Dynamo.UpdateItem(ctx, models.ChatsTable, updateExpression, key, expressionValues, expressionNames); err != nil {
		return nil, err
	}

	chat.Status = status
	return chat, nil
}

// SendMessage stores a new message on a chat thread
func (s *ChatService) SendMessage(ctx context.Context, message models.Message) (*models.Message, error) {
	if message.MessageID == "" {
		message.MessageID = uuid.New().String()
	}
	if message.CreatedAt == "" {
		message.CreatedAt = time.Now().Format(time.RFC3339Nano)
	}
	message.IsUnread = true

	if err := s.Dynamo.PutItem(ctx, models.MessagesTable, message); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}
	return &message, nil
}

// GetMessages fetches the latest messages for a chat sorted by createdAt
// (latest first), then reverses the order before returning, so the latest
// message appears at the bottom in the UI.
func (s *ChatService) GetMessages(ctx context.Context, chatID string, limit int) ([]models.Message, error) {
	keyCondition := "#chatId = :chatId"
	expressionValues := map[string]types.AttributeValue{
		":chatId": &types.AttributeValueMemberS{Value: chatID},
	}
	expressionNames := map[string]string{
		"#chatId": "chatId",
	}

	items, err := s.Dynamo.QueryItemsWithOptions(ctx, models.MessagesTable, keyCondition, expressionValues, expressionNames, int32(limit), true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse messages: %w", err)
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// MarkMessagesAsRead marks the messages received by userID on a chat as read
func (s *ChatService) MarkMessagesAsRead(ctx context.Context, chatID, userID string) error {
	messages, err := s.GetMessages(ctx, chatID, 100)
	if err != nil {
		return err
	}

	marked := 0
	for _, message := range messages {
		if message.SenderID == userID || !message.IsUnread {
			continue
		}

		key := map[string]types.AttributeValue{
			"chatId":    &types.AttributeValueMemberS{Value: message.ChatID},
			"createdAt": &types.AttributeValueMemberS{Value: message.CreatedAt},
		}
		updateExpression := "SET isUnread = :false"
		expressionValues := map[string]types.AttributeValue{
			":false": &types.AttributeValueMemberBOOL{Value: false},
		}

		if _, err := s.Dynamo.UpdateItem(ctx, models.MessagesTable, updateExpression, key, expressionValues, nil); err != nil {
			log.Warnf("Failed to mark message %s as read: %v", message.MessageID, err)
			continue
		}
		marked++
	}

	log.Debugf("Marked %d messages as read on chat %s for %s", marked, chatID, userID)
	return nil
}

// UnreadCount returns how many messages on a chat are unread for userID
func (s *ChatService) UnreadCount(ctx context.Context, chatID, userID string) (int, error) {
	messages, err := s.GetMessages(ctx, chatID, 100)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, message := range messages {
		if message.IsUnread && message.SenderID != userID {
			count++
		}
	}
	return count, nil
}
