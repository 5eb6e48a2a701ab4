package services

import (
	"context"
	"testing"
	"time"

	"joinus_server/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newChatService(store *mockStore) *ChatService {
	return &ChatService{Dynamo: store, Events: &EventService{Dynamo: store}}
}

func storedEvent(id string, guests int, owners ...string) map[string]types.AttributeValue {
	return marshalItem(models.Event{
		EventID:        id,
		Name:           "Event " + id,
		DateTime:       time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		NumberOfGuests: guests,
		Owners:         owners,
	})
}

func TestRequestToJoin_CreatesPendingChat(t *testing.T) {
	store := new(mockStore)
	svc := newChatService(store)

	store.On("GetItem", mock.Anything, models.EventsTable, mock.Anything).Return(storedEvent("e1", 5, "host-1"), nil)
	store.On("QueryItemsWithIndex", mock.Anything, models.ChatsTable, "guestId-index", mock.Anything,
		mock.Anything, mock.Anything).Return([]map[string]types.AttributeValue{}, nil)
	store.On("PutItem", mock.Anything, models.ChatsTable, mock.Anything).Return(nil)

	chat, err := svc.RequestToJoin(context.Background(), "e1", "guest-1")

	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, chat.Status)
	assert.Equal(t, "e1", chat.EventID)
	assert.Equal(t, "guest-1", chat.GuestID)
	assert.NotEmpty(t, chat.ChatID)
}

func TestRequestToJoin_RejectsDuplicateApplication(t *testing.T) {
	store := new(mockStore)
	svc := newChatService(store)

	store.On("GetItem", mock.Anything, models.EventsTable, mock.Anything).Return(storedEvent("e1", 5, "host-1"), nil)
	store.On("QueryItemsWithIndex", mock.Anything, models.ChatsTable, "guestId-index", mock.Anything,
		mock.Anything, mock.Anything).Return([]map[string]types.AttributeValue{chatItem("e1", "guest-1", models.StatusRejected)}, nil)

	_, err := svc.RequestToJoin(context.Background(), "e1", "guest-1")

	assert.ErrorIs(t, err, ErrAlreadyApplied)
	store.AssertNotCalled(t, "PutItem", mock.Anything, models.ChatsTable, mock.Anything)
}

func TestRequestToJoin_OwnerCannotApply(t *testing.T) {
	store := new(mockStore)
	svc := newChatService(store)

	store.On("GetItem", mock.Anything, models.EventsTable, mock.Anything).Return(storedEvent("e1", 5, "host-1"), nil)

	_, err := svc.RequestToJoin(context.Background(), "e1", "host-1")

	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestSetStatus_ApproveGuardedByCapacity(t *testing.T) {
	store := new(mockStore)
	svc := newChatService(store)

	store.On("GetItem", mock.Anything, models.ChatsTable, mock.Anything).Return(chatItem("e1", "guest-1", models.StatusPending), nil)
	store.On("GetItem", mock.Anything, models.EventsTable, mock.Anything).Return(storedEvent("e1", 1, "host-1"), nil)
	// the single spot is already taken
	store.On("QueryItemsWithIndex", mock.Anything, models.ChatsTable, "eventId-index", mock.Anything,
		mock.Anything, mock.Anything).Return([]map[string]types.AttributeValue{chatItem("e1", "other", models.StatusApproved)}, nil)

	_, err := svc.SetStatus(context.Background(), "e1-guest-1", models.StatusApproved, "host-1")

	assert.ErrorIs(t, err, ErrEventFull)
}

func TestSetStatus_ApproveSucceedsWithSpotsLeft(t *testing.T) {
	store := new(mockStore)
	svc := newChatService(store)

	store.On("GetItem", mock.Anything, models.ChatsTable, mock.Anything).Return(chatItem("e1", "guest-1", models.StatusPending), nil)
	store.On("GetItem", mock.Anything, models.EventsTable, mock.Anything).Return(storedEvent("e1", 2, "host-1"), nil)
	store.On("QueryItemsWithIndex", mock.Anything, models.ChatsTable, "eventId-index", mock.Anything,
		mock.Anything, mock.Anything).Return([]map[string]types.AttributeValue{chatItem("e1", "other", models.StatusApproved)}, nil)
	store.On("UpdateItem", mock.Anything, models.ChatsTable, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(map[string]types.AttributeValue{}, nil)

	chat, err := svc.SetStatus(context.Background(), "e1-guest-1", models.StatusApproved, "host-1")

	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, chat.Status)
}

func TestSetStatus_OnlyOwnersDecide(t *testing.T) {
	store := new(mockStore)
	svc := newChatService(store)

	store.On("GetItem", mock.Anything, models.ChatsTable, mock.Anything).Return(chatItem("e1", "guest-1", models.StatusPending), nil)
	store.On("GetItem", mock.Anything, models.EventsTable, mock.Anything).Return(storedEvent("e1", 5, "host-1"), nil)

	_, err := svc.SetStatus(context.Background(), "e1-guest-1", models.StatusApproved, "someone-else")

	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestSetStatus_RejectsUnknownStatus(t *testing.T) {
	svc := newChatService(new(mockStore))

	_, err := svc.SetStatus(context.Background(), "c1", "maybe", "host-1")

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGetMessages_ReversedForDisplay(t *testing.T) {
	store := new(mockStore)
	svc := newChatService(store)

	// store returns latest first; service must flip to oldest first
	newest := models.Message{ChatID: "c1", MessageID: "m2", Content: "second", CreatedAt: "2025-06-15T12:01:00Z", SenderID: "u1"}
	oldest := models.Message{ChatID: "c1", MessageID: "m1", Content: "first", CreatedAt: "2025-06-15T12:00:00Z", SenderID: "u2"}
	store.On("QueryItemsWithOptions", mock.Anything, models.MessagesTable, mock.Anything,
		mock.Anything, mock.Anything, int32(50), true).Return(marshalItems(newest, oldest), nil)

	messages, err := svc.GetMessages(context.Background(), "c1", 50)

	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "m1", messages[0].MessageID)
	assert.Equal(t, "m2", messages[1].MessageID)
}

func TestUnreadCount_IgnoresOwnMessages(t *testing.T) {
	store := new(mockStore)
	svc := newChatService(store)

	mine := models.Message{ChatID: "c1", MessageID: "m1", SenderID: "me", IsUnread: true, Content: "hi", CreatedAt: "2025-06-15T12:00:00Z"}
	theirsUnread := models.Message{ChatID: "c1", MessageID: "m2", SenderID: "them", IsUnread: true, Content: "hello", CreatedAt: "2025-06-15T12:01:00Z"}
	theirsRead := models.Message{ChatID: "c1", MessageID: "m3", SenderID: "them", IsUnread: false, Content: "again", CreatedAt: "2025-06-15T12:02:00Z"}
	store.On("QueryItemsWithOptions", mock.Anything, models.MessagesTable, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, true).Return(marshalItems(mine, theirsUnread, theirsRead), nil)

	count, err := svc.UnreadCount(context.Background(), "c1", "me")

	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSendMessage_DefaultsIDTimestampAndUnread(t *testing.T) {
	store := new(mockStore)
	svc := newChatService(store)

	store.On("PutItem", mock.Anything, models.MessagesTable, mock.Anything).Return(nil)

	stored, err := svc.SendMessage(context.Background(), models.Message{ChatID: "c1", SenderID: "u1", Content: "hi"})

	require.NoError(t, err)
	assert.NotEmpty(t, stored.MessageID)
	assert.NotEmpty(t, stored.CreatedAt)
	assert.True(t, stored.IsUnread)
}
