package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"joinus_server/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscoveryService(store *mockStore) *DiscoveryService {
	events := &EventService{Dynamo: store}
	chats := &ChatService{Dynamo: store, Events: events}
	return &DiscoveryService{Events: events, Chats: chats}
}

func TestDiscover_HappyPath(t *testing.T) {
	store := new(mockStore)
	svc := newDiscoveryService(store)

	tomorrow := time.Now().Add(24 * time.Hour)
	e1 := models.Event{EventID: "e1", Name: "Garden wedding", DateTime: tomorrow.Format(time.RFC3339), NumberOfGuests: 5, Owners: []string{"host-1"}}
	e2 := models.Event{EventID: "e2", Name: "Beach wedding", DateTime: tomorrow.Add(time.Hour).Format(time.RFC3339), NumberOfGuests: 3, Owners: []string{"host-2"}}

	store.On("ScanAll", mock.Anything, models.EventsTable).Return(marshalItems(e1, e2), nil)
	// one approved chat on e1, none elsewhere
	store.On("QueryItemsWithIndex", mock.Anything, models.ChatsTable, "eventId-index", mock.Anything,
		map[string]types.AttributeValue{":eventId": &types.AttributeValueMemberS{Value: "e1"}},
		mock.Anything).Return([]map[string]types.AttributeValue{chatItem("e1", "g1", models.StatusApproved)}, nil)
	store.On("QueryItemsWithIndex", mock.Anything, models.ChatsTable, "eventId-index", mock.Anything,
		map[string]types.AttributeValue{":eventId": &types.AttributeValueMemberS{Value: "e2"}},
		mock.Anything).Return([]map[string]types.AttributeValue{}, nil)
	// viewer has not applied anywhere
	store.On("QueryItemsWithIndex", mock.Anything, models.ChatsTable, "guestId-index", mock.Anything,
		mock.Anything, mock.Anything).Return([]map[string]types.AttributeValue{}, nil)

	result, err := svc.Discover(context.Background(), "viewer-1", models.FilterParams{}, 1)

	require.NoError(t, err)
	require.Len(t, result.Events, 2)
	assert.Equal(t, "e1", result.Events[0].EventID)
	assert.Equal(t, 1, result.Events[0].ApprovedCount)
	assert.Equal(t, 4, result.Events[0].AvailableSpots)
	assert.Equal(t, 3, result.Events[1].AvailableSpots)
	assert.Equal(t, 1, result.TotalPages)
	assert.Equal(t, 2, result.TotalItems)
}

func TestDiscover_HidesAppliedAndOwnedEvents(t *testing.T) {
	store := new(mockStore)
	svc := newDiscoveryService(store)

	tomorrow := time.Now().Add(24 * time.Hour)
	mine := models.Event{EventID: "mine", Name: "My own", DateTime: tomorrow.Format(time.RFC3339), NumberOfGuests: 5, Owners: []string{"viewer-1"}}
	applied := models.Event{EventID: "applied", Name: "Applied", DateTime: tomorrow.Format(time.RFC3339), NumberOfGuests: 5, Owners: []string{"host-1"}}
	fresh := models.Event{EventID: "fresh", Name: "Fresh", DateTime: tomorrow.Format(time.RFC3339), NumberOfGuests: 5, Owners: []string{"host-2"}}

	store.On("ScanAll", mock.Anything, models.EventsTable).Return(marshalItems(mine, applied, fresh), nil)
	store.On("QueryItemsWithIndex", mock.Anything, models.ChatsTable, "eventId-index", mock.Anything,
		mock.Anything, mock.Anything).Return([]map[string]types.AttributeValue{}, nil)
	store.On("QueryItemsWithIndex", mock.Anything, models.ChatsTable, "guestId-index", mock.Anything,
		mock.Anything, mock.Anything).Return([]map[string]types.AttributeValue{chatItem("applied", "viewer-1", models.StatusPending)}, nil)

	result, err := svc.Discover(context.Background(), "viewer-1", models.FilterParams{}, 1)

	require.NoError(t, err)
	require.Len(t, result.Events, 1)
	assert.Equal(t, "fresh", result.Events[0].EventID)
}

func TestDiscover_FetchErrorShortCircuits(t *testing.T) {
	store := new(mockStore)
	svc := newDiscoveryService(store)

	store.On("ScanAll", mock.Anything, models.EventsTable).Return(nil, errors.New("dynamo unavailable"))

	result, err := svc.Discover(context.Background(), "viewer-1", models.FilterParams{}, 1)

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestDiscover_CountFailureDiscardsPartials(t *testing.T) {
	store := new(mockStore)
	svc := newDiscoveryService(store)

	tomorrow := time.Now().Add(24 * time.Hour)
	e1 := models.Event{EventID: "e1", Name: "A", DateTime: tomorrow.Format(time.RFC3339), NumberOfGuests: 5}

	store.On("ScanAll", mock.Anything, models.EventsTable).Return(marshalItems(e1), nil)
	store.On("QueryItemsWithIndex", mock.Anything, models.ChatsTable, "eventId-index", mock.Anything,
		mock.Anything, mock.Anything).Return(nil, errors.New("throttled"))

	result, err := svc.Discover(context.Background(), "", models.FilterParams{}, 1)

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestDiscover_AnonymousViewerSkipsAppliedLookup(t *testing.T) {
	store := new(mockStore)
	svc := newDiscoveryService(store)

	tomorrow := time.Now().Add(24 * time.Hour)
	e1 := models.Event{EventID: "e1", Name: "A", DateTime: tomorrow.Format(time.RFC3339), NumberOfGuests: 5}

	store.On("ScanAll", mock.Anything, models.EventsTable).Return(marshalItems(e1), nil)
	store.On("QueryItemsWithIndex", mock.Anything, models.ChatsTable, "eventId-index", mock.Anything,
		mock.Anything, mock.Anything).Return([]map[string]types.AttributeValue{}, nil)

	result, err := svc.Discover(context.Background(), "", models.FilterParams{}, 1)

	require.NoError(t, err)
	assert.Len(t, result.Events, 1)
	store.AssertNotCalled(t, "QueryItemsWithIndex", mock.Anything, models.ChatsTable, "guestId-index",
		mock.Anything, mock.Anything, mock.Anything)
}
