package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"joinus_server/models"
	"joinus_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ErrNotOwner is returned when a mutation is attempted by a non-owner
var ErrNotOwner = errors.New("user does not own this event")

// EventService struct
type EventService struct {
	Dynamo DocumentStore
}

// CreateEvent stores a new event. The caller is recorded as an owner.
func (s *EventService) CreateEvent(ctx context.Context, event models.Event, creatorID string) (*models.Event, error) {
	if event.EventID == "" {
		event.EventID = uuid.New().String()
	}
	if !event.IsOwnedBy(creatorID) {
		event.Owners = append(event.Owners, creatorID)
	}
	event.CreatedAt = time.Now().Format(time.RFC3339)

	log.Infof("Creating event %s (%s)", event.EventID, event.Name)
	if err := s.Dynamo.PutItem(ctx, models.EventsTable, event); err != nil {
		return nil, fmt.Errorf("failed to store event: %w", err)
	}
	return &event, nil
}

// GetEvent retrieves a single event by id
func (s *EventService) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	key := map[string]types.AttributeValue{
		"eventId": &types.AttributeValueMemberS{Value: eventID},
	}

	item, err := s.Dynamo.GetItem(ctx, models.EventsTable, key)
	if err != nil {
		return nil, err
	}

	var event models.Event
	if err := attributevalue.UnmarshalMap(item, &event); err != nil {
		return nil, fmt.Errorf("failed to parse event: %w", err)
	}
	return &event, nil
}

// UpdateEvent replaces an event's editable fields. Only owners may edit, and
// ownership and creation metadata are preserved from the stored record.
func (s *EventService) UpdateEvent(ctx context.Context, event models.Event, editorID string) (*models.Event, error) {
	existing, err := s.GetEvent(ctx, event.EventID)
	if err != nil {
		return nil, err
	}
	if !existing.IsOwnedBy(editorID) {
		return nil, ErrNotOwner
	}

	event.Owners = existing.Owners
	event.CreatedAt = existing.CreatedAt

	log.Infof("Updating event %s by %s", event.EventID, editorID)
	if err := s.Dynamo.PutItem(ctx, models.EventsTable, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return &event, nil
}

// ListEvents pulls the full events collection and returns it sorted ascending
// by event date-time, the order every downstream consumer expects.
func (s *EventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	items, err := s.Dynamo.ScanAll(ctx, models.EventsTable)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	var events []models.Event
	if err := attributevalue.UnmarshalListOfMaps(items, &events); err != nil {
		return nil, fmt.Errorf("failed to parse events: %w", err)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return SafeEventTime(events[i].DateTime).Before(SafeEventTime(events[j].DateTime))
	})

	log.Debugf("Fetched %d events", len(events))
	return events, nil
}

// ListEventsByOwner returns the events a user hosts
func (s *EventService) ListEventsByOwner(ctx context.Context, ownerID string) ([]models.Event, error) {
	events, err := s.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	owned := make([]models.Event, 0)
	for _, event := range events {
		if event.IsOwnedBy(ownerID) {
			owned = append(owned, event)
		}
	}
	return owned, nil
}

// ApprovedCounts fetches the approved-chat count for every event, one query
// per event issued concurrently. The batch is all-or-nothing: a single failing
// sub-query fails the whole call and no partial map is returned.
func (s *EventService) ApprovedCounts(ctx context.Context, events []models.Event) (map[string]int, error) {
	counts := make([]int, len(events))

	g, gctx := errgroup.WithContext(ctx)
	for i, event := range events {
		i, eventID := i, event.EventID
		g.Go(func() error {
			keyCondition := "eventId = :eventId"
			expressionValues := map[string]types.AttributeValue{
				":eventId": &types.AttributeValueMemberS{Value: eventID},
			}

			items, err := s.Dynamo.QueryItemsWithIndex(gctx, models.ChatsTable, "eventId-index", keyCondition, expressionValues, nil)
			if err != nil {
				return fmt.Errorf("failed to count approved chats for event %s: %w", eventID, err)
			}

			count := 0
			for _, item := range items {
				if utils.ExtractString(item, "status") == models.StatusApproved {
					count++
				}
			}
			counts[i] = count
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make(map[string]int, len(events))
	for i, event := range events {
		result[event.EventID] = counts[i]
	}
	return result, nil
}
