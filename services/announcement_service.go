package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"joinus_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// AnnouncementService struct
type AnnouncementService struct {
	Dynamo DocumentStore
	Events *EventService
}

// PostAnnouncement stores a host announcement on an event. Only owners may post.
func (s *AnnouncementService) PostAnnouncement(ctx context.Context, eventID, authorID, content string) (*models.Announcement, error) {
	event, err := s.Events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsOwnedBy(authorID) {
		return nil, ErrNotOwner
	}

	announcement := models.Announcement{
		AnnouncementID: uuid.New().String(),
		EventID:        eventID,
		AuthorID:       authorID,
		Content:        content,
		CreatedAt:      time.Now().Format(time.RFC3339),
	}

	log.Infof("Posting announcement %s on event %s", announcement.AnnouncementID, eventID)
	if err := s.Dynamo.PutItem(ctx, models.AnnouncementsTable, announcement); err != nil {
		return nil, fmt.Errorf("failed to store announcement: %w", err)
	}
	return &announcement, nil
}

// ListAnnouncements fetches an event's announcements, newest first
func (s *AnnouncementService) ListAnnouncements(ctx context.Context, eventID string) ([]models.Announcement, error) {
	keyCondition := "eventId = :eventId"
	expressionValues := map[string]types.AttributeValue{
		":eventId": &types.AttributeValueMemberS{Value: eventID},
	}

	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.AnnouncementsTable, "eventId-index", keyCondition, expressionValues, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch announcements: %w", err)
	}

	var announcements []models.Announcement
	if err := attributevalue.UnmarshalListOfMaps(items, &announcements); err != nil {
		return nil, fmt.Errorf("failed to parse announcements: %w", err)
	}

	sort.Slice(announcements, func(i, j int) bool {
		return announcements[i].CreatedAt > announcements[j].CreatedAt
	})
	return announcements, nil
}
