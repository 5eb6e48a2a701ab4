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

// ErrGuestNotApproved is returned when rating a guest who never attended
var ErrGuestNotApproved = errors.New("guest was not approved for this event")

// RatingService struct
type RatingService struct {
	Dynamo DocumentStore
	Events *EventService
	Chats  *ChatService
}

// RateGuest records a host's rating of a guest for an event. The rater must
// own the event and the guest must hold an approved chat on it.
func (s *RatingService) RateGuest(ctx context.Context, eventID, guestID, raterID string, positive bool) (*models.Rating, error) {
	event, err := s.Events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsOwnedBy(raterID) {
		return nil, ErrNotOwner
	}

	chats, err := s.Chats.GetChatsByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	approved := false
	for _, chat := range chats {
		if chat.GuestID == guestID && chat.Status == models.StatusApproved {
			approved = true
			break
		}
	}
	if !approved {
		return nil, ErrGuestNotApproved
	}

	rating := models.Rating{
		RatingID:  uuid.New().String(),
		EventID:   eventID,
		GuestID:   guestID,
		RaterID:   raterID,
		Positive:  positive,
		CreatedAt: time.Now().Format(time.RFC3339),
	}

	log.Infof("Rating guest %s on event %s: positive=%v", guestID, eventID, positive)
	if err := s.Dynamo.PutItem(ctx, models.RatingsTable, rating); err != nil {
		return nil, fmt.Errorf("failed to store rating: %w", err)
	}
	return &rating, nil
}

// GetRatingsByGuest fetches every rating a guest has received
func (s *RatingService) GetRatingsByGuest(ctx context.Context, guestID string) ([]models.Rating, error) {
	keyCondition := "guestId = :guestId"
	expressionValues := map[string]types.AttributeValue{
		":guestId": &types.AttributeValueMemberS{Value: guestID},
	}

	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.RatingsTable, "guestId-index", keyCondition, expressionValues, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ratings: %w", err)
	}

	var ratings []models.Rating
	if err := attributevalue.UnmarshalListOfMaps(items, &ratings); err != nil {
		return nil, fmt.Errorf("failed to parse ratings: %w", err)
	}
	return ratings, nil
}
