package services

import (
	"context"
	"time"

	"joinus_server/models"

	log "github.com/sirupsen/logrus"
)

// DiscoveredEvent decorates an event with its derived availability
type DiscoveredEvent struct {
	models.Event
	ApprovedCount  int `json:"approvedCount"`
	AvailableSpots int `json:"availableSpots"`
}

// DiscoverPage is one page of filtered discovery results
type DiscoverPage struct {
	Events []DiscoveredEvent `json:"events"`
	PageInfo
}

// DiscoveryService runs the event discovery pipeline: fetch the full event
// collection and its approved counts, filter, then paginate.
type DiscoveryService struct {
	Events *EventService
	Chats  *ChatService
}

// Discover produces the requested page of the viewer's discovery feed. Any
// fetch failure short-circuits with an error before the filter runs; no
// partial feed is ever returned.
func (s *DiscoveryService) Discover(ctx context.Context, viewerID string, params models.FilterParams, page int) (*DiscoverPage, error) {
	events, err := s.Events.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.Events.ApprovedCounts(ctx, events)
	if err != nil {
		return nil, err
	}

	applied := map[string]struct{}{}
	if viewerID != "" {
		applied, err = s.Chats.AppliedEventIDs(ctx, viewerID)
		if err != nil {
			return nil, err
		}
	}

	filtered := FilterEvents(events, params, viewerID, counts, applied, time.Now())

	decorated := make([]DiscoveredEvent, len(filtered))
	for i, event := range filtered {
		decorated[i] = DiscoveredEvent{
			Event:          event,
			ApprovedCount:  counts[event.EventID],
			AvailableSpots: event.NumberOfGuests - counts[event.EventID],
		}
	}

	pageItems, info := Paginate(decorated, page, DiscoveryPageSize)
	log.Debugf("Discovery for %q: %d events, %d after filter, page %d/%d", viewerID, len(events), len(decorated), info.Page, info.TotalPages)

	return &DiscoverPage{Events: pageItems, PageInfo: info}, nil
}
