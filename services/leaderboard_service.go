package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"joinus_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// LeaderboardService computes the three ranked categories from full-collection
// reads. Any read failure discards all partial results and surfaces a single
// error to the caller.
type LeaderboardService struct {
	Dynamo   DocumentStore
	Events   *EventService
	Profiles *UserProfileService
}

// Leaderboards computes the attendees, hosts and mostLiked rankings for the
// given time scope ("all" or "past").
func (s *LeaderboardService) Leaderboards(ctx context.Context, viewerID, scope string) (*models.LeaderboardSet, error) {
	if scope != models.ScopePastOnly {
		scope = models.ScopeAll
	}
	pastOnly := scope == models.ScopePastOnly
	now := time.Now()

	var (
		chats   []models.Chat
		events  []models.Event
		ratings []models.Rating
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.Dynamo.ScanAll(gctx, models.ChatsTable)
		if err != nil {
			return fmt.Errorf("failed to fetch chats: %w", err)
		}
		if err := attributevalue.UnmarshalListOfMaps(items, &chats); err != nil {
			return fmt.Errorf("failed to parse chats: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		events, err = s.Events.ListEvents(gctx)
		return err
	})
	g.Go(func() error {
		items, err := s.Dynamo.ScanAll(gctx, models.RatingsTable)
		if err != nil {
			return fmt.Errorf("failed to fetch ratings: %w", err)
		}
		if err := attributevalue.UnmarshalListOfMaps(items, &ratings); err != nil {
			return fmt.Errorf("failed to parse ratings: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	eventsByID := make(map[string]models.Event, len(events))
	for _, event := range events {
		eventsByID[event.EventID] = event
	}

	set := &models.LeaderboardSet{
		Scope:     scope,
		Attendees: buildLeaderboard(models.CategoryAttendees, attendeeScores(chats, eventsByID, pastOnly, now), viewerID),
		Hosts:     buildLeaderboard(models.CategoryHosts, hostScores(chats, eventsByID, pastOnly, now), viewerID),
		MostLiked: buildLeaderboard(models.CategoryMostLiked, likedScores(ratings, eventsByID, pastOnly, now), viewerID),
	}

	if err := s.resolveNames(ctx, set); err != nil {
		return nil, err
	}

	log.Debugf("Leaderboards computed for scope %s: %d chats, %d events, %d ratings", scope, len(chats), len(events), len(ratings))
	return set, nil
}

// resolveNames fills display names for every user appearing on the boards.
// A user without a profile keeps their id as the display name.
func (s *LeaderboardService) resolveNames(ctx context.Context, set *models.LeaderboardSet) error {
	ids := make(map[string]struct{})
	boards := []*models.Leaderboard{&set.Attendees, &set.Hosts, &set.MostLiked}
	for _, board := range boards {
		for _, entry := range board.Entries {
			ids[entry.UserID] = struct{}{}
		}
		if board.CurrentUser != nil {
			ids[board.CurrentUser.UserID] = struct{}{}
		}
	}
	if len(ids) == 0 {
		return nil
	}

	names := make(map[string]string, len(ids))
	for id := range ids {
		names[id] = id
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for id := range ids {
		id := id
		g.Go(func() error {
			profile, err := s.Profiles.GetUserProfile(gctx, id)
			if err != nil {
				// missing profile is not a board-level failure
				log.Debugf("No profile for leaderboard user %s: %v", id, err)
				return nil
			}
			if profile.FullName != "" {
				mu.Lock()
				names[id] = profile.FullName
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, board := range boards {
		for i := range board.Entries {
			board.Entries[i].DisplayName = names[board.Entries[i].UserID]
		}
		if board.CurrentUser != nil {
			board.CurrentUser.DisplayName = names[board.CurrentUser.UserID]
		}
	}
	return nil
}
