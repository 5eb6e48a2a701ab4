package services

import (
	"sort"
	"time"

	"joinus_server/models"
)

// LeaderboardSize is the number of rows displayed per category
const LeaderboardSize = 10

// scoreRecord accumulates one user's score and most recent qualifying
// event date, the recency tiebreak key.
type scoreRecord struct {
	score int
	last  time.Time
}

func inScope(eventTime time.Time, pastOnly bool, now time.Time) bool {
	if eventTime.IsZero() {
		return false
	}
	if pastOnly {
		return eventTime.Before(now)
	}
	return true
}

// attendeeScores counts approved chats per guest
func attendeeScores(chats []models.Chat, events map[string]models.Event, pastOnly bool, now time.Time) map[string]scoreRecord {
	scores := make(map[string]scoreRecord)
	for _, chat := range chats {
		if chat.Status != models.StatusApproved {
			continue
		}
		event, ok := events[chat.EventID]
		if !ok {
			continue
		}
		eventTime := SafeEventTime(event.DateTime)
		if !inScope(eventTime, pastOnly, now) {
			continue
		}

		record := scores[chat.GuestID]
		record.score++
		if eventTime.After(record.last) {
			record.last = eventTime
		}
		scores[chat.GuestID] = record
	}
	return scores
}

// hostScores accumulates each event's approved-chat count onto every owner
func hostScores(chats []models.Chat, events map[string]models.Event, pastOnly bool, now time.Time) map[string]scoreRecord {
	approvedPerEvent := make(map[string]int)
	for _, chat := range chats {
		if chat.Status == models.StatusApproved {
			approvedPerEvent[chat.EventID]++
		}
	}

	scores := make(map[string]scoreRecord)
	for eventID, count := range approvedPerEvent {
		event, ok := events[eventID]
		if !ok {
			continue
		}
		eventTime := SafeEventTime(event.DateTime)
		if !inScope(eventTime, pastOnly, now) {
			continue
		}

		for _, owner := range event.Owners {
			record := scores[owner]
			record.score += count
			if eventTime.After(record.last) {
				record.last = eventTime
			}
			scores[owner] = record
		}
	}
	return scores
}

// likedScores counts positive ratings per guest
func likedScores(ratings []models.Rating, events map[string]models.Event, pastOnly bool, now time.Time) map[string]scoreRecord {
	scores := make(map[string]scoreRecord)
	for _, rating := range ratings {
		if !rating.Positive {
			continue
		}
		event, ok := events[rating.EventID]
		if !ok {
			continue
		}
		eventTime := SafeEventTime(event.DateTime)
		if !inScope(eventTime, pastOnly, now) {
			continue
		}

		record := scores[rating.GuestID]
		record.score++
		if eventTime.After(record.last) {
			record.last = eventTime
		}
		scores[rating.GuestID] = record
	}
	return scores
}

// rankScores turns a score map into a fully ranked list: descending score,
// recency tiebreak, then user id for determinism. Competition ranking —
// contiguous equal-score runs share a rank, the next distinct score resumes
// at its true 1-based position.
func rankScores(scores map[string]scoreRecord) []models.LeaderboardEntry {
	type scored struct {
		userID string
		scoreRecord
	}

	ordered := make([]scored, 0, len(scores))
	for userID, record := range scores {
		ordered = append(ordered, scored{userID: userID, scoreRecord: record})
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].score != ordered[j].score {
			return ordered[i].score > ordered[j].score
		}
		if !ordered[i].last.Equal(ordered[j].last) {
			return ordered[i].last.After(ordered[j].last)
		}
		return ordered[i].userID < ordered[j].userID
	})

	entries := make([]models.LeaderboardEntry, len(ordered))
	for i, item := range ordered {
		rank := i + 1
		if i > 0 && item.score == ordered[i-1].score {
			rank = entries[i-1].Rank
		}
		entries[i] = models.LeaderboardEntry{
			Rank:         rank,
			UserID:       item.userID,
			Score:        item.score,
			LastActivity: formatActivity(item.last),
		}
	}
	return entries
}

func formatActivity(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// buildLeaderboard slices the ranked list down to the displayed rows and
// computes the viewer's own record when it falls outside them. The mostLiked
// category synthesizes a zero-score record for a viewer with no qualifying
// activity; attendees and hosts do not.
func buildLeaderboard(category string, scores map[string]scoreRecord, viewerID string) models.Leaderboard {
	entries := rankScores(scores)

	board := models.Leaderboard{Category: category, Entries: entries}
	if len(entries) > LeaderboardSize {
		board.Entries = entries[:LeaderboardSize]
	}

	if viewerID == "" {
		return board
	}

	viewerShown := false
	for i := range board.Entries {
		if board.Entries[i].UserID == viewerID {
			board.Entries[i].IsViewer = true
			viewerShown = true
		}
	}
	if viewerShown {
		return board
	}

	for _, entry := range entries[len(board.Entries):] {
		if entry.UserID == viewerID {
			current := entry
			current.IsViewer = true
			board.CurrentUser = &current
			return board
		}
	}

	if category == models.CategoryMostLiked {
		rank := len(entries) + 1
		if n := len(entries); n > 0 && entries[n-1].Score == 0 {
			rank = entries[n-1].Rank
		}
		board.CurrentUser = &models.LeaderboardEntry{
			Rank:     rank,
			UserID:   viewerID,
			Score:    0,
			IsViewer: true,
		}
	}
	return board
}
