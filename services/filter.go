package services

import (
	"strings"
	"time"

	"joinus_server/models"
)

// Fixed-price bucket bounds, inclusive on both ends
const (
	priceLowMax = 100
	priceMidMax = 200
)

// SafeEventTime parses an event's RFC3339 timestamp. Malformed or missing
// timestamps yield the zero time, so those events sit before any real "now"
// and never pass the temporal filter.
func SafeEventTime(raw string) time.Time {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

// FilterEvents runs the discovery predicate chain over events, preserving the
// input order (callers hand it the list already sorted ascending by date).
// All predicates are AND-combined; counts maps eventId to its approved-chat
// count, applied holds the event ids the viewer already has a thread for, and
// viewerID may be empty for an anonymous visitor.
func FilterEvents(
	events []models.Event,
	params models.FilterParams,
	viewerID string,
	counts map[string]int,
	applied map[string]struct{},
	now time.Time,
) []models.Event {
	query := strings.ToLower(strings.TrimSpace(params.Query))

	filtered := make([]models.Event, 0, len(events))
	for _, event := range events {
		if SafeEventTime(event.DateTime).Before(now) {
			continue
		}
		if viewerID != "" && event.IsOwnedBy(viewerID) {
			continue
		}
		if !params.IncludeApplied {
			if _, ok := applied[event.EventID]; ok {
				continue
			}
		}
		availableSpots := event.NumberOfGuests - counts[event.EventID]
		if availableSpots <= 0 {
			continue
		}
		if params.MinAvailableSpots > 0 && availableSpots < params.MinAvailableSpots {
			continue
		}
		if query != "" && !matchesQuery(event, query) {
			continue
		}
		if params.Date != "" && !matchesDate(event, params.Date) {
			continue
		}
		if !matchesPriceBucket(event, params.PriceBucket) {
			continue
		}
		if !matchesFacet(event.FoodType, params.FoodType) {
			continue
		}
		if !matchesFacet(event.Kashrut, params.Kashrut) {
			continue
		}
		if !matchesFacet(event.WeddingStyle, params.WeddingStyle) {
			continue
		}
		filtered = append(filtered, event)
	}
	return filtered
}

func matchesQuery(event models.Event, query string) bool {
	for _, field := range []string{event.Name, event.Description, event.DisplayLocation, event.Location} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// matchesDate compares calendar dates only, ignoring the time of day
func matchesDate(event models.Event, date string) bool {
	t := SafeEventTime(event.DateTime)
	if t.IsZero() {
		return false
	}
	return t.Format("2006-01-02") == date
}

func matchesPriceBucket(event models.Event, bucket string) bool {
	switch bucket {
	case "", models.PriceBucketAny:
		return true
	case models.PriceBucketPayWhatYouWant:
		return event.PaymentMode == models.PaymentModePayWhatYouWant
	case models.PriceBucketLow:
		return event.PaymentMode == models.PaymentModeFixed && event.PricePerGuest <= priceLowMax
	case models.PriceBucketMid:
		return event.PaymentMode == models.PaymentModeFixed &&
			event.PricePerGuest > priceLowMax && event.PricePerGuest <= priceMidMax
	case models.PriceBucketHigh:
		return event.PaymentMode == models.PaymentModeFixed && event.PricePerGuest > priceMidMax
	default:
		return true
	}
}

func matchesFacet(value, filter string) bool {
	if filter == "" || filter == models.FacetAny {
		return true
	}
	return value == filter
}
