package models

// FilterParams carries the discovery filter state. A zero value (or FacetAny /
// PriceBucketAny in the categorical fields) disables the corresponding filter.
// The whole struct is replaced on every edit; nothing here is persisted.
type FilterParams struct {
	Query             string `json:"query,omitempty"`
	Date              string `json:"date,omitempty"` // YYYY-MM-DD, exact calendar-date match
	PriceBucket       string `json:"priceBucket,omitempty"`
	FoodType          string `json:"foodType,omitempty"`
	Kashrut           string `json:"kashrut,omitempty"`
	WeddingStyle      string `json:"weddingStyle,omitempty"`
	MinAvailableSpots int    `json:"minAvailableSpots,omitempty"`
	IncludeApplied    bool   `json:"includeApplied,omitempty"`
}
