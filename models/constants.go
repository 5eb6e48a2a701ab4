package models

// Chat thread statuses
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Payment modes
const (
	PaymentModePayWhatYouWant = "payWhatYouWant"
	PaymentModeFixed          = "fixed"
)

// FacetAny disables a categorical filter
const FacetAny = "any"

// Price buckets for the discovery filter
const (
	PriceBucketAny            = "any"
	PriceBucketPayWhatYouWant = "payWhatYouWant"
	PriceBucketLow            = "0-100"
	PriceBucketMid            = "101-200"
	PriceBucketHigh           = "201+"
)

// Leaderboard time scopes
const (
	ScopeAll      = "all"
	ScopePastOnly = "past"
)

// Leaderboard categories
const (
	CategoryAttendees = "attendees"
	CategoryHosts     = "hosts"
	CategoryMostLiked = "mostLiked"
)
