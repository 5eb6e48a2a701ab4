package models

// LeaderboardEntry represents one ranked row in a leaderboard category.
// Score meaning depends on the category: events attended, guests hosted,
// or positive ratings received.
type LeaderboardEntry struct {
	Rank         int    `json:"rank"`
	UserID       string `json:"userId"`
	DisplayName  string `json:"displayName"`
	Score        int    `json:"score"`
	LastActivity string `json:"lastActivity,omitempty"` // RFC3339, recency tiebreak key
	IsViewer     bool   `json:"isViewer,omitempty"`
}

// Leaderboard is one ranked category. CurrentUser is populated only when the
// viewing user is absent from the displayed entries.
type Leaderboard struct {
	Category    string             `json:"category"`
	Entries     []LeaderboardEntry `json:"entries"`
	CurrentUser *LeaderboardEntry  `json:"currentUser,omitempty"`
}

// LeaderboardSet bundles the three categories computed in one pass
type LeaderboardSet struct {
	Scope     string      `json:"scope"`
	Attendees Leaderboard `json:"attendees"`
	Hosts     Leaderboard `json:"hosts"`
	MostLiked Leaderboard `json:"mostLiked"`
}
