package models

// Rating is a host's mark on a guest for a specific event. Positive ratings
// feed the most-liked leaderboard.
type Rating struct {
	RatingID  string `dynamodbav:"ratingId" json:"ratingId"`
	EventID   string `dynamodbav:"eventId" json:"eventId"`
	GuestID   string `dynamodbav:"guestId" json:"guestId"`
	RaterID   string `dynamodbav:"raterId" json:"raterId"`
	Positive  bool   `dynamodbav:"positive" json:"positive"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// RatingsTable is the DynamoDB table name for guest ratings
const RatingsTable = "Ratings"
