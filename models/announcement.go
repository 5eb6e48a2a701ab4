package models

// Announcement is a host-authored post visible to an event's approved guests
type Announcement struct {
	AnnouncementID string `dynamodbav:"announcementId" json:"announcementId"`
	EventID        string `dynamodbav:"eventId" json:"eventId"`
	AuthorID       string `dynamodbav:"authorId" json:"authorId"`
	Content        string `dynamodbav:"content" json:"content"`
	CreatedAt      string `dynamodbav:"createdAt" json:"createdAt"`
}

// AnnouncementsTable is the DynamoDB table name for announcements
const AnnouncementsTable = "Announcements"
