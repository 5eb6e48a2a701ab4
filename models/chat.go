package models

// Chat is a per-guest-per-event conversation thread. A guest has at most one
// thread per event; its status tracks the join request lifecycle.
type Chat struct {
	ChatID    string `dynamodbav:"chatId" json:"chatId"`
	EventID   string `dynamodbav:"eventId" json:"eventId"`
	GuestID   string `dynamodbav:"guestId" json:"guestId"`
	Status    string `dynamodbav:"status" json:"status"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt string `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// ChatsTable is the DynamoDB table name for chat threads
const ChatsTable = "Chats"
