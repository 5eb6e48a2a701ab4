package models

// Event defines the structure for events hosted on the platform
type Event struct {
	EventID         string   `dynamodbav:"eventId" json:"eventId"`
	Owners          []string `dynamodbav:"owners" json:"owners"`
	Name            string   `dynamodbav:"name" json:"name"`
	Description     string   `dynamodbav:"description,omitempty" json:"description,omitempty"`
	DateTime        string   `dynamodbav:"dateTime" json:"dateTime"` // RFC3339
	NumberOfGuests  int      `dynamodbav:"numberOfGuests" json:"numberOfGuests"`
	FoodType        string   `dynamodbav:"foodType,omitempty" json:"foodType,omitempty"`
	Kashrut         string   `dynamodbav:"kashrut,omitempty" json:"kashrut,omitempty"`
	WeddingStyle    string   `dynamodbav:"weddingStyle,omitempty" json:"weddingStyle,omitempty"`
	PaymentMode     string   `dynamodbav:"paymentMode,omitempty" json:"paymentMode,omitempty"`
	PricePerGuest   int      `dynamodbav:"pricePerGuest,omitempty" json:"pricePerGuest,omitempty"`
	Location        string   `dynamodbav:"location,omitempty" json:"location,omitempty"`
	DisplayLocation string   `dynamodbav:"displayLocation,omitempty" json:"displayLocation,omitempty"`
	PhotoKeys       []string `dynamodbav:"photoKeys,omitempty" json:"photoKeys,omitempty"`
	CreatedAt       string   `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// IsOwnedBy reports whether userID appears in the event's owner list
func (e Event) IsOwnedBy(userID string) bool {
	for _, owner := range e.Owners {
		if owner == userID {
			return true
		}
	}
	return false
}

// EventsTable is the DynamoDB table name for events
const EventsTable = "Events"
