package models

// UserProfile defines the structure for user profiles
type UserProfile struct {
	UserID   string `dynamodbav:"userId" json:"userId"`
	FullName string `dynamodbav:"fullName,omitempty" json:"fullName,omitempty"`
	EmailID  string `dynamodbav:"emailId,omitempty" json:"emailId,omitempty"`
	Phone    string `dynamodbav:"phone,omitempty" json:"phone,omitempty"`
	PhotoURL string `dynamodbav:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	Bio      string `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "UserProfiles"
