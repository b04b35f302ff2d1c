package model

import "time"

// User is identity record owned by the external identity provider.
// Storage only upserts it from verified token claims and reads it back.
type User struct {
	ID              string    `json:"id" bson:"_id"`
	Email           *string   `json:"email" bson:"email"`
	FirstName       *string   `json:"firstName" bson:"firstName"`
	LastName        *string   `json:"lastName" bson:"lastName"`
	ProfileImageURL *string   `json:"profileImageUrl" bson:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt" bson:"updatedAt"`
}

// UpsertUser is the identity attributes asserted by the provider
type UpsertUser struct {
	ID              string  `json:"id"`
	Email           *string `json:"email"`
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	ProfileImageURL *string `json:"profileImageUrl"`
}
