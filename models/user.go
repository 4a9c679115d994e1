package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account entity used for authentication and place
// ownership. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// UserID is the store-assigned unique identifier of the user.
	// Serialized as "id" so that API clients never see the raw column name.
	UserID uuid.UUID `json:"id"`

	// Name is the display name of the user. Non-empty.
	Name string `json:"name"`

	// Email is the unique, lower-cased login identifier.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt-derived representation of the user
	// password. MUST never be plaintext and is never serialized.
	PasswordHash string `json:"-"`

	// Image is the storage path of the user's profile image, set at signup.
	Image string `json:"image"`

	// Places holds back-references to every place created by this user.
	// The user does not own the places' lifetime; the list is maintained
	// by the place create/delete transactions.
	Places []uuid.UUID `json:"places"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
