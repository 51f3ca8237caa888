package models

import "time"

// User represents an account entity used for authentication and ownership
// scoping. Credential-related fields are never exposed through JSON.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Email is the unique login identifier. The domain part is lowercased
	// at registration time; local-part casing is preserved as supplied.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// Plaintext passwords are never persisted or serialized.
	PasswordHash string `json:"-"`

	// IsActive gates authentication: inactive users cannot obtain tokens.
	IsActive bool `json:"-"`

	// IsStaff marks accounts with access to administrative tooling.
	IsStaff bool `json:"-"`

	// IsSuperuser marks accounts with unrestricted administrative access.
	IsSuperuser bool `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
