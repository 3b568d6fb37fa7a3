package types

import "time"

// User represents an account in the system.
type User struct {
	// ID is the unique identifier of the user.
	ID string `json:"id"`

	// Username is the unique login name chosen by the user.
	// Lookups are case-sensitive.
	Username string `json:"username"`

	// PasswordHash stores the hashed representation of the user's password.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the most recent update to the user account.
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicUser is the view of a user that crosses the API boundary.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Public returns the externally visible view of the user.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username}
}
