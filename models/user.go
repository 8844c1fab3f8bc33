package models

import "time"

// User represents an account that owns devices and clipboard items.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the server-assigned identifier (UUIDv7 text).
	UserID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// Password carries the plain-text password of a register or login
	// request. It is never persisted and never written back to clients.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the database.
	PasswordHash string `json:"-"`

	// IsActive is false for disabled accounts. Inactive users cannot
	// authenticate on any transport.
	IsActive bool `json:"is_active"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Sanitized returns a copy of u without credential material.
func (u User) Sanitized() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}
