package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the opaque unique identifier of the user, assigned at creation
	// and immutable afterwards.
	ID string `json:"_id"`

	// Username is the unique login identifier used during authentication.
	Username string `json:"username" validate:"required"`

	// Password stores the HMAC-SHA256 hash of the user's password.
	// This value MUST be a derived value, never plaintext, and is never
	// serialized to clients.
	Password string `json:"-"`

	// Fullname is the display name of the user. Non-sensitive, may be
	// shown in UI.
	Fullname string `json:"fullname"`

	// Score is a mutable counter owned by the user; only the user
	// themselves may change it.
	Score int64 `json:"score"`

	// IsAdmin marks administrator accounts. Administrators may mutate or
	// remove cars they do not own.
	IsAdmin bool `json:"isAdmin,omitempty"`

	// CreatedAt is the timestamp when the account was created. Used for
	// auditing; not part of the wire format.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// ToIdentity returns the public identity snapshot of the user: the fields
// embedded into session tokens and stamped onto cars as the owner.
func (u User) ToIdentity() Identity {
	return Identity{
		ID:       u.ID,
		Username: u.Username,
		Fullname: u.Fullname,
		IsAdmin:  u.IsAdmin,
	}
}

// Identity is the public subset of a User carried inside a session token and
// embedded into a Car as its owner. It contains no credential material.
type Identity struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
	IsAdmin  bool   `json:"isAdmin,omitempty"`
}

// Credentials is the request body of the login and signup endpoints.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Fullname string `json:"fullname"`
}

// UserUpdate is the request body of the score-update endpoint.
// Score uses the Number type so both JSON numbers and numeric strings are
// accepted, while anything non-numeric is rejected at decode time.
type UserUpdate struct {
	ID    string `json:"_id"`
	Score Number `json:"score"`
}
