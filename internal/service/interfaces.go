package service

import (
	"context"

	"carmarket/models"
)

// AuthService owns credentials and the session token lifecycle.
type AuthService interface {
	// Login verifies the credentials and returns the matching user.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// Signup registers a new account and returns the persisted user.
	Signup(ctx context.Context, creds models.Credentials) (models.User, error)

	// CreateToken mints a signed session token for the user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ValidateToken decodes and verifies a session token string, returning
	// the identity embedded in it. Every failure is
	// ErrTokenIsExpiredOrInvalid; callers treat it as "no session".
	ValidateToken(ctx context.Context, tokenString string) (models.Identity, error)
}

// CarService owns the car listing lifecycle, including the ownership rules
// for mutation and removal.
type CarService interface {
	Query(ctx context.Context, filter models.CarFilter) ([]models.Car, error)
	Get(ctx context.Context, id string) (models.Car, error)

	// Save inserts (no ID) or updates (ID present) a car. On insert the
	// owner is stamped from actingUser; on update only the stored owner or
	// an administrator may proceed and the stored owner is preserved.
	Save(ctx context.Context, car models.Car, actingUser models.Identity) (models.Car, error)

	// Remove deletes a car; only the stored owner or an administrator may
	// do so. Returns a human-readable confirmation message.
	Remove(ctx context.Context, id string, actingUser models.Identity) (string, error)
}

// UserService owns user profile reads and the score update.
type UserService interface {
	GetByID(ctx context.Context, id string) (models.User, error)

	// UpdateScore updates the score of the acting user's own record.
	UpdateScore(ctx context.Context, update models.UserUpdate, actingUser models.Identity) (models.User, error)
}
