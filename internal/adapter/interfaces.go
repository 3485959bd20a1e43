// Package adapter provides a Go client for the car-market HTTP API.
// It keeps the session cookie issued by login/signup in an in-memory cookie
// jar, so a single client value can drive the full authenticated flow.
package adapter

import (
	"context"

	"carmarket/models"
)

// APIClient is the client-side contract of the car-market REST API.
type APIClient interface {
	Signup(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	Logout(ctx context.Context) error

	QueryCars(ctx context.Context, filter models.CarFilter) ([]models.Car, error)
	GetCar(ctx context.Context, id string) (models.Car, error)
	AddCar(ctx context.Context, car models.Car) (models.Car, error)
	UpdateCar(ctx context.Context, car models.Car) (models.Car, error)
	RemoveCar(ctx context.Context, id string) (models.RemoveResult, error)

	UpdateScore(ctx context.Context, update models.UserUpdate) (models.User, error)
}
