package store

import (
	"context"

	"carmarket/models"
)

// UserRepository is the persistence abstraction for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns it with a server-assigned
	// ID. Fails with ErrUsernameTaken when the username is not unique.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the user with the given username or
	// ErrNoUserWasFound.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID returns the user with the given id or ErrNoUserWasFound.
	FindUserByID(ctx context.Context, id string) (models.User, error)

	// UpdateScore sets the score of the user with the given id and returns
	// the updated record. Fails with ErrNoUserWasFound when absent.
	UpdateScore(ctx context.Context, id string, score int64) (models.User, error)
}

// CarRepository is the persistence abstraction for car listings.
type CarRepository interface {
	// CreateCar persists a new car (ID assigned when empty) and returns it.
	CreateCar(ctx context.Context, car models.Car) (models.Car, error)

	// FindCarByID returns the car with the given id or ErrCarNotFound.
	FindCarByID(ctx context.Context, id string) (models.Car, error)

	// QueryCars returns cars matching the filter in insertion order.
	QueryCars(ctx context.Context, filter models.CarFilter) ([]models.Car, error)

	// UpdateCar overwrites vendor, speed and price of an existing car,
	// leaving the stored owner untouched, and returns the updated record.
	// Fails with ErrCarNotFound when the id does not exist.
	UpdateCar(ctx context.Context, car models.Car) (models.Car, error)

	// DeleteCar removes the car with the given id permanently.
	// Fails with ErrCarNotFound when the id does not exist.
	DeleteCar(ctx context.Context, id string) error
}
