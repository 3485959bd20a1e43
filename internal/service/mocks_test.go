package service

import (
	"context"

	"carmarket/models"
)

// mockUserRepository implements store.UserRepository for unit tests.
// Each method field can be overridden per test case.
type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
	findUserByIDFn       func(ctx context.Context, id string) (models.User, error)
	updateScoreFn        func(ctx context.Context, id string, score int64) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return m.findUserByUsernameFn(ctx, username)
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return m.findUserByIDFn(ctx, id)
}

func (m *mockUserRepository) UpdateScore(ctx context.Context, id string, score int64) (models.User, error) {
	return m.updateScoreFn(ctx, id, score)
}

// mockCarRepository implements store.CarRepository for unit tests.
type mockCarRepository struct {
	createCarFn   func(ctx context.Context, car models.Car) (models.Car, error)
	findCarByIDFn func(ctx context.Context, id string) (models.Car, error)
	queryCarsFn   func(ctx context.Context, filter models.CarFilter) ([]models.Car, error)
	updateCarFn   func(ctx context.Context, car models.Car) (models.Car, error)
	deleteCarFn   func(ctx context.Context, id string) error
}

func (m *mockCarRepository) CreateCar(ctx context.Context, car models.Car) (models.Car, error) {
	return m.createCarFn(ctx, car)
}

func (m *mockCarRepository) FindCarByID(ctx context.Context, id string) (models.Car, error) {
	return m.findCarByIDFn(ctx, id)
}

func (m *mockCarRepository) QueryCars(ctx context.Context, filter models.CarFilter) ([]models.Car, error) {
	return m.queryCarsFn(ctx, filter)
}

func (m *mockCarRepository) UpdateCar(ctx context.Context, car models.Car) (models.Car, error) {
	return m.updateCarFn(ctx, car)
}

func (m *mockCarRepository) DeleteCar(ctx context.Context, id string) error {
	return m.deleteCarFn(ctx, id)
}
