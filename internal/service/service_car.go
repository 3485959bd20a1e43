package service

import (
	"context"
	"fmt"

	"carmarket/internal/logger"
	"carmarket/internal/store"
	"carmarket/internal/validators"
	"carmarket/models"
)

// carService is the concrete implementation of CarService. It enforces the
// ownership rules on mutation and removal; the repository underneath is
// ownership-agnostic.
type carService struct {
	carRepository store.CarRepository
	validator     *validators.Validator
	logger        *logger.Logger
}

// NewCarService constructs a CarService wired to the given CarRepository.
func NewCarService(carRepository store.CarRepository, validator *validators.Validator, logger *logger.Logger) CarService {
	return &carService{
		carRepository: carRepository,
		validator:     validator,
		logger:        logger,
	}
}

// Query lists cars matching the filter in insertion order. An empty filter
// returns every car.
func (c *carService) Query(ctx context.Context, filter models.CarFilter) ([]models.Car, error) {
	cars, err := c.carRepository.QueryCars(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("car query failed")
		return nil, fmt.Errorf("car query failed: %w", err)
	}

	return cars, nil
}

// Get returns a single car or a wrapped store.ErrCarNotFound.
func (c *carService) Get(ctx context.Context, id string) (models.Car, error) {
	car, err := c.carRepository.FindCarByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("carId", id).Msg("car lookup failed")
		return models.Car{}, fmt.Errorf("car lookup failed: %w", err)
	}

	return car, nil
}

// Save inserts or updates a car listing.
//
// Insert (no ID): the owner is stamped from actingUser; whatever owner the
// client supplied is discarded.
//
// Update (ID present): the stored record's owner decides authorization —
// only that owner or an administrator may update — and stays untouched by
// the update itself.
func (c *carService) Save(ctx context.Context, car models.Car, actingUser models.Identity) (models.Car, error) {
	log := logger.FromContext(ctx)

	if err := c.validator.ValidateCar(car); err != nil {
		log.Err(err).Msg("invalid car data provided")
		return models.Car{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if car.ID == "" {
		if actingUser.ID == "" {
			log.Error().Msg("car insert without acting user")
			return models.Car{}, ErrInvalidDataProvided
		}

		car.Owner = actingUser
		savedCar, err := c.carRepository.CreateCar(ctx, car)
		if err != nil {
			log.Err(err).Msg("car creation ended with error")
			return models.Car{}, fmt.Errorf("car creation ended with error: %w", err)
		}

		return savedCar, nil
	}

	existing, err := c.carRepository.FindCarByID(ctx, car.ID)
	if err != nil {
		log.Err(err).Str("carId", car.ID).Msg("car lookup before update failed")
		return models.Car{}, fmt.Errorf("car lookup before update failed: %w", err)
	}

	if !mayMutate(existing, actingUser) {
		log.Error().
			Str("carId", car.ID).
			Str("ownerId", existing.Owner.ID).
			Str("actingUserId", actingUser.ID).
			Msg("acting user may not update this car")
		return models.Car{}, ErrNotOwner
	}

	car.Owner = existing.Owner
	updatedCar, err := c.carRepository.UpdateCar(ctx, car)
	if err != nil {
		log.Err(err).Str("carId", car.ID).Msg("car update ended with error")
		return models.Car{}, fmt.Errorf("car update ended with error: %w", err)
	}

	return updatedCar, nil
}

// Remove permanently deletes a car. Fails with a wrapped
// store.ErrCarNotFound when the id is unknown and with ErrNotOwner when the
// acting user is neither the stored owner nor an administrator.
func (c *carService) Remove(ctx context.Context, id string, actingUser models.Identity) (string, error) {
	log := logger.FromContext(ctx)

	existing, err := c.carRepository.FindCarByID(ctx, id)
	if err != nil {
		log.Err(err).Str("carId", id).Msg("car lookup before removal failed")
		return "", fmt.Errorf("car lookup before removal failed: %w", err)
	}

	if !mayMutate(existing, actingUser) {
		log.Error().
			Str("carId", id).
			Str("ownerId", existing.Owner.ID).
			Str("actingUserId", actingUser.ID).
			Msg("acting user may not remove this car")
		return "", ErrNotOwner
	}

	if err = c.carRepository.DeleteCar(ctx, id); err != nil {
		log.Err(err).Str("carId", id).Msg("car removal ended with error")
		return "", fmt.Errorf("car removal ended with error: %w", err)
	}

	return fmt.Sprintf("car %s removed", id), nil
}

// mayMutate reports whether actingUser is allowed to change or remove the
// stored car: the owner stamped at creation time, or any administrator.
func mayMutate(stored models.Car, actingUser models.Identity) bool {
	return actingUser.IsAdmin || (actingUser.ID != "" && stored.Owner.ID == actingUser.ID)
}
