package service

import (
	"context"
	"fmt"

	"carmarket/internal/logger"
	"carmarket/internal/store"
	"carmarket/models"
)

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetByID returns a user profile or a wrapped store.ErrNoUserWasFound.
func (u *userService) GetByID(ctx context.Context, id string) (models.User, error) {
	user, err := u.userRepository.FindUserByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("userId", id).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// UpdateScore sets the score on the acting user's own record.
// A payload targeting any other record is rejected with ErrNotOwner before
// storage is touched.
func (u *userService) UpdateScore(ctx context.Context, update models.UserUpdate, actingUser models.Identity) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.ID == "" {
		log.Error().Msg("score update without user id")
		return models.User{}, ErrInvalidDataProvided
	}

	if update.ID != actingUser.ID {
		log.Error().
			Str("targetId", update.ID).
			Str("actingUserId", actingUser.ID).
			Msg("score update targets a different user")
		return models.User{}, ErrNotOwner
	}

	updatedUser, err := u.userRepository.UpdateScore(ctx, update.ID, int64(update.Score))
	if err != nil {
		log.Err(err).Str("userId", update.ID).Msg("score update ended with error")
		return models.User{}, fmt.Errorf("score update ended with error: %w", err)
	}

	return updatedUser, nil
}
