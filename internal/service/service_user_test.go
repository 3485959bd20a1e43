package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carmarket/internal/logger"
	"carmarket/internal/store"
	"carmarket/models"
)

func TestUserGetByID_Success(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, id string) (models.User, error) {
			assert.Equal(t, "u1", id)
			return models.User{ID: "u1", Username: "alice"}, nil
		},
	}

	svc := NewUserService(repo, logger.Nop())

	user, err := svc.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestUserGetByID_NotFound(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	svc := NewUserService(repo, logger.Nop())

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestUpdateScore_OwnRecord(t *testing.T) {
	repo := &mockUserRepository{
		updateScoreFn: func(_ context.Context, id string, score int64) (models.User, error) {
			assert.Equal(t, "u1", id)
			assert.Equal(t, int64(120), score)
			return models.User{ID: "u1", Username: "alice", Score: score}, nil
		},
	}

	svc := NewUserService(repo, logger.Nop())

	updated, err := svc.UpdateScore(
		context.Background(),
		models.UserUpdate{ID: "u1", Score: 120},
		models.Identity{ID: "u1", Username: "alice"},
	)
	require.NoError(t, err)
	assert.Equal(t, int64(120), updated.Score)
}

func TestUpdateScore_OtherUsersRecord(t *testing.T) {
	svc := NewUserService(&mockUserRepository{}, logger.Nop())

	_, err := svc.UpdateScore(
		context.Background(),
		models.UserUpdate{ID: "u1", Score: 120},
		models.Identity{ID: "u2", Username: "bob"},
	)
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestUpdateScore_MissingID(t *testing.T) {
	svc := NewUserService(&mockUserRepository{}, logger.Nop())

	_, err := svc.UpdateScore(
		context.Background(),
		models.UserUpdate{Score: 120},
		models.Identity{ID: "u1"},
	)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUpdateScore_StorageError(t *testing.T) {
	repo := &mockUserRepository{
		updateScoreFn: func(_ context.Context, _ string, _ int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	svc := NewUserService(repo, logger.Nop())

	_, err := svc.UpdateScore(
		context.Background(),
		models.UserUpdate{ID: "u1", Score: 120},
		models.Identity{ID: "u1"},
	)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}
