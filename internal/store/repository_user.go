package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"carmarket/internal/logger"
	"carmarket/internal/utils"
	"carmarket/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt).
//
// Error handling:
//   - unique-constraint violation on username → [ErrUsernameTaken].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.ID == "" {
		user.ID = r.ids.Generate()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	query, args, err := r.db.builder.
		Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Username, user.Password, user.Fullname, user.Score, user.IsAdmin, user.CreatedAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building insert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("user creation ended with error")

		if r.db.errorClassifier.IsUniqueViolation(err) {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

// FindUserByUsername retrieves a user record by its unique username.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - Scan failure → wrapped [ErrScanningRow].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, "username", username)
}

// FindUserByID retrieves a user record by its id.
//
// Error handling mirrors [userRepository.FindUserByUsername].
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findUser(ctx, "user_id", id)
}

// UpdateScore sets the score of an existing user and returns the updated
// record. Returns [ErrNoUserWasFound] when the id matches no row.
func (r *userRepository) UpdateScore(ctx context.Context, id string, score int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update("users").
		Set("score", score).
		Where("user_id = ?", id).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateScore").Msg("error building update query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateScore").Msg("error executing update")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return models.User{}, ErrNoUserWasFound
	}

	return r.FindUserByID(ctx, id)
}

func (r *userRepository) findUser(ctx context.Context, column, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(userColumns...).
		From("users").
		Where(column+" = ?", value).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error building select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(&foundUser.ID, &foundUser.Username, &foundUser.Password, &foundUser.Fullname, &foundUser.Score, &foundUser.IsAdmin, &foundUser.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundUser, nil
}
