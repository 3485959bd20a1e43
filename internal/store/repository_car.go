package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"carmarket/internal/logger"
	"carmarket/internal/utils"
	"carmarket/models"
)

// carRepository is the SQL-backed implementation of [CarRepository].
//
// The owner snapshot is stored as a JSON document in the "owner" column:
// it is a point-in-time copy of the creating user, never joined back to the
// users table.
type carRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
}

// NewCarRepository constructs a [CarRepository] backed by the provided
// database connection and logger.
func NewCarRepository(db *DB, logger *logger.Logger) CarRepository {
	logger.Debug().Msg("creating car repository")
	return &carRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// CreateCar persists a new car listing and returns it with server-assigned
// fields (ID, CreatedAt) populated.
func (r *carRepository) CreateCar(ctx context.Context, car models.Car) (models.Car, error) {
	log := logger.FromContext(ctx)

	if car.ID == "" {
		car.ID = r.ids.Generate()
	}
	if car.CreatedAt.IsZero() {
		car.CreatedAt = time.Now().UTC()
	}

	ownerJSON, err := json.Marshal(car.Owner)
	if err != nil {
		log.Err(err).Str("func", "*carRepository.CreateCar").Msg("error marshaling owner")
		return models.Car{}, fmt.Errorf("error marshaling car owner: %w", err)
	}

	query, args, err := r.db.builder.
		Insert(car.TableName()).
		Columns(carColumns...).
		Values(car.ID, car.Vendor, car.Speed.Float64(), car.Price.Float64(), ownerJSON, car.CreatedAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*carRepository.CreateCar").Msg("error building insert query")
		return models.Car{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*carRepository.CreateCar").Msg("car creation ended with error")
		return models.Car{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return car, nil
}

// FindCarByID retrieves a single car or [ErrCarNotFound].
func (r *carRepository) FindCarByID(ctx context.Context, id string) (models.Car, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(carColumns...).
		From("cars").
		Where("car_id = ?", id).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*carRepository.FindCarByID").Msg("error building select query")
		return models.Car{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	car, err := scanCar(row)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Car{}, ErrCarNotFound
	case err != nil:
		log.Err(err).Str("func", "*carRepository.FindCarByID").Msg("error: scanning error")
		return models.Car{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return car, nil
}

// QueryCars lists cars matching the filter in insertion order.
// An empty filter returns every car.
func (r *carRepository) QueryCars(ctx context.Context, filter models.CarFilter) ([]models.Car, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildCarQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*carRepository.QueryCars").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*carRepository.QueryCars").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cars := make([]models.Car, 0)
	for rows.Next() {
		car, scanErr := scanCar(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*carRepository.QueryCars").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		cars = append(cars, car)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return cars, nil
}

// UpdateCar overwrites vendor, speed and price of an existing car. The owner
// column is deliberately left out of the SET list: the snapshot taken at
// creation stays authoritative for authorization.
func (r *carRepository) UpdateCar(ctx context.Context, car models.Car) (models.Car, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update("cars").
		Set("vendor", car.Vendor).
		Set("speed", car.Speed.Float64()).
		Set("price", car.Price.Float64()).
		Where("car_id = ?", car.ID).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*carRepository.UpdateCar").Msg("error building update query")
		return models.Car{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*carRepository.UpdateCar").Msg("error executing update")
		return models.Car{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return models.Car{}, ErrCarNotFound
	}

	return r.FindCarByID(ctx, car.ID)
}

// DeleteCar removes a car permanently. Removal is not soft and does not
// cascade.
func (r *carRepository) DeleteCar(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete("cars").
		Where("car_id = ?", id).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*carRepository.DeleteCar").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*carRepository.DeleteCar").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrCarNotFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCar(row rowScanner) (models.Car, error) {
	var (
		car       models.Car
		speed     float64
		price     float64
		ownerJSON []byte
	)

	if err := row.Scan(&car.ID, &car.Vendor, &speed, &price, &ownerJSON, &car.CreatedAt); err != nil {
		return models.Car{}, err
	}

	car.Speed = models.Number(speed)
	car.Price = models.Number(price)

	if len(ownerJSON) > 0 {
		if err := json.Unmarshal(ownerJSON, &car.Owner); err != nil {
			return models.Car{}, fmt.Errorf("error unmarshaling car owner: %w", err)
		}
	}

	return car, nil
}
