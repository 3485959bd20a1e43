package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"carmarket/models"
)

// Column lists shared between the repositories. Keeping them in one place
// makes the SELECT/INSERT column order explicit for row scanning.
var (
	userColumns = []string{"user_id", "username", "password_hash", "fullname", "score", "is_admin", "created_at"}
	carColumns  = []string{"car_id", "vendor", "speed", "price", "owner", "created_at"}
)

// sqliteSchema bootstraps the SQLite backend. PostgreSQL schemas are managed
// by the goose migrations instead.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
    user_id       TEXT PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    fullname      TEXT NOT NULL DEFAULT '',
    score         INTEGER NOT NULL DEFAULT 0,
    is_admin      INTEGER NOT NULL DEFAULT 0,
    created_at    TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS cars (
    car_id     TEXT PRIMARY KEY,
    vendor     TEXT NOT NULL,
    speed      REAL NOT NULL DEFAULT 0,
    price      REAL NOT NULL DEFAULT 0,
    owner      TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);
`

// buildCarQuery dynamically builds the filtered car listing SELECT.
//
// Both filters are optional and applied independently:
//   - filter.Txt adds a case-insensitive substring match on vendor;
//   - filter.ByPrice adds "price <= filter.MaxPrice".
//
// Results are ordered by insertion (created_at, car_id tiebreak).
func (r *carRepository) buildCarQuery(filter models.CarFilter) (string, []any, error) {
	query := r.db.builder.
		Select(carColumns...).
		From("cars")

	if filter.Txt != "" {
		query = query.Where(sq.Like{"LOWER(vendor)": "%" + strings.ToLower(filter.Txt) + "%"})
	}

	if filter.ByPrice {
		query = query.Where(sq.LtOrEq{"price": filter.MaxPrice})
	}

	return query.OrderBy("created_at", "car_id").ToSql()
}
