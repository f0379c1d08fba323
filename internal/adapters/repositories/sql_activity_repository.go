package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/platform/obs"
)

// SQLActivityRepository is a Postgres-backed implementation of the
// ActivityRepository port.
type SQLActivityRepository struct{ DB *sql.DB }

func NewSQLActivityRepository(db *sql.DB) *SQLActivityRepository {
	return &SQLActivityRepository{DB: db}
}

// Return all candidate activities stored for a destination.
func (s *SQLActivityRepository) ListActivities(ctx context.Context, destination string) (_ []domain.Activity, err error) {
	defer obs.Time(ctx, "activities.repo.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sql activity repository: DB is nil")
	}

	query := `
	SELECT
		activity_id,
		name,
		category,
		lat,
		lon,
		cost_usd,
		duration_minutes,
		rating
	FROM activities
	WHERE destination = $1
	ORDER BY activity_id;
	`
	rows, err := s.DB.QueryContext(ctx, query, destination)
	if err != nil {
		return nil, fmt.Errorf("list activities: query activities table: %w", err)
	}
	defer rows.Close()

	activities := make([]domain.Activity, 0, 64)
	for rows.Next() {
		var (
			a       domain.Activity
			cat     string
			minutes int
			rating  sql.NullFloat64
		)
		err := rows.Scan(
			&a.ActivityID, &a.Name, &cat,
			&a.Location.Lat, &a.Location.Lon,
			&a.CostUSD, &minutes, &rating,
		)
		if err != nil {
			return nil, fmt.Errorf("list activities: scan row: %w", err)
		}

		a.Category = domain.Category(cat)
		a.Duration = time.Duration(minutes) * time.Minute
		if rating.Valid {
			r := rating.Float64
			a.Rating = &r
		}
		activities = append(activities, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list activities: row iteration: %w", err)
	}

	return activities, nil
}

// InitSchemaPostgres creates the activities table on a Postgres database.
// The SQLite variant lives in sqlite_init.go; the dbtool uses this one.
func InitSchemaPostgres(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	query := `
	CREATE TABLE IF NOT EXISTS activities (
		activity_id INTEGER PRIMARY KEY,
		destination TEXT NOT NULL,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		cost_usd DOUBLE PRECISION NOT NULL,
		duration_minutes INTEGER NOT NULL,
		rating DOUBLE PRECISION
	);
	CREATE INDEX IF NOT EXISTS idx_activities_destination
	ON activities(destination);
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("init schema: exec: %w", err)
	}

	return nil
}

// SeedFromJSONPostgres upserts candidate activities from a JSON seed file.
func SeedFromJSONPostgres(db *sql.DB, jsonPath string) error {
	rows, err := readSeedFile(jsonPath)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed activities: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO activities (
		activity_id, destination, name, category,
		lat, lon, cost_usd, duration_minutes, rating
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (activity_id) DO UPDATE
	SET destination = EXCLUDED.destination,
		name = EXCLUDED.name,
		category = EXCLUDED.category,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		cost_usd = EXCLUDED.cost_usd,
		duration_minutes = EXCLUDED.duration_minutes,
		rating = EXCLUDED.rating;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed activities: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range rows {
		_, err := stmt.Exec(
			a.ActivityID, a.Destination, a.Name, a.Category,
			a.Lat, a.Lon, a.CostUSD, a.DurationMinutes, a.Rating,
		)
		if err != nil {
			return fmt.Errorf("seed activities: insert activity_id=%d: %w", a.ActivityID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed activities: commit tx: %w", err)
	}

	return nil
}
