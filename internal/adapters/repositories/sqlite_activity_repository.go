package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"trip-itinerary-service/internal/domain"
)

// SQLite-backed implementation of the ActivityRepository port.
type SqliteActivityRepository struct{ DB *sql.DB }

func NewSqliteActivityRepository(db *sql.DB) *SqliteActivityRepository {
	return &SqliteActivityRepository{DB: db}
}

// Return all candidate activities stored for a destination.
func (s *SqliteActivityRepository) ListActivities(ctx context.Context, destination string) ([]domain.Activity, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite activity repository: DB is nil")
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
	WHERE destination = ?
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
