package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createActivitiesQuery := `
	CREATE TABLE IF NOT EXISTS activities (
		activity_id INTEGER PRIMARY KEY,
		destination TEXT NOT NULL,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		lat REAL NOT NULL,
		lon REAL NOT NULL,
		cost_usd REAL NOT NULL,
		duration_minutes INTEGER NOT NULL,
		rating REAL
	);
	`

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
        city TEXT PRIMARY KEY,
        lon REAL NOT NULL,
        lat REAL NOT NULL
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_activities_destination
    ON activities(destination);
	`

	statements := []string{
		createActivitiesQuery,
		createGeocodeCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type ActivitySeed struct {
	ActivityID      int      `json:"activity_id"`
	Destination     string   `json:"destination"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Lat             float64  `json:"lat"`
	Lon             float64  `json:"lon"`
	CostUSD         float64  `json:"cost_usd"`
	DurationMinutes int      `json:"duration_minutes"`
	Rating          *float64 `json:"rating"`
}

// readSeedFile parses and validates an activity seed file.
func readSeedFile(jsonPath string) ([]ActivitySeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed activities: read %q: %w", jsonPath, err)
	}

	var data []ActivitySeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("seed activities: parse json: %w", err)
	}

	rows := make([]ActivitySeed, 0, len(data))
	for i, item := range data {
		if item.ActivityID <= 0 {
			return nil, fmt.Errorf("seed activities: invalid activity_id at index %d: %d", i+1, item.ActivityID)
		}

		if strings.TrimSpace(item.Destination) == "" {
			return nil, fmt.Errorf("seed activities: item at index %d: destination cannot be empty", i+1)
		}
		if strings.TrimSpace(item.Name) == "" {
			return nil, fmt.Errorf("seed activities: item at index %d: name cannot be empty", i+1)
		}
		rows = append(rows, item)
	}

	return rows, nil
}

// Populate the database with candidate activities from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	rows, err := readSeedFile(jsonPath)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed activities: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT OR REPLACE INTO activities (
		activity_id,
		destination,
		name,
		category,
		lat,
		lon,
		cost_usd,
		duration_minutes,
		rating
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed activities: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range rows {
		_, err := stmt.Exec(
			a.ActivityID,
			strings.TrimSpace(a.Destination),
			strings.TrimSpace(a.Name),
			strings.TrimSpace(a.Category),
			a.Lat,
			a.Lon,
			a.CostUSD,
			a.DurationMinutes,
			a.Rating,
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
