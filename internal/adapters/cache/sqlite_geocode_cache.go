package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"trip-itinerary-service/internal/domain"
)

// SQLite backed cache mapping city names to geographic coordinates.
// City keys are expected to be consistent (e.g., normalized) by the caller.
type SqliteGeocodeCache struct {
	DB *sql.DB
}

func NewSqliteGeocodeCache(db *sql.DB) *SqliteGeocodeCache {
	return &SqliteGeocodeCache{DB: db}
}

// Fetch cached coordinates for a city. The second return is false on a miss.
func (s *SqliteGeocodeCache) Get(city string) (domain.Coordinates, bool, error) {
	if s.DB == nil {
		return domain.Coordinates{}, false, errors.New("geocode cache: db is nil")
	}

	city = strings.TrimSpace(city)
	if city == "" {
		return domain.Coordinates{}, false, errors.New("get geocode cache: city must not be empty")
	}

	q := `
	SELECT lon, lat
    FROM geocode_cache
    WHERE city = ?;
	`

	var lon, lat float64
	err := s.DB.QueryRow(q, city).Scan(&lon, &lat)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return domain.Coordinates{Lat: lat, Lon: lon}, true, nil
}

// Store a city -> coordinate mapping in the cache.
func (s *SqliteGeocodeCache) Put(city string, c domain.Coordinates) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	city = strings.TrimSpace(city)
	if city == "" {
		return errors.New("insert geocode cache: empty city key")
	}

	q := `
	INSERT OR REPLACE INTO geocode_cache (
        city,
        lon,
        lat
    )
    VALUES (?, ?, ?);
	`
	if _, err := s.DB.Exec(q, city, c.Lon, c.Lat); err != nil {
		return fmt.Errorf("insert geocode cache city=%q: %w", city, err)
	}

	return nil
}
