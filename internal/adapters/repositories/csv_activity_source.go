package repositories

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"trip-itinerary-service/internal/domain"
)

// CSVActivitySource implements the ActivityRepository port over a local CSV
// file, for offline planning without a database.
//
// Expected header: activity_id,destination,name,category,lat,lon,cost_usd,
// duration_minutes,rating. The rating column may be empty.
type CSVActivitySource struct{ Path string }

func NewCSVActivitySource(path string) *CSVActivitySource {
	return &CSVActivitySource{Path: path}
}

func (c *CSVActivitySource) ListActivities(ctx context.Context, destination string) ([]domain.Activity, error) {
	f, err := os.Open(c.Path)
	if err != nil {
		return nil, fmt.Errorf("csv activities: open %q: %w", c.Path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("csv activities: read header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(strings.ToLower(h))] = i
	}
	for _, required := range []string{"activity_id", "destination", "name", "category", "lat", "lon", "cost_usd", "duration_minutes"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("csv activities: missing column %q", required)
		}
	}

	activities := make([]domain.Activity, 0, 64)
	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv activities: read row %d: %w", line+1, err)
		}
		line++

		if strings.TrimSpace(record[col["destination"]]) != destination {
			continue
		}

		a, err := parseCSVActivity(record, col)
		if err != nil {
			return nil, fmt.Errorf("csv activities: row %d: %w", line, err)
		}
		activities = append(activities, a)
	}

	return activities, nil
}

func parseCSVActivity(record []string, col map[string]int) (domain.Activity, error) {
	field := func(name string) string { return strings.TrimSpace(record[col[name]]) }

	id, err := strconv.Atoi(field("activity_id"))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("parse activity_id %q: %w", field("activity_id"), err)
	}
	lat, err := strconv.ParseFloat(field("lat"), 64)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("parse lat %q: %w", field("lat"), err)
	}
	lon, err := strconv.ParseFloat(field("lon"), 64)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("parse lon %q: %w", field("lon"), err)
	}
	cost, err := strconv.ParseFloat(field("cost_usd"), 64)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("parse cost_usd %q: %w", field("cost_usd"), err)
	}
	minutes, err := strconv.Atoi(field("duration_minutes"))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("parse duration_minutes %q: %w", field("duration_minutes"), err)
	}

	a := domain.Activity{
		ActivityID: id,
		Name:       field("name"),
		Category:   domain.Category(field("category")),
		Location:   domain.Coordinates{Lat: lat, Lon: lon},
		CostUSD:    cost,
		Duration:   time.Duration(minutes) * time.Minute,
	}

	if idx, ok := col["rating"]; ok && idx < len(record) {
		if raw := strings.TrimSpace(record[idx]); raw != "" {
			rating, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return domain.Activity{}, fmt.Errorf("parse rating %q: %w", raw, err)
			}
			a.Rating = &rating
		}
	}

	return a, nil
}
