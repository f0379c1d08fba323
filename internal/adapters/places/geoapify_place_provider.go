package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"trip-itinerary-service/internal/adapters/cache"
	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/platform/obs"
)

// geoapifyCategories maps engine categories onto Geoapify place categories.
var geoapifyCategories = map[domain.Category]string{
	domain.CategorySightseeing: "tourism.attraction",
	domain.CategoryDining:      "catering.restaurant",
	domain.CategoryOutdoor:     "leisure.park",
	domain.CategoryCulture:     "entertainment.museum",
	domain.CategoryNightlife:   "adult.nightclub",
	domain.CategoryShopping:    "commercial.shopping_mall",
	domain.CategoryRelaxation:  "leisure.spa",
}

// GeoapifyPlaceProvider implements PlaceProvider using the Geoapify Places
// and Geocoding APIs.
//
// It coordinates:
//   - City name normalization
//   - Persistent geocode caching (SQLite)
//   - Place result caching (Redis, TTL-bounded)
//   - External API calls with retry/backoff
//
// The provider is safe for concurrent use.
type GeoapifyPlaceProvider struct {
	session      *http.Client
	apiKey       string
	baseURL      string
	placeCache   *cache.RedisPlaceCache
	geocodeCache *cache.SqliteGeocodeCache
}

func NewGeoapifyPlaceProvider(
	apiKey string,
	placeCache *cache.RedisPlaceCache,
	geocodeCache *cache.SqliteGeocodeCache,
) (*GeoapifyPlaceProvider, error) {
	if apiKey == "" {
		return nil, errors.New("geoapify api key is empty")
	}

	provider := &GeoapifyPlaceProvider{
		session:      &http.Client{Timeout: 10 * time.Second},
		apiKey:       apiKey,
		baseURL:      "https://api.geoapify.com",
		placeCache:   placeCache,
		geocodeCache: geocodeCache,
	}

	return provider, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (g *GeoapifyPlaceProvider) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

type geocodeResponse struct {
	Results []struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"results"`
}

// GeocodeCity resolves a city name to reference coordinates, consulting the
// persistent geocode cache before calling the API.
func (g *GeoapifyPlaceProvider) GeocodeCity(ctx context.Context, city string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "geoapify.GeocodeCity")(&err)

	city = g.normalize(city)
	if city == "" {
		return domain.Coordinates{}, errors.New("geocode city: city must be non-empty")
	}

	if g.geocodeCache != nil {
		coords, ok, err := g.geocodeCache.Get(city)
		if err != nil {
			return domain.Coordinates{}, fmt.Errorf("geocode city: cache: %w", err)
		}
		if ok {
			return coords, nil
		}
	}

	q := url.Values{}
	q.Set("text", city)
	q.Set("type", "city")
	q.Set("format", "json")
	q.Set("apiKey", g.apiKey)

	var res geocodeResponse
	if err := g.getJSON(ctx, g.baseURL+"/v1/geocode/search?"+q.Encode(), &res); err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode city %q: %w", city, err)
	}

	if len(res.Results) == 0 {
		return domain.Coordinates{}, fmt.Errorf("geocode city: no results for %q", city)
	}

	coords := domain.Coordinates{Lat: res.Results[0].Lat, Lon: res.Results[0].Lon}

	if g.geocodeCache != nil {
		if err := g.geocodeCache.Put(city, coords); err != nil {
			// Cache failures degrade to an extra API call next run.
			log.Printf("geocode city: cache put failed: %v", err)
		}
	}

	return coords, nil
}

type placesResponse struct {
	Features []struct {
		Properties struct {
			PlaceID string  `json:"place_id"`
			Name    string  `json:"name"`
			Lat     float64 `json:"lat"`
			Lon     float64 `json:"lon"`
		} `json:"properties"`
	} `json:"features"`
}

// PlacesInCity returns candidate activities near the city center, checking
// the Redis place cache before issuing external API calls.
//
// Geoapify carries no cost or duration data, so candidates come back with
// zero cost and a one-hour default duration for the caller to refine.
func (g *GeoapifyPlaceProvider) PlacesInCity(
	ctx context.Context,
	city string,
	categories []domain.Category,
	limit int,
) (_ []domain.Activity, err error) {
	defer obs.Time(ctx, "geoapify.PlacesInCity")(&err)

	city = g.normalize(city)
	if city == "" {
		return nil, errors.New("places in city: city must be non-empty")
	}
	if limit <= 0 {
		limit = 50
	}

	var cacheKey string
	if g.placeCache != nil {
		cacheKey = g.placeCache.Key(city, categories)
		hit, ok, err := g.placeCache.Get(ctx, cacheKey)
		if err != nil {
			return nil, fmt.Errorf("places in city: cache: %w", err)
		}
		if ok {
			return hit, nil
		}
	}

	center, err := g.GeocodeCity(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("places in city: %w", err)
	}

	activities := make([]domain.Activity, 0, limit)
	nextID := 1

	for _, cat := range categories {
		apiCategory, ok := geoapifyCategories[cat]
		if !ok {
			return nil, fmt.Errorf("places in city: no geoapify mapping for category %q: %w", cat, domain.ErrInvalidInput)
		}

		q := url.Values{}
		q.Set("categories", apiCategory)
		q.Set("filter", fmt.Sprintf("circle:%f,%f,5000", center.Lon, center.Lat))
		q.Set("limit", fmt.Sprintf("%d", limit))
		q.Set("apiKey", g.apiKey)

		var res placesResponse
		if err := g.getJSON(ctx, g.baseURL+"/v2/places?"+q.Encode(), &res); err != nil {
			return nil, fmt.Errorf("places in city %q category %q: %w", city, cat, err)
		}

		for _, f := range res.Features {
			if f.Properties.Name == "" {
				continue
			}
			activities = append(activities, domain.Activity{
				ActivityID: nextID,
				Name:       f.Properties.Name,
				Category:   cat,
				Location:   domain.Coordinates{Lat: f.Properties.Lat, Lon: f.Properties.Lon},
				Duration:   time.Hour,
			})
			nextID++
		}
	}

	if g.placeCache != nil {
		if err := g.placeCache.Put(ctx, cacheKey, activities); err != nil {
			log.Printf("places in city: cache put failed: %v", err)
		}
	}

	return activities, nil
}

// getJSON performs a GET with retry on transient failures and decodes the
// response body into out.
func (g *GeoapifyPlaceProvider) getJSON(ctx context.Context, reqURL string, out any) error {
	const maxAttempts = 4
	backoff := 200 * time.Millisecond

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := g.session.Do(req)
		if err == nil && resp.StatusCode < 400 {
			defer resp.Body.Close()
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return fmt.Errorf("decode response: %w", err)
			}
			return nil
		}

		retry := false
		if err != nil {
			lastErr = err
			retry = true
		} else {
			b, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			lastErr = fmt.Errorf("Code %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
			switch resp.StatusCode {
			case 429, 500, 502, 503, 504:
				retry = true
			}
		}

		if !retry || attempt == maxAttempts {
			return lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	return lastErr
}
