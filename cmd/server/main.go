package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	_ "github.com/jackc/pgx/v5/stdlib"

	"trip-itinerary-service/internal/adapters/cache"
	"trip-itinerary-service/internal/adapters/flights"
	"trip-itinerary-service/internal/adapters/places"
	"trip-itinerary-service/internal/adapters/repositories"
	"trip-itinerary-service/internal/api"
	"trip-itinerary-service/internal/config"
	"trip-itinerary-service/internal/platform/db"
	"trip-itinerary-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite/Postgres, Amadeus, Geoapify, Redis)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	defaultOrigin := config.Get("DEFAULT_ORIGIN", "JFK")
	seedPath := config.Get("SEED_PATH", "data/seeds/activities.json")

	var (
		repo     ports.ActivityRepository
		sqliteDB *sql.DB
	)

	// Postgres when DATABASE_URL is set, local SQLite otherwise.
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		pgDB, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pgDB.Close()
		repo = repositories.NewSQLActivityRepository(pgDB)
	} else {
		var err error
		sqliteDB, err = openSqlite(config.Get("DB_PATH", "data/app.db"))
		if err != nil {
			log.Fatal(err)
		}
		defer sqliteDB.Close()

		// Initialize schema and seed demo data on startup for local runs.
		if err := initAndSeed(sqliteDB, seedPath); err != nil {
			log.Fatal(err)
		}
		repo = repositories.NewSqliteActivityRepository(sqliteDB)
	}

	// Geoapify fallback fills destinations with no stored candidates.
	// Redis caches place results; the geocode cache rides on SQLite.
	if geoapifyKey := os.Getenv("GEOAPIFY_API_KEY"); strings.TrimSpace(geoapifyKey) != "" {
		var placeCache *cache.RedisPlaceCache
		if redisAddr := os.Getenv("REDIS_ADDR"); strings.TrimSpace(redisAddr) != "" {
			client := redis.NewClient(&redis.Options{Addr: redisAddr})
			placeCache = cache.NewRedisPlaceCache(client, 24*time.Hour)
		}

		var geocodeCache *cache.SqliteGeocodeCache
		if sqliteDB != nil {
			geocodeCache = cache.NewSqliteGeocodeCache(sqliteDB)
		}

		provider, err := places.NewGeoapifyPlaceProvider(geoapifyKey, placeCache, geocodeCache)
		if err != nil {
			log.Fatal(err)
		}
		repo = repositories.NewPlaceFallbackRepository(repo, provider)
	}

	// Without Amadeus credentials the service plans offline (no flight).
	var flightProvider ports.FlightProvider
	amadeusKey := os.Getenv("AMADEUS_API_KEY")
	amadeusSecret := os.Getenv("AMADEUS_API_SECRET")
	if strings.TrimSpace(amadeusKey) != "" && strings.TrimSpace(amadeusSecret) != "" {
		provider, err := flights.NewAmadeusFlightProvider(amadeusKey, amadeusSecret)
		if err != nil {
			log.Fatal(err)
		}
		flightProvider = provider
	} else {
		log.Println("Amadeus credentials not set, planning without flight offers")
	}

	router := api.NewRouter(repo, flightProvider, defaultOrigin)

	// Timeouts are tuned for cold-cache planning (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openSqlite(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
