package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/platform/obs"
)

// RedisPlaceCache caches place-provider results so repeated planning runs
// against the same destination do not re-hit the external API. Entries
// expire so stale place data eventually refreshes.
type RedisPlaceCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisPlaceCache(client *redis.Client, ttl time.Duration) *RedisPlaceCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisPlaceCache{Client: client, TTL: ttl}
}

// Key builds a stable cache key for a city and category set.
func (r *RedisPlaceCache) Key(city string, categories []domain.Category) string {
	parts := make([]string, 0, len(categories))
	for _, c := range categories {
		parts = append(parts, string(c))
	}
	return fmt.Sprintf("places:%s:%s", strings.ToLower(strings.TrimSpace(city)), strings.Join(parts, ","))
}

// Get fetches cached activities. The second return is false on a miss.
func (r *RedisPlaceCache) Get(ctx context.Context, key string) (_ []domain.Activity, _ bool, err error) {
	defer obs.Time(ctx, "places.cache.Get")(&err)

	if r.Client == nil {
		return nil, false, errors.New("place cache: client is nil")
	}

	raw, err := r.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get place cache: %w", err)
	}

	var activities []domain.Activity
	if err := json.Unmarshal(raw, &activities); err != nil {
		return nil, false, fmt.Errorf("get place cache: decode entry %q: %w", key, err)
	}

	return activities, true, nil
}

// Put stores activities under the key with the cache TTL.
func (r *RedisPlaceCache) Put(ctx context.Context, key string, activities []domain.Activity) error {
	if r.Client == nil {
		return errors.New("place cache: client is nil")
	}

	raw, err := json.Marshal(activities)
	if err != nil {
		return fmt.Errorf("put place cache: encode entry %q: %w", key, err)
	}

	if err := r.Client.Set(ctx, key, raw, r.TTL).Err(); err != nil {
		return fmt.Errorf("put place cache: %w", err)
	}

	return nil
}
