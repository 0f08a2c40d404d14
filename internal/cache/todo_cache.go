package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	dom "github.com/vedp205/chronos-home/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	keyList    = "todo:list:"
	keyDueSoon = "todo:duesoon:"
	keySearch  = "todo:search:"
)

// TodoCache caches per-user todo list, search, and due-soon results in Redis.
type TodoCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewTodoCache returns a new TodoCache.
func NewTodoCache(rdb *redis.Client, ttl time.Duration) *TodoCache {
	return &TodoCache{rdb: rdb, ttl: ttl}
}

// GetList returns the cached list for userID, or nil on miss.
func (c *TodoCache) GetList(ctx context.Context, userID int64) ([]dom.Todo, error) {
	return c.get(ctx, keyList+userKey(userID))
}

// SetList stores the user's list in cache.
func (c *TodoCache) SetList(ctx context.Context, userID int64, list []dom.Todo) error {
	return c.set(ctx, keyList+userKey(userID), list)
}

// GetSearch returns the cached search result for query q, or nil on miss.
func (c *TodoCache) GetSearch(ctx context.Context, userID int64, q string) ([]dom.Todo, error) {
	return c.get(ctx, keySearch+userKey(userID)+":"+normalizeQuery(q))
}

// SetSearch stores the search result in cache.
func (c *TodoCache) SetSearch(ctx context.Context, userID int64, q string, list []dom.Todo) error {
	return c.set(ctx, keySearch+userKey(userID)+":"+normalizeQuery(q), list)
}

// GetDueSoon returns the cached due-soon list, or nil on miss.
func (c *TodoCache) GetDueSoon(ctx context.Context, userID int64) ([]dom.Todo, error) {
	return c.get(ctx, keyDueSoon+userKey(userID))
}

// SetDueSoon stores the due-soon list in cache.
func (c *TodoCache) SetDueSoon(ctx context.Context, userID int64, list []dom.Todo) error {
	return c.set(ctx, keyDueSoon+userKey(userID), list)
}

// InvalidateAll removes the user's list, due-soon, and search keys
// (cache invalidation on every write).
func (c *TodoCache) InvalidateAll(ctx context.Context, userID int64) error {
	uk := userKey(userID)
	if err := c.rdb.Del(ctx, keyList+uk, keyDueSoon+uk).Err(); err != nil {
		return err
	}
	iter := c.rdb.Scan(ctx, 0, keySearch+uk+":*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *TodoCache) get(ctx context.Context, key string) ([]dom.Todo, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Todo
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *TodoCache) set(ctx context.Context, key string, list []dom.Todo) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err()
}

func userKey(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

func normalizeQuery(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
