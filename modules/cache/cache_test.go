package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// Unit tests require Redis running on localhost:6379 and skip otherwise.
const testRedisAddr = "localhost:6379"

// setupTestCache creates a cache instance for testing and a cleanup
// function.
func setupTestCache(t *testing.T, prefix string) (*Cache, func()) {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: testRedisAddr})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available at %s: %v", testRedisAddr, err)
	}

	cleanupKeys(ctx, client, prefix+"*")

	c := New(client, prefix, 5*time.Minute)
	cleanup := func() {
		cleanupKeys(ctx, client, prefix+"*")
		client.Close()
	}
	return c, cleanup
}

func cleanupKeys(ctx context.Context, client *redis.Client, pattern string) {
	var cursor uint64
	for {
		keys, nextCursor, err := client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return
		}
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
}

func TestCache_SetGet(t *testing.T) {
	c, cleanup := setupTestCache(t, "test:securecam:")
	defer cleanup()
	ctx := context.Background()

	type payload struct {
		ID    string  `json:"id"`
		Price float64 `json:"price"`
	}

	if err := c.Set(ctx, "products:id:1", payload{ID: "1", Price: 150}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var got payload
	found, err := c.Get(ctx, "products:id:1", &got)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !found {
		t.Fatal("expected a cache hit")
	}
	if got.ID != "1" || got.Price != 150 {
		t.Errorf("Get() = %+v, want id 1 price 150", got)
	}

	stats := c.GetStats()
	if stats.Hits != 1 || stats.Sets != 1 {
		t.Errorf("stats = %+v, want 1 hit and 1 set", stats)
	}
}

func TestCache_GetMiss(t *testing.T) {
	c, cleanup := setupTestCache(t, "test:securecam:")
	defer cleanup()

	var got string
	found, err := c.Get(context.Background(), "missing", &got)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found {
		t.Error("expected a miss for an absent key")
	}
	if stats := c.GetStats(); stats.Misses != 1 {
		t.Errorf("misses = %d, want 1", stats.Misses)
	}
}

func TestCache_DeletePattern(t *testing.T) {
	c, cleanup := setupTestCache(t, "test:securecam:")
	defer cleanup()
	ctx := context.Background()

	for _, key := range []string{"products:id:1", "products:id:2", "products:list"} {
		if err := c.Set(ctx, key, "x"); err != nil {
			t.Fatalf("Set(%s) error = %v", key, err)
		}
	}

	if err := c.DeletePattern(ctx, "products:id:*"); err != nil {
		t.Fatalf("DeletePattern() error = %v", err)
	}

	var got string
	if found, _ := c.Get(ctx, "products:id:1", &got); found {
		t.Error("expected products:id:1 deleted")
	}
	if found, _ := c.Get(ctx, "products:list", &got); !found {
		t.Error("expected products:list untouched")
	}
}
