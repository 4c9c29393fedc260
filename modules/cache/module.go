package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-monolith/mono"
	"github.com/redis/go-redis/v9"
)

// Module provides the Redis cache as a mono module. When no Redis address
// is configured the module starts disabled and Cache() returns nil;
// consumers degrade to direct reads.
type Module struct {
	addr   string
	prefix string
	ttl    time.Duration
	cache  *Cache
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)

// NewModule creates a new cache module. An empty addr disables caching.
func NewModule(addr, prefix string, ttl time.Duration) *Module {
	return &Module{
		addr:   addr,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "cache"
}

// Start connects to Redis and verifies the connection.
func (m *Module) Start(ctx context.Context) error {
	if m.addr == "" {
		log.Println("[cache] No Redis address configured, caching disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: m.addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis at %s: %w", m.addr, err)
	}

	m.cache = New(client, m.prefix, m.ttl)
	log.Printf("[cache] Connected to Redis at %s (prefix %q, ttl %s)", m.addr, m.prefix, m.ttl)
	return nil
}

// Stop closes the Redis connection.
func (m *Module) Stop(_ context.Context) error {
	if m.cache != nil {
		if err := m.cache.Close(); err != nil {
			return err
		}
	}
	log.Println("[cache] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *Module) Health(ctx context.Context) mono.HealthStatus {
	if m.cache == nil {
		return mono.HealthStatus{
			Healthy: true,
			Message: "disabled",
		}
	}
	if err := m.cache.Ping(ctx); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("redis ping failed: %v", err),
		}
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"addr": m.addr,
		},
	}
}

// Cache returns the cache instance, or nil when caching is disabled.
func (m *Module) Cache() *Cache {
	return m.cache
}
