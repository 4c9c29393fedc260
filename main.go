package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/example/securecam-store/middleware/ratelimit"
	apimod "github.com/example/securecam-store/modules/api"
	authmod "github.com/example/securecam-store/modules/auth"
	cachemod "github.com/example/securecam-store/modules/cache"
	cartmod "github.com/example/securecam-store/modules/cart"
	catalogmod "github.com/example/securecam-store/modules/catalog"
	dashboardmod "github.com/example/securecam-store/modules/dashboard"
	directorymod "github.com/example/securecam-store/modules/directory"
	"github.com/example/securecam-store/modules/eventbus"
	ordermod "github.com/example/securecam-store/modules/order"
	supportmod "github.com/example/securecam-store/modules/support"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load configuration from environment. The default databases are
	// shared in-memory SQLite, so all data resets on restart.
	httpPort := getEnvInt("HTTP_PORT", 3000)
	catalogDSN := getEnv("CATALOG_DB_PATH", "file:catalog?mode=memory&cache=shared")
	directoryDSN := getEnv("DIRECTORY_DB_PATH", "file:directory?mode=memory&cache=shared")
	orderDSN := getEnv("ORDER_DB_PATH", "file:orders?mode=memory&cache=shared")
	redisAddr := getEnv("REDIS_ADDR", "")
	cacheTTL := getEnvDuration("CACHE_TTL", 5*time.Minute)
	simulatedLatency := getEnvMillis("SIMULATED_LATENCY_MS", 500*time.Millisecond)
	typingDelay := getEnvMillis("SUPPORT_TYPING_DELAY_MS", 500*time.Millisecond)

	jwtConfig := authmod.DefaultJWTConfig()
	if secret := os.Getenv("JWT_SECRET_KEY"); secret != "" {
		jwtConfig.SecretKey = secret
	}
	if issuer := os.Getenv("JWT_ISSUER"); issuer != "" {
		jwtConfig.Issuer = issuer
	}

	rateLimitConfig := ratelimit.DefaultConfig()
	rateLimitConfig.Limit = int64(getEnvInt("RATE_LIMIT", int(rateLimitConfig.Limit)))
	rateLimitConfig.Window = getEnvDuration("RATE_LIMIT_WINDOW", rateLimitConfig.Window)

	log.Println("=== SecureCam Store ===")
	log.Printf("HTTP Port: %d", httpPort)
	log.Printf("Redis: %s", orEmpty(redisAddr, "(disabled)"))
	log.Printf("Simulated latency: %s", simulatedLatency)

	// Create modules
	bus := eventbus.New()
	cacheModule := cachemod.NewModule(redisAddr, "securecam:", cacheTTL)
	catalogModule := catalogmod.NewModule(catalogDSN)
	directoryModule := directorymod.NewModule(directoryDSN)
	orderModule := ordermod.NewModule(orderDSN)
	cartModule := cartmod.NewModule()
	authModule := authmod.NewModule(jwtConfig)
	dashboardModule := dashboardmod.NewModule()
	supportModule := supportmod.NewModule(typingDelay)
	apiModule := apimod.NewModule(apimod.Config{
		Port:             httpPort,
		SimulatedLatency: simulatedLatency,
		RateLimit:        rateLimitConfig,
	})

	// Wire dependencies. Modules start in registration order, so every
	// dependency is registered before its consumer.
	catalogModule.SetCacheModule(cacheModule)
	orderModule.SetDirectoryModule(directoryModule)
	orderModule.SetCatalogModule(catalogModule)
	orderModule.SetEventBus(bus)
	cartModule.SetCatalogModule(catalogModule)
	authModule.SetDirectoryModule(directoryModule)
	dashboardModule.SetOrderModule(orderModule)
	dashboardModule.SetDirectoryModule(directoryModule)
	dashboardModule.SetEventBus(bus)
	apiModule.SetCatalogModule(catalogModule)
	apiModule.SetDirectoryModule(directoryModule)
	apiModule.SetOrderModule(orderModule)
	apiModule.SetCartModule(cartModule)
	apiModule.SetAuthModule(authModule)
	apiModule.SetDashboardModule(dashboardModule)
	apiModule.SetSupportModule(supportModule)
	apiModule.SetCacheModule(cacheModule)

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
	)
	if err != nil {
		log.Fatalf("Failed to create mono application: %v", err)
	}

	app.Register(cacheModule)
	app.Register(catalogModule)
	app.Register(directoryModule)
	app.Register(orderModule)
	app.Register(cartModule)
	app.Register(authModule)
	app.Register(dashboardModule)
	app.Register(supportModule)
	app.Register(apiModule)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		log.Fatalf("Failed to start app: %v", err)
	}

	log.Println("=== Application Started ===")
	log.Printf("API available at http://localhost:%d", httpPort)
	log.Println("Storefront endpoints:")
	log.Println("  GET    /api/v1/products             - List products")
	log.Println("  GET    /api/v1/products/:id         - Product detail")
	log.Println("  GET    /api/v1/orders/:id/tracking  - Order tracking")
	log.Println("  GET    /api/v1/coupons/validate     - Coupon check")
	log.Println("  GET    /api/v1/support/faqs         - Support FAQs")
	log.Println("  GET    /ws/support                  - Support chat")
	log.Println("  POST   /api/v1/carts                - New cart session")
	log.Println("  POST   /api/v1/auth/login           - Login")
	log.Println("Admin endpoints under /api/v1/admin (ADMIN token required)")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown")

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

// getEnv returns environment variable value or default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns environment variable as int or default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Warning: invalid int value for %s: %s, using default: %d", key, value, defaultValue)
	}
	return defaultValue
}

// getEnvDuration returns environment variable as duration or default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		log.Printf("Warning: invalid duration value for %s: %s, using default: %s", key, value, defaultValue)
	}
	return defaultValue
}

// getEnvMillis returns an environment variable holding a millisecond
// count as a duration, or the default.
func getEnvMillis(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if ms, err := strconv.Atoi(value); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
		log.Printf("Warning: invalid millisecond value for %s: %s, using default: %s", key, value, defaultValue)
	}
	return defaultValue
}

func orEmpty(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
