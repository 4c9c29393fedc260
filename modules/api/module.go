// Package api provides the HTTP and websocket surface of the store.
package api

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/example/securecam-store/middleware/latency"
	"github.com/example/securecam-store/middleware/ratelimit"
	authmod "github.com/example/securecam-store/modules/auth"
	cachemod "github.com/example/securecam-store/modules/cache"
	cartmod "github.com/example/securecam-store/modules/cart"
	catalogmod "github.com/example/securecam-store/modules/catalog"
	dashboardmod "github.com/example/securecam-store/modules/dashboard"
	directorymod "github.com/example/securecam-store/modules/directory"
	ordermod "github.com/example/securecam-store/modules/order"
	supportmod "github.com/example/securecam-store/modules/support"
	"github.com/go-monolith/mono"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
)

// Config holds the API server configuration.
type Config struct {
	Port int
	// SimulatedLatency delays every /api/v1 response, mimicking a remote
	// backend during local development. Zero disables it.
	SimulatedLatency time.Duration
	RateLimit        ratelimit.Config
}

// Module runs the Fiber HTTP server.
type Module struct {
	config   Config
	app      *fiber.App
	handlers *Handlers

	catalogModule   *catalogmod.Module
	directoryModule *directorymod.Module
	orderModule     *ordermod.Module
	cartModule      *cartmod.Module
	authModule      *authmod.Module
	dashboardModule *dashboardmod.Module
	supportModule   *supportmod.Module
	cacheModule     *cachemod.Module
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)

// NewModule creates a new API module.
func NewModule(config Config) *Module {
	return &Module{config: config}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "api"
}

// SetCatalogModule wires the catalog module. Must be called before Start.
func (m *Module) SetCatalogModule(v *catalogmod.Module) { m.catalogModule = v }

// SetDirectoryModule wires the directory module. Must be called before
// Start.
func (m *Module) SetDirectoryModule(v *directorymod.Module) { m.directoryModule = v }

// SetOrderModule wires the order module. Must be called before Start.
func (m *Module) SetOrderModule(v *ordermod.Module) { m.orderModule = v }

// SetCartModule wires the cart module. Must be called before Start.
func (m *Module) SetCartModule(v *cartmod.Module) { m.cartModule = v }

// SetAuthModule wires the auth module. Must be called before Start.
func (m *Module) SetAuthModule(v *authmod.Module) { m.authModule = v }

// SetDashboardModule wires the dashboard module. Must be called before
// Start.
func (m *Module) SetDashboardModule(v *dashboardmod.Module) { m.dashboardModule = v }

// SetSupportModule wires the support module. Must be called before Start.
func (m *Module) SetSupportModule(v *supportmod.Module) { m.supportModule = v }

// SetCacheModule wires the cache module backing the rate limiter.
// Optional.
func (m *Module) SetCacheModule(v *cachemod.Module) { m.cacheModule = v }

// Start builds the Fiber app, registers routes and starts listening.
func (m *Module) Start(_ context.Context) error {
	switch {
	case m.catalogModule == nil:
		return fmt.Errorf("catalog module not set")
	case m.directoryModule == nil:
		return fmt.Errorf("directory module not set")
	case m.orderModule == nil:
		return fmt.Errorf("order module not set")
	case m.cartModule == nil:
		return fmt.Errorf("cart module not set")
	case m.authModule == nil:
		return fmt.Errorf("auth module not set")
	case m.dashboardModule == nil:
		return fmt.Errorf("dashboard module not set")
	case m.supportModule == nil:
		return fmt.Errorf("support module not set")
	}

	m.handlers = NewHandlers(
		m.catalogModule.Service(),
		m.directoryModule.Service(),
		m.orderModule.Service(),
		m.cartModule.Service(),
		m.authModule.Service(),
		m.dashboardModule.Service(),
		m.supportModule.Service(),
	)

	m.app = fiber.New(fiber.Config{
		AppName:               "SecureCam Store",
		DisableStartupMessage: true,
		ErrorHandler:          m.errorHandler,
	})

	m.app.Use(recover.New())
	m.app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	m.app.Use(cors.New())

	m.setupRoutes()

	go func() {
		addr := fmt.Sprintf(":%d", m.config.Port)
		log.Printf("[api] Starting HTTP server on %s", addr)
		if err := m.app.Listen(addr); err != nil {
			log.Printf("[api] HTTP server error: %v", err)
		}
	}()

	return nil
}

// setupRoutes configures all HTTP and websocket routes.
func (m *Module) setupRoutes() {
	m.app.Get("/health", m.handlers.HealthCheck)

	// Websocket support chat
	m.app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	m.app.Get("/ws/support", websocket.New(m.handlers.HandleSupportChat))

	api := m.app.Group("/api/v1")
	api.Use(ratelimit.New(m.redisClient(), m.config.RateLimit))
	api.Use(latency.New(m.config.SimulatedLatency))

	// Storefront
	api.Get("/products", m.handlers.ListProducts)
	api.Get("/products/:id", m.handlers.GetProduct)
	api.Get("/coupons/validate", m.handlers.ValidateCoupon)
	api.Get("/orders/:id/tracking", m.handlers.TrackOrder)
	api.Get("/support/faqs", m.handlers.ListFAQs)

	// Cart
	carts := api.Group("/carts")
	carts.Post("/", m.handlers.CreateCart)
	carts.Get("/:sid", m.handlers.GetCart)
	carts.Post("/:sid/items", m.handlers.AddCartItem)
	carts.Put("/:sid/items/:pid", m.handlers.UpdateCartItem)
	carts.Delete("/:sid/items/:pid", m.handlers.RemoveCartItem)
	carts.Post("/:sid/checkout", m.handlers.Checkout)

	// Auth
	authRoutes := api.Group("/auth")
	authRoutes.Post("/register", m.handlers.Register)
	authRoutes.Post("/login", m.handlers.Login)
	authRoutes.Post("/refresh", m.handlers.Refresh)

	// Admin console
	admin := api.Group("/admin")
	admin.Use(AuthMiddleware(m.authModule.Service()))
	admin.Use(RequireAdmin())

	admin.Post("/products", m.handlers.CreateProduct)
	admin.Put("/products/:id", m.handlers.UpdateProduct)
	admin.Delete("/products/:id", m.handlers.DeleteProduct)

	admin.Get("/orders", m.handlers.ListOrders)
	admin.Post("/orders", m.handlers.CreateOrder)
	admin.Get("/orders/:id", m.handlers.GetOrder)
	admin.Put("/orders/:id", m.handlers.ManageOrder)

	admin.Get("/technicians", m.handlers.ListTechnicians)
	admin.Post("/technicians", m.handlers.CreateTechnician)
	admin.Put("/technicians/:id", m.handlers.UpdateTechnician)
	admin.Delete("/technicians/:id", m.handlers.DeleteTechnician)

	admin.Get("/customers", m.handlers.ListCustomers)
	admin.Get("/customers/:id/orders", m.handlers.CustomerOrders)

	admin.Get("/coupons", m.handlers.ListCoupons)

	admin.Get("/dashboard", m.handlers.Dashboard)
	admin.Get("/dashboard/activity", m.handlers.DashboardActivity)
}

// redisClient returns the Redis client backing the rate limiter, or nil
// when caching is disabled.
func (m *Module) redisClient() *redis.Client {
	if m.cacheModule == nil || m.cacheModule.Cache() == nil {
		return nil
	}
	return m.cacheModule.Cache().Client()
}

// Stop stops the HTTP server gracefully.
func (m *Module) Stop(ctx context.Context) error {
	if m.app != nil {
		log.Println("[api] Shutting down HTTP server...")
		return m.app.ShutdownWithContext(ctx)
	}
	return nil
}

// Health returns the health status of the module.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.app != nil,
		Message: "operational",
		Details: map[string]any{"port": m.config.Port},
	}
}

// errorHandler handles errors from Fiber routes.
func (m *Module) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(ErrorResponse{
		Error:   message,
		Message: c.Method() + " " + c.Path(),
	})
}

// App returns the Fiber app (for testing).
func (m *Module) App() *fiber.App {
	return m.app
}
