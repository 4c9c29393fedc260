// Package order provides order fulfillment as a mono module.
package order

import (
	"context"
	"fmt"
	"log"

	domain "github.com/example/securecam-store/domain/order"
	"github.com/example/securecam-store/modules/catalog"
	"github.com/example/securecam-store/modules/directory"
	"github.com/example/securecam-store/modules/eventbus"
	"github.com/go-monolith/mono"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Module owns order storage and the order service.
type Module struct {
	db        *gorm.DB
	repo      *domain.Repository
	service   *Service
	dirModule *directory.Module
	catModule *catalog.Module
	bus       *eventbus.EventBus
	dbPath    string
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)

// NewModule creates a new order module backed by the given SQLite DSN.
func NewModule(dbPath string) *Module {
	return &Module{dbPath: dbPath}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "order"
}

// SetDirectoryModule wires the directory module. Must be called before
// Start.
func (m *Module) SetDirectoryModule(d *directory.Module) {
	m.dirModule = d
}

// SetCatalogModule wires the catalog module. Must be called before Start.
func (m *Module) SetCatalogModule(c *catalog.Module) {
	m.catModule = c
}

// SetEventBus wires the event bus.
func (m *Module) SetEventBus(bus *eventbus.EventBus) {
	m.bus = bus
}

// Start opens the database, migrates, seeds when empty and creates the
// service.
func (m *Module) Start(_ context.Context) error {
	if m.dirModule == nil {
		return fmt.Errorf("directory module not set")
	}
	if m.catModule == nil {
		return fmt.Errorf("catalog module not set")
	}

	db, err := gorm.Open(sqlite.Open(m.dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	m.db = db
	m.repo = domain.NewRepository(db)

	if err := m.repo.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	count, err := m.repo.Count()
	if err != nil {
		return err
	}
	if count == 0 {
		for _, o := range domain.SeedOrders() {
			if err := m.repo.Create(o); err != nil {
				return fmt.Errorf("failed to seed orders: %w", err)
			}
		}
		log.Printf("[order] Seeded %d orders", len(domain.SeedOrders()))
	}

	m.service = NewService(m.repo, m.dirModule.Repository(), m.catModule.Service(), m.bus)
	log.Printf("[order] Module started (database: %s)", m.dbPath)
	return nil
}

// Stop closes the database connection.
func (m *Module) Stop(_ context.Context) error {
	if m.db != nil {
		sqlDB, err := m.db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
	log.Println("[order] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *Module) Health(ctx context.Context) mono.HealthStatus {
	if m.db == nil {
		return mono.HealthStatus{Healthy: false, Message: "database not initialized"}
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{Healthy: false, Message: fmt.Sprintf("failed to get database connection: %v", err)}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return mono.HealthStatus{Healthy: false, Message: fmt.Sprintf("database ping failed: %v", err)}
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{"database": m.dbPath},
	}
}

// Service returns the order service.
func (m *Module) Service() *Service {
	return m.service
}

// Repository returns the order repository.
func (m *Module) Repository() *domain.Repository {
	return m.repo
}
