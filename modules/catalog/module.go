// Package catalog provides the product catalog as a mono module.
package catalog

import (
	"context"
	"fmt"
	"log"

	domain "github.com/example/securecam-store/domain/catalog"
	"github.com/example/securecam-store/modules/cache"
	"github.com/go-monolith/mono"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Module owns product storage and the catalog service.
type Module struct {
	db          *gorm.DB
	repo        *domain.Repository
	service     *Service
	cacheModule *cache.Module
	dbPath      string
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)

// NewModule creates a new catalog module backed by the given SQLite DSN.
func NewModule(dbPath string) *Module {
	return &Module{dbPath: dbPath}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "catalog"
}

// SetCacheModule wires the optional cache module. Must be called before
// Start.
func (m *Module) SetCacheModule(c *cache.Module) {
	m.cacheModule = c
}

// Start opens the database, migrates, seeds the catalog when empty and
// creates the service.
func (m *Module) Start(_ context.Context) error {
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
		for _, p := range domain.SeedProducts() {
			if err := m.repo.Create(p); err != nil {
				return fmt.Errorf("failed to seed catalog: %w", err)
			}
		}
		log.Printf("[catalog] Seeded %d products", len(domain.SeedProducts()))
	}

	var c *cache.Cache
	if m.cacheModule != nil {
		c = m.cacheModule.Cache()
	}
	m.service = NewService(m.repo, c)

	log.Printf("[catalog] Module started (database: %s)", m.dbPath)
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
	log.Println("[catalog] Module stopped")
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

// Service returns the catalog service.
func (m *Module) Service() *Service {
	return m.service
}

// Repository returns the catalog repository.
func (m *Module) Repository() *domain.Repository {
	return m.repo
}
