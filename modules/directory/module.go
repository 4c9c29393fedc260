// Package directory provides users, technicians and coupons as a mono
// module.
package directory

import (
	"context"
	"fmt"
	"log"

	domain "github.com/example/securecam-store/domain/directory"
	"github.com/go-monolith/mono"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SeedPassword is the password every seeded account starts with.
const SeedPassword = "changeme123"

// Module owns directory storage and the directory service.
type Module struct {
	db      *gorm.DB
	repo    *domain.Repository
	service *Service
	dbPath  string
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)

// NewModule creates a new directory module backed by the given SQLite DSN.
func NewModule(dbPath string) *Module {
	return &Module{dbPath: dbPath}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "directory"
}

// Start opens the database, migrates, seeds when empty and creates the
// service.
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

	if err := m.seed(); err != nil {
		return err
	}

	m.service = NewService(m.repo)
	log.Printf("[directory] Module started (database: %s)", m.dbPath)
	return nil
}

// seed populates users, technicians and coupons when the tables are empty.
func (m *Module) seed() error {
	users, err := m.repo.FindAllUsers()
	if err != nil {
		return err
	}
	if len(users) == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}
		for _, u := range domain.SeedUsers() {
			u.PasswordHash = string(hash)
			if err := m.repo.CreateUser(u); err != nil {
				return fmt.Errorf("failed to seed users: %w", err)
			}
		}
		log.Printf("[directory] Seeded %d users", len(domain.SeedUsers()))
	}

	techs, err := m.repo.FindAllTechnicians()
	if err != nil {
		return err
	}
	if len(techs) == 0 {
		for _, t := range domain.SeedTechnicians() {
			if err := m.repo.CreateTechnician(t); err != nil {
				return fmt.Errorf("failed to seed technicians: %w", err)
			}
		}
		log.Printf("[directory] Seeded %d technicians", len(domain.SeedTechnicians()))
	}

	coupons, err := m.repo.FindAllCoupons()
	if err != nil {
		return err
	}
	if len(coupons) == 0 {
		for _, c := range domain.SeedCoupons() {
			if err := m.repo.CreateCoupon(c); err != nil {
				return fmt.Errorf("failed to seed coupons: %w", err)
			}
		}
		log.Printf("[directory] Seeded %d coupons", len(domain.SeedCoupons()))
	}

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
	log.Println("[directory] Module stopped")
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

// Service returns the directory service.
func (m *Module) Service() *Service {
	return m.service
}

// Repository returns the directory repository.
func (m *Module) Repository() *domain.Repository {
	return m.repo
}
