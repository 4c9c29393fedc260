// Package cart provides session-scoped shopping carts as a mono module.
// Carts are held in memory only; nothing survives a restart.
package cart

import (
	"context"
	"fmt"
	"log"

	"github.com/example/securecam-store/modules/catalog"
	"github.com/go-monolith/mono"
)

// Module owns the in-memory cart store and service.
type Module struct {
	store     *Store
	service   *Service
	catModule *catalog.Module
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)

// NewModule creates a new cart module.
func NewModule() *Module {
	return &Module{
		store: NewStore(),
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "cart"
}

// SetCatalogModule wires the catalog module. Must be called before Start.
func (m *Module) SetCatalogModule(c *catalog.Module) {
	m.catModule = c
}

// Start creates the cart service.
func (m *Module) Start(_ context.Context) error {
	if m.catModule == nil {
		return fmt.Errorf("catalog module not set")
	}

	service, err := NewService(m.store, m.catModule.Service())
	if err != nil {
		return err
	}
	m.service = service

	log.Println("[cart] Module started")
	return nil
}

// Stop shuts down the module.
func (m *Module) Stop(_ context.Context) error {
	log.Println("[cart] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.service != nil,
		Message: "operational",
		Details: map[string]any{
			"active_sessions": m.store.Count(),
		},
	}
}

// Service returns the cart service.
func (m *Module) Service() *Service {
	return m.service
}
