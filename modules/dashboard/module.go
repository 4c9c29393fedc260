// Package dashboard aggregates store metrics for the admin console.
package dashboard

import (
	"context"
	"fmt"
	"log"

	"github.com/example/securecam-store/modules/directory"
	"github.com/example/securecam-store/modules/eventbus"
	"github.com/example/securecam-store/modules/order"
	"github.com/go-monolith/mono"
)

// Module owns the dashboard service.
type Module struct {
	service     *Service
	orderModule *order.Module
	dirModule   *directory.Module
	bus         *eventbus.EventBus
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)

// NewModule creates a new dashboard module.
func NewModule() *Module {
	return &Module{}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "dashboard"
}

// SetOrderModule wires the order module. Must be called before Start.
func (m *Module) SetOrderModule(o *order.Module) {
	m.orderModule = o
}

// SetDirectoryModule wires the directory module. Must be called before
// Start.
func (m *Module) SetDirectoryModule(d *directory.Module) {
	m.dirModule = d
}

// SetEventBus wires the event bus feeding the activity feed.
func (m *Module) SetEventBus(bus *eventbus.EventBus) {
	m.bus = bus
}

// Start creates the service and subscribes to order events.
func (m *Module) Start(_ context.Context) error {
	if m.orderModule == nil {
		return fmt.Errorf("order module not set")
	}
	if m.dirModule == nil {
		return fmt.Errorf("directory module not set")
	}

	m.service = NewService(m.orderModule.Repository(), m.dirModule.Repository())

	if m.bus != nil {
		m.bus.SubscribeAll(m.service.RecordEvent)
	}

	log.Println("[dashboard] Module started")
	return nil
}

// Stop shuts down the module.
func (m *Module) Stop(_ context.Context) error {
	log.Println("[dashboard] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.service != nil,
		Message: "operational",
	}
}

// Service returns the dashboard service.
func (m *Module) Service() *Service {
	return m.service
}
