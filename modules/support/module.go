// Package support provides the scripted FAQ chat bot as a mono module.
package support

import (
	"context"
	"log"
	"time"

	"github.com/go-monolith/mono"
)

// Module owns the support service.
type Module struct {
	service     *Service
	typingDelay time.Duration
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)

// NewModule creates a new support module with the given typing delay.
func NewModule(typingDelay time.Duration) *Module {
	return &Module{typingDelay: typingDelay}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "support"
}

// Start creates the support service.
func (m *Module) Start(_ context.Context) error {
	m.service = NewService(m.typingDelay)
	log.Printf("[support] Module started (%d FAQs, typing delay %s)", len(faqs), m.typingDelay)
	return nil
}

// Stop shuts down the module.
func (m *Module) Stop(_ context.Context) error {
	log.Println("[support] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.service != nil,
		Message: "operational",
		Details: map[string]any{"faq_count": len(faqs)},
	}
}

// Service returns the support service.
func (m *Module) Service() *Service {
	return m.service
}
