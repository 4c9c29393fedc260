// Package auth provides credential checks and JWT issuance as a mono
// module.
package auth

import (
	"context"
	"fmt"
	"log"

	"github.com/example/securecam-store/modules/directory"
	"github.com/go-monolith/mono"
)

// Module owns the auth service and token manager.
type Module struct {
	config    JWTConfig
	service   *Service
	jwt       *JWTManager
	dirModule *directory.Module
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)

// NewModule creates a new auth module with the given JWT configuration.
func NewModule(config JWTConfig) *Module {
	return &Module{config: config}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "auth"
}

// SetDirectoryModule wires the directory module. Must be called before
// Start.
func (m *Module) SetDirectoryModule(d *directory.Module) {
	m.dirModule = d
}

// Start creates the token manager and auth service.
func (m *Module) Start(_ context.Context) error {
	if m.dirModule == nil {
		return fmt.Errorf("directory module not set")
	}
	if m.config.SecretKey == "" {
		return fmt.Errorf("JWT secret key not configured")
	}

	m.jwt = NewJWTManager(m.config)
	m.service = NewService(m.dirModule.Repository(), NewPasswordHasher(), m.jwt)

	log.Println("[auth] Module started")
	return nil
}

// Stop shuts down the module.
func (m *Module) Stop(_ context.Context) error {
	log.Println("[auth] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.service != nil,
		Message: "operational",
	}
}

// Service returns the auth service.
func (m *Module) Service() *Service {
	return m.service
}
