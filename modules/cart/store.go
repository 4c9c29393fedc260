package cart

import (
	"sync"
	"time"

	"github.com/example/securecam-store/domain/order"
)

// Cart holds the shopping-cart contents of one browsing session. Carts
// live only in memory and are never persisted.
type Cart struct {
	SessionID string           `json:"session_id"`
	Items     []order.CartItem `json:"items"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Subtotal returns the sum of price times quantity over all lines.
func (c *Cart) Subtotal() float64 {
	return order.Subtotal(c.Items)
}

// Store provides in-memory storage for session carts.
type Store struct {
	carts map[string]*Cart
	mu    sync.RWMutex
}

// NewStore creates a new cart store.
func NewStore() *Store {
	return &Store{
		carts: make(map[string]*Cart),
	}
}

// Create stores a new empty cart for the session.
func (s *Store) Create(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	cart := &Cart{
		SessionID: sessionID,
		Items:     []order.CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.carts[sessionID] = cart
	return &Cart{
		SessionID: sessionID,
		Items:     []order.CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Get retrieves a copy of the cart for a session. The copy is safe to
// hand to callers while other goroutines mutate the original.
func (s *Store) Get(sessionID string) (*Cart, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		return nil, false
	}

	items := make([]order.CartItem, len(cart.Items))
	copy(items, cart.Items)
	return &Cart{
		SessionID: cart.SessionID,
		Items:     items,
		CreatedAt: cart.CreatedAt,
		UpdatedAt: cart.UpdatedAt,
	}, true
}

// Update runs fn against the cart under the write lock.
func (s *Store) Update(sessionID string, fn func(*Cart)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		return false
	}
	fn(cart)
	cart.UpdatedAt = time.Now()
	return true
}

// Delete removes a cart.
func (s *Store) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// Count returns the number of active sessions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.carts)
}
