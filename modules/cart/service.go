package cart

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/example/securecam-store/domain/order"
	"github.com/example/securecam-store/modules/catalog"
	"github.com/google/uuid"
	gonanoid "github.com/jaevor/go-nanoid"
)

var (
	// ErrSessionNotFound is returned when no cart exists for a session id.
	ErrSessionNotFound = errors.New("cart session not found")
	// ErrItemNotFound is returned when a line is missing from the cart.
	ErrItemNotFound = errors.New("item not in cart")
	// ErrInvalidQuantity is returned for a quantity below 1. The original
	// storefront never clamped its quantity input; this rebuild rejects
	// the value instead.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrEmptyCart is returned when checking out an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
)

// CheckoutResult confirms a completed checkout. Checkout intentionally
// records nothing: no order is created and no stock is decremented, the
// cart is simply cleared.
type CheckoutResult struct {
	ConfirmationID string  `json:"confirmation_id"`
	Total          float64 `json:"total"`
	ItemCount      int     `json:"item_count"`
}

// Service provides shopping-cart operations over session-scoped carts.
type Service struct {
	store     *Store
	catalog   *catalog.Service
	newSessID func() string
}

// NewService creates a new cart service.
func NewService(store *Store, catalogSvc *catalog.Service) (*Service, error) {
	gen, err := gonanoid.Standard(21)
	if err != nil {
		return nil, fmt.Errorf("failed to create session id generator: %w", err)
	}
	return &Service{
		store:     store,
		catalog:   catalogSvc,
		newSessID: gen,
	}, nil
}

// CreateSession creates a new empty cart and returns it.
func (s *Service) CreateSession(_ context.Context) *Cart {
	cart := s.store.Create(s.newSessID())
	log.Printf("[cart] Created session %s", cart.SessionID)
	return cart
}

// Get retrieves the cart for a session.
func (s *Service) Get(_ context.Context, sessionID string) (*Cart, error) {
	cart, ok := s.store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return cart, nil
}

// AddItem adds one unit of a product to the cart. An existing line has its
// quantity incremented; otherwise a new line is appended with quantity 1,
// with name and unit price snapshotted from the catalog.
func (s *Service) AddItem(ctx context.Context, sessionID, productID string) (*Cart, error) {
	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	ok := s.store.Update(sessionID, func(c *Cart) {
		for i := range c.Items {
			if c.Items[i].ProductID == productID {
				c.Items[i].Quantity++
				return
			}
		}
		c.Items = append(c.Items, order.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  1,
		})
	})
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s.Get(ctx, sessionID)
}

// UpdateQuantity sets the quantity of a cart line. Quantities below 1 are
// rejected.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	var found bool
	ok := s.store.Update(sessionID, func(c *Cart) {
		for i := range c.Items {
			if c.Items[i].ProductID == productID {
				c.Items[i].Quantity = quantity
				found = true
				return
			}
		}
	})
	if !ok {
		return nil, ErrSessionNotFound
	}
	if !found {
		return nil, ErrItemNotFound
	}
	return s.Get(ctx, sessionID)
}

// RemoveItem deletes a line from the cart.
func (s *Service) RemoveItem(ctx context.Context, sessionID, productID string) (*Cart, error) {
	var found bool
	ok := s.store.Update(sessionID, func(c *Cart) {
		for i := range c.Items {
			if c.Items[i].ProductID == productID {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
				found = true
				return
			}
		}
	})
	if !ok {
		return nil, ErrSessionNotFound
	}
	if !found {
		return nil, ErrItemNotFound
	}
	return s.Get(ctx, sessionID)
}

// Clear empties the cart.
func (s *Service) Clear(_ context.Context, sessionID string) error {
	ok := s.store.Update(sessionID, func(c *Cart) {
		c.Items = []order.CartItem{}
	})
	if !ok {
		return ErrSessionNotFound
	}
	return nil
}

// Checkout confirms the purchase and clears the cart. It deliberately
// does not create an order record or touch stock.
func (s *Service) Checkout(ctx context.Context, sessionID string) (*CheckoutResult, error) {
	cart, ok := s.store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	var result *CheckoutResult
	s.store.Update(sessionID, func(c *Cart) {
		if len(c.Items) == 0 {
			return
		}
		result = &CheckoutResult{
			ConfirmationID: uuid.New().String(),
			Total:          c.Subtotal(),
			ItemCount:      len(c.Items),
		}
		c.Items = []order.CartItem{}
	})
	if result == nil {
		return nil, ErrEmptyCart
	}

	log.Printf("[cart] Checkout complete for session %s confirmation=%s", cart.SessionID, result.ConfirmationID)
	return result, nil
}
