package order

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when an order is not found.
	ErrNotFound = errors.New("order not found")
	// ErrInvalidTransition is returned for a disallowed status change.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Repository provides access to order storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new order repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the orders table.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&Order{})
}

// Create saves a new order.
func (r *Repository) Create(order *Order) error {
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// FindByID retrieves an order by id.
func (r *Repository) FindByID(id string) (*Order, error) {
	var order Order
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	return &order, nil
}

// FindAll retrieves all orders ordered by id.
func (r *Repository) FindAll() ([]*Order, error) {
	var orders []*Order
	if err := r.db.Order("length(id), id").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	return orders, nil
}

// FindByCustomer retrieves all orders for a customer.
func (r *Repository) FindByCustomer(customerID string) ([]*Order, error) {
	var orders []*Order
	if err := r.db.Where("customer_id = ?", customerID).
		Order("length(id), id").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to find customer orders: %w", err)
	}
	return orders, nil
}

// IDs returns all existing order ids.
func (r *Repository) IDs() ([]string, error) {
	var ids []string
	if err := r.db.Model(&Order{}).Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list order ids: %w", err)
	}
	return ids, nil
}

// Save persists all fields of an existing order.
func (r *Repository) Save(order *Order) error {
	result := r.db.Model(&Order{}).Where("id = ?", order.ID).
		Select("*").Updates(order)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of orders.
func (r *Repository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&Order{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

// SumTotals returns the sum of all order totals.
func (r *Repository) SumTotals() (float64, error) {
	var sum float64
	err := r.db.Model(&Order{}).
		Select("COALESCE(SUM(total), 0)").Scan(&sum).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum order totals: %w", err)
	}
	return sum, nil
}
