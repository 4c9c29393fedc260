package catalog

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a product is not found.
var ErrNotFound = errors.New("product not found")

// Repository provides access to product storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new product repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the products table.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&Product{})
}

// Create saves a new product.
func (r *Repository) Create(product *Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// FindByID retrieves a product by its id.
func (r *Repository) FindByID(id string) (*Product, error) {
	var product Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &product, nil
}

// FindAll retrieves all products ordered by id.
func (r *Repository) FindAll() ([]*Product, error) {
	var products []*Product
	if err := r.db.Order("length(id), id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	return products, nil
}

// IDs returns all existing product ids.
func (r *Repository) IDs() ([]string, error) {
	var ids []string
	if err := r.db.Model(&Product{}).Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list product ids: %w", err)
	}
	return ids, nil
}

// Update updates an existing product.
func (r *Repository) Update(product *Product) error {
	result := r.db.Model(&Product{}).Where("id = ?", product.ID).
		Select("Name", "Description", "Price", "Stock", "Category", "ImageURLs").
		Updates(product)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a product by id.
func (r *Repository) Delete(id string) error {
	result := r.db.Delete(&Product{}, "id = ?", id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of products in the catalog.
func (r *Repository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&Product{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}
