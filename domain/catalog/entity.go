// Package catalog provides the product catalog entities and storage.
package catalog

import (
	"net/url"
	"strconv"
	"strings"
)

// Product represents a security camera product in the catalog.
type Product struct {
	ID          string   `gorm:"primarykey;size:36" json:"id"`
	Name        string   `gorm:"size:100;not null" json:"name"`
	Description string   `gorm:"size:500" json:"description"`
	Price       float64  `gorm:"not null" json:"price"`
	Stock       int      `gorm:"not null;default:0" json:"stock"`
	Category    string   `gorm:"size:100" json:"category"`
	ImageURLs   []string `gorm:"serializer:json" json:"image_urls"`
}

// TableName returns the table name for the Product model.
func (Product) TableName() string {
	return "products"
}

// ValidationErrors maps field names to validation messages.
type ValidationErrors map[string]string

// Error implements the error interface.
func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	return "validation failed: " + strings.Join(fields, ", ")
}

// Validate checks all product fields and returns per-field error messages.
// Mirrors the admin product form rules: every field is required, price must
// be a positive number, stock a non-negative integer, and every image URL
// must parse as an absolute URL or a relative image path.
func (p *Product) Validate() error {
	errs := ValidationErrors{}

	if strings.TrimSpace(p.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(p.Description) == "" {
		errs["description"] = "Description is required"
	}
	if p.Price <= 0 {
		errs["price"] = "Price must be a positive number"
	}
	if p.Stock < 0 {
		errs["stock"] = "Stock must be a non-negative integer"
	}
	if strings.TrimSpace(p.Category) == "" {
		errs["category"] = "Category is required"
	}

	urls := make([]string, 0, len(p.ImageURLs))
	for _, raw := range p.ImageURLs {
		trimmed := strings.TrimSpace(raw)
		if trimmed != "" {
			urls = append(urls, trimmed)
		}
	}
	if len(urls) == 0 {
		errs["image_urls"] = "At least one image URL is required"
	} else {
		for _, u := range urls {
			if _, err := url.Parse(u); err != nil {
				errs["image_urls"] = "All URLs must be valid"
				break
			}
		}
	}
	p.ImageURLs = urls

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NextID returns the next product id given the existing ones.
// Ids are numeric strings; the next id is max existing + 1, matching the
// original catalog's id scheme. Non-numeric ids are ignored.
func NextID(existing []string) string {
	max := 0
	for _, id := range existing {
		n, err := strconv.Atoi(id)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}
