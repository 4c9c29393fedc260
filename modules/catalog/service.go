package catalog

import (
	"context"
	"log"

	domain "github.com/example/securecam-store/domain/catalog"
	"github.com/example/securecam-store/modules/cache"
	"golang.org/x/sync/singleflight"
)

const (
	cacheKeyList = "products:list"
	cacheKeyByID = "products:id:"
)

// Service provides catalog operations with optional cache-aside reads.
// A nil cache degrades to direct repository access.
type Service struct {
	repo    *domain.Repository
	cache   *cache.Cache
	sfGroup singleflight.Group
}

// NewService creates a new catalog service.
func NewService(repo *domain.Repository, c *cache.Cache) *Service {
	return &Service{
		repo:  repo,
		cache: c,
	}
}

// List retrieves all products.
func (s *Service) List(ctx context.Context) ([]*domain.Product, error) {
	if s.cache != nil {
		var cached []*domain.Product
		found, err := s.cache.Get(ctx, cacheKeyList, &cached)
		if err != nil {
			log.Printf("[catalog] Cache error on list: %v", err)
		}
		if found {
			return cached, nil
		}
	}

	val, err, _ := s.sfGroup.Do(cacheKeyList, func() (any, error) {
		return s.repo.FindAll()
	})
	if err != nil {
		return nil, err
	}
	products := val.([]*domain.Product)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKeyList, products); err != nil {
			log.Printf("[catalog] Warning: failed to cache product list: %v", err)
		}
	}
	return products, nil
}

// GetByID retrieves a product by id. Returns domain.ErrNotFound on a miss.
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	key := cacheKeyByID + id

	if s.cache != nil {
		var cached domain.Product
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			log.Printf("[catalog] Cache error for id=%s: %v", id, err)
		}
		if found {
			return &cached, nil
		}
	}

	val, err, _ := s.sfGroup.Do(key, func() (any, error) {
		return s.repo.FindByID(id)
	})
	if err != nil {
		return nil, err
	}
	product := val.(*domain.Product)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, product); err != nil {
			log.Printf("[catalog] Warning: failed to cache product id=%s: %v", id, err)
		}
	}
	return product, nil
}

// Create validates and saves a new product. The id is the highest existing
// numeric id plus one.
func (s *Service) Create(ctx context.Context, req *CreateProductRequest) (*domain.Product, error) {
	product := &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		ImageURLs:   req.ImageURLs,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	ids, err := s.repo.IDs()
	if err != nil {
		return nil, err
	}
	product.ID = domain.NextID(ids)

	if err := s.repo.Create(product); err != nil {
		return nil, err
	}

	s.invalidate(ctx, product.ID)
	log.Printf("[catalog] Created product id=%s", product.ID)
	return product, nil
}

// Update applies the provided fields to an existing product and
// revalidates the result.
func (s *Service) Update(ctx context.Context, id string, req *UpdateProductRequest) (*domain.Product, error) {
	product, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.ImageURLs != nil {
		product.ImageURLs = *req.ImageURLs
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	log.Printf("[catalog] Updated product id=%s", id)
	return product, nil
}

// Delete removes a product by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	log.Printf("[catalog] Deleted product id=%s", id)
	return nil
}

// invalidate drops cached entries touched by a write.
func (s *Service) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cacheKeyList); err != nil {
		log.Printf("[catalog] Warning: failed to invalidate list cache: %v", err)
	}
	if err := s.cache.Delete(ctx, cacheKeyByID+id); err != nil {
		log.Printf("[catalog] Warning: failed to invalidate product cache: %v", err)
	}
}
