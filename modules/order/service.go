package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	directorydomain "github.com/example/securecam-store/domain/directory"
	domain "github.com/example/securecam-store/domain/order"
	"github.com/example/securecam-store/modules/catalog"
	"github.com/example/securecam-store/modules/eventbus"
)

var (
	// ErrNoItems is returned when an order is created without items.
	ErrNoItems = errors.New("order must contain at least one item")
	// ErrInvalidQuantity is returned for a non-positive line quantity.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// Service provides order lifecycle operations.
type Service struct {
	repo    *domain.Repository
	dirRepo *directorydomain.Repository
	catalog *catalog.Service
	bus     *eventbus.EventBus
}

// NewService creates a new order service.
func NewService(repo *domain.Repository, dirRepo *directorydomain.Repository, catalogSvc *catalog.Service, bus *eventbus.EventBus) *Service {
	return &Service{
		repo:    repo,
		dirRepo: dirRepo,
		catalog: catalogSvc,
		bus:     bus,
	}
}

// List retrieves all orders.
func (s *Service) List(_ context.Context) ([]*domain.Order, error) {
	return s.repo.FindAll()
}

// GetByID retrieves an order by id. Returns domain.ErrNotFound on a miss.
func (s *Service) GetByID(_ context.Context, id string) (*domain.Order, error) {
	return s.repo.FindByID(id)
}

// ListByCustomer retrieves all orders for a customer.
func (s *Service) ListByCustomer(_ context.Context, customerID string) ([]*domain.Order, error) {
	return s.repo.FindByCustomer(customerID)
}

// Create records a new order. Item names and unit prices are snapshotted
// from the catalog and the total is recomputed from the lines, so the
// total always equals the sum of price times quantity at creation.
func (s *Service) Create(ctx context.Context, req *CreateOrderRequest) (*domain.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}

	customer, err := s.dirRepo.FindUserByID(req.CustomerID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.CartItem, 0, len(req.Items))
	for _, line := range req.Items {
		if line.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		product, err := s.catalog.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", line.ProductID, err)
		}
		items = append(items, domain.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  line.Quantity,
		})
	}

	ids, err := s.repo.IDs()
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:              domain.NextID(ids),
		CustomerID:      customer.ID,
		CustomerName:    customer.Name,
		Items:           items,
		Total:           domain.Subtotal(items),
		Status:          domain.StatusPending,
		Date:            time.Now().Format("2006-01-02"),
		ShippingAddress: req.ShippingAddress,
	}

	if err := s.repo.Create(order); err != nil {
		return nil, err
	}

	s.publish(ctx, domain.NewOrderCreatedEvent(order.ID, order.CustomerID, order.Total))
	log.Printf("[order] Created order id=%s customer=%s total=%.2f", order.ID, order.CustomerID, order.Total)
	return order, nil
}

// Manage applies an admin manage-order payload: status change, technician
// assignment, installation details and feedback, each validated in turn.
func (s *Service) Manage(ctx context.Context, id string, req *ManageOrderRequest) (*domain.Order, error) {
	order, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	var events []domain.Event

	if req.Status != nil && *req.Status != order.Status {
		if !req.Status.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidTransition, *req.Status)
		}
		if !domain.CanTransition(order.Status, *req.Status) {
			return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, *req.Status)
		}
		events = append(events, domain.NewStatusChangedEvent(order.ID, order.Status, *req.Status))
		order.Status = *req.Status
	}

	if req.TechnicianID != nil && *req.TechnicianID != order.TechnicianID {
		if *req.TechnicianID == "" {
			order.TechnicianID = ""
			order.TechnicianName = ""
		} else {
			tech, err := s.dirRepo.FindTechnicianByID(*req.TechnicianID)
			if err != nil {
				return nil, err
			}
			order.TechnicianID = tech.ID
			order.TechnicianName = tech.Name
			events = append(events, domain.NewTechnicianAssignedEvent(order.ID, tech.ID, tech.Name))
		}
	}

	if req.InstallationDate != nil {
		order.InstallationDate = *req.InstallationDate
	}
	if req.InstallationNotes != nil {
		order.InstallationNotes = *req.InstallationNotes
	}
	if req.InstallationImages != nil {
		order.InstallationImages = *req.InstallationImages
	}
	if req.CustomerFeedback != nil && *req.CustomerFeedback != order.CustomerFeedback {
		order.CustomerFeedback = *req.CustomerFeedback
		events = append(events, domain.NewFeedbackRecordedEvent(order.ID, order.CustomerFeedback))
	}

	if err := s.repo.Save(order); err != nil {
		return nil, err
	}

	for _, e := range events {
		s.publish(ctx, e)
	}
	log.Printf("[order] Updated order id=%s status=%s", order.ID, order.Status)
	return order, nil
}

// UpdateStatus moves an order to a new status, enforcing the transition
// table.
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	return s.Manage(ctx, id, &ManageOrderRequest{Status: &status})
}

// AssignTechnician assigns (or with an empty id clears) the technician on
// an order, keeping the denormalized name in sync.
func (s *Service) AssignTechnician(ctx context.Context, id, technicianID string) (*domain.Order, error) {
	return s.Manage(ctx, id, &ManageOrderRequest{TechnicianID: &technicianID})
}

// Track returns the tracking view for an order: current status, progress
// step out of 5 and the timeline labels. Feedback is included once the
// order is Delivered or Completed.
func (s *Service) Track(_ context.Context, id string) (*TrackingInfo, error) {
	order, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	info := &TrackingInfo{
		Order:      order,
		Step:       domain.TrackingStep(order.Status),
		TotalSteps: domain.TotalTrackingSteps,
		Timeline:   domain.TimelineLabels(),
	}
	if order.Status == domain.StatusCompleted || order.Status == domain.StatusDelivered {
		info.Feedback = order.CustomerFeedback
	}
	return info, nil
}

// publish sends an event when a bus is configured.
func (s *Service) publish(ctx context.Context, event domain.Event) {
	if s.bus != nil {
		s.bus.Publish(ctx, event)
	}
}
