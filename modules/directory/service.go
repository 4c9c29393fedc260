package directory

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	domain "github.com/example/securecam-store/domain/directory"
)

// ErrTechnicianNameRequired is returned when the technician form is
// submitted without a name.
var ErrTechnicianNameRequired = errors.New("technician name is required")

// Service provides directory operations over users, technicians and
// coupons.
type Service struct {
	repo *domain.Repository
	now  func() time.Time
}

// NewService creates a new directory service.
func NewService(repo *domain.Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// ListUsers retrieves all users.
func (s *Service) ListUsers(_ context.Context) ([]*domain.User, error) {
	return s.repo.FindAllUsers()
}

// ListCustomers retrieves all customer users.
func (s *Service) ListCustomers(_ context.Context) ([]*domain.User, error) {
	return s.repo.FindCustomers()
}

// GetUser retrieves a user by id.
func (s *Service) GetUser(_ context.Context, id string) (*domain.User, error) {
	return s.repo.FindUserByID(id)
}

// ListTechnicians retrieves all technicians.
func (s *Service) ListTechnicians(_ context.Context) ([]*domain.Technician, error) {
	return s.repo.FindAllTechnicians()
}

// GetTechnician retrieves a technician by id.
func (s *Service) GetTechnician(_ context.Context, id string) (*domain.Technician, error) {
	return s.repo.FindTechnicianByID(id)
}

// CreateTechnician validates and saves a new technician. The id follows
// the "T<n>" scheme with n one past the highest existing.
func (s *Service) CreateTechnician(_ context.Context, req *CreateTechnicianRequest) (*domain.Technician, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrTechnicianNameRequired
	}

	ids, err := s.repo.TechnicianIDs()
	if err != nil {
		return nil, err
	}

	tech := &domain.Technician{
		ID:      domain.NextTechnicianID(ids),
		Name:    strings.TrimSpace(req.Name),
		Contact: strings.TrimSpace(req.Contact),
	}
	if err := s.repo.CreateTechnician(tech); err != nil {
		return nil, err
	}

	log.Printf("[directory] Created technician id=%s", tech.ID)
	return tech, nil
}

// UpdateTechnician applies the provided fields to an existing technician.
func (s *Service) UpdateTechnician(_ context.Context, id string, req *UpdateTechnicianRequest) (*domain.Technician, error) {
	tech, err := s.repo.FindTechnicianByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrTechnicianNameRequired
		}
		tech.Name = strings.TrimSpace(*req.Name)
	}
	if req.Contact != nil {
		tech.Contact = strings.TrimSpace(*req.Contact)
	}

	if err := s.repo.UpdateTechnician(tech); err != nil {
		return nil, err
	}

	log.Printf("[directory] Updated technician id=%s", id)
	return tech, nil
}

// DeleteTechnician removes a technician by id.
func (s *Service) DeleteTechnician(_ context.Context, id string) error {
	if err := s.repo.DeleteTechnician(id); err != nil {
		return err
	}
	log.Printf("[directory] Deleted technician id=%s", id)
	return nil
}

// ListCoupons retrieves all coupons.
func (s *Service) ListCoupons(_ context.Context) ([]*domain.Coupon, error) {
	return s.repo.FindAllCoupons()
}

// ValidateCoupon checks whether a coupon code can be redeemed. Unknown
// codes are reported as invalid rather than as errors.
func (s *Service) ValidateCoupon(_ context.Context, code string) (*CouponValidation, error) {
	coupon, err := s.repo.FindCouponByCode(code)
	if err != nil {
		if errors.Is(err, domain.ErrCouponNotFound) {
			return &CouponValidation{Code: code, Valid: false, Reason: "unknown code"}, nil
		}
		return nil, err
	}

	if !coupon.IsValidAt(s.now()) {
		reason := "expired"
		if !coupon.IsActive {
			reason = "inactive"
		}
		return &CouponValidation{Code: code, Valid: false, Reason: reason}, nil
	}

	return &CouponValidation{Code: code, Valid: true, Discount: coupon.Discount}, nil
}
