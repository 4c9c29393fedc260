package directory

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrUserNotFound is returned when a user lookup misses.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when registering an email that is taken.
	ErrUserExists = errors.New("user with this email already exists")
	// ErrTechnicianNotFound is returned when a technician lookup misses.
	ErrTechnicianNotFound = errors.New("technician not found")
	// ErrCouponNotFound is returned when a coupon lookup misses.
	ErrCouponNotFound = errors.New("coupon not found")
)

// Repository provides access to user, technician and coupon storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new directory repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the directory tables.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&User{}, &Technician{}, &Coupon{})
}

// CreateUser saves a new user.
func (r *Repository) CreateUser(user *User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByID retrieves a user by id.
func (r *Repository) FindUserByID(id string) (*User, error) {
	var user User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// FindUserByEmail retrieves a user by email.
func (r *Repository) FindUserByEmail(email string) (*User, error) {
	var user User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// EmailExists reports whether a user with the given email exists.
func (r *Repository) EmailExists(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}

// FindAllUsers retrieves all users.
func (r *Repository) FindAllUsers() ([]*User, error) {
	var users []*User
	if err := r.db.Order("length(id), id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	return users, nil
}

// FindCustomers retrieves all users with the customer role.
func (r *Repository) FindCustomers() ([]*User, error) {
	var users []*User
	if err := r.db.Where("role = ?", RoleCustomer).Order("length(id), id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to find customers: %w", err)
	}
	return users, nil
}

// UserIDs returns all existing user ids.
func (r *Repository) UserIDs() ([]string, error) {
	var ids []string
	if err := r.db.Model(&User{}).Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list user ids: %w", err)
	}
	return ids, nil
}

// CreateTechnician saves a new technician.
func (r *Repository) CreateTechnician(tech *Technician) error {
	if err := r.db.Create(tech).Error; err != nil {
		return fmt.Errorf("failed to create technician: %w", err)
	}
	return nil
}

// FindTechnicianByID retrieves a technician by id.
func (r *Repository) FindTechnicianByID(id string) (*Technician, error) {
	var tech Technician
	if err := r.db.First(&tech, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTechnicianNotFound
		}
		return nil, fmt.Errorf("failed to find technician: %w", err)
	}
	return &tech, nil
}

// FindAllTechnicians retrieves all technicians.
func (r *Repository) FindAllTechnicians() ([]*Technician, error) {
	var techs []*Technician
	if err := r.db.Order("id").Find(&techs).Error; err != nil {
		return nil, fmt.Errorf("failed to find technicians: %w", err)
	}
	return techs, nil
}

// TechnicianIDs returns all existing technician ids.
func (r *Repository) TechnicianIDs() ([]string, error) {
	var ids []string
	if err := r.db.Model(&Technician{}).Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list technician ids: %w", err)
	}
	return ids, nil
}

// UpdateTechnician updates an existing technician.
func (r *Repository) UpdateTechnician(tech *Technician) error {
	result := r.db.Model(&Technician{}).Where("id = ?", tech.ID).
		Select("Name", "Contact").Updates(tech)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to update technician: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrTechnicianNotFound
	}
	return nil
}

// DeleteTechnician removes a technician by id.
func (r *Repository) DeleteTechnician(id string) error {
	result := r.db.Delete(&Technician{}, "id = ?", id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete technician: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrTechnicianNotFound
	}
	return nil
}

// CreateCoupon saves a new coupon.
func (r *Repository) CreateCoupon(coupon *Coupon) error {
	if err := r.db.Create(coupon).Error; err != nil {
		return fmt.Errorf("failed to create coupon: %w", err)
	}
	return nil
}

// FindAllCoupons retrieves all coupons.
func (r *Repository) FindAllCoupons() ([]*Coupon, error) {
	var coupons []*Coupon
	if err := r.db.Order("id").Find(&coupons).Error; err != nil {
		return nil, fmt.Errorf("failed to find coupons: %w", err)
	}
	return coupons, nil
}

// FindCouponByCode retrieves a coupon by its code.
func (r *Repository) FindCouponByCode(code string) (*Coupon, error) {
	var coupon Coupon
	if err := r.db.First(&coupon, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, fmt.Errorf("failed to find coupon: %w", err)
	}
	return &coupon, nil
}
