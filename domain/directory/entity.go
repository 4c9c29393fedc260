// Package directory provides users, technicians and coupons.
package directory

import (
	"strconv"
	"strings"
	"time"
)

// UserRole distinguishes admin users from storefront customers.
type UserRole string

const (
	// RoleAdmin grants access to the admin panel.
	RoleAdmin UserRole = "ADMIN"
	// RoleCustomer is the default role for registered shoppers.
	RoleCustomer UserRole = "CUSTOMER"
)

// User represents a registered account.
type User struct {
	ID           string   `gorm:"primarykey;size:36" json:"id"`
	Name         string   `gorm:"size:100;not null" json:"name"`
	Email        string   `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Role         UserRole `gorm:"size:16;not null" json:"role"`
	PasswordHash string   `gorm:"size:255" json:"-"`
}

// TableName returns the table name for the User model.
func (User) TableName() string {
	return "users"
}

// Technician represents an installation service provider.
type Technician struct {
	ID      string `gorm:"primarykey;size:36" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Contact string `gorm:"size:100" json:"contact"`
}

// TableName returns the table name for the Technician model.
func (Technician) TableName() string {
	return "technicians"
}

// Coupon represents a discount code. Coupons are listed in the admin panel
// and can be validated, but are never applied to a cart or order total.
type Coupon struct {
	ID       string `gorm:"primarykey;size:36" json:"id"`
	Code     string `gorm:"size:64;uniqueIndex;not null" json:"code"`
	Discount int    `gorm:"not null" json:"discount"`
	Expiry   string `gorm:"size:10" json:"expiry"`
	IsActive bool   `gorm:"not null" json:"is_active"`
}

// TableName returns the table name for the Coupon model.
func (Coupon) TableName() string {
	return "coupons"
}

// IsValidAt reports whether the coupon can be redeemed at the given time.
// A coupon is valid while its active flag is set and its expiry date
// (YYYY-MM-DD, inclusive) has not passed. Malformed expiry dates make the
// coupon invalid.
func (c *Coupon) IsValidAt(now time.Time) bool {
	if !c.IsActive {
		return false
	}
	expiry, err := time.Parse("2006-01-02", c.Expiry)
	if err != nil {
		return false
	}
	return !now.After(expiry.Add(24*time.Hour - time.Nanosecond))
}

// NextTechnicianID returns the next technician id given the existing ones.
// Ids follow the "T<n>" scheme of the seed data.
func NextTechnicianID(existing []string) string {
	max := 0
	for _, id := range existing {
		trimmed := strings.TrimPrefix(id, "T")
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return "T" + strconv.Itoa(max+1)
}

// NextUserID returns the next numeric user id.
func NextUserID(existing []string) string {
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
