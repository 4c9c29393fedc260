package directory

import (
	"testing"
	"time"
)

func TestCoupon_IsValidAt(t *testing.T) {
	now := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		coupon Coupon
		want   bool
	}{
		{
			name:   "active and unexpired",
			coupon: Coupon{Code: "SUMMER20", Discount: 20, Expiry: "2024-08-31", IsActive: true},
			want:   true,
		},
		{
			name:   "valid through expiry day",
			coupon: Coupon{Code: "TODAY", Discount: 5, Expiry: "2024-07-15", IsActive: true},
			want:   true,
		},
		{
			name:   "expired",
			coupon: Coupon{Code: "EXPIRED10", Discount: 10, Expiry: "2023-01-01", IsActive: true},
			want:   false,
		},
		{
			name:   "inactive",
			coupon: Coupon{Code: "DISABLED", Discount: 10, Expiry: "2025-01-01", IsActive: false},
			want:   false,
		},
		{
			name:   "malformed expiry",
			coupon: Coupon{Code: "BROKEN", Discount: 10, Expiry: "soon", IsActive: true},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.coupon.IsValidAt(now); got != tt.want {
				t.Errorf("IsValidAt() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextTechnicianID(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		want     string
	}{
		{"empty", nil, "T1"},
		{"seed data", []string{"T1", "T2", "T3"}, "T4"},
		{"gap after delete", []string{"T1", "T3"}, "T4"},
		{"ignores malformed", []string{"T1", "bogus"}, "T2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextTechnicianID(tt.existing); got != tt.want {
				t.Errorf("NextTechnicianID(%v) = %q, want %q", tt.existing, got, tt.want)
			}
		})
	}
}

func TestNextUserID(t *testing.T) {
	if got := NextUserID(nil); got != "1" {
		t.Errorf("NextUserID(nil) = %q, want %q", got, "1")
	}
	if got := NextUserID([]string{"1", "2", "4"}); got != "5" {
		t.Errorf("NextUserID() = %q, want %q", got, "5")
	}
}

func TestSeedData(t *testing.T) {
	users := SeedUsers()
	if len(users) != 4 {
		t.Fatalf("expected 4 seed users, got %d", len(users))
	}

	var admins int
	for _, u := range users {
		if u.Role == RoleAdmin {
			admins++
		}
	}
	if admins != 1 {
		t.Errorf("expected exactly 1 seeded admin, got %d", admins)
	}

	if techs := SeedTechnicians(); len(techs) != 3 {
		t.Errorf("expected 3 seed technicians, got %d", len(techs))
	}
	if coupons := SeedCoupons(); len(coupons) != 3 {
		t.Errorf("expected 3 seed coupons, got %d", len(coupons))
	}
}
