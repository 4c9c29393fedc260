package directory

// SeedUsers returns the initial user directory. Password hashes are filled
// in by the directory module at seed time.
func SeedUsers() []*User {
	return []*User{
		{ID: "1", Name: "Alice Johnson", Email: "alice@example.com", Role: RoleCustomer},
		{ID: "2", Name: "Bob Smith", Email: "bob@example.com", Role: RoleCustomer},
		{ID: "3", Name: "Charlie Brown", Email: "charlie@example.com", Role: RoleCustomer},
		{ID: "4", Name: "Admin User", Email: "admin@example.com", Role: RoleAdmin},
	}
}

// SeedTechnicians returns the initial technician roster.
func SeedTechnicians() []*Technician {
	return []*Technician{
		{ID: "T1", Name: "Mike Ross", Contact: "555-0101"},
		{ID: "T2", Name: "Harvey Specter", Contact: "555-0102"},
		{ID: "T3", Name: "Jessica Pearson", Contact: "555-0103"},
	}
}

// SeedCoupons returns the initial coupon list.
func SeedCoupons() []*Coupon {
	return []*Coupon{
		{ID: "c1", Code: "SUMMER20", Discount: 20, Expiry: "2024-08-31", IsActive: true},
		{ID: "c2", Code: "WINTERSALE", Discount: 15, Expiry: "2024-12-31", IsActive: true},
		{ID: "c3", Code: "EXPIRED10", Discount: 10, Expiry: "2023-01-01", IsActive: false},
	}
}
