package directory

// CreateTechnicianRequest carries the technician form fields.
type CreateTechnicianRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// UpdateTechnicianRequest carries optional technician updates.
type UpdateTechnicianRequest struct {
	Name    *string `json:"name,omitempty"`
	Contact *string `json:"contact,omitempty"`
}

// CouponValidation reports whether a coupon code can be redeemed.
// The discount is informational only; nothing in the checkout flow
// applies it.
type CouponValidation struct {
	Code     string `json:"code"`
	Valid    bool   `json:"valid"`
	Discount int    `json:"discount,omitempty"`
	Reason   string `json:"reason,omitempty"`
}
