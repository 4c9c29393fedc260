package order

import domain "github.com/example/securecam-store/domain/order"

// OrderLine identifies a product and quantity on a new order.
type OrderLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest carries the fields needed to record a new order.
type CreateOrderRequest struct {
	CustomerID      string      `json:"customer_id"`
	Items           []OrderLine `json:"items"`
	ShippingAddress string      `json:"shipping_address"`
}

// ManageOrderRequest mirrors the admin manage-order form: any combination
// of status, technician assignment, installation details and customer
// feedback may be submitted in one payload. Nil fields are left unchanged.
type ManageOrderRequest struct {
	Status             *domain.OrderStatus `json:"status,omitempty"`
	TechnicianID       *string             `json:"technician_id,omitempty"`
	InstallationDate   *string             `json:"installation_date,omitempty"`
	InstallationNotes  *string             `json:"installation_notes,omitempty"`
	InstallationImages *[]string           `json:"installation_images,omitempty"`
	CustomerFeedback   *string             `json:"customer_feedback,omitempty"`
}

// TrackingInfo is what the tracking page renders: the order, its progress
// step and the timeline labels. Feedback is only populated once the order
// is Delivered or Completed.
type TrackingInfo struct {
	Order      *domain.Order `json:"order"`
	Step       int           `json:"step"`
	TotalSteps int           `json:"total_steps"`
	Timeline   []string      `json:"timeline"`
	Feedback   string        `json:"feedback,omitempty"`
}
