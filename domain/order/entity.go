// Package order provides the order entity, its fulfillment lifecycle and
// storage.
package order

import "strconv"

// OrderStatus represents a stage in the fulfillment sequence.
type OrderStatus string

const (
	// StatusPending indicates the order has been placed but not processed.
	StatusPending OrderStatus = "Pending"
	// StatusProcessing indicates the order is being prepared.
	StatusProcessing OrderStatus = "Processing"
	// StatusShipped indicates the order has left the warehouse.
	StatusShipped OrderStatus = "Shipped"
	// StatusInstallationScheduled indicates a technician visit is booked.
	StatusInstallationScheduled OrderStatus = "Installation Scheduled"
	// StatusDelivered indicates physical delivery of the product.
	StatusDelivered OrderStatus = "Delivered"
	// StatusCompleted indicates installation is done. Terminal.
	StatusCompleted OrderStatus = "Completed"
	// StatusCancelled indicates the order was cancelled. Terminal.
	StatusCancelled OrderStatus = "Cancelled"
)

// AllStatuses lists every order status in fulfillment order.
func AllStatuses() []OrderStatus {
	return []OrderStatus{
		StatusPending,
		StatusProcessing,
		StatusShipped,
		StatusInstallationScheduled,
		StatusDelivered,
		StatusCompleted,
		StatusCancelled,
	}
}

// IsValid reports whether the status is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped,
		StatusInstallationScheduled, StatusDelivered,
		StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status allows no further transitions.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// transitions is the status validity table. The admin order editor in the
// original system allowed arbitrary status changes; this rebuild enforces
// forward-only movement, with Cancelled reachable from any non-terminal
// state and Installation Scheduled and Delivered allowed in either order
// (they share a tracking step).
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:               {StatusProcessing, StatusCancelled},
	StatusProcessing:            {StatusShipped, StatusCancelled},
	StatusShipped:               {StatusInstallationScheduled, StatusDelivered, StatusCancelled},
	StatusInstallationScheduled: {StatusDelivered, StatusCompleted, StatusCancelled},
	StatusDelivered:             {StatusInstallationScheduled, StatusCompleted, StatusCancelled},
	StatusCompleted:             {},
	StatusCancelled:             {},
}

// CanTransition reports whether an order may move from one status to
// another. Same-status updates are always allowed as no-ops.
func CanTransition(from, to OrderStatus) bool {
	if from == to {
		return true
	}
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// TotalTrackingSteps is the number of steps shown on the tracking timeline.
const TotalTrackingSteps = 5

// TrackingStep maps a status to its progress-bar step. Installation
// Scheduled and Delivered share step 4; Cancelled and unknown statuses map
// to 0.
func TrackingStep(status OrderStatus) int {
	switch status {
	case StatusPending:
		return 1
	case StatusProcessing:
		return 2
	case StatusShipped:
		return 3
	case StatusInstallationScheduled, StatusDelivered:
		return 4
	case StatusCompleted:
		return 5
	default:
		return 0
	}
}

// TimelineLabels returns the labels rendered under the tracking timeline.
func TimelineLabels() []string {
	return []string{"Pending", "Processing", "Shipped", "Scheduled", "Completed"}
}

// CartItem is a purchased-product snapshot. Name and unit price are frozen
// at the time the line was created so later catalog edits do not rewrite
// order history.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// LineTotal returns price times quantity for the line.
func (i CartItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Subtotal returns the sum of line totals.
func Subtotal(items []CartItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.LineTotal()
	}
	return sum
}

// Order represents a customer order through its fulfillment lifecycle.
type Order struct {
	ID                 string      `gorm:"primarykey;size:36" json:"id"`
	CustomerID         string      `gorm:"size:36;index" json:"customer_id"`
	CustomerName       string      `gorm:"size:100" json:"customer_name"`
	Items              []CartItem  `gorm:"serializer:json" json:"items"`
	Total              float64     `gorm:"not null" json:"total"`
	Status             OrderStatus `gorm:"size:32;not null" json:"status"`
	Date               string      `gorm:"size:10" json:"date"`
	ShippingAddress    string      `gorm:"size:255" json:"shipping_address"`
	TechnicianID       string      `gorm:"size:36" json:"technician_id,omitempty"`
	TechnicianName     string      `gorm:"size:100" json:"technician_name,omitempty"`
	InstallationDate   string      `gorm:"size:10" json:"installation_date,omitempty"`
	InstallationNotes  string      `gorm:"size:500" json:"installation_notes,omitempty"`
	InstallationImages []string    `gorm:"serializer:json" json:"installation_images,omitempty"`
	CustomerFeedback   string      `gorm:"size:1000" json:"customer_feedback,omitempty"`
}

// TableName returns the table name for the Order model.
func (Order) TableName() string {
	return "orders"
}

// NextID returns the next order id given the existing ones. Order ids are
// numeric strings; seed data starts at 101.
func NextID(existing []string) string {
	max := 100
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
