package order

import "time"

// EventType represents the type of order lifecycle event.
type EventType string

const (
	// EventTypeOrderCreated indicates a new order was recorded.
	EventTypeOrderCreated EventType = "order.created"
	// EventTypeStatusChanged indicates an order moved to a new status.
	EventTypeStatusChanged EventType = "order.status_changed"
	// EventTypeTechnicianAssigned indicates a technician was assigned or cleared.
	EventTypeTechnicianAssigned EventType = "order.technician_assigned"
	// EventTypeFeedbackRecorded indicates customer feedback was saved.
	EventTypeFeedbackRecorded EventType = "order.feedback_recorded"
)

// Event represents an order lifecycle event.
type Event struct {
	Type      EventType   `json:"type"`
	OrderID   string      `json:"order_id"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
}

// OrderCreatedData contains data for an order created event.
type OrderCreatedData struct {
	CustomerID string  `json:"customer_id"`
	Total      float64 `json:"total"`
}

// StatusChangedData contains data for a status change event.
type StatusChangedData struct {
	From OrderStatus `json:"from"`
	To   OrderStatus `json:"to"`
}

// TechnicianAssignedData contains data for a technician assignment event.
type TechnicianAssignedData struct {
	TechnicianID   string `json:"technician_id"`
	TechnicianName string `json:"technician_name"`
}

// FeedbackRecordedData contains data for a feedback event.
type FeedbackRecordedData struct {
	Feedback string `json:"feedback"`
}

// NewOrderCreatedEvent creates a new order created event.
func NewOrderCreatedEvent(orderID, customerID string, total float64) Event {
	return Event{
		Type:      EventTypeOrderCreated,
		OrderID:   orderID,
		Timestamp: time.Now(),
		Data:      OrderCreatedData{CustomerID: customerID, Total: total},
	}
}

// NewStatusChangedEvent creates a new status change event.
func NewStatusChangedEvent(orderID string, from, to OrderStatus) Event {
	return Event{
		Type:      EventTypeStatusChanged,
		OrderID:   orderID,
		Timestamp: time.Now(),
		Data:      StatusChangedData{From: from, To: to},
	}
}

// NewTechnicianAssignedEvent creates a new technician assignment event.
func NewTechnicianAssignedEvent(orderID, techID, techName string) Event {
	return Event{
		Type:      EventTypeTechnicianAssigned,
		OrderID:   orderID,
		Timestamp: time.Now(),
		Data:      TechnicianAssignedData{TechnicianID: techID, TechnicianName: techName},
	}
}

// NewFeedbackRecordedEvent creates a new feedback recorded event.
func NewFeedbackRecordedEvent(orderID, feedback string) Event {
	return Event{
		Type:      EventTypeFeedbackRecorded,
		OrderID:   orderID,
		Timestamp: time.Now(),
		Data:      FeedbackRecordedData{Feedback: feedback},
	}
}
