package dashboard

import (
	"time"

	"github.com/example/securecam-store/domain/order"
)

// ChartPoint is a single point in a dashboard chart series.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Summary is the aggregate view shown on the admin dashboard.
type Summary struct {
	TotalSales     float64      `json:"total_sales"`
	TotalOrders    int64        `json:"total_orders"`
	TotalCustomers int64        `json:"total_customers"`
	SalesData      []ChartPoint `json:"sales_data"`
	CustomerData   []ChartPoint `json:"customer_data"`
}

// Activity is one entry in the recent-activity feed.
type Activity struct {
	Type      order.EventType `json:"type"`
	OrderID   string          `json:"order_id"`
	Message   string          `json:"message"`
	Timestamp time.Time       `json:"timestamp"`
}
