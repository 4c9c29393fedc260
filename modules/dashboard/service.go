package dashboard

import (
	"context"
	"fmt"
	"sync"

	directorydomain "github.com/example/securecam-store/domain/directory"
	orderdomain "github.com/example/securecam-store/domain/order"
)

// maxActivities caps the recent-activity feed.
const maxActivities = 20

// Chart series are static demo data matching the storefront's marketing
// charts; real sales are reflected only in the headline totals.
var (
	salesSeries = []ChartPoint{
		{Label: "Jan", Value: 4000},
		{Label: "Feb", Value: 3000},
		{Label: "Mar", Value: 5000},
		{Label: "Apr", Value: 4500},
		{Label: "May", Value: 6000},
		{Label: "Jun", Value: 5500},
	}
	customerSeries = []ChartPoint{
		{Label: "Jan", Value: 10},
		{Label: "Feb", Value: 15},
		{Label: "Mar", Value: 12},
		{Label: "Apr", Value: 20},
		{Label: "May", Value: 25},
		{Label: "Jun", Value: 22},
	}
)

// Service aggregates store metrics for the admin dashboard and keeps a
// bounded feed of recent order activity.
type Service struct {
	orderRepo *orderdomain.Repository
	dirRepo   *directorydomain.Repository

	mu         sync.RWMutex
	activities []Activity
}

// NewService creates a new dashboard service.
func NewService(orderRepo *orderdomain.Repository, dirRepo *directorydomain.Repository) *Service {
	return &Service{
		orderRepo: orderRepo,
		dirRepo:   dirRepo,
	}
}

// GetSummary returns the dashboard summary.
func (s *Service) GetSummary(_ context.Context) (*Summary, error) {
	totalSales, err := s.orderRepo.SumTotals()
	if err != nil {
		return nil, fmt.Errorf("failed to sum order totals: %w", err)
	}

	totalOrders, err := s.orderRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	customers, err := s.dirRepo.FindCustomers()
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return &Summary{
		TotalSales:     totalSales,
		TotalOrders:    totalOrders,
		TotalCustomers: int64(len(customers)),
		SalesData:      salesSeries,
		CustomerData:   customerSeries,
	}, nil
}

// RecordEvent turns an order event into an activity entry. Wired as an
// event bus handler; safe for concurrent use.
func (s *Service) RecordEvent(event orderdomain.Event) {
	activity := Activity{
		Type:      event.Type,
		OrderID:   event.OrderID,
		Message:   describe(event),
		Timestamp: event.Timestamp,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.activities = append([]Activity{activity}, s.activities...)
	if len(s.activities) > maxActivities {
		s.activities = s.activities[:maxActivities]
	}
}

// RecentActivity returns the newest-first activity feed.
func (s *Service) RecentActivity(_ context.Context) []Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Activity, len(s.activities))
	copy(out, s.activities)
	return out
}

func describe(event orderdomain.Event) string {
	switch data := event.Data.(type) {
	case orderdomain.OrderCreatedData:
		return fmt.Sprintf("Order %s placed by customer %s ($%.2f)", event.OrderID, data.CustomerID, data.Total)
	case orderdomain.StatusChangedData:
		return fmt.Sprintf("Order %s moved from %s to %s", event.OrderID, data.From, data.To)
	case orderdomain.TechnicianAssignedData:
		if data.TechnicianID == "" {
			return fmt.Sprintf("Technician unassigned from order %s", event.OrderID)
		}
		return fmt.Sprintf("Technician %s assigned to order %s", data.TechnicianName, event.OrderID)
	case orderdomain.FeedbackRecordedData:
		return fmt.Sprintf("Feedback recorded for order %s", event.OrderID)
	default:
		return fmt.Sprintf("Order %s updated", event.OrderID)
	}
}
