package dashboard

import (
	"context"
	"fmt"
	"strings"
	"testing"

	directorydomain "github.com/example/securecam-store/domain/directory"
	orderdomain "github.com/example/securecam-store/domain/order"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestService creates a dashboard service over seeded in-memory
// order and directory databases.
func setupTestService(t *testing.T) *Service {
	t.Helper()

	open := func() *gorm.DB {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			t.Fatalf("failed to open test database: %v", err)
		}
		return db
	}

	orderRepo := orderdomain.NewRepository(open())
	if err := orderRepo.Migrate(); err != nil {
		t.Fatalf("failed to migrate orders: %v", err)
	}
	for _, o := range orderdomain.SeedOrders() {
		if err := orderRepo.Create(o); err != nil {
			t.Fatalf("failed to seed orders: %v", err)
		}
	}

	dirRepo := directorydomain.NewRepository(open())
	if err := dirRepo.Migrate(); err != nil {
		t.Fatalf("failed to migrate directory: %v", err)
	}
	for _, u := range directorydomain.SeedUsers() {
		if err := dirRepo.CreateUser(u); err != nil {
			t.Fatalf("failed to seed users: %v", err)
		}
	}

	return NewService(orderRepo, dirRepo)
}

func TestService_GetSummary(t *testing.T) {
	service := setupTestService(t)

	summary, err := service.GetSummary(context.Background())
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}

	// Seed order totals: 1150 + 690 + 720 + 350 + 440.
	if summary.TotalSales != 3350 {
		t.Errorf("TotalSales = %v, want 3350", summary.TotalSales)
	}
	if summary.TotalOrders != 5 {
		t.Errorf("TotalOrders = %d, want 5", summary.TotalOrders)
	}
	if summary.TotalCustomers != 3 {
		t.Errorf("TotalCustomers = %d, want 3", summary.TotalCustomers)
	}
	if len(summary.SalesData) != 6 || summary.SalesData[0].Label != "Jan" || summary.SalesData[0].Value != 4000 {
		t.Errorf("unexpected sales series: %+v", summary.SalesData)
	}
	if len(summary.CustomerData) != 6 {
		t.Errorf("expected 6 customer data points, got %d", len(summary.CustomerData))
	}
}

func TestService_RecentActivity(t *testing.T) {
	service := setupTestService(t)
	ctx := context.Background()

	if got := service.RecentActivity(ctx); len(got) != 0 {
		t.Fatalf("expected empty feed, got %d entries", len(got))
	}

	service.RecordEvent(orderdomain.NewOrderCreatedEvent("106", "1", 150))
	service.RecordEvent(orderdomain.NewStatusChangedEvent("106", orderdomain.StatusPending, orderdomain.StatusProcessing))

	feed := service.RecentActivity(ctx)
	if len(feed) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(feed))
	}
	// Newest first.
	if feed[0].Type != orderdomain.EventTypeStatusChanged {
		t.Errorf("feed[0].Type = %s, want status change first", feed[0].Type)
	}
	if !strings.Contains(feed[0].Message, "Pending") || !strings.Contains(feed[0].Message, "Processing") {
		t.Errorf("status message missing states: %q", feed[0].Message)
	}
}

func TestService_RecentActivity_Capped(t *testing.T) {
	service := setupTestService(t)

	for i := 0; i < maxActivities+10; i++ {
		service.RecordEvent(orderdomain.NewOrderCreatedEvent(fmt.Sprintf("%d", 200+i), "1", 100))
	}

	feed := service.RecentActivity(context.Background())
	if len(feed) != maxActivities {
		t.Fatalf("expected feed capped at %d, got %d", maxActivities, len(feed))
	}
	// The newest event is first, the oldest surviving entry last.
	if feed[0].OrderID != fmt.Sprintf("%d", 200+maxActivities+9) {
		t.Errorf("feed[0].OrderID = %s, want newest", feed[0].OrderID)
	}
}
