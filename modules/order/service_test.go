package order

import (
	"context"
	"errors"
	"testing"

	catalogdomain "github.com/example/securecam-store/domain/catalog"
	directorydomain "github.com/example/securecam-store/domain/directory"
	domain "github.com/example/securecam-store/domain/order"
	"github.com/example/securecam-store/modules/catalog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestService builds an order service over seeded in-memory catalog,
// directory and order databases.
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

	catRepo := catalogdomain.NewRepository(open())
	if err := catRepo.Migrate(); err != nil {
		t.Fatalf("failed to migrate catalog: %v", err)
	}
	for _, p := range catalogdomain.SeedProducts() {
		if err := catRepo.Create(p); err != nil {
			t.Fatalf("failed to seed catalog: %v", err)
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
	for _, tech := range directorydomain.SeedTechnicians() {
		if err := dirRepo.CreateTechnician(tech); err != nil {
			t.Fatalf("failed to seed technicians: %v", err)
		}
	}

	orderRepo := domain.NewRepository(open())
	if err := orderRepo.Migrate(); err != nil {
		t.Fatalf("failed to migrate orders: %v", err)
	}
	for _, o := range domain.SeedOrders() {
		if err := orderRepo.Create(o); err != nil {
			t.Fatalf("failed to seed orders: %v", err)
		}
	}

	return NewService(orderRepo, dirRepo, catalog.NewService(catRepo, nil), nil)
}

func TestService_Create_SnapshotsCatalogAndComputesTotal(t *testing.T) {
	service := setupTestService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, &CreateOrderRequest{
		CustomerID: "1",
		Items: []OrderLine{
			{ProductID: "1", Quantity: 2},
			{ProductID: "2", Quantity: 1},
		},
		ShippingAddress: "123 Maple St, Springfield",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if created.ID != "106" {
		t.Errorf("expected id 106 after seed orders, got %s", created.ID)
	}
	if created.Status != domain.StatusPending {
		t.Errorf("expected status Pending, got %s", created.Status)
	}
	if created.CustomerName == "" {
		t.Error("expected customer name denormalized onto the order")
	}

	var want float64
	for _, item := range created.Items {
		if item.Name == "" || item.Price <= 0 {
			t.Errorf("item %s missing catalog snapshot: %+v", item.ProductID, item)
		}
		want += item.Price * float64(item.Quantity)
	}
	if created.Total != want {
		t.Errorf("expected total %v, got %v", want, created.Total)
	}
}

func TestService_Create_Rejections(t *testing.T) {
	service := setupTestService(t)
	ctx := context.Background()

	_, err := service.Create(ctx, &CreateOrderRequest{CustomerID: "1"})
	if !errors.Is(err, ErrNoItems) {
		t.Errorf("no items: error = %v, want ErrNoItems", err)
	}

	_, err = service.Create(ctx, &CreateOrderRequest{
		CustomerID: "1",
		Items:      []OrderLine{{ProductID: "1", Quantity: 0}},
	})
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("zero quantity: error = %v, want ErrInvalidQuantity", err)
	}

	_, err = service.Create(ctx, &CreateOrderRequest{
		CustomerID: "999",
		Items:      []OrderLine{{ProductID: "1", Quantity: 1}},
	})
	if !errors.Is(err, directorydomain.ErrUserNotFound) {
		t.Errorf("unknown customer: error = %v, want ErrUserNotFound", err)
	}

	_, err = service.Create(ctx, &CreateOrderRequest{
		CustomerID: "1",
		Items:      []OrderLine{{ProductID: "999", Quantity: 1}},
	})
	if !errors.Is(err, catalogdomain.ErrNotFound) {
		t.Errorf("unknown product: error = %v, want catalog ErrNotFound", err)
	}
}

func TestService_UpdateStatus_EnforcesTransitions(t *testing.T) {
	service := setupTestService(t)
	ctx := context.Background()

	// Order 105 is Pending; Processing is a legal next step.
	updated, err := service.UpdateStatus(ctx, "105", domain.StatusProcessing)
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if updated.Status != domain.StatusProcessing {
		t.Errorf("expected Processing, got %s", updated.Status)
	}

	// Backward move is rejected and leaves the order untouched.
	_, err = service.UpdateStatus(ctx, "105", domain.StatusPending)
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("backward move: error = %v, want ErrInvalidTransition", err)
	}
	after, err := service.GetByID(ctx, "105")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if after.Status != domain.StatusProcessing {
		t.Errorf("rejected transition mutated status to %s", after.Status)
	}

	// Order 101 is Completed, a terminal state.
	_, err = service.UpdateStatus(ctx, "101", domain.StatusCancelled)
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("terminal move: error = %v, want ErrInvalidTransition", err)
	}

	// Cancelled is reachable from any non-terminal state.
	cancelled, err := service.UpdateStatus(ctx, "103", domain.StatusCancelled)
	if err != nil {
		t.Fatalf("cancel shipped order: error = %v", err)
	}
	if cancelled.Status != domain.StatusCancelled {
		t.Errorf("expected Cancelled, got %s", cancelled.Status)
	}
}

func TestService_AssignTechnician_SyncsName(t *testing.T) {
	service := setupTestService(t)
	ctx := context.Background()

	updated, err := service.AssignTechnician(ctx, "103", "T3")
	if err != nil {
		t.Fatalf("AssignTechnician() error = %v", err)
	}
	if updated.TechnicianID != "T3" {
		t.Errorf("expected technician T3, got %s", updated.TechnicianID)
	}
	if updated.TechnicianName != "Jessica Pearson" {
		t.Errorf("expected technician name synced, got %q", updated.TechnicianName)
	}

	cleared, err := service.AssignTechnician(ctx, "103", "")
	if err != nil {
		t.Fatalf("clear technician: error = %v", err)
	}
	if cleared.TechnicianID != "" || cleared.TechnicianName != "" {
		t.Errorf("expected technician cleared, got %s/%s", cleared.TechnicianID, cleared.TechnicianName)
	}

	if _, err := service.AssignTechnician(ctx, "103", "T99"); !errors.Is(err, directorydomain.ErrTechnicianNotFound) {
		t.Errorf("unknown technician: error = %v, want ErrTechnicianNotFound", err)
	}
}

func TestService_Track_CompletedOrder(t *testing.T) {
	service := setupTestService(t)

	info, err := service.Track(context.Background(), "101")
	if err != nil {
		t.Fatalf("Track() error = %v", err)
	}

	if info.Step != 5 {
		t.Errorf("expected step 5, got %d", info.Step)
	}
	if info.TotalSteps != 5 {
		t.Errorf("expected 5 total steps, got %d", info.TotalSteps)
	}
	if info.Feedback != "Great service, very professional." {
		t.Errorf("expected feedback rendered verbatim, got %q", info.Feedback)
	}
}

func TestService_Track_HidesFeedbackBeforeDelivery(t *testing.T) {
	service := setupTestService(t)
	ctx := context.Background()

	feedback := "too early"
	if _, err := service.Manage(ctx, "103", &ManageOrderRequest{CustomerFeedback: &feedback}); err != nil {
		t.Fatalf("Manage() error = %v", err)
	}

	info, err := service.Track(ctx, "103")
	if err != nil {
		t.Fatalf("Track() error = %v", err)
	}
	if info.Step != 3 {
		t.Errorf("expected step 3 for Shipped, got %d", info.Step)
	}
	if info.Feedback != "" {
		t.Errorf("feedback should be hidden before delivery, got %q", info.Feedback)
	}
}

func TestService_Track_NotFound(t *testing.T) {
	service := setupTestService(t)

	if _, err := service.Track(context.Background(), "999"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Track() error = %v, want ErrNotFound", err)
	}
}
