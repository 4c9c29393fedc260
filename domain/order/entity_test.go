package order

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"pending to processing", StatusPending, StatusProcessing, true},
		{"processing to shipped", StatusProcessing, StatusShipped, true},
		{"shipped to installation", StatusShipped, StatusInstallationScheduled, true},
		{"shipped to delivered", StatusShipped, StatusDelivered, true},
		{"installation to delivered", StatusInstallationScheduled, StatusDelivered, true},
		{"delivered back to installation", StatusDelivered, StatusInstallationScheduled, true},
		{"delivered to completed", StatusDelivered, StatusCompleted, true},
		{"same status no-op", StatusShipped, StatusShipped, true},

		{"backward processing to pending", StatusProcessing, StatusPending, false},
		{"backward shipped to processing", StatusShipped, StatusProcessing, false},
		{"skip pending to shipped", StatusPending, StatusShipped, false},
		{"skip pending to completed", StatusPending, StatusCompleted, false},

		{"cancel pending", StatusPending, StatusCancelled, true},
		{"cancel shipped", StatusShipped, StatusCancelled, true},
		{"cancel delivered", StatusDelivered, StatusCancelled, true},
		{"cancel completed", StatusCompleted, StatusCancelled, false},

		{"completed is frozen", StatusCompleted, StatusProcessing, false},
		{"cancelled is frozen", StatusCancelled, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	for _, s := range AllStatuses() {
		terminal := s == StatusCompleted || s == StatusCancelled
		if got := s.IsTerminal(); got != terminal {
			t.Errorf("%s.IsTerminal() = %v, want %v", s, got, terminal)
		}
	}
}

func TestTrackingStep(t *testing.T) {
	tests := []struct {
		status OrderStatus
		want   int
	}{
		{StatusPending, 1},
		{StatusProcessing, 2},
		{StatusShipped, 3},
		{StatusInstallationScheduled, 4},
		{StatusDelivered, 4},
		{StatusCompleted, 5},
		{StatusCancelled, 0},
		{OrderStatus("bogus"), 0},
	}

	for _, tt := range tests {
		if got := TrackingStep(tt.status); got != tt.want {
			t.Errorf("TrackingStep(%s) = %d, want %d", tt.status, got, tt.want)
		}
	}

	if len(TimelineLabels()) != TotalTrackingSteps {
		t.Errorf("expected %d timeline labels, got %d", TotalTrackingSteps, len(TimelineLabels()))
	}
}

func TestSubtotal(t *testing.T) {
	items := []CartItem{
		{ProductID: "1", Name: "Dome Camera", Price: 99.99, Quantity: 2},
		{ProductID: "2", Name: "Bullet Camera", Price: 149.50, Quantity: 1},
	}

	want := 99.99*2 + 149.50
	if got := Subtotal(items); got != want {
		t.Errorf("Subtotal() = %v, want %v", got, want)
	}

	if got := Subtotal(nil); got != 0 {
		t.Errorf("Subtotal(nil) = %v, want 0", got)
	}
}

func TestNextID(t *testing.T) {
	if got := NextID(nil); got != "101" {
		t.Errorf("NextID(nil) = %q, want %q", got, "101")
	}
	if got := NextID([]string{"101", "102", "105"}); got != "106" {
		t.Errorf("NextID() = %q, want %q", got, "106")
	}
}
