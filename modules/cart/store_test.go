package cart

import (
	"testing"

	"github.com/example/securecam-store/domain/order"
)

func TestStore_GetReturnsDetachedCopy(t *testing.T) {
	store := NewStore()
	created := store.Create("s1")

	// Mutating a returned cart must not leak into the store.
	created.Items = append(created.Items, order.CartItem{ProductID: "1", Quantity: 99})

	stored, ok := store.Get("s1")
	if !ok {
		t.Fatal("expected session s1 to exist")
	}
	if len(stored.Items) != 0 {
		t.Errorf("store mutated through returned copy: %d items", len(stored.Items))
	}
}

func TestStore_UpdateMutatesUnderLock(t *testing.T) {
	store := NewStore()
	store.Create("s1")

	ok := store.Update("s1", func(c *Cart) {
		c.Items = append(c.Items, order.CartItem{ProductID: "1", Price: 150, Quantity: 2})
	})
	if !ok {
		t.Fatal("Update() reported missing session")
	}

	got, _ := store.Get("s1")
	if len(got.Items) != 1 || got.Items[0].Quantity != 2 {
		t.Errorf("unexpected cart after update: %+v", got.Items)
	}
	if got.Subtotal() != 300 {
		t.Errorf("Subtotal() = %v, want 300", got.Subtotal())
	}

	if store.Update("missing", func(*Cart) {}) {
		t.Error("Update() on unknown session should report false")
	}
}

func TestStore_Delete(t *testing.T) {
	store := NewStore()
	store.Create("s1")

	store.Delete("s1")
	if _, ok := store.Get("s1"); ok {
		t.Error("expected session removed")
	}
	if store.Count() != 0 {
		t.Errorf("Count() = %d, want 0", store.Count())
	}
}
