package eventbus

import (
	"context"
	"testing"
	"time"

	"github.com/example/securecam-store/domain/order"
)

func TestEventBus_PublishReachesSubscriber(t *testing.T) {
	bus := New()
	received := make(chan order.Event, 1)

	bus.Subscribe(order.EventTypeOrderCreated, func(event order.Event) {
		received <- event
	})

	bus.Publish(context.Background(), order.NewOrderCreatedEvent("106", "1", 150))

	select {
	case event := <-received:
		if event.OrderID != "106" {
			t.Errorf("OrderID = %s, want 106", event.OrderID)
		}
	case <-time.After(time.Second):
		t.Fatal("handler was not invoked")
	}
}

func TestEventBus_PublishSkipsOtherTypes(t *testing.T) {
	bus := New()
	received := make(chan order.Event, 1)

	bus.Subscribe(order.EventTypeFeedbackRecorded, func(event order.Event) {
		received <- event
	})

	bus.Publish(context.Background(), order.NewOrderCreatedEvent("106", "1", 150))

	select {
	case event := <-received:
		t.Errorf("handler invoked for wrong type: %s", event.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestEventBus_SubscribeAll(t *testing.T) {
	bus := New()
	received := make(chan order.Event, 4)

	bus.SubscribeAll(func(event order.Event) {
		received <- event
	})

	for _, et := range []order.EventType{
		order.EventTypeOrderCreated,
		order.EventTypeStatusChanged,
		order.EventTypeTechnicianAssigned,
		order.EventTypeFeedbackRecorded,
	} {
		if got := bus.HandlerCount(et); got != 1 {
			t.Errorf("HandlerCount(%s) = %d, want 1", et, got)
		}
	}

	ctx := context.Background()
	bus.Publish(ctx, order.NewOrderCreatedEvent("106", "1", 150))
	bus.Publish(ctx, order.NewFeedbackRecordedEvent("106", "Great"))

	for i := 0; i < 2; i++ {
		select {
		case <-received:
		case <-time.After(time.Second):
			t.Fatalf("only %d of 2 events delivered", i)
		}
	}
}

func TestEventBus_HandlerPanicDoesNotCrash(t *testing.T) {
	bus := New()
	received := make(chan struct{}, 1)

	bus.Subscribe(order.EventTypeOrderCreated, func(order.Event) {
		panic("boom")
	})
	bus.Subscribe(order.EventTypeOrderCreated, func(order.Event) {
		received <- struct{}{}
	})

	bus.Publish(context.Background(), order.NewOrderCreatedEvent("106", "1", 150))

	select {
	case <-received:
	case <-time.After(time.Second):
		t.Fatal("surviving handler was not invoked")
	}
}
