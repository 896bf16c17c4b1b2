package events

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestDispatcherDeliversInSubscriptionOrder(t *testing.T) {
	d := NewInMemoryDispatcher(zap.NewNop())

	var order []string
	d.Subscribe(EventStaffCreated, func(context.Context, Event) error {
		order = append(order, "first")
		return nil
	})
	d.Subscribe(EventStaffCreated, func(context.Context, Event) error {
		order = append(order, "second")
		return nil
	})
	// A different event type must not fire.
	d.Subscribe(EventStaffDeleted, func(context.Context, Event) error {
		order = append(order, "deleted")
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventStaffCreated}); err != nil {
		t.Fatalf("Publish() error: %v", err)
	}

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("delivery order = %v", order)
	}
}

func TestDispatcherFailingHandlerDoesNotStopOthers(t *testing.T) {
	d := NewInMemoryDispatcher(zap.NewNop())

	var reached bool
	d.Subscribe(EventRosterImported, func(context.Context, Event) error {
		return errors.New("handler down")
	})
	d.Subscribe(EventRosterImported, func(context.Context, Event) error {
		reached = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventRosterImported}); err != nil {
		t.Fatalf("Publish() must not surface handler errors, got %v", err)
	}
	if !reached {
		t.Fatal("handler after the failing one was skipped")
	}
}

func TestDispatcherPublishWithoutSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher(nil)
	if err := d.Publish(context.Background(), Event{Type: EventStaffUpdated}); err != nil {
		t.Fatalf("Publish() error: %v", err)
	}
}
