package event_test

import (
	"context"
	"testing"

	"innkeep/infras/otel/mocks"
	"innkeep/shared/event"

	"github.com/stretchr/testify/assert"
)

func TestHub_PublishDeliversInSubscriptionOrder(t *testing.T) {
	hub := event.NewHub(mocks.NewOtel())

	var order []string

	hub.Subscribe(func(_ context.Context, change event.Change) {
		order = append(order, "first:"+change.ID)
	})
	hub.Subscribe(func(_ context.Context, change event.Change) {
		order = append(order, "second:"+change.ID)
	})

	hub.Publish(context.Background(), event.Change{
		Entity: event.EntityBooking,
		Action: event.ActionCreated,
		ID:     "b-1",
	})

	assert.Equal(t, []string{"first:b-1", "second:b-1"}, order)
}

func TestHub_PublishWithoutSubscribers(t *testing.T) {
	hub := event.NewHub(mocks.NewOtel())

	assert.NotPanics(t, func() {
		hub.Publish(context.Background(), event.Change{Entity: event.EntityRoom, Action: event.ActionDeleted, ID: "r-9"})
	})
}

func TestHub_ChangeCarriesLocationScope(t *testing.T) {
	hub := event.NewHub(mocks.NewOtel())

	var got event.Change

	hub.Subscribe(func(_ context.Context, change event.Change) {
		got = change
	})

	hub.Publish(context.Background(), event.Change{
		Entity:     event.EntityRoom,
		Action:     event.ActionUpdated,
		ID:         "r-2",
		LocationID: "loc-1",
	})

	assert.Equal(t, "loc-1", got.LocationID)
	assert.Equal(t, event.ActionUpdated, got.Action)
}
