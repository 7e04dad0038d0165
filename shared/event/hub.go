package event

import (
	"context"
	"sync"

	"innkeep/infras/otel"
	"innkeep/shared/constant"
)

type Entity string

const (
	EntityLocation Entity = "location"
	EntityRoom     Entity = "room"
	EntityBooking  Entity = "booking"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Change describes one committed entity mutation. LocationID carries the scope
// hint consumers use to decide whether their displayed selection is affected;
// it may be empty when the mutation is not location-scoped.
type Change struct {
	Entity     Entity `json:"entity"`
	Action     Action `json:"action"`
	ID         string `json:"id"`
	LocationID string `json:"location_id,omitempty"`
}

type Listener func(ctx context.Context, change Change)

// Hub fans committed mutations out to subscribers. Every successful write in a
// mutation workflow publishes exactly one Change after persistence succeeds;
// nothing is published for failed writes.
type Hub interface {
	Subscribe(listener Listener)
	Publish(ctx context.Context, change Change)
}

type hubImpl struct {
	mu        sync.RWMutex
	listeners []Listener
	otel      otel.Otel
}

func NewHub(otl otel.Otel) Hub {
	return &hubImpl{
		otel: otl,
	}
}

func (h *hubImpl) Subscribe(listener Listener) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.listeners = append(h.listeners, listener)
}

// Publish delivers the change to all subscribers synchronously, in
// subscription order. Listeners that want asynchrony spawn their own
// goroutines; keeping delivery synchronous here lets a mutation workflow
// return only after dependent views were told to refresh.
func (h *hubImpl) Publish(ctx context.Context, change Change) {
	ctx, scope := h.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"event.entity": string(change.Entity),
		"event.action": string(change.Action),
		"event.id":     change.ID,
	})

	h.mu.RLock()
	listeners := make([]Listener, len(h.listeners))
	copy(listeners, h.listeners)
	h.mu.RUnlock()

	for _, listener := range listeners {
		listener(ctx, change)
	}
}
