package router

import (
	"innkeep/internal/handlers/auth"
	"innkeep/internal/handlers/booking"
	"innkeep/internal/handlers/console"
	"innkeep/internal/handlers/health"
	"innkeep/internal/handlers/location"
	"innkeep/internal/handlers/room"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth     auth.Handler
	Location location.Handler
	Room     room.Handler
	Booking  booking.Handler
	Console  console.Handler
	Health   health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Location.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Console.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
