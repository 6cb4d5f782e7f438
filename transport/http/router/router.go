package router

import (
	"jumatrek/internal/handlers/inquiry"
	"jumatrek/internal/handlers/trek"
	"jumatrek/internal/handlers/trip"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Trip    trip.Handler
	Inquiry inquiry.Handler
	Trek    trek.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Trip.Router(routerGroup)
		r.DomainHandlers.Inquiry.Router(routerGroup)
		r.DomainHandlers.Trek.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
