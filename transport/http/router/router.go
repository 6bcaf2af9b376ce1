package router

import (
	"github.com/go-chi/chi/v5"

	"safar/internal/handlers/admin"
	"safar/internal/handlers/auth"
	"safar/internal/handlers/booking"
	"safar/internal/handlers/contact"
	"safar/internal/handlers/packages"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Contact contact.Handler
	Package packages.Handler
	Booking booking.Handler
	Admin   admin.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Contact.Router(routerGroup)
		r.DomainHandlers.Package.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
