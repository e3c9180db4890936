package router

import (
	"lagoon/internal/handlers/auditlog"
	"lagoon/internal/handlers/auth"
	"lagoon/internal/handlers/booking"
	"lagoon/internal/handlers/facility"
	"lagoon/internal/handlers/favorite"
	"lagoon/internal/handlers/gallery"
	"lagoon/internal/handlers/health"
	"lagoon/internal/handlers/review"
	"lagoon/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth     auth.Handler
	User     user.Handler
	Facility facility.Handler
	Booking  booking.Handler
	Review   review.Handler
	Favorite favorite.Handler
	Gallery  gallery.Handler
	AuditLog auditlog.Handler
	Health   health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Facility.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.Favorite.Router(routerGroup)
		r.DomainHandlers.Gallery.Router(routerGroup)
		r.DomainHandlers.AuditLog.Router(routerGroup)
		r.DomainHandlers.Health.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
