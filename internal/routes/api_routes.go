package routes

import (
	"flightdesk/scheduler/internal/api"
	"flightdesk/scheduler/internal/auth"
	"flightdesk/scheduler/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers the /api routes. Every route needs a valid
// token; reads need the user role and writes the admin role.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies, tokens *auth.TokenManager) {
	svc := deps.Services

	r.Route("/api", func(a chi.Router) {
		a.Use(middleware.AuthMiddleware(tokens)) // global: all routes must be authenticated
		a.Use(middleware.ReadWrite)

		a.Route("/aircraft", func(ac chi.Router) {
			ac.Get("/", api.ListAircraftHandler(svc.Aircraft))
			ac.Post("/", api.CreateAircraftHandler(svc.Aircraft))
			ac.Get("/{uid}", api.GetAircraftHandler(svc.Aircraft))
			ac.Put("/{uid}", api.UpdateAircraftHandler(svc.Aircraft))
			ac.Delete("/{uid}", api.DeleteAircraftHandler(svc.Aircraft))
		})

		a.Route("/airport", func(ap chi.Router) {
			ap.Get("/", api.ListAirportsHandler(svc.Airports))
			ap.Post("/", api.CreateAirportHandler(svc.Airports))
			ap.Get("/{uid}", api.GetAirportHandler(svc.Airports))
			ap.Put("/{uid}", api.UpdateAirportHandler(svc.Airports))
			ap.Delete("/{uid}", api.DeleteAirportHandler(svc.Airports))
		})

		a.Route("/flight", func(f chi.Router) {
			f.Get("/", api.ListFlightsHandler(deps.Repo.Flights))
			f.Post("/", api.CreateFlightHandler(svc.Flights))
			f.Get("/search", api.SearchFlightsHandler(svc.Search))
			f.Get("/{uid}", api.GetFlightHandler(deps.Repo.Flights))
			f.Put("/{uid}", api.UpdateFlightHandler(svc.Flights))
			f.Delete("/{uid}", api.DeleteFlightHandler(svc.Flights))
		})

		a.Route("/departures", func(d chi.Router) {
			d.Get("/search", api.DepartureSearchHandler(svc.Departures, deps.Location))
			d.Get("/flights/{uid}", api.DepartureFlightsHandler(svc.Departures, deps.Location))
		})
	})
}
