package api

import (
	"time"

	"flightdesk/scheduler/internal/db/repositories"
	"flightdesk/scheduler/internal/events"
	"flightdesk/scheduler/internal/metrics"
	"flightdesk/scheduler/internal/services"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

type Repositories struct {
	Aircraft *repositories.AircraftRepository
	Airports *repositories.AirportRepository
	Flights  *repositories.FlightRepository
	Reports  *repositories.DepartureReportRepository
}

type Services struct {
	Aircraft   *services.AircraftService
	Airports   *services.AirportService
	Flights    *services.FlightWriter
	Search     *services.FlightSearchService
	Departures *services.DepartureService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Location *time.Location
	Clock    func() time.Time
}

// InitDependencies wires repositories and services over the entity store (orm)
// and the report connection. publisher and m may be nil.
func InitDependencies(
	orm *gorm.DB,
	reports *sqlx.DB,
	loc *time.Location,
	publisher events.Publisher,
	m *metrics.MetricsRegistry,
	clock func() time.Time,
) *Dependencies {
	if clock == nil {
		clock = time.Now
	}
	if loc == nil {
		loc = time.Local
	}

	repos := &Repositories{
		Aircraft: repositories.NewAircraftRepository(orm),
		Airports: repositories.NewAirportRepository(orm),
		Flights:  repositories.NewFlightRepository(orm),
		Reports:  repositories.NewDepartureReportRepository(reports),
	}

	resolver := services.NewCodeResolver(repos.Airports, repos.Aircraft)
	temporal := services.NewTemporalValidator(clock)

	svcs := &Services{
		Aircraft:   services.NewAircraftService(repos.Aircraft, clock),
		Airports:   services.NewAirportService(repos.Airports, clock),
		Flights:    services.NewFlightWriter(orm, repos.Flights, resolver, temporal, publisher, m),
		Search:     services.NewFlightSearchService(repos.Flights, loc, m),
		Departures: services.NewDepartureService(repos.Reports, m),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Location: loc,
		Clock:    clock,
	}
}
