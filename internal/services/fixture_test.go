package services

import (
	"context"
	"sync"
	"testing"
	"time"
	_ "time/tzdata"

	"flightdesk/scheduler/internal/db/dbtest"
	"flightdesk/scheduler/internal/db/repositories"
	"flightdesk/scheduler/internal/events"
	"flightdesk/scheduler/internal/models/dtos"
	models "flightdesk/scheduler/internal/models/gorm"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// testNow is the fixed clock every service in a fixture reads
var testNow = time.Date(2030, 6, 1, 8, 0, 0, 0, time.UTC)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.FlightEvent
}

func (p *recordingPublisher) Publish(_ context.Context, evt events.FlightEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return nil
}

func (p *recordingPublisher) Close() {}

type fixture struct {
	ctx       context.Context
	flights   *repositories.FlightRepository
	resolver  *CodeResolver
	writer    *FlightWriter
	search    *FlightSearchService
	departure *DepartureService
	aircraft  *AircraftService
	airports  *AirportService
	published *recordingPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	orm, reports := dbtest.Open(t)
	clock := func() time.Time { return testNow }

	airportRepo := repositories.NewAirportRepository(orm)
	aircraftRepo := repositories.NewAircraftRepository(orm)
	flightRepo := repositories.NewFlightRepository(orm)
	resolver := NewCodeResolver(airportRepo, aircraftRepo)
	pub := &recordingPublisher{}

	return &fixture{
		ctx:       context.Background(),
		flights:   flightRepo,
		resolver:  resolver,
		writer:    NewFlightWriter(orm, flightRepo, resolver, NewTemporalValidator(clock), pub, nil),
		search:    NewFlightSearchService(flightRepo, time.UTC, nil),
		departure: NewDepartureService(repositories.NewDepartureReportRepository(reports), nil),
		aircraft:  NewAircraftService(aircraftRepo, clock),
		airports:  NewAirportService(airportRepo, clock),
		published: pub,
	}
}

func (f *fixture) addAirport(t *testing.T, name, icao string) *models.Airport {
	t.Helper()
	lat := decimal.RequireFromString("51.4700")
	lng := decimal.RequireFromString("-0.4543")
	ap, err := f.airports.Create(f.ctx, dtos.CreateAirportReq{
		Name: name,
		ICAO: icao,
		Location: &dtos.LocationReq{
			Area:    "Hillingdon",
			City:    "London",
			Country: "UK",
			Lat:     &lat,
			Lng:     &lng,
		},
	})
	require.NoError(t, err)
	return ap
}

func (f *fixture) addAircraft(t *testing.T, serial string) *models.Aircraft {
	t.Helper()
	a, err := f.aircraft.Create(f.ctx, dtos.CreateAircraftReq{SerialNumber: serial, Manufacturer: "Airbus"})
	require.NoError(t, err)
	return a
}

// addFlight creates a flight departing at dep and lasting the given duration
func (f *fixture) addFlight(t *testing.T, from, to string, aircraft *string, dep time.Time, d time.Duration) *models.Flight {
	t.Helper()
	arr := dep.Add(d)
	flight, err := f.writer.Create(f.ctx, dtos.CreateFlightReq{
		Aircraft:    aircraft,
		Departure:   from,
		Arrival:     to,
		DepartureDT: &dep,
		ArrivalDT:   &arr,
	})
	require.NoError(t, err)
	return flight
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }
