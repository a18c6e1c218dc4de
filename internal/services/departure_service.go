package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"flightdesk/scheduler/internal/constants"
	"flightdesk/scheduler/internal/db/repositories"
	"flightdesk/scheduler/internal/errs"
	"flightdesk/scheduler/internal/metrics"
	"flightdesk/scheduler/internal/models/entities"

	"github.com/google/uuid"
)

// Interval is a closed window of instants, stored in UTC
type Interval struct {
	Start time.Time
	End   time.Time
}

// ParseInterval parses "YYYY-MM-DD HH:MM;YYYY-MM-DD HH:MM" as wall-clock
// times in loc. A start after the end is rejected.
func ParseInterval(raw string, loc *time.Location) (Interval, error) {
	if loc == nil {
		loc = time.Local
	}
	parts := strings.Split(raw, constants.IntervalSeparator)
	if len(parts) != 2 {
		return Interval{}, errs.Validation(constants.MsgInvalidInterval)
	}

	start, err := time.ParseInLocation(constants.IntervalLayout, strings.TrimSpace(parts[0]), loc)
	if err != nil {
		return Interval{}, errs.Validation(constants.MsgInvalidInterval)
	}
	end, err := time.ParseInLocation(constants.IntervalLayout, strings.TrimSpace(parts[1]), loc)
	if err != nil {
		return Interval{}, errs.Validation(constants.MsgInvalidInterval)
	}
	if start.After(end) {
		return Interval{}, errs.Validation(constants.MsgInvalidInterval)
	}
	return Interval{Start: start.UTC(), End: end.UTC()}, nil
}

// DepartureService aggregates departures per airport and lists the flights
// leaving one airport in a window.
type DepartureService struct {
	reports *repositories.DepartureReportRepository
	metrics *metrics.MetricsRegistry
}

func NewDepartureService(reports *repositories.DepartureReportRepository, m *metrics.MetricsRegistry) *DepartureService {
	return &DepartureService{
		reports: reports,
		metrics: m,
	}
}

// DeparturesActiveIn returns one row per airport that has a flight fully
// inside the window. The window only selects airports: flight_count and
// inflight_avg cover the airport's whole departure history, which is what
// existing clients of this report expect.
func (s *DepartureService) DeparturesActiveIn(ctx context.Context, window Interval) ([]entities.DepartureSummary, error) {
	if window.Start.After(window.End) {
		return nil, errs.Validation(constants.MsgInvalidInterval)
	}

	began := time.Now()
	airportIDs, err := s.reports.DistinctDepartureAirports(ctx, window.Start, window.End)
	if err != nil {
		return nil, err
	}
	history, err := s.reports.DepartureHistory(ctx, airportIDs)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveQuery("departure_report", time.Since(began).Seconds())
	s.metrics.DepartureReport()

	return summarize(history), nil
}

// summarize folds history rows into one summary per airport, ordered by ICAO
func summarize(history []entities.DepartureHistoryRow) []entities.DepartureSummary {
	byAirport := make(map[string]*entities.DepartureSummary)
	totals := make(map[string]float64)

	for _, row := range history {
		sum, ok := byAirport[row.AirportID]
		if !ok {
			sum = &entities.DepartureSummary{AirportID: row.AirportID, ICAO: row.ICAO, Name: row.Name}
			byAirport[row.AirportID] = sum
		}
		sum.FlightCount++
		totals[row.AirportID] += row.ArrivalAt.Sub(row.DepartureAt).Minutes()
	}

	summaries := make([]entities.DepartureSummary, 0, len(byAirport))
	for id, sum := range byAirport {
		if sum.FlightCount > 0 {
			sum.InflightAvg = totals[id] / float64(sum.FlightCount)
		}
		summaries = append(summaries, *sum)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].ICAO < summaries[j].ICAO
	})
	return summaries
}

// FlightsFrom lists flights departing airportID fully inside the window
func (s *DepartureService) FlightsFrom(ctx context.Context, airportID string, window Interval) ([]entities.DepartureFlightRow, error) {
	if _, err := uuid.Parse(airportID); err != nil {
		return nil, errs.Validation(constants.MsgInvalidUUID)
	}
	if window.Start.After(window.End) {
		return nil, errs.Validation(constants.MsgInvalidInterval)
	}

	began := time.Now()
	rows, err := s.reports.FlightsFrom(ctx, airportID, window.Start, window.End)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveQuery("departure_flights", time.Since(began).Seconds())
	return rows, nil
}
