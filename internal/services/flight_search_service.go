package services

import (
	"context"
	"net/url"
	"strings"
	"time"

	"flightdesk/scheduler/internal/constants"
	"flightdesk/scheduler/internal/db/repositories"
	"flightdesk/scheduler/internal/errs"
	"flightdesk/scheduler/internal/metrics"
	models "flightdesk/scheduler/internal/models/gorm"
)

// TimeOfDay is minutes since midnight
type TimeOfDay int

func ParseTimeOfDay(raw string) (TimeOfDay, error) {
	t, err := time.Parse(constants.TimeOfDayLayout, strings.TrimSpace(raw))
	if err != nil {
		return 0, errs.Validation(constants.MsgInvalidTimeRange)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// TimeOfDayRange is an inclusive range of wall-clock times. A range whose
// start is later than its end wraps past midnight.
type TimeOfDayRange struct {
	Start TimeOfDay
	End   TimeOfDay
}

// ParseTimeOfDayRange parses "HH:MM;HH:MM"
func ParseTimeOfDayRange(raw string) (TimeOfDayRange, error) {
	parts := strings.Split(raw, constants.IntervalSeparator)
	if len(parts) != 2 {
		return TimeOfDayRange{}, errs.Validation(constants.MsgInvalidTimeRange)
	}
	start, err := ParseTimeOfDay(parts[0])
	if err != nil {
		return TimeOfDayRange{}, err
	}
	end, err := ParseTimeOfDay(parts[1])
	if err != nil {
		return TimeOfDayRange{}, err
	}
	return TimeOfDayRange{Start: start, End: end}, nil
}

// Contains reports whether t's wall-clock time in loc falls inside the range.
// Seconds are ignored, so 10:00:59 matches an end of 10:00.
func (r TimeOfDayRange) Contains(t time.Time, loc *time.Location) bool {
	local := t.In(loc)
	tod := TimeOfDay(local.Hour()*60 + local.Minute())
	if r.Start <= r.End {
		return tod >= r.Start && tod <= r.End
	}
	return tod >= r.Start || tod <= r.End
}

// SearchCriteria holds exactly one populated criterion
type SearchCriteria struct {
	Kind      constants.SearchKind
	ICAO      string
	TimeRange TimeOfDayRange
}

// ParseSearchQuery reads dept, arr or dept_rng from the query string.
// None, or more than one, is a validation error.
func ParseSearchQuery(q url.Values) (SearchCriteria, error) {
	var present []constants.SearchKind
	for _, kind := range []constants.SearchKind{constants.SearchKindDeparture, constants.SearchKindArrival, constants.SearchKindDeptRange} {
		if strings.TrimSpace(q.Get(string(kind))) != "" {
			present = append(present, kind)
		}
	}

	switch len(present) {
	case 0:
		return SearchCriteria{}, errs.Validation(constants.MsgNoSearchParams)
	case 1:
	default:
		return SearchCriteria{}, errs.Validation(constants.MsgTooManySearchParams)
	}

	kind := present[0]
	value := q.Get(string(kind))
	if kind == constants.SearchKindDeptRange {
		rng, err := ParseTimeOfDayRange(value)
		if err != nil {
			return SearchCriteria{}, err
		}
		return SearchCriteria{Kind: kind, TimeRange: rng}, nil
	}
	return SearchCriteria{Kind: kind, ICAO: NormalizeCode(value)}, nil
}

// FlightSearchService answers the flight search endpoint
type FlightSearchService struct {
	flights  *repositories.FlightRepository
	location *time.Location
	metrics  *metrics.MetricsRegistry
}

// NewFlightSearchService creates a search service evaluating time-of-day in loc
func NewFlightSearchService(flights *repositories.FlightRepository, loc *time.Location, m *metrics.MetricsRegistry) *FlightSearchService {
	if loc == nil {
		loc = time.Local
	}
	return &FlightSearchService{
		flights:  flights,
		location: loc,
		metrics:  m,
	}
}

func (s *FlightSearchService) Search(ctx context.Context, criteria SearchCriteria) ([]models.Flight, error) {
	var (
		result []models.Flight
		err    error
	)

	switch criteria.Kind {
	case constants.SearchKindDeparture:
		result, err = s.flights.ListByDepartureICAO(ctx, NormalizeCode(criteria.ICAO))
	case constants.SearchKindArrival:
		result, err = s.flights.ListByArrivalICAO(ctx, NormalizeCode(criteria.ICAO))
	case constants.SearchKindDeptRange:
		result, err = s.departingBetween(ctx, criteria.TimeRange)
	default:
		return nil, errs.Validation(constants.MsgNoSearchParams)
	}
	if err != nil {
		return nil, err
	}

	s.metrics.SearchServed(string(criteria.Kind))
	return result, nil
}

// departingBetween filters in process: time-of-day extraction differs across
// the supported databases and must honour the schedule timezone.
func (s *FlightSearchService) departingBetween(ctx context.Context, rng TimeOfDayRange) ([]models.Flight, error) {
	all, err := s.flights.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := []models.Flight{}
	for _, f := range all {
		if rng.Contains(f.DepartureAt, s.location) {
			matched = append(matched, f)
		}
	}
	return matched, nil
}
