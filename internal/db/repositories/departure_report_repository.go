package repositories

import (
	"context"
	"fmt"
	"time"

	"flightdesk/scheduler/internal/constants"
	"flightdesk/scheduler/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// DepartureReportRepository runs the read-only departure report queries
type DepartureReportRepository struct {
	db *sqlx.DB
}

func NewDepartureReportRepository(db *sqlx.DB) *DepartureReportRepository {
	return &DepartureReportRepository{db}
}

// DistinctDepartureAirports returns each departure airport id once among
// flights fully contained in [start, end].
func (r *DepartureReportRepository) DistinctDepartureAirports(ctx context.Context, start, end time.Time) ([]string, error) {
	ids := []string{}
	query := r.db.Rebind(constants.DistinctDeparturesInWindow)
	if err := r.db.SelectContext(ctx, &ids, query, start.UTC(), end.UTC()); err != nil {
		return nil, fmt.Errorf("select distinct departures: %w", err)
	}
	return ids, nil
}

// DepartureHistory returns every flight departing from the given airports,
// regardless of time. Airports with no row in the airports table are absent.
func (r *DepartureReportRepository) DepartureHistory(ctx context.Context, airportIDs []string) ([]entities.DepartureHistoryRow, error) {
	rows := []entities.DepartureHistoryRow{}
	if len(airportIDs) == 0 {
		return rows, nil
	}

	query, args, err := sqlx.In(constants.DepartureHistoryForAirports, airportIDs)
	if err != nil {
		return nil, fmt.Errorf("expand departure history query: %w", err)
	}
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select departure history: %w", err)
	}
	return rows, nil
}

// FlightsFrom returns flights leaving airportID that are fully contained in [start, end]
func (r *DepartureReportRepository) FlightsFrom(ctx context.Context, airportID string, start, end time.Time) ([]entities.DepartureFlightRow, error) {
	rows := []entities.DepartureFlightRow{}
	query := r.db.Rebind(constants.FlightsFromAirportInWindow)
	if err := r.db.SelectContext(ctx, &rows, query, airportID, start.UTC(), end.UTC()); err != nil {
		return nil, fmt.Errorf("select departure flights: %w", err)
	}
	return rows, nil
}

// PingContext checks the report connection; used by the health check
func (r *DepartureReportRepository) PingContext(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
