package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flightdesk/scheduler/internal/constants"
	"flightdesk/scheduler/internal/models/gorm"

	gormlib "gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FlightRepository handles flight table operations. Reads preload the
// aircraft and both airports (with locations).
type FlightRepository struct {
	db *gormlib.DB
}

func NewFlightRepository(db *gormlib.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

// WithTx binds the repository to a transaction
func (r *FlightRepository) WithTx(tx *gormlib.DB) *FlightRepository {
	return &FlightRepository{db: tx}
}

func (r *FlightRepository) withRelations(ctx context.Context) *gormlib.DB {
	return r.db.WithContext(ctx).
		Preload("Aircraft").
		Preload("Departure.Location").
		Preload("Arrival.Location")
}

func (r *FlightRepository) FindByID(ctx context.Context, id string) (*gorm.Flight, error) {
	var flight gorm.Flight

	err := r.withRelations(ctx).Where("flights.id = ?", id).First(&flight).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch flight: %w", err)
	}

	return &flight, nil
}

func (r *FlightRepository) List(ctx context.Context) ([]gorm.Flight, error) {
	flights := []gorm.Flight{}
	if err := r.withRelations(ctx).Order("flights.departure_dt").Find(&flights).Error; err != nil {
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}
	return flights, nil
}

// ListByDepartureICAO returns flights leaving the airport with the given stored code
func (r *FlightRepository) ListByDepartureICAO(ctx context.Context, icao string) ([]gorm.Flight, error) {
	flights := []gorm.Flight{}
	err := r.withRelations(ctx).
		Joins("JOIN airports dep ON dep.id = flights.departure_airport_id").
		Where("dep.icao = ?", icao).
		Order("flights.departure_dt").
		Find(&flights).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list flights by departure: %w", err)
	}
	return flights, nil
}

// ListByArrivalICAO returns flights arriving at the airport with the given stored code
func (r *FlightRepository) ListByArrivalICAO(ctx context.Context, icao string) ([]gorm.Flight, error) {
	flights := []gorm.Flight{}
	err := r.withRelations(ctx).
		Joins("JOIN airports arr ON arr.id = flights.arrival_airport_id").
		Where("arr.icao = ?", icao).
		Order("flights.departure_dt").
		Find(&flights).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list flights by arrival: %w", err)
	}
	return flights, nil
}

// FindOverlapping returns non-cancelled flights of the aircraft whose
// [departure, arrival) interval intersects [dep, arr). excludeID skips the
// flight being updated.
func (r *FlightRepository) FindOverlapping(ctx context.Context, aircraftID string, dep, arr time.Time, excludeID string) ([]gorm.Flight, error) {
	flights := []gorm.Flight{}
	q := r.db.WithContext(ctx).
		Where("aircraft_id = ?", aircraftID).
		Where("status <> ?", constants.FlightStatusCancelled).
		Where("departure_dt < ? AND arrival_dt > ?", arr, dep)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Find(&flights).Error; err != nil {
		return nil, fmt.Errorf("failed to check aircraft overlap: %w", err)
	}
	return flights, nil
}

func (r *FlightRepository) Create(ctx context.Context, flight *gorm.Flight) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(flight).Error; err != nil {
		return fmt.Errorf("insert flight: %w", err)
	}
	return nil
}

// Save writes the flight's own columns, including a nil aircraft reference
func (r *FlightRepository) Save(ctx context.Context, flight *gorm.Flight) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(flight).Error; err != nil {
		return fmt.Errorf("update flight: %w", err)
	}
	return nil
}

// Delete returns false when nothing matched
func (r *FlightRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&gorm.Flight{})
	if res.Error != nil {
		return false, fmt.Errorf("delete flight: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
