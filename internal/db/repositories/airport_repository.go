package repositories

import (
	"context"
	"errors"
	"fmt"

	"flightdesk/scheduler/internal/models/gorm"

	gormlib "gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AirportRepository handles airport and owned location operations
type AirportRepository struct {
	db *gormlib.DB
}

// NewAirportRepository creates a new airport repository
func NewAirportRepository(db *gormlib.DB) *AirportRepository {
	return &AirportRepository{db: db}
}

// WithTx binds the repository to a transaction
func (r *AirportRepository) WithTx(tx *gormlib.DB) *AirportRepository {
	return &AirportRepository{db: tx}
}

// FindByICAO finds an airport by its stored (upper-case) ICAO code
func (r *AirportRepository) FindByICAO(ctx context.Context, icao string) (*gorm.Airport, error) {
	var airport gorm.Airport

	err := r.db.WithContext(ctx).
		Where("icao = ?", icao).
		First(&airport).Error

	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch airport by icao: %w", err)
	}

	return &airport, nil
}

// FindByID loads an airport with its location
func (r *AirportRepository) FindByID(ctx context.Context, id string) (*gorm.Airport, error) {
	var airport gorm.Airport

	err := r.db.WithContext(ctx).
		Preload("Location").
		Where("id = ?", id).
		First(&airport).Error

	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch airport: %w", err)
	}

	return &airport, nil
}

func (r *AirportRepository) List(ctx context.Context) ([]gorm.Airport, error) {
	airports := []gorm.Airport{}
	err := r.db.WithContext(ctx).
		Preload("Location").
		Order("created_at, icao").
		Find(&airports).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list airports: %w", err)
	}
	return airports, nil
}

// Create inserts the location (if any) and the airport in one transaction
func (r *AirportRepository) Create(ctx context.Context, airport *gorm.Airport) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		if airport.Location != nil {
			if err := tx.Create(airport.Location).Error; err != nil {
				return fmt.Errorf("insert location: %w", err)
			}
			airport.LocationID = &airport.Location.ID
		}
		if err := tx.Omit(clause.Associations).Create(airport).Error; err != nil {
			return fmt.Errorf("insert airport: %w", err)
		}
		return nil
	})
}

// Save writes the airport's own columns; the location is left alone
func (r *AirportRepository) Save(ctx context.Context, airport *gorm.Airport) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(airport).Error; err != nil {
		return fmt.Errorf("update airport: %w", err)
	}
	return nil
}

// Delete removes the airport and its location. Flights referencing it are
// not touched. Returns false when nothing matched.
func (r *AirportRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		var airport gorm.Airport
		if err := tx.Where("id = ?", id).First(&airport).Error; err != nil {
			if errors.Is(err, gormlib.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Delete(&airport).Error; err != nil {
			return err
		}
		if airport.LocationID != nil {
			if err := tx.Where("id = ?", *airport.LocationID).Delete(&gorm.Location{}).Error; err != nil {
				return err
			}
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("delete airport: %w", err)
	}
	return deleted, nil
}

// Count returns total number of airports
func (r *AirportRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gorm.Airport{}).Count(&count).Error
	return count, err
}
