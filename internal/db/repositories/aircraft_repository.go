package repositories

import (
	"context"
	"errors"
	"fmt"

	"flightdesk/scheduler/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// AircraftRepository handles aircraft table operations
type AircraftRepository struct {
	db *gormlib.DB
}

func NewAircraftRepository(db *gormlib.DB) *AircraftRepository {
	return &AircraftRepository{db: db}
}

// WithTx binds the repository to a transaction
func (r *AircraftRepository) WithTx(tx *gormlib.DB) *AircraftRepository {
	return &AircraftRepository{db: tx}
}

// FindBySerial finds an aircraft by its stored (upper-case) serial number
func (r *AircraftRepository) FindBySerial(ctx context.Context, serial string) (*gorm.Aircraft, error) {
	var aircraft gorm.Aircraft

	err := r.db.WithContext(ctx).
		Where("serial_number = ?", serial).
		First(&aircraft).Error

	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch aircraft by serial: %w", err)
	}

	return &aircraft, nil
}

func (r *AircraftRepository) FindByID(ctx context.Context, id string) (*gorm.Aircraft, error) {
	var aircraft gorm.Aircraft

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&aircraft).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch aircraft: %w", err)
	}

	return &aircraft, nil
}

func (r *AircraftRepository) List(ctx context.Context) ([]gorm.Aircraft, error) {
	aircraft := []gorm.Aircraft{}
	if err := r.db.WithContext(ctx).Order("created_at, serial_number").Find(&aircraft).Error; err != nil {
		return nil, fmt.Errorf("failed to list aircraft: %w", err)
	}
	return aircraft, nil
}

func (r *AircraftRepository) Create(ctx context.Context, aircraft *gorm.Aircraft) error {
	if err := r.db.WithContext(ctx).Create(aircraft).Error; err != nil {
		return fmt.Errorf("insert aircraft: %w", err)
	}
	return nil
}

func (r *AircraftRepository) Save(ctx context.Context, aircraft *gorm.Aircraft) error {
	if err := r.db.WithContext(ctx).Save(aircraft).Error; err != nil {
		return fmt.Errorf("update aircraft: %w", err)
	}
	return nil
}

// Delete removes the aircraft and detaches it from its flights in the same
// transaction. Returns false when nothing matched.
func (r *AircraftRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		if err := tx.Model(&gorm.Flight{}).
			Where("aircraft_id = ?", id).
			Update("aircraft_id", nil).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&gorm.Aircraft{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("delete aircraft: %w", err)
	}
	return deleted, nil
}
