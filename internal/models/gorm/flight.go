package gorm

import (
	"time"

	"flightdesk/scheduler/internal/constants"

	gormlib "gorm.io/gorm"
)

// Flight links an aircraft to a departure/arrival airport pair.
// Airport references are not enforced by foreign keys: deleting an airport
// leaves the flight pointing at a missing row, which preloads as nil.
type Flight struct {
	ID                 string                 `gorm:"column:id;primaryKey;type:uuid"`
	AircraftID         *string                `gorm:"column:aircraft_id;type:uuid;index"`
	DepartureAirportID string                 `gorm:"column:departure_airport_id;type:uuid;not null;index"`
	ArrivalAirportID   string                 `gorm:"column:arrival_airport_id;type:uuid;not null;index"`
	DepartureAt        time.Time              `gorm:"column:departure_dt;not null;index"`
	ArrivalAt          time.Time              `gorm:"column:arrival_dt;not null;index"`
	Status             constants.FlightStatus `gorm:"column:status;type:varchar(10);not null"`
	CreatedAt          time.Time              `gorm:"column:created_at;not null;autoCreateTime:false"`
	UpdatedAt          *time.Time             `gorm:"column:updated_at;autoUpdateTime:false"`

	// Relationships
	Aircraft  *Aircraft `gorm:"foreignKey:AircraftID"`
	Departure *Airport  `gorm:"foreignKey:DepartureAirportID"`
	Arrival   *Airport  `gorm:"foreignKey:ArrivalAirportID"`
}

// TableName specifies the table name for GORM
func (Flight) TableName() string {
	return "flights"
}

func (f *Flight) BeforeCreate(tx *gormlib.DB) error {
	newID(&f.ID)
	return nil
}

// InFlightMinutes is arrival minus departure in fractional minutes.
func (f Flight) InFlightMinutes() float64 {
	return f.ArrivalAt.Sub(f.DepartureAt).Minutes()
}
