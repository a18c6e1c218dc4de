package gorm

import (
	"time"

	"github.com/shopspring/decimal"
	gormlib "gorm.io/gorm"
)

// Location is the geographic descriptor owned by exactly one airport
type Location struct {
	ID      string          `gorm:"column:id;primaryKey;type:uuid"`
	Area    string          `gorm:"column:area;type:varchar(200);not null"`
	City    string          `gorm:"column:city;type:varchar(100);not null"`
	Country string          `gorm:"column:country;type:varchar(100);not null"`
	Lat     decimal.Decimal `gorm:"column:lat;type:numeric(12,4);not null"`
	Lng     decimal.Decimal `gorm:"column:lng;type:numeric(12,4);not null"`
}

func (Location) TableName() string {
	return "locations"
}

func (l *Location) BeforeCreate(tx *gormlib.DB) error {
	newID(&l.ID)
	return nil
}

// Airport represents an airport record identified by its ICAO code
type Airport struct {
	ID         string     `gorm:"column:id;primaryKey;type:uuid"`
	Name       string     `gorm:"column:name;type:varchar(100);not null"`
	ICAO       string     `gorm:"column:icao;type:varchar(10);not null;uniqueIndex"`
	LocationID *string    `gorm:"column:location_id;type:uuid;uniqueIndex"`
	CreatedAt  time.Time  `gorm:"column:created_at;not null;autoCreateTime:false"`
	UpdatedAt  *time.Time `gorm:"column:updated_at;autoUpdateTime:false"`

	// Relationships
	Location *Location `gorm:"foreignKey:LocationID"`
}

// TableName specifies the table name for GORM
func (Airport) TableName() string {
	return "airports"
}

func (a *Airport) BeforeCreate(tx *gormlib.DB) error {
	newID(&a.ID)
	return nil
}
