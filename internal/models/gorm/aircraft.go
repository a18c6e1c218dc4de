package gorm

import (
	"time"

	gormlib "gorm.io/gorm"
)

// Aircraft is a serial-numbered airframe that flights may reference
type Aircraft struct {
	ID           string     `gorm:"column:id;primaryKey;type:uuid"`
	SerialNumber string     `gorm:"column:serial_number;type:varchar(100);not null;uniqueIndex"`
	Manufacturer string     `gorm:"column:manufacturer;type:text;not null"`
	CreatedAt    time.Time  `gorm:"column:created_at;not null;autoCreateTime:false"`
	UpdatedAt    *time.Time `gorm:"column:updated_at;autoUpdateTime:false"`
}

// TableName specifies the table name for GORM
func (Aircraft) TableName() string {
	return "aircraft"
}

func (a *Aircraft) BeforeCreate(tx *gormlib.DB) error {
	newID(&a.ID)
	return nil
}
