package constants

import (
	"database/sql/driver"
	"fmt"
)

// FlightStatus mirrors the flights.status column
type FlightStatus string

const (
	FlightStatusScheduled FlightStatus = "scheduled"
	FlightStatusDeparted  FlightStatus = "departed"
	FlightStatusArrived   FlightStatus = "arrived"
	FlightStatusCancelled FlightStatus = "cancelled"
)

func (s FlightStatus) String() string { return string(s) }

func (s FlightStatus) Valid() bool {
	switch s {
	case FlightStatusScheduled, FlightStatusDeparted, FlightStatusArrived, FlightStatusCancelled:
		return true
	}
	return false
}

func (s *FlightStatus) Scan(src interface{}) error {
	if src == nil {
		*s = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*s = FlightStatus(v)
	case []byte:
		*s = FlightStatus(v)
	default:
		return fmt.Errorf("FlightStatus: cannot scan type %T", src)
	}
	return nil
}

func (s FlightStatus) Value() (driver.Value, error) { return string(s), nil }
