package entities

import (
	"database/sql"
	"time"
)

// DepartureHistoryRow is one flight of an airport's departure history
type DepartureHistoryRow struct {
	AirportID   string    `db:"airport_id"`
	ICAO        string    `db:"icao"`
	Name        string    `db:"name"`
	DepartureAt time.Time `db:"departure_dt"`
	ArrivalAt   time.Time `db:"arrival_dt"`
}

// DepartureSummary is one distinct departure airport with its flight stats
type DepartureSummary struct {
	AirportID   string
	ICAO        string
	Name        string
	FlightCount int64
	InflightAvg float64 // minutes; zero when the airport has no flights
}

// DepartureFlightRow is a flight leaving a given airport, with its aircraft if any
type DepartureFlightRow struct {
	ID                string         `db:"id"`
	DepartureAt       time.Time      `db:"departure_dt"`
	ArrivalAt         time.Time      `db:"arrival_dt"`
	AircraftID        sql.NullString `db:"aircraft_id"`
	SerialNumber      sql.NullString `db:"serial_number"`
	Manufacturer      sql.NullString `db:"manufacturer"`
	AircraftCreatedAt sql.NullTime   `db:"aircraft_created_at"`
	AircraftUpdatedAt sql.NullTime   `db:"aircraft_updated_at"`
}

func (r DepartureFlightRow) InFlightMinutes() float64 {
	return r.ArrivalAt.Sub(r.DepartureAt).Minutes()
}
