package dtos

import (
	"time"

	"github.com/shopspring/decimal"
)

type LocationReq struct {
	Area    string           `json:"area" validate:"required,max=200"`
	City    string           `json:"city" validate:"required,max=100"`
	Country string           `json:"country" validate:"required,max=100"`
	Lat     *decimal.Decimal `json:"lat" validate:"required"`
	Lng     *decimal.Decimal `json:"lng" validate:"required"`
}

type CreateAircraftReq struct {
	SerialNumber string `json:"serial_number" validate:"required,max=100"`
	Manufacturer string `json:"manufacturer" validate:"required"`
}

// UpdateAircraftReq is a partial update; nil fields are left untouched
type UpdateAircraftReq struct {
	SerialNumber *string `json:"serial_number" validate:"omitempty,max=100"`
	Manufacturer *string `json:"manufacturer"`
}

type CreateAirportReq struct {
	Name     string       `json:"name" validate:"required,max=100"`
	ICAO     string       `json:"icao" validate:"required,max=10"`
	Location *LocationReq `json:"location" validate:"required"`
}

// UpdateAirportReq is a partial update. The location is read-only after create.
type UpdateAirportReq struct {
	Name *string `json:"name" validate:"omitempty,max=100"`
	ICAO *string `json:"icao" validate:"omitempty,max=10"`
}

// CreateFlightReq takes human-facing codes rather than ids:
// aircraft is a serial number, departure/arrival are ICAO codes.
type CreateFlightReq struct {
	Aircraft    *string    `json:"aircraft" validate:"omitempty,max=100"`
	Departure   string     `json:"departure" validate:"required,max=10"`
	Arrival     string     `json:"arrival" validate:"required,max=10"`
	DepartureDT *time.Time `json:"departure_dt" validate:"required"`
	ArrivalDT   *time.Time `json:"arrival_dt" validate:"required"`
	Status      *string    `json:"status" validate:"omitempty,oneof=scheduled departed arrived cancelled"`
}

// UpdateFlightReq is a partial update. An empty aircraft string detaches the aircraft.
type UpdateFlightReq struct {
	Aircraft    *string    `json:"aircraft" validate:"omitempty,max=100"`
	Departure   *string    `json:"departure" validate:"omitempty,max=10"`
	Arrival     *string    `json:"arrival" validate:"omitempty,max=10"`
	DepartureDT *time.Time `json:"departure_dt"`
	ArrivalDT   *time.Time `json:"arrival_dt"`
	Status      *string    `json:"status" validate:"omitempty,oneof=scheduled departed arrived cancelled"`
}
