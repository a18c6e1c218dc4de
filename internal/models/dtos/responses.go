package dtos

import (
	"time"

	"github.com/shopspring/decimal"
)

// APIResponse is the envelope every endpoint answers with
type APIResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type LocationResp struct {
	Area    string          `json:"area"`
	City    string          `json:"city"`
	Country string          `json:"country"`
	Lat     decimal.Decimal `json:"lat"`
	Lng     decimal.Decimal `json:"lng"`
}

type AircraftResp struct {
	UID          string     `json:"uid"`
	SerialNumber string     `json:"serial_number"`
	Manufacturer string     `json:"manufacturer"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

type AirportResp struct {
	UID       string        `json:"uid"`
	Name      string        `json:"name"`
	ICAO      string        `json:"icao"`
	Location  *LocationResp `json:"location"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt *time.Time    `json:"updated_at"`
}

type FlightResp struct {
	UID          string        `json:"uid"`
	Aircraft     *AircraftResp `json:"aircraft"`
	Departure    *AirportResp  `json:"departure"`
	Arrival      *AirportResp  `json:"arrival"`
	DepartureDT  time.Time     `json:"departure_dt"`
	ArrivalDT    time.Time     `json:"arrival_dt"`
	Status       string        `json:"status"`
	InflightTime float64       `json:"inflight_time"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    *time.Time    `json:"updated_at"`
}

type DepartureSummaryResp struct {
	UID         string  `json:"uid"`
	ICAO        string  `json:"icao"`
	Name        string  `json:"name"`
	FlightCount int64   `json:"flight_count"`
	InflightAvg float64 `json:"inflight_avg"`
}

type DepartureFlightResp struct {
	UID          string        `json:"uid"`
	Aircraft     *AircraftResp `json:"aircraft"`
	InflightTime float64       `json:"inflight_time"`
	DepartureDT  time.Time     `json:"departure_dt"`
	ArrivalDT    time.Time     `json:"arrival_dt"`
}
