package api

import (
	"flightdesk/scheduler/internal/models/dtos"
	"flightdesk/scheduler/internal/models/entities"
	models "flightdesk/scheduler/internal/models/gorm"
)

func presentAircraft(a *models.Aircraft) *dtos.AircraftResp {
	if a == nil {
		return nil
	}
	return &dtos.AircraftResp{
		UID:          a.ID,
		SerialNumber: a.SerialNumber,
		Manufacturer: a.Manufacturer,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func presentAircraftList(list []models.Aircraft) []dtos.AircraftResp {
	out := make([]dtos.AircraftResp, 0, len(list))
	for i := range list {
		out = append(out, *presentAircraft(&list[i]))
	}
	return out
}

// presentAirport returns nil for a missing airport, which is how a flight
// pointing at a deleted airport renders.
func presentAirport(ap *models.Airport) *dtos.AirportResp {
	if ap == nil {
		return nil
	}
	resp := &dtos.AirportResp{
		UID:       ap.ID,
		Name:      ap.Name,
		ICAO:      ap.ICAO,
		CreatedAt: ap.CreatedAt,
		UpdatedAt: ap.UpdatedAt,
	}
	if ap.Location != nil {
		resp.Location = &dtos.LocationResp{
			Area:    ap.Location.Area,
			City:    ap.Location.City,
			Country: ap.Location.Country,
			Lat:     ap.Location.Lat,
			Lng:     ap.Location.Lng,
		}
	}
	return resp
}

func presentAirports(list []models.Airport) []dtos.AirportResp {
	out := make([]dtos.AirportResp, 0, len(list))
	for i := range list {
		out = append(out, *presentAirport(&list[i]))
	}
	return out
}

func presentFlight(f *models.Flight) *dtos.FlightResp {
	return &dtos.FlightResp{
		UID:          f.ID,
		Aircraft:     presentAircraft(f.Aircraft),
		Departure:    presentAirport(f.Departure),
		Arrival:      presentAirport(f.Arrival),
		DepartureDT:  f.DepartureAt,
		ArrivalDT:    f.ArrivalAt,
		Status:       f.Status.String(),
		InflightTime: f.InFlightMinutes(),
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

func presentFlights(list []models.Flight) []dtos.FlightResp {
	out := make([]dtos.FlightResp, 0, len(list))
	for i := range list {
		out = append(out, *presentFlight(&list[i]))
	}
	return out
}

func presentDepartureSummaries(rows []entities.DepartureSummary) []dtos.DepartureSummaryResp {
	out := make([]dtos.DepartureSummaryResp, 0, len(rows))
	for _, r := range rows {
		out = append(out, dtos.DepartureSummaryResp{
			UID:         r.AirportID,
			ICAO:        r.ICAO,
			Name:        r.Name,
			FlightCount: r.FlightCount,
			InflightAvg: r.InflightAvg,
		})
	}
	return out
}

func presentDepartureFlights(rows []entities.DepartureFlightRow) []dtos.DepartureFlightResp {
	out := make([]dtos.DepartureFlightResp, 0, len(rows))
	for _, r := range rows {
		resp := dtos.DepartureFlightResp{
			UID:          r.ID,
			InflightTime: r.InFlightMinutes(),
			DepartureDT:  r.DepartureAt,
			ArrivalDT:    r.ArrivalAt,
		}
		if r.AircraftID.Valid {
			resp.Aircraft = &dtos.AircraftResp{
				UID:          r.AircraftID.String,
				SerialNumber: r.SerialNumber.String,
				Manufacturer: r.Manufacturer.String,
				CreatedAt:    r.AircraftCreatedAt.Time,
			}
			if r.AircraftUpdatedAt.Valid {
				updated := r.AircraftUpdatedAt.Time
				resp.Aircraft.UpdatedAt = &updated
			}
		}
		out = append(out, resp)
	}
	return out
}
