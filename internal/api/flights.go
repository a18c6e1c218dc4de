package api

import (
	"net/http"

	"flightdesk/scheduler/internal/common"
	"flightdesk/scheduler/internal/constants"
	"flightdesk/scheduler/internal/db/repositories"
	"flightdesk/scheduler/internal/errs"
	"flightdesk/scheduler/internal/models/dtos"
	"flightdesk/scheduler/internal/services"
)

// ListFlightsHandler handles GET /api/flight
func ListFlightsHandler(flights *repositories.FlightRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := flights.List(r.Context())
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondSuccess(w, "", presentFlights(list))
	}
}

// GetFlightHandler handles GET /api/flight/{uid}
func GetFlightHandler(flights *repositories.FlightRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, err := pathUID(r, constants.MsgFlightNotFound)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		f, err := flights.FindByID(r.Context(), uid)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		if f == nil {
			common.RespondError(w, errs.NotFound(constants.MsgFlightNotFound))
			return
		}
		common.RespondSuccess(w, "", presentFlight(f))
	}
}

// CreateFlightHandler handles POST /api/flight. Airports are given by ICAO
// code and the aircraft by serial number.
func CreateFlightHandler(writer *services.FlightWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.CreateFlightReq
		if err := decodeJSON(w, r, &req); err != nil {
			common.RespondError(w, err)
			return
		}
		f, err := writer.Create(r.Context(), req)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondSuccess(w, constants.MsgCreated, presentFlight(f), http.StatusCreated)
	}
}

// UpdateFlightHandler handles PUT /api/flight/{uid} (partial)
func UpdateFlightHandler(writer *services.FlightWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, err := pathUID(r, constants.MsgFlightNotFound)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		var req dtos.UpdateFlightReq
		if err := decodeJSON(w, r, &req); err != nil {
			common.RespondError(w, err)
			return
		}
		f, err := writer.Update(r.Context(), uid, req)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondSuccess(w, constants.MsgUpdated, presentFlight(f))
	}
}

// DeleteFlightHandler handles DELETE /api/flight/{uid}
func DeleteFlightHandler(writer *services.FlightWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, err := deleteUID(r)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		if err := writer.Delete(r.Context(), uid); err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondSuccess(w, constants.MsgDeleted, nil)
	}
}

// SearchFlightsHandler handles GET /api/flight/search?dept=|arr=|dept_rng=HH:MM;HH:MM
func SearchFlightsHandler(search *services.FlightSearchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criteria, err := services.ParseSearchQuery(queryParams(r))
		if err != nil {
			common.RespondError(w, err)
			return
		}
		found, err := search.Search(r.Context(), criteria)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondSuccess(w, "", presentFlights(found))
	}
}
