package api

import (
	"net/http"

	"flightdesk/scheduler/internal/common"
	"flightdesk/scheduler/internal/constants"
	"flightdesk/scheduler/internal/models/dtos"
	"flightdesk/scheduler/internal/services"
)

// ListAirportsHandler handles GET /api/airport
func ListAirportsHandler(svc *services.AirportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondSuccess(w, "", presentAirports(list))
	}
}

// GetAirportHandler handles GET /api/airport/{uid}
func GetAirportHandler(svc *services.AirportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, err := pathUID(r, constants.MsgAirportNotFound)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		ap, err := svc.Get(r.Context(), uid)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondSuccess(w, "", presentAirport(ap))
	}
}

// CreateAirportHandler handles POST /api/airport. The location is created
// in the same transaction.
func CreateAirportHandler(svc *services.AirportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.CreateAirportReq
		if err := decodeJSON(w, r, &req); err != nil {
			common.RespondError(w, err)
			return
		}
		ap, err := svc.Create(r.Context(), req)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondSuccess(w, constants.MsgCreated, presentAirport(ap), http.StatusCreated)
	}
}

// UpdateAirportHandler handles PUT /api/airport/{uid} (partial)
func UpdateAirportHandler(svc *services.AirportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, err := pathUID(r, constants.MsgAirportNotFound)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		var req dtos.UpdateAirportReq
		if err := decodeJSON(w, r, &req); err != nil {
			common.RespondError(w, err)
			return
		}
		ap, err := svc.Update(r.Context(), uid, req)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondSuccess(w, constants.MsgUpdated, presentAirport(ap))
	}
}

// DeleteAirportHandler handles DELETE /api/airport/{uid}
func DeleteAirportHandler(svc *services.AirportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, err := deleteUID(r)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		if err := svc.Delete(r.Context(), uid); err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondSuccess(w, constants.MsgDeleted, nil)
	}
}
