package api

import (
	"net/http"

	"flightdesk/scheduler/internal/common"
	"flightdesk/scheduler/internal/constants"
	"flightdesk/scheduler/internal/models/dtos"
	"flightdesk/scheduler/internal/services"
)

// ListAircraftHandler handles GET /api/aircraft
func ListAircraftHandler(svc *services.AircraftService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondSuccess(w, "", presentAircraftList(list))
	}
}

// GetAircraftHandler handles GET /api/aircraft/{uid}
func GetAircraftHandler(svc *services.AircraftService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, err := pathUID(r, constants.MsgAircraftNotFound)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		a, err := svc.Get(r.Context(), uid)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondSuccess(w, "", presentAircraft(a))
	}
}

// CreateAircraftHandler handles POST /api/aircraft
func CreateAircraftHandler(svc *services.AircraftService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.CreateAircraftReq
		if err := decodeJSON(w, r, &req); err != nil {
			common.RespondError(w, err)
			return
		}
		a, err := svc.Create(r.Context(), req)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondSuccess(w, constants.MsgCreated, presentAircraft(a), http.StatusCreated)
	}
}

// UpdateAircraftHandler handles PUT /api/aircraft/{uid} (partial)
func UpdateAircraftHandler(svc *services.AircraftService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, err := pathUID(r, constants.MsgAircraftNotFound)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		var req dtos.UpdateAircraftReq
		if err := decodeJSON(w, r, &req); err != nil {
			common.RespondError(w, err)
			return
		}
		a, err := svc.Update(r.Context(), uid, req)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondSuccess(w, constants.MsgUpdated, presentAircraft(a))
	}
}

// DeleteAircraftHandler handles DELETE /api/aircraft/{uid}
func DeleteAircraftHandler(svc *services.AircraftService) http.HandlerFunc {
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
