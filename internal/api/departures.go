package api

import (
	"net/http"
	"time"

	"flightdesk/scheduler/internal/common"
	"flightdesk/scheduler/internal/services"

	"github.com/go-chi/chi/v5"
)

// DepartureSearchHandler handles GET /api/departures/search?interval=start;end
// Each row is a departure airport with a flight inside the interval.
func DepartureSearchHandler(svc *services.DepartureService, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		window, err := services.ParseInterval(queryParams(r).Get("interval"), loc)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		rows, err := svc.DeparturesActiveIn(r.Context(), window)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondSuccess(w, "", presentDepartureSummaries(rows))
	}
}

// DepartureFlightsHandler handles GET /api/departures/flights/{uid}?interval=start;end
func DepartureFlightsHandler(svc *services.DepartureService, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		window, err := services.ParseInterval(queryParams(r).Get("interval"), loc)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		rows, err := svc.FlightsFrom(r.Context(), chi.URLParam(r, "uid"), window)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondSuccess(w, "", presentDepartureFlights(rows))
	}
}
