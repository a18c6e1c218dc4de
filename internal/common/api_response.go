package common

import (
	"encoding/json"
	"net/http"

	"flightdesk/scheduler/internal/constants"
	"flightdesk/scheduler/internal/errs"
	"flightdesk/scheduler/internal/logging"
	"flightdesk/scheduler/internal/models/dtos"
)

// RespondSuccess sends a standardized JSON success response.
func RespondSuccess(w http.ResponseWriter, message string, data any, statusCode ...int) {
	code := http.StatusOK
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	writeJSON(w, code, dtos.APIResponse{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// RespondError maps err onto the envelope. Typed errors keep their status and
// message, field errors go into data, anything else is logged and hidden as 500.
func RespondError(w http.ResponseWriter, err error) {
	if !errs.IsTyped(err) {
		logging.Error("Unhandled error", "error", err)
		RespondMessage(w, http.StatusInternalServerError, constants.MsgInternal)
		return
	}

	response := dtos.APIResponse{
		Status:  false,
		Message: errs.Message(err),
	}
	if fields := errs.Fields(err); len(fields) > 0 {
		response.Data = fields
	}
	writeJSON(w, errs.HTTPStatus(err), response)
}

// RespondMessage sends a failure envelope with only a message
func RespondMessage(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, dtos.APIResponse{
		Status:  false,
		Message: message,
	})
}

// writeJSON marshals data and writes it to the HTTP response.
func writeJSON(w http.ResponseWriter, code int, body dtos.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("JSON encode failed", "error", err)
	}
}
