package common

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"flightdesk/scheduler/internal/constants"
	"flightdesk/scheduler/internal/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRespondSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondSuccess(rec, constants.MsgCreated, map[string]string{"uid": "1"}, http.StatusCreated)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decode(t, rec)
	assert.Equal(t, true, body["status"])
	assert.Equal(t, "created", body["message"])
	assert.Equal(t, map[string]any{"uid": "1"}, body["data"])
}

func TestRespondError_FieldErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, errs.ValidationFields(constants.MsgSerializerError, errs.FieldErrors{"icao": {"bad"}}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "serializer error", body["message"])
	assert.Equal(t, map[string]any{"icao": []any{"bad"}}, body["data"])
}

func TestRespondError_Untyped(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, errors.New("pq: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, constants.MsgInternal, body["message"])
	assert.NotContains(t, body, "data")
}

func TestRespondError_NotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, errs.NotFound(constants.MsgFlightNotFound))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, constants.MsgFlightNotFound, decode(t, rec)["message"])
}
