package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"flightdesk/scheduler/internal/models/entities"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = raw.Close() })
	return sqlx.NewDb(raw, "sqlmock"), mock
}

func TestHealthCheckHandler(t *testing.T) {
	upSince := time.Now().Add(-time.Minute)

	t.Run("database reachable", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectPing()

		rec := httptest.NewRecorder()
		HealthCheckHandler(db, upSince)(rec, httptest.NewRequest(http.MethodGet, "/healthCheck", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp entities.HealthCheckResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, "ok", resp.Services["database"].Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database down", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		rec := httptest.NewRecorder()
		HealthCheckHandler(db, upSince)(rec, httptest.NewRequest(http.MethodGet, "/healthCheck", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		var resp entities.HealthCheckResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "down", resp.Status)
		assert.Equal(t, "connection refused", resp.Services["database"].Details)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRootHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	RootHandler()(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":true,"message":"OK"}`, rec.Body.String())
}
