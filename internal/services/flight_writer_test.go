package services

import (
	"testing"
	"time"

	"flightdesk/scheduler/internal/constants"
	"flightdesk/scheduler/internal/errs"
	"flightdesk/scheduler/internal/models/dtos"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlightWriter_Create_Success(t *testing.T) {
	f := newFixture(t)
	dep := f.addAirport(t, "Heathrow", "EGLL")
	arr := f.addAirport(t, "Kennedy", "KJFK")

	flight := f.addFlight(t, "egll", "kjfk", nil, testNow.Add(10*time.Minute), 50*time.Minute)

	assert.NotEmpty(t, flight.ID)
	assert.Equal(t, constants.FlightStatusScheduled, flight.Status)
	assert.Equal(t, 50.0, flight.InFlightMinutes())
	assert.Equal(t, dep.ID, flight.DepartureAirportID)
	assert.Equal(t, arr.ID, flight.ArrivalAirportID)
	assert.Nil(t, flight.AircraftID)
	assert.True(t, testNow.Equal(flight.CreatedAt))
	assert.Nil(t, flight.UpdatedAt)

	require.NotNil(t, flight.Departure)
	require.NotNil(t, flight.Departure.Location)
	assert.Equal(t, "EGLL", flight.Departure.ICAO)

	require.Len(t, f.published.events, 1)
	assert.Equal(t, constants.FlightEventCreated, f.published.events[0].Event)
	assert.Equal(t, flight.ID, f.published.events[0].FlightID)
}

func TestFlightWriter_Create_ArrivalNotAfterDeparture(t *testing.T) {
	f := newFixture(t)
	f.addAirport(t, "Heathrow", "EGLL")
	f.addAirport(t, "Kennedy", "KJFK")

	_, err := f.writer.Create(f.ctx, dtos.CreateFlightReq{
		Departure:   "EGLL",
		Arrival:     "KJFK",
		DepartureDT: timePtr(testNow.Add(time.Hour)),
		ArrivalDT:   timePtr(testNow),
	})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.Equal(t, constants.MsgArrivalNotAfter, errs.Message(err))
	assert.Empty(t, f.published.events)
}

func TestFlightWriter_Create_PastDeparture(t *testing.T) {
	f := newFixture(t)
	f.addAirport(t, "Heathrow", "EGLL")
	f.addAirport(t, "Kennedy", "KJFK")

	for _, arrival := range []time.Time{testNow.Add(time.Hour), testNow.Add(-2 * time.Hour), testNow.Add(48 * time.Hour)} {
		_, err := f.writer.Create(f.ctx, dtos.CreateFlightReq{
			Departure:   "EGLL",
			Arrival:     "KJFK",
			DepartureDT: timePtr(testNow.Add(-time.Hour)),
			ArrivalDT:   timePtr(arrival),
		})
		assert.True(t, errs.IsValidation(err), "arrival %s", arrival)
	}

	all, err := f.flights.List(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestFlightWriter_Create_UnresolvedCodes(t *testing.T) {
	f := newFixture(t)
	f.addAirport(t, "Heathrow", "EGLL")

	cases := []struct {
		name     string
		req      dtos.CreateFlightReq
		badField string
	}{
		{"unknown arrival", dtos.CreateFlightReq{Departure: "EGLL", Arrival: "XXXX"}, "arrival"},
		{"unknown departure", dtos.CreateFlightReq{Departure: "XXXX", Arrival: "EGLL"}, "departure"},
		{"unknown aircraft", dtos.CreateFlightReq{Departure: "EGLL", Arrival: "EGLL", Aircraft: strPtr("NOPE")}, "aircraft"},
		{"substring of real code", dtos.CreateFlightReq{Departure: "EGL", Arrival: "EGLL"}, "departure"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.req.DepartureDT = timePtr(testNow.Add(time.Hour))
			tc.req.ArrivalDT = timePtr(testNow.Add(2 * time.Hour))

			_, err := f.writer.Create(f.ctx, tc.req)
			require.Error(t, err)
			assert.True(t, errs.IsReference(err))
			assert.Contains(t, errs.Fields(err), tc.badField)
		})
	}
}

func TestFlightWriter_Create_MissingFields(t *testing.T) {
	f := newFixture(t)

	_, err := f.writer.Create(f.ctx, dtos.CreateFlightReq{Status: strPtr("boarding")})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))

	fields := errs.Fields(err)
	for _, name := range []string{"departure", "arrival", "departure_dt", "arrival_dt", "status"} {
		assert.Contains(t, fields, name)
	}
	assert.Equal(t, []string{"This field is required."}, fields["departure"])
}

func TestFlightWriter_Create_AircraftDoubleBooked(t *testing.T) {
	f := newFixture(t)
	f.addAirport(t, "Heathrow", "EGLL")
	f.addAirport(t, "Kennedy", "KJFK")
	f.addAircraft(t, "MSN1")

	start := testNow.Add(time.Hour)
	f.addFlight(t, "EGLL", "KJFK", strPtr("msn1"), start, 2*time.Hour)

	_, err := f.writer.Create(f.ctx, dtos.CreateFlightReq{
		Aircraft:    strPtr("MSN1"),
		Departure:   "KJFK",
		Arrival:     "EGLL",
		DepartureDT: timePtr(start.Add(time.Hour)),
		ArrivalDT:   timePtr(start.Add(4 * time.Hour)),
	})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.Contains(t, errs.Fields(err), "aircraft")

	// back-to-back is fine: intervals are half-open
	f.addFlight(t, "KJFK", "EGLL", strPtr("MSN1"), start.Add(2*time.Hour), time.Hour)
}

func TestFlightWriter_Create_CancelledFlightDoesNotBlock(t *testing.T) {
	f := newFixture(t)
	f.addAirport(t, "Heathrow", "EGLL")
	f.addAirport(t, "Kennedy", "KJFK")
	f.addAircraft(t, "MSN1")

	start := testNow.Add(time.Hour)
	first := f.addFlight(t, "EGLL", "KJFK", strPtr("MSN1"), start, 2*time.Hour)
	_, err := f.writer.Update(f.ctx, first.ID, dtos.UpdateFlightReq{Status: strPtr("cancelled")})
	require.NoError(t, err)

	f.addFlight(t, "EGLL", "KJFK", strPtr("MSN1"), start, 2*time.Hour)
}

func TestFlightWriter_Update_Partial(t *testing.T) {
	f := newFixture(t)
	f.addAirport(t, "Heathrow", "EGLL")
	f.addAirport(t, "Kennedy", "KJFK")
	gatwick := f.addAirport(t, "Gatwick", "EGKK")
	f.addAircraft(t, "MSN1")

	created := f.addFlight(t, "EGLL", "KJFK", strPtr("MSN1"), testNow.Add(time.Hour), time.Hour)

	updated, err := f.writer.Update(f.ctx, created.ID, dtos.UpdateFlightReq{Departure: strPtr("egkk")})
	require.NoError(t, err)
	assert.Equal(t, gatwick.ID, updated.DepartureAirportID)
	assert.Equal(t, created.ArrivalAirportID, updated.ArrivalAirportID)
	assert.Equal(t, created.AircraftID, updated.AircraftID)
	assert.True(t, created.DepartureAt.Equal(updated.DepartureAt))
	require.NotNil(t, updated.UpdatedAt)
	assert.True(t, testNow.Equal(*updated.UpdatedAt))

	require.Len(t, f.published.events, 2)
	assert.Equal(t, constants.FlightEventUpdated, f.published.events[1].Event)
}

func TestFlightWriter_Update_UsesStoredInstantsForOrdering(t *testing.T) {
	f := newFixture(t)
	f.addAirport(t, "Heathrow", "EGLL")
	f.addAirport(t, "Kennedy", "KJFK")
	created := f.addFlight(t, "EGLL", "KJFK", nil, testNow.Add(2*time.Hour), time.Hour)

	_, err := f.writer.Update(f.ctx, created.ID, dtos.UpdateFlightReq{ArrivalDT: timePtr(testNow.Add(time.Hour))})
	assert.True(t, errs.IsValidation(err))

	_, err = f.writer.Update(f.ctx, created.ID, dtos.UpdateFlightReq{DepartureDT: timePtr(testNow.Add(5 * time.Hour))})
	assert.True(t, errs.IsValidation(err))

	// a flight that has left can still be edited
	_, err = f.writer.Update(f.ctx, created.ID, dtos.UpdateFlightReq{DepartureDT: timePtr(testNow.Add(-time.Hour))})
	assert.NoError(t, err)

	stored, err := f.flights.FindByID(f.ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, stored.ArrivalAt.After(stored.DepartureAt))
}

func TestFlightWriter_Update_UnresolvedCodeRejected(t *testing.T) {
	f := newFixture(t)
	f.addAirport(t, "Heathrow", "EGLL")
	f.addAirport(t, "Kennedy", "KJFK")
	f.addAircraft(t, "MSN1")
	created := f.addFlight(t, "EGLL", "KJFK", strPtr("MSN1"), testNow.Add(time.Hour), time.Hour)

	_, err := f.writer.Update(f.ctx, created.ID, dtos.UpdateFlightReq{Aircraft: strPtr("GHOST")})
	require.Error(t, err)
	assert.True(t, errs.IsReference(err))

	stored, err := f.flights.FindByID(f.ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.AircraftID)
	assert.Equal(t, *created.AircraftID, *stored.AircraftID)
}

func TestFlightWriter_Update_EmptyAircraftDetaches(t *testing.T) {
	f := newFixture(t)
	f.addAirport(t, "Heathrow", "EGLL")
	f.addAirport(t, "Kennedy", "KJFK")
	f.addAircraft(t, "MSN1")
	created := f.addFlight(t, "EGLL", "KJFK", strPtr("MSN1"), testNow.Add(time.Hour), time.Hour)

	updated, err := f.writer.Update(f.ctx, created.ID, dtos.UpdateFlightReq{Aircraft: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, updated.AircraftID)
	assert.Nil(t, updated.Aircraft)
}

func TestFlightWriter_Update_BlankAirportRejected(t *testing.T) {
	f := newFixture(t)
	f.addAirport(t, "Heathrow", "EGLL")
	f.addAirport(t, "Kennedy", "KJFK")
	created := f.addFlight(t, "EGLL", "KJFK", nil, testNow.Add(time.Hour), time.Hour)

	_, err := f.writer.Update(f.ctx, created.ID, dtos.UpdateFlightReq{Arrival: strPtr(" ")})
	assert.True(t, errs.IsValidation(err))
	assert.Contains(t, errs.Fields(err), "arrival")
}

func TestFlightWriter_Update_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.writer.Update(f.ctx, "3f1c2b9e-0000-4000-8000-000000000000", dtos.UpdateFlightReq{Status: strPtr("arrived")})
	assert.True(t, errs.IsNotFound(err))
}

func TestFlightWriter_Delete(t *testing.T) {
	f := newFixture(t)
	f.addAirport(t, "Heathrow", "EGLL")
	f.addAirport(t, "Kennedy", "KJFK")
	created := f.addFlight(t, "EGLL", "KJFK", nil, testNow.Add(time.Hour), time.Hour)

	require.NoError(t, f.writer.Delete(f.ctx, created.ID))
	assert.True(t, errs.IsNotFound(f.writer.Delete(f.ctx, created.ID)))

	last := f.published.events[len(f.published.events)-1]
	assert.Equal(t, constants.FlightEventDeleted, last.Event)
	assert.Equal(t, created.ID, last.FlightID)
}
