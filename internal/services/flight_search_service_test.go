package services

import (
	"net/url"
	"testing"
	"time"

	"flightdesk/scheduler/internal/constants"
	"flightdesk/scheduler/internal/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSearchQuery(t *testing.T) {
	cases := []struct {
		name    string
		query   string
		kind    constants.SearchKind
		wantErr string
	}{
		{"departure", "dept=egll", constants.SearchKindDeparture, ""},
		{"arrival", "arr=KJFK", constants.SearchKindArrival, ""},
		{"range", "dept_rng=09:00;17:00", constants.SearchKindDeptRange, ""},
		{"nothing", "", "", constants.MsgNoSearchParams},
		{"blank value", "dept=", "", constants.MsgNoSearchParams},
		{"two criteria", "dept=EGLL&arr=KJFK", "", constants.MsgTooManySearchParams},
		{"range missing end", "dept_rng=09:00", "", constants.MsgInvalidTimeRange},
		{"range bad hour", "dept_rng=25:00;17:00", "", constants.MsgInvalidTimeRange},
		{"range not a time", "dept_rng=morning;evening", "", constants.MsgInvalidTimeRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := url.ParseQuery(tc.query)
			require.NoError(t, err)

			criteria, err := ParseSearchQuery(q)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.True(t, errs.IsValidation(err))
				assert.Equal(t, tc.wantErr, errs.Message(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.kind, criteria.Kind)
		})
	}
}

func TestTimeOfDayRange_Contains(t *testing.T) {
	day := func(h, m int) time.Time { return time.Date(2030, 6, 1, h, m, 30, 0, time.UTC) }

	office, err := ParseTimeOfDayRange("09:00;17:00")
	require.NoError(t, err)
	assert.True(t, office.Contains(day(9, 0), time.UTC))
	assert.True(t, office.Contains(day(17, 0), time.UTC))
	assert.False(t, office.Contains(day(17, 1), time.UTC))
	assert.False(t, office.Contains(day(8, 59), time.UTC))

	night, err := ParseTimeOfDayRange("22:00;02:00")
	require.NoError(t, err)
	assert.True(t, night.Contains(day(23, 15), time.UTC))
	assert.True(t, night.Contains(day(1, 0), time.UTC))
	assert.False(t, night.Contains(day(12, 0), time.UTC))

	// 08:30 UTC is 10:30 in Paris during summer
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	assert.True(t, office.Contains(day(8, 30), paris))
	assert.False(t, office.Contains(day(8, 30), time.UTC))
}

func TestFlightSearchService_Search(t *testing.T) {
	f := newFixture(t)
	f.addAirport(t, "Heathrow", "EGLL")
	f.addAirport(t, "Kennedy", "KJFK")
	f.addAirport(t, "Gatwick", "EGKK")

	base := time.Date(2030, 6, 2, 0, 0, 0, 0, time.UTC)
	early := f.addFlight(t, "EGLL", "KJFK", nil, base.Add(6*time.Hour), time.Hour)
	morning := f.addFlight(t, "EGLL", "EGKK", nil, base.Add(9*time.Hour), time.Hour)
	evening := f.addFlight(t, "KJFK", "EGLL", nil, base.Add(24*time.Hour+17*time.Hour), time.Hour)
	late := f.addFlight(t, "EGKK", "KJFK", nil, base.Add(48*time.Hour+17*time.Hour+time.Minute), time.Hour)

	ids := func(t *testing.T, criteria SearchCriteria) []string {
		t.Helper()
		found, err := f.search.Search(f.ctx, criteria)
		require.NoError(t, err)
		out := make([]string, 0, len(found))
		for _, fl := range found {
			out = append(out, fl.ID)
		}
		return out
	}

	assert.ElementsMatch(t, []string{early.ID, morning.ID},
		ids(t, SearchCriteria{Kind: constants.SearchKindDeparture, ICAO: "egll"}))
	assert.ElementsMatch(t, []string{early.ID, late.ID},
		ids(t, SearchCriteria{Kind: constants.SearchKindArrival, ICAO: "KJFK"}))
	assert.Empty(t, ids(t, SearchCriteria{Kind: constants.SearchKindDeparture, ICAO: "ZZZZ"}))

	office, err := ParseTimeOfDayRange("09:00;17:00")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{morning.ID, evening.ID},
		ids(t, SearchCriteria{Kind: constants.SearchKindDeptRange, TimeRange: office}))
}

func TestFlightSearchService_Search_UnknownKind(t *testing.T) {
	f := newFixture(t)

	_, err := f.search.Search(f.ctx, SearchCriteria{})
	assert.True(t, errs.IsValidation(err))
}
