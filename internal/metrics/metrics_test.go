package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counterValue sums a gathered counter family across label sets
func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		total := 0.0
		for _, m := range f.GetMetric() {
			total += m.GetCounter().GetValue()
		}
		return total
	}
	return 0
}

func TestRegistryCountsBusinessEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetricsRegistry(reg)

	m.FlightWritten("create")
	m.FlightWritten("create")
	m.FlightRejected("past_departure")
	m.SearchServed("dept")
	m.RateLimited()

	assert.Equal(t, 2.0, counterValue(t, reg, "flightdesk_flight_writes_total"))
	assert.Equal(t, 1.0, counterValue(t, reg, "flightdesk_flight_rejections_total"))
	assert.Equal(t, 1.0, counterValue(t, reg, "flightdesk_search_requests_total"))
	assert.Equal(t, 1.0, counterValue(t, reg, "flightdesk_rate_limited_total"))
}

func TestSeparateRegistriesDoNotCollide(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetricsRegistry(prometheus.NewRegistry())
		NewMetricsRegistry(prometheus.NewRegistry())
	})
}

func TestNilRegistryIsNoop(t *testing.T) {
	var m *MetricsRegistry
	assert.NotPanics(t, func() {
		m.FlightWritten("create")
		m.FlightRejected("x")
		m.SearchServed("arr")
		m.RateLimited()
		m.DepartureReport()
		m.ObserveQuery("q", 0.1)
	})
}
