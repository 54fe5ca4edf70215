package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New("venue-booking", reg)

	m.ObserveAvailabilityCheck("check_failed")
	m.ObserveAvailabilityCheck("check_failed")
	m.ObservePriceQuote(true)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.AvailabilityChecks.WithLabelValues("check_failed")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.PriceQuotes.WithLabelValues("true")))

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "venue_booking_availability_checks_total")
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveAvailabilityCheck("available")
		m.ObserveHTTPRequest("GET", "/", "200", 0.1)
		m.SetDBPoolStats(1, 1, 0)
	})
}
