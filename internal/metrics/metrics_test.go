package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementSelection("CALLING", true)
	m.IncrementSelected("EmergencyCallDomainSelector", "ps")
	m.IncrementTermination("EMERGENCY_PERM_FAILURE")
	m.IncrementScan("LIMITED_SERVICE")
	m.IncrementScan("LIMITED_SERVICE")
	m.IncrementCrossSimRedial()
	m.SelectorCreated()
	m.SelectorCreated()
	m.SelectorDestroyed()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Selections.WithLabelValues("CALLING", "true")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.NetworkScans.WithLabelValues("LIMITED_SERVICE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CrossSimRedials))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ActiveSelectors))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementSelection("SMS", false)
		m.IncrementTermination("ICC_ERROR")
		m.SelectorDestroyed()
	})
}
