package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for domain selection. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	// Selection requests by selector type and emergency flag
	Selections *prometheus.CounterVec

	// Domain decisions by selector and chosen transport/domain
	DomainSelected *prometheus.CounterVec

	// Terminations by disconnect cause
	Terminations *prometheus.CounterVec

	// Emergency network scans by scan type
	NetworkScans *prometheus.CounterVec

	// Cross-SIM redial hand-offs
	CrossSimRedials prometheus.Counter

	// Emergency dial attempts over Wi-Fi
	WifiTrials prometheus.Counter

	// Live selectors
	ActiveSelectors prometheus.Gauge
}

// New registers every metric with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Selections: f.NewCounterVec(prometheus.CounterOpts{
			Name: "domainselection_requests_total",
			Help: "Total domain selection requests by selector type and emergency flag",
		}, []string{"type", "emergency"}),

		DomainSelected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "domainselection_selected_total",
			Help: "Total domain decisions by selector and result",
		}, []string{"selector", "result"}), // result: "wlan", "cs", "ps"

		Terminations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "domainselection_terminations_total",
			Help: "Total selections terminated by disconnect cause",
		}, []string{"cause"}),

		NetworkScans: f.NewCounterVec(prometheus.CounterOpts{
			Name: "domainselection_network_scans_total",
			Help: "Total emergency network scans requested by scan type",
		}, []string{"scan_type"}),

		CrossSimRedials: f.NewCounter(prometheus.CounterOpts{
			Name: "domainselection_cross_sim_redials_total",
			Help: "Total emergency selections handed to another SIM slot",
		}),

		WifiTrials: f.NewCounter(prometheus.CounterOpts{
			Name: "domainselection_wifi_trials_total",
			Help: "Total emergency dial attempts placed over Wi-Fi",
		}),

		ActiveSelectors: f.NewGauge(prometheus.GaugeOpts{
			Name: "domainselection_active_selectors",
			Help: "Number of live domain selectors",
		}),
	}
}

func (m *Metrics) IncrementSelection(selectorType string, emergency bool) {
	if m != nil {
		e := "false"
		if emergency {
			e = "true"
		}
		m.Selections.WithLabelValues(selectorType, e).Inc()
	}
}

func (m *Metrics) IncrementSelected(selector, result string) {
	if m != nil {
		m.DomainSelected.WithLabelValues(selector, result).Inc()
	}
}

func (m *Metrics) IncrementTermination(cause string) {
	if m != nil {
		m.Terminations.WithLabelValues(cause).Inc()
	}
}

func (m *Metrics) IncrementScan(scanType string) {
	if m != nil {
		m.NetworkScans.WithLabelValues(scanType).Inc()
	}
}

func (m *Metrics) IncrementCrossSimRedial() {
	if m != nil {
		m.CrossSimRedials.Inc()
	}
}

func (m *Metrics) IncrementWifiTrial() {
	if m != nil {
		m.WifiTrials.Inc()
	}
}

func (m *Metrics) SelectorCreated() {
	if m != nil {
		m.ActiveSelectors.Inc()
	}
}

func (m *Metrics) SelectorDestroyed() {
	if m != nil {
		m.ActiveSelectors.Dec()
	}
}
