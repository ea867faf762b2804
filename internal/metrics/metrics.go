package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	OutcomeCreated    = "created"
	OutcomeRejected   = "rejected"
	OutcomeConflict   = "conflict"
	OutcomeInFlight   = "in_flight"
	OutcomeRelayError = "relay_error"
	OutcomeError      = "error"
)

// BookingMetrics exposes counters/histograms for the booking flow.
type BookingMetrics struct {
	bookingsTotal       *prometheus.CounterVec
	relayDuration       *prometheus.HistogramVec
	availabilityQueries prometheus.Counter
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gamershub",
			Name:      "bookings_total",
			Help:      "Booking submissions by outcome",
		}, []string{"outcome"}),
		relayDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gamershub",
			Name:      "relay_duration_seconds",
			Help:      "Latency of form relay submissions",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status"}),
		availabilityQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gamershub",
			Name:      "availability_requests_total",
			Help:      "Slot availability evaluations served",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.bookingsTotal, m.relayDuration, m.availabilityQueries)
	return m
}

func (m *BookingMetrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(outcome).Inc()
}

func (m *BookingMetrics) ObserveRelay(ok bool, seconds float64) {
	if m == nil {
		return
	}
	status := "ok"
	if !ok {
		status = "error"
	}
	m.relayDuration.WithLabelValues(status).Observe(seconds)
}

func (m *BookingMetrics) ObserveAvailability() {
	if m == nil {
		return
	}
	m.availabilityQueries.Inc()
}
