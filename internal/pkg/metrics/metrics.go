package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Domain counters exported at /metrics.
var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "facility_bookings_created_total",
		Help: "Number of booking requests accepted.",
	})

	BookingsDecided = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "facility_bookings_decided_total",
		Help: "Number of booking approval decisions, by outcome.",
	}, []string{"outcome"})

	BookingsExpired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "facility_bookings_expired_total",
		Help: "Number of pending bookings auto-rejected after their date passed.",
	})
)
