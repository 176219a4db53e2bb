// Package metrics holds the Prometheus collectors for the API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "horizonventura",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	ReferralsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "horizonventura",
		Name:      "referrals_generated_total",
		Help:      "Referral codes successfully issued.",
	})

	ReferralCodeCollisions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "horizonventura",
		Name:      "referral_code_collisions_total",
		Help:      "Generation attempts discarded due to a code collision.",
	})

	ReferralsRedeemed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "horizonventura",
		Name:      "referrals_redeemed_total",
		Help:      "Referral codes successfully redeemed.",
	})

	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "horizonventura",
		Name:      "bookings_created_total",
		Help:      "Bookings created.",
	})

	ReviewsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "horizonventura",
		Name:      "reviews_created_total",
		Help:      "Reviews created.",
	})
)
