// Package metrics holds the Prometheus collectors shared by the API, sweeper and mail worker.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "campusperks"

var (
	ClaimsIssued = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "claims_issued_total",
		Help:      "Discount claims issued.",
	})

	Redemptions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "redemptions_total",
		Help:      "Discount claims redeemed, by discount type.",
	}, []string{"discount_type"})

	EligibilityDenied = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "eligibility_denied_total",
		Help:      "Eligibility evaluations that denied a claim, by reason code.",
	}, []string{"code"})

	Savings = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "savings_total",
		Help:      "Monetary savings credited to students.",
	})

	EmailJobs = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "email_jobs_total",
		Help:      "Email jobs by type and outcome.",
	}, []string{"type", "outcome"})

	SweepRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sweep_rows_total",
		Help:      "Rows touched by scheduled sweeps.",
	}, []string{"sweep"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
