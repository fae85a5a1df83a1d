package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "checkout_service",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Total number of orders created from carts.",
	})

	ordersCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "checkout_service",
		Subsystem: "orders",
		Name:      "cancelled_total",
		Help:      "Total number of orders cancelled.",
	})

	checkoutsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "checkout_service",
		Subsystem: "orders",
		Name:      "checkout_failures_total",
		Help:      "Total number of failed checkout attempts.",
	})

	checkoutDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "checkout_service",
		Subsystem: "orders",
		Name:      "checkout_duration_seconds",
		Help:      "Checkout latencies in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)
