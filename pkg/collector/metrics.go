/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package collector

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	checkDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "laris_check_duration_seconds",
			Help:    "Time taken to collect a complete performance report",
			Buckets: []float64{1, 5, 10, 30, 60, 120},
		},
	)

	checkTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "laris_check_total",
			Help: "Total number of check runs",
		},
		[]string{"status"}, // success or degraded
	)

	collectorDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "laris_collector_duration_seconds",
			Help:    "Time taken by individual collectors",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"collector"},
	)

	collectorFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "laris_collector_failures_total",
			Help: "Total number of collector failures",
		},
		[]string{"collector"},
	)
)
