/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

package evals

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Global metrics with consistent dimensions
	evaluationCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_evaluations_total",
			Help: "Total number of recipe evaluations performed",
		},
		[]string{"function", "namespace"},
	)

	failureCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_evaluation_failures_total",
			Help: "Total number of failed evaluations",
		},
		[]string{"function", "namespace"},
	)

	gradeGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "recipe_evaluation_grade",
			Help: "Most recent evaluation grade (0.0-1.0)",
		},
		[]string{"function", "namespace"},
	)
)

// MetricsObserver implements Observer with Prometheus metrics
type MetricsObserver struct {
	function  string
	namespace string

	evalCounter prometheus.Counter
	failCounter prometheus.Counter
	gradeGauge  prometheus.Gauge
}

// NewMetricsObserver creates a metrics observer labeled with the gateway
// function name and the evaluation namespace
func NewMetricsObserver(function, namespace string) *MetricsObserver {
	labels := prometheus.Labels{
		"function":  function,
		"namespace": namespace,
	}
	return &MetricsObserver{
		function:    function,
		namespace:   namespace,
		evalCounter: evaluationCounter.With(labels),
		failCounter: failureCounter.With(labels),
		gradeGauge:  gradeGauge.With(labels),
	}
}

// Increment implements Observer.Increment
func (m *MetricsObserver) Increment() {
	m.evalCounter.Inc()
}

// Fail implements Observer.Fail
func (m *MetricsObserver) Fail(string) {
	m.failCounter.Inc()
}

// Grade implements Observer.Grade
func (m *MetricsObserver) Grade(score float64, _ string) {
	m.gradeGauge.Set(score)
}

// Log implements Observer.Log (no-op for metrics observer)
func (m *MetricsObserver) Log(string) {
}

// Total implements Observer.Total
func (m *MetricsObserver) Total() int64 {
	return 0
}
