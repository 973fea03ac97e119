// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruben van Wijk

// Package metrics exposes the agent's Prometheus instrumentation.
//
// Every Metrics instance carries its own registry, so tests can
// construct as many as they like without colliding on the default
// registerer. All Record methods are safe on a nil receiver; a nil
// *Metrics disables instrumentation without branching at call sites.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rvanwijk/pii-guard/models"
)

// Anonymization pass outcomes.
const (
	OutcomeOK = "ok"

	// OutcomeDegraded marks passes that completed with warnings, after
	// vault or detector trouble.
	OutcomeDegraded = "degraded"
)

// Metrics holds all runtime counters for a running agent instance.
type Metrics struct {
	registry *prometheus.Registry

	anonymizeRequests  *prometheus.CounterVec
	valuesReplaced     *prometheus.CounterVec
	scannerFindings    *prometheus.CounterVec
	unresolvedTokens   prometheus.Counter
	detectorFailures   prometheus.Counter
	anonymizeDuration  prometheus.Histogram
	completionDuration *prometheus.HistogramVec
}

// New returns a Metrics with all collectors registered on a fresh
// registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		anonymizeRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pii_guard_anonymize_requests_total",
			Help: "Total anonymization passes by outcome",
		}, []string{"outcome"}),

		valuesReplaced: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pii_guard_values_replaced_total",
			Help: "Total distinct values replaced by placeholders, per category",
		}, []string{"category"}),

		scannerFindings: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pii_guard_scanner_findings_total",
			Help: "Total residual scanner findings by pattern",
		}, []string{"pattern"}),

		unresolvedTokens: factory.NewCounter(prometheus.CounterOpts{
			Name: "pii_guard_unresolved_placeholders_total",
			Help: "Total placeholders left verbatim during rehydration",
		}),

		detectorFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "pii_guard_detector_failures_total",
			Help: "Total detector calls that degraded to the custom-term pass",
		}),

		anonymizeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "pii_guard_anonymize_duration_seconds",
			Help:    "Anonymization pass duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12), // 0.1ms to ~400ms
		}),

		completionDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pii_guard_completion_duration_seconds",
			Help:    "Model completion duration in seconds, by backend mode",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 11), // 100ms to ~100s
		}, []string{"mode"}),
	}
}

// Handler returns the scrape endpoint handler for this registry.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordAnonymize counts one anonymization pass, its duration, and the
// spans it replaced per category.
func (m *Metrics) RecordAnonymize(outcome string, replaced map[models.Category]int, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.anonymizeRequests.WithLabelValues(outcome).Inc()
	m.anonymizeDuration.Observe(elapsed.Seconds())
	for category, count := range replaced {
		m.valuesReplaced.WithLabelValues(string(category)).Add(float64(count))
	}
}

// RecordScan counts the findings of one residual scan.
func (m *Metrics) RecordScan(report models.ScanReport) {
	if m == nil {
		return
	}

	for _, pattern := range report.FoundPatterns {
		m.scannerFindings.WithLabelValues(pattern).Inc()
	}
}

// RecordUnresolved counts placeholders a rehydration pass could not
// restore.
func (m *Metrics) RecordUnresolved(count int) {
	if m == nil || count == 0 {
		return
	}
	m.unresolvedTokens.Add(float64(count))
}

// RecordDetectorFailure counts one detector call that failed.
func (m *Metrics) RecordDetectorFailure() {
	if m == nil {
		return
	}
	m.detectorFailures.Inc()
}

// RecordCompletion records the duration of one model completion.
func (m *Metrics) RecordCompletion(mode models.BackendMode, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.completionDuration.WithLabelValues(string(mode)).Observe(elapsed.Seconds())
}
