// Package observability provides Prometheus metrics for the classification
// pipeline. A nil *Metrics is safe to use; all record methods become no-ops,
// which keeps the one-shot CLI commands free of a metrics dependency.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Skip reasons recorded by the poller.
const (
	SkipReasonNoModel       = "no_model"
	SkipReasonNoAudio       = "no_audio"
	SkipReasonClassifyError = "classify_error"
	SkipReasonLowConfidence = "low_confidence"
)

// Cache events recorded by the model cache.
const (
	CacheEventHit      = "hit"
	CacheEventMiss     = "miss"
	CacheEventEviction = "eviction"
	CacheEventError    = "error"
)

// Metrics holds the Prometheus collectors for the service.
type Metrics struct {
	detectionsProcessed prometheus.Counter
	resultsStored       prometheus.Counter
	skips               *prometheus.CounterVec
	cacheEvents         *prometheus.CounterVec
	inferenceDuration   prometheus.Histogram
	cursorPosition      prometheus.Gauge
}

// NewMetrics creates and registers the service collectors on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		detectionsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vocalization_detections_processed_total",
			Help: "Total number of detections attempted by the poller",
		}),
		resultsStored: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vocalization_results_stored_total",
			Help: "Total number of classification results persisted",
		}),
		skips: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vocalization_skips_total",
			Help: "Detections skipped without a persisted result, by reason",
		}, []string{"reason"}),
		cacheEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vocalization_model_cache_events_total",
			Help: "Model cache hits, misses, evictions and load errors",
		}, []string{"event"}),
		inferenceDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "vocalization_inference_duration_seconds",
			Help:    "Duration of a single classification including feature extraction",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
		cursorPosition: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "vocalization_cursor_position",
			Help: "Last processed detection id",
		}),
	}

	collectors := []prometheus.Collector{
		m.detectionsProcessed,
		m.resultsStored,
		m.skips,
		m.cacheEvents,
		m.inferenceDuration,
		m.cursorPosition,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// RecordDetectionProcessed increments the processed detections counter.
func (m *Metrics) RecordDetectionProcessed() {
	if m == nil {
		return
	}
	m.detectionsProcessed.Inc()
}

// RecordResultStored increments the persisted results counter.
func (m *Metrics) RecordResultStored() {
	if m == nil {
		return
	}
	m.resultsStored.Inc()
}

// RecordSkip increments the skip counter for the given reason.
func (m *Metrics) RecordSkip(reason string) {
	if m == nil {
		return
	}
	m.skips.WithLabelValues(reason).Inc()
}

// RecordCacheEvent increments the model cache event counter.
func (m *Metrics) RecordCacheEvent(event string) {
	if m == nil {
		return
	}
	m.cacheEvents.WithLabelValues(event).Inc()
}

// RecordInferenceDuration observes a classification duration in seconds.
func (m *Metrics) RecordInferenceDuration(seconds float64) {
	if m == nil {
		return
	}
	m.inferenceDuration.Observe(seconds)
}

// SetCursorPosition records the current detection cursor.
func (m *Metrics) SetCursorPosition(id int64) {
	if m == nil {
		return
	}
	m.cursorPosition.Set(float64(id))
}
