package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// report pipeline. A batch run reads them back at the end to log its summary,
// so every counter here is also part of the run's operator-facing output.
type Metrics struct {
	RecordsLoaded    prometheus.Counter
	RecordsDerived   prometheus.Counter
	DateParseMisses  prometheus.Counter
	UnitCodeFallback prometheus.Counter
	PipelineRunning  prometheus.Gauge

	PipelineDuration prometheus.Histogram
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RecordsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_report",
			Name:      "records_loaded_total",
			Help:      "Total raw records read from the input file.",
		}),
		RecordsDerived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_report",
			Name:      "records_derived_total",
			Help:      "Total records projected and normalized.",
		}),
		DateParseMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_report",
			Name:      "date_parse_misses_total",
			Help:      "Records whose begin date could not be parsed; excluded from year views.",
		}),
		UnitCodeFallback: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_report",
			Name:      "unit_code_fallback_total",
			Help:      "Damage-unit codes outside {k,K,m,M,B} that fell back to multiplier 1.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "storm_report",
			Name:      "pipeline_running",
			Help:      "1 while the pipeline is active, 0 when finished.",
		}),
		PipelineDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "storm_report",
			Name:      "pipeline_duration_seconds",
			Help:      "Duration of the complete load-derive-aggregate cycle.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),
	}

	prometheus.MustRegister(
		m.RecordsLoaded,
		m.RecordsDerived,
		m.DateParseMisses,
		m.UnitCodeFallback,
		m.PipelineRunning,
		m.PipelineDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RecordsLoaded:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "storm_report", Name: "records_loaded_total"}),
		RecordsDerived:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "storm_report", Name: "records_derived_total"}),
		DateParseMisses:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "storm_report", Name: "date_parse_misses_total"}),
		UnitCodeFallback: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "storm_report", Name: "unit_code_fallback_total"}),
		PipelineRunning:  prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "storm_report", Name: "pipeline_running"}),
		PipelineDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "storm_report", Name: "pipeline_duration_seconds"}),
	}
}
