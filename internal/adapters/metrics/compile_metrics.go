package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/infrast-go/internal/application/infrast"
)

// CompileMetricsCollector records one observation per infrast compile
type CompileMetricsCollector struct {
	compilesTotal  *prometheus.CounterVec
	sequenceLength *prometheus.HistogramVec
	patchesTotal   *prometheus.CounterVec
}

// NewCompileMetricsCollector creates a new compile metrics collector
func NewCompileMetricsCollector() *CompileMetricsCollector {
	return &CompileMetricsCollector{
		// Compiles by mode, lifecycle state and outcome
		compilesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "compiles_total",
				Help:      "Total number of infrast compiles by mode, state and success",
			},
			[]string{"mode", "state", "success"},
		),

		// Length of the compiled sequence
		sequenceLength: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "sequence_length",
				Help:      "Number of task units in the compiled sequence",
				Buckets:   []float64{1, 2, 4, 6, 8, 10, 12, 16, 20},
			},
			[]string{"mode"},
		),

		// Configuration patches produced
		patchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "patches_total",
				Help:      "Total number of unit configuration patches produced",
			},
			[]string{"mode"},
		),
	}
}

// Register registers all compile metrics with the Prometheus registry
func (c *CompileMetricsCollector) Register() error {
	return register(c.compilesTotal, c.sequenceLength, c.patchesTotal)
}

// RecordCompile implements infrast.CompileRecorder
func (c *CompileMetricsCollector) RecordCompile(mode infrast.Mode, state string, success bool, sequenceLen int, patches int) {
	c.compilesTotal.WithLabelValues(mode.String(), state, strconv.FormatBool(success)).Inc()
	c.sequenceLength.WithLabelValues(mode.String()).Observe(float64(sequenceLen))
	c.patchesTotal.WithLabelValues(mode.String()).Add(float64(patches))
}
