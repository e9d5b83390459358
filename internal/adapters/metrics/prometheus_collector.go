package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace for all metrics
	namespace = "infrast"
	// Subsystem for compiler metrics
	subsystem = "compiler"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry
)

// InitRegistry initializes the Prometheus registry
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// GetRegistry returns the global Prometheus registry
// Returns nil if metrics are not initialized
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// ResetRegistry drops the global registry (metrics disabled)
func ResetRegistry() {
	Registry = nil
}

// WriteTextfile writes every registered metric to path in the Prometheus text
// format. It does nothing while metrics are disabled.
func WriteTextfile(path string) error {
	if Registry == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, Registry)
}

func register(collectors ...prometheus.Collector) error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	for _, c := range collectors {
		if err := Registry.Register(c); err != nil {
			return err
		}
	}
	return nil
}
