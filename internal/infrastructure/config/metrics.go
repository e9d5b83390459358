package config

// MetricsConfig holds metrics collection configuration
type MetricsConfig struct {
	// Enabled controls whether metrics collection is active
	Enabled bool `mapstructure:"enabled"`

	// Textfile receives the registry in Prometheus text format when the
	// process exits, for pickup by a node_exporter textfile collector
	Textfile string `mapstructure:"textfile"`
}
