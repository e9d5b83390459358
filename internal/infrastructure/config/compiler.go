package config

// CompilerConfig holds settings for the infrast compiler
type CompilerConfig struct {
	// Directory used to resolve relative plan filenames (empty = working directory)
	PlanDir string `mapstructure:"plan_dir"`

	// Persist compile log entries to the database
	PersistLogs bool `mapstructure:"persist_logs"`

	// Number of log entries shown by "infrast logs"
	LogLimit int `mapstructure:"log_limit" validate:"min=1,max=10000"`
}
