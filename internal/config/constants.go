package config

// Constants defining default values for application configuration
const (
	DefaultAnalysisRangeMaxDays = 30 // Days an analysis range may span when no override is set
	DefaultLogLevel             = "info"

	// Environment variable names, before any build-system prefix is applied
	EnvAnalysisRangeMaxDays = "ANALYSIS_RANGE_MAX_DAYS"
	EnvLogLevel             = "LOG_LEVEL"

	// ViteEnvPrefix is the prefix Vite requires on variables exposed to the front-end bundle.
	ViteEnvPrefix = "VITE_"
)
