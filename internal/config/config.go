package config

import (
	"fmt"
	"maps"
	"os"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds the resolved application configuration. It is built once by
// Load and passed by value; its fields cannot be changed afterwards.
type Config struct {
	analysisRangeMaxDays int
	logLevel             zerolog.Level
}

// Options controls where Load reads its values from.
type Options struct {
	// Prefix is prepended to every variable name, e.g. ViteEnvPrefix.
	Prefix string

	// Environment replaces the process environment when non-nil.
	Environment map[string]string

	// EnvFiles are dotenv files consulted for keys the environment does not set.
	EnvFiles []string
}

// rawEnv mirrors the variables as they appear in the environment, before validation.
type rawEnv struct {
	AnalysisRangeMaxDays string `env:"ANALYSIS_RANGE_MAX_DAYS"`
	LogLevel             string `env:"LOG_LEVEL" envDefault:"info"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	logLevel, _ := zerolog.ParseLevel(DefaultLogLevel)

	return Config{
		analysisRangeMaxDays: DefaultAnalysisRangeMaxDays,
		logLevel:             logLevel,
	}
}

// Load resolves the configuration from the environment described by opts.
// Malformed values fall back to their defaults and are logged, they never
// cause an error.
func Load(opts Options) (Config, error) {
	environ, err := buildEnviron(opts)
	if err != nil {
		return Config{}, err
	}

	var raw rawEnv
	if err := env.ParseWithOptions(&raw, env.Options{
		Environment: environ,
		Prefix:      opts.Prefix,
	}); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg := Default()
	key := opts.Prefix + EnvAnalysisRangeMaxDays

	days, overridden := resolveOverride(raw.AnalysisRangeMaxDays, DefaultAnalysisRangeMaxDays)
	if !overridden && !isBlank(raw.AnalysisRangeMaxDays) {
		log.Warn().
			Str("key", key).
			Str("value", raw.AnalysisRangeMaxDays).
			Int("default", DefaultAnalysisRangeMaxDays).
			Msg("Ignoring invalid analysis range, using default")
	}
	cfg.analysisRangeMaxDays = days

	if raw.LogLevel != "" {
		level, err := zerolog.ParseLevel(strings.ToLower(raw.LogLevel))
		if err != nil {
			log.Warn().
				Str("key", opts.Prefix+EnvLogLevel).
				Str("value", raw.LogLevel).
				Str("default", DefaultLogLevel).
				Msg("Ignoring invalid log level, using default")
		} else {
			cfg.logLevel = level
		}
	}

	log.Debug().
		Int("analysis_range_max_days", cfg.analysisRangeMaxDays).
		Bool("overridden", overridden).
		Msg("Configuration resolved")

	return cfg, nil
}

// buildEnviron snapshots the environment, filling gaps from opts.EnvFiles.
func buildEnviron(opts Options) (map[string]string, error) {
	base := opts.Environment
	if base == nil {
		base = environMap(os.Environ())
	}

	if len(opts.EnvFiles) == 0 {
		return maps.Clone(base), nil
	}

	fileValues, err := godotenv.Read(opts.EnvFiles...)
	if err != nil {
		return nil, fmt.Errorf("failed to read env files %v: %w", opts.EnvFiles, err)
	}

	maps.Copy(fileValues, base)
	return fileValues, nil
}

// AnalysisRangeMaxDays returns the largest analysis range, in days. It is never negative.
func (c Config) AnalysisRangeMaxDays() int {
	return c.analysisRangeMaxDays
}

// LogLevel returns the configured log level.
func (c Config) LogLevel() zerolog.Level {
	return c.logLevel
}

func (c Config) String() string {
	return fmt.Sprintf("Config{AnalysisRangeMaxDays=%d, LogLevel=%s}", c.analysisRangeMaxDays, c.logLevel)
}
