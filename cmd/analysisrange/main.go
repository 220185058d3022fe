package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"reddot-watch/analysisrange/internal/config"
)

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05"})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// envFiles collects repeated -env-file flags.
type envFiles []string

func (f *envFiles) String() string { return strings.Join(*f, ",") }

func (f *envFiles) Set(value string) error {
	*f = append(*f, value)
	return nil
}

func main() {
	fs := flag.NewFlagSet("analysisrange", flag.ExitOnError)

	var prefix string
	fs.StringVar(&prefix, "env-prefix", config.GetEnvString("ANALYSIS_ENV_PREFIX", ""),
		"Prefix applied to every variable name, e.g. VITE_ (env: ANALYSIS_ENV_PREFIX)")

	var files envFiles
	fs.Var(&files, "env-file", "Dotenv file to read, may be repeated; the environment takes precedence")

	var logLevelStr string
	fs.StringVar(&logLevelStr, "log-level", "",
		"Log level: debug, info, warn, error (overrides <prefix>LOG_LEVEL)")

	fs.Parse(os.Args[1:])

	// Raise verbosity before loading so the loader's own messages are visible.
	// Only the process environment is consulted here; a LOG_LEVEL that lives in
	// an -env-file takes effect after Load returns.
	zerolog.SetGlobalLevel(config.GetEnvLogLevel(prefix+config.EnvLogLevel, zerolog.InfoLevel))

	cfg, err := config.Load(config.Options{
		Prefix:   prefix,
		EnvFiles: files,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	level := cfg.LogLevel()
	if logLevelStr != "" {
		if parsed, err := zerolog.ParseLevel(logLevelStr); err == nil {
			level = parsed
		}
	}
	zerolog.SetGlobalLevel(level)

	log.Info().
		Str("prefix", prefix).
		Int("analysis_range_max_days", cfg.AnalysisRangeMaxDays()).
		Msg("Analysis range resolved")

	fmt.Println(cfg.AnalysisRangeMaxDays())
}
