package main

import (
	"errors"
	"flag"
	"io"
	"os"

	"github.com/danmuck/hexword/internal/config"
	"github.com/danmuck/hexword/internal/convert"
	"github.com/danmuck/hexword/internal/hexword"
	"github.com/danmuck/hexword/internal/logging"
	"github.com/danmuck/hexword/internal/observability"
	"github.com/rs/zerolog/log"
)

const (
	exitSuccess = 0
	exitFailure = 1
)

func main() {
	logging.ConfigureRuntime()
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("hexword", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inputFile := fs.String("input_file", "", "File to parse")
	outputFile := fs.String("output_file", "", "File to write result to")
	configPath := fs.String("config", "", "optional TOML config file; flags override its values")
	metricsFile := fs.String("metrics_file", "", "write Prometheus text metrics for this run to path")
	logLevel := fs.String("log_level", "", "log level: trace|debug|info|warn|error|off")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitSuccess
		}
		return exitFailure
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Error().Err(err).Msg("failed to load config")
			return exitFailure
		}
		cfg = loaded
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input_file":
			cfg.InputFile = *inputFile
		case "output_file":
			cfg.OutputFile = *outputFile
		case "metrics_file":
			cfg.MetricsFile = *metricsFile
		case "log_level":
			cfg.LogLevel = *logLevel
		}
	})

	if err := config.Validate(cfg); err != nil {
		log.Error().Err(err).Msg("invalid arguments")
		return exitFailure
	}
	logging.SetLevel(cfg.LogLevel)

	code := convertFile(cfg)
	if cfg.MetricsFile != "" {
		if err := observability.WriteMetricsFile(cfg.MetricsFile); err != nil {
			log.Error().Err(err).Str("metrics_file", cfg.MetricsFile).Msg("failed to write metrics")
			return exitFailure
		}
	}
	return code
}

func convertFile(cfg config.Config) int {
	res, err := convert.Run(cfg.InputFile, cfg.OutputFile)
	if err != nil {
		log.Error().Err(err).Str("kind", hexword.ErrorKind(err)).Msg("conversion failed")
		return exitFailure
	}
	log.Info().
		Int("words", res.Words).
		Int("bytes", res.Bytes).
		Dur("duration", res.Duration).
		Str("output_file", cfg.OutputFile).
		Msg("conversion complete")
	return exitSuccess
}
