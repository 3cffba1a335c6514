package main

import (
	"flag"

	"github.com/danmuck/hexword/internal/config"
	"github.com/danmuck/hexword/internal/logging"
	"github.com/rs/zerolog/log"
)

const defaultPath = "hexword.toml"

func main() {
	logging.ConfigureRuntime()

	output := flag.String("output", defaultPath, "output path for config template")
	validate := flag.Bool("validate", false, "validate an existing config file")
	input := flag.String("input", defaultPath, "config path for validation")
	force := flag.Bool("force", false, "overwrite existing config file")
	flag.Parse()

	if *validate {
		cfg, err := config.Load(*input)
		if err != nil {
			log.Fatal().Err(err).Msg("config load failed")
		}
		if err := config.Validate(cfg); err != nil {
			log.Fatal().Err(err).Str("path", *input).Msg("config invalid")
		}
		log.Info().Str("path", *input).Msg("validated config")
		return
	}

	if err := config.WriteTemplate(*output, *force); err != nil {
		log.Fatal().Err(err).Msg("write template failed")
	}
	log.Info().Str("path", *output).Msg("wrote config template")
}
