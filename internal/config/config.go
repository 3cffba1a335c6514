package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/hexword/internal/logging"
)

// Config holds the settings for one conversion run. Command-line flags
// override values loaded from a file.
type Config struct {
	InputFile   string `toml:"input_file"`
	OutputFile  string `toml:"output_file"`
	MetricsFile string `toml:"metrics_file"`
	LogLevel    string `toml:"log_level"`
}

// Default returns an empty run config. LogLevel stays empty so the level
// chosen by logging.Configure and its env overrides is kept.
func Default() Config {
	return Config{}
}

// Load reads path on top of Default. Keys absent from the file keep their
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw Config
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("input_file") {
		cfg.InputFile = strings.TrimSpace(raw.InputFile)
	}
	if meta.IsDefined("output_file") {
		cfg.OutputFile = strings.TrimSpace(raw.OutputFile)
	}
	if meta.IsDefined("metrics_file") {
		cfg.MetricsFile = strings.TrimSpace(raw.MetricsFile)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	if _, ok := logging.ParseLevel(cfg.LogLevel); !ok && cfg.LogLevel != "" {
		return Config{}, fmt.Errorf("config parse failed (%s): unknown log_level %q", path, cfg.LogLevel)
	}
	return cfg, nil
}

// Validate checks that cfg is complete enough to run a conversion.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.InputFile) == "" {
		return fmt.Errorf("please enter a valid input file path")
	}
	if strings.TrimSpace(cfg.OutputFile) == "" {
		return fmt.Errorf("please enter a valid output file path")
	}
	if filepath.Clean(cfg.InputFile) == filepath.Clean(cfg.OutputFile) {
		return fmt.Errorf("input_file and output_file must differ (%s)", cfg.InputFile)
	}
	if _, ok := logging.ParseLevel(cfg.LogLevel); !ok && strings.TrimSpace(cfg.LogLevel) != "" {
		return fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}
	return nil
}
