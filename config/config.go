package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. PHONEBOOK_STORAGE.
const EnvPrefix = "phonebook"

type Config struct {
	Storage  string `yaml:"storage" envconfig:"STORAGE"`
	Codec    string `yaml:"codec" envconfig:"CODEC"`
	LogLevel string `yaml:"log_level" envconfig:"LOG_LEVEL"`
	// Scenario is the path of the scenario to run, "-" for stdin.
	Scenario string `yaml:"scenario" envconfig:"SCENARIO"`
}

func Default() Config {
	return Config{
		Storage:  "skipmap",
		Codec:    "bson",
		LogLevel: "info",
		Scenario: "-",
	}
}

// Load starts from Default, applies the YAML file at path if path is not
// empty, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("opening config: %w", err)
		}
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("failed to decode config: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}

	return cfg, nil
}

func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}
