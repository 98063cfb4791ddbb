// Package config loads the geomscene configuration from the environment.
package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Prefix is the prefix of every environment variable read by Load.
const Prefix = "GEOMSCENE"

type Config struct {
	LogLevel    string  `envconfig:"LOG_LEVEL" default:"info"`
	OutputDir   string  `envconfig:"OUTPUT_DIR" default:"."`
	RasterScale float64 `envconfig:"RASTER_SCALE" default:"1"`
	// Concurrency limits the number of scene files evaluated at once. Zero
	// or less means no limit.
	Concurrency int `envconfig:"CONCURRENCY" default:"4"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
