package main

import (
	"fmt"

	"github.com/LerianStudio/lib-tripwire/tripwire/runtime"
	tripwirezap "github.com/LerianStudio/lib-tripwire/tripwire/zap"
	"github.com/caarlos0/env/v11"
)

// Config is read from the environment.
type Config struct {
	Environment string `env:"ENV" envDefault:"local"`
	LogLevel    string `env:"LOG_LEVEL"`
	LoggerName  string `env:"OTEL_LIBRARY_NAME" envDefault:"tripwire"`
	FaultPolicy string `env:"TRIPWIRE_FAULT_POLICY" envDefault:"keep-running"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

func (c Config) policy() (runtime.FaultPolicy, error) {
	return runtime.ParseFaultPolicy(c.FaultPolicy)
}

func (c Config) loggerConfig() tripwirezap.Config {
	return tripwirezap.Config{
		Environment: tripwirezap.Environment(c.Environment),
		Level:       c.LogLevel,
		Name:        c.LoggerName,
	}
}

func (c Config) isProduction() bool {
	return tripwirezap.Environment(c.Environment) == tripwirezap.EnvironmentProduction
}
