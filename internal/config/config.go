// Package config loads the optional HCL configuration for the handrank CLI.
package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is read when no --config flag is given.
const DefaultFile = "handrank.hcl"

// Config represents the complete CLI configuration
type Config struct {
	Evaluator  EvaluatorSettings
	Logging    LoggingSettings
	Simulation SimulationSettings
}

// EvaluatorSettings controls table construction
type EvaluatorSettings struct {
	Workers int `hcl:"workers,optional"`
}

// LoggingSettings controls CLI log output
type LoggingSettings struct {
	Level string `hcl:"level,optional"`
}

// SimulationSettings controls random dealing for bench and quiz. A zero
// seed means a fresh one per run.
type SimulationSettings struct {
	Seed       int64 `hcl:"seed,optional"`
	Iterations int   `hcl:"iterations,optional"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Evaluator:  EvaluatorSettings{Workers: defaultWorkers()},
		Logging:    LoggingSettings{Level: "info"},
		Simulation: SimulationSettings{Iterations: 1_000_000},
	}
}

func defaultWorkers() int {
	return min(runtime.NumCPU(), 8)
}

// Load reads an HCL file. A missing file yields Default(); blocks and
// attributes left out of the file keep their defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	// Blocks are optional, so decode into a shadow with pointer blocks.
	var raw struct {
		Evaluator  *EvaluatorSettings  `hcl:"evaluator,block"`
		Logging    *LoggingSettings    `hcl:"logging,block"`
		Simulation *SimulationSettings `hcl:"simulation,block"`
	}
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	if raw.Evaluator != nil && raw.Evaluator.Workers != 0 {
		cfg.Evaluator.Workers = raw.Evaluator.Workers
	}
	if raw.Logging != nil && raw.Logging.Level != "" {
		cfg.Logging.Level = raw.Logging.Level
	}
	if raw.Simulation != nil {
		cfg.Simulation.Seed = raw.Simulation.Seed
		if raw.Simulation.Iterations != 0 {
			cfg.Simulation.Iterations = raw.Simulation.Iterations
		}
	}
	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Evaluator.Workers < 1 || c.Evaluator.Workers > 256 {
		return fmt.Errorf("evaluator: workers must be between 1 and 256, got %d", c.Evaluator.Workers)
	}
	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging: invalid level %q", c.Logging.Level)
	}
	if c.Simulation.Iterations < 1 {
		return fmt.Errorf("simulation: iterations must be positive, got %d", c.Simulation.Iterations)
	}
	return nil
}

// LogLevel returns the parsed logging level. Call Validate first.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Logging.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
