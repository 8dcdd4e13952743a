package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/handrank/internal/config"
	"github.com/lox/handrank/poker"
)

// Globals are flags shared by every command. Flags left unset fall back to
// the config file, then to built-in defaults.
type Globals struct {
	Config   string `short:"c" help:"HCL config file" default:"${config_file}" type:"path"`
	LogLevel string `help:"Log level (debug, info, warn, error)"`
	Workers  int    `help:"Goroutines used to build the tables (0 uses the config file)"`
	NoColor  bool   `help:"Disable coloured output"`
}

// setup loads the config, applies flag overrides and returns a logger.
func (g *Globals) setup() (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("loading %s: %w", g.Config, err)
	}
	if g.LogLevel != "" {
		cfg.Logging.Level = g.LogLevel
	}
	if g.Workers != 0 {
		cfg.Evaluator.Workers = g.Workers
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if g.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	logger := log.New(os.Stderr)
	logger.SetLevel(cfg.LogLevel())
	logger.Debug("Loaded configuration",
		"config", g.Config,
		"workers", cfg.Evaluator.Workers,
		"seed", cfg.Simulation.Seed,
		"iterations", cfg.Simulation.Iterations)
	return cfg, logger, nil
}

func newEvaluator(cfg *config.Config, logger *log.Logger) *poker.Evaluator {
	return poker.NewEvaluator(
		poker.WithLogger(logger),
		poker.WithWorkers(cfg.Evaluator.Workers),
	)
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)
