package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/handrank/internal/quiz"
	"github.com/lox/handrank/internal/randutil"
	"github.com/lox/handrank/poker"
)

type QuizCmd struct {
	Rounds int   `help:"Stop after this many rounds (0 plays until quit)" default:"0"`
	Plain  bool  `help:"Read guesses line by line instead of the interactive screen"`
	Seed   int64 `help:"Deal seed (0 uses the config file, then the clock)"`
}

func (c *QuizCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = cfg.Simulation.Seed
	}
	seed = randutil.Seed(seed, time.Now())
	logger.Info("Starting quiz", "seed", seed, "rounds", c.Rounds)

	dealer := quiz.NewDealer(poker.NewDeck(randutil.New(seed)), newEvaluator(cfg, logger))

	var score quiz.Score
	if c.Plain {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		score, err = quiz.RunPlain(ctx, dealer, os.Stdin, os.Stdout, c.Rounds)
		if err != nil {
			return err
		}
	} else {
		model := quiz.NewModel(dealer, logger, c.Rounds)
		if _, err := tea.NewProgram(model).Run(); err != nil {
			return fmt.Errorf("running quiz: %w", err)
		}
		score = model.Score()
	}

	fmt.Println(headerStyle.Render("Final score: ") + score.String())
	return nil
}
