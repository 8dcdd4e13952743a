package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/handrank/poker"
)

type CompareCmd struct {
	First  string `arg:"" help:"First seven-card hand"`
	Second string `arg:"" help:"Second seven-card hand"`
}

func (c *CompareCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	hands, err := parseHands([]string{c.First, c.Second})
	if err != nil {
		return err
	}
	if hands[0]&hands[1] != 0 {
		logger.Warn("Hands share cards and could not both be dealt",
			"shared", (hands[0] & hands[1]).String())
	}
	_, err = writeComparison(os.Stdout, newEvaluator(cfg, logger), hands[0], hands[1])
	return err
}

// writeComparison prints both hands and the verdict, returning Compare's result.
func writeComparison(out io.Writer, e *poker.Evaluator, first, second poker.Hand) (int, error) {
	if err := writeEvaluations(out, e, []poker.Hand{first, second}); err != nil {
		return 0, err
	}

	result := e.Compare(first, second)
	var verdict string
	switch result {
	case 1:
		verdict = winStyle.Render("Hand 1 wins")
	case -1:
		verdict = winStyle.Render("Hand 2 wins")
	default:
		verdict = tieStyle.Render("Split pot")
	}
	_, err := fmt.Fprintf(out, "\n%s\n", verdict)
	return result, err
}
