package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/lox/handrank/poker"
)

type EvalCmd struct {
	Hands []string `arg:"" help:"Hands of seven cards, e.g. '2c3c4c5c6c7d8d' or '2c 3c 4c 5c 6c 7d 8d'"`
}

func (c *EvalCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	hands, err := parseHands(c.Hands)
	if err != nil {
		return err
	}
	return writeEvaluations(os.Stdout, newEvaluator(cfg, logger), hands)
}

func parseHands(inputs []string) ([]poker.Hand, error) {
	hands := make([]poker.Hand, 0, len(inputs))
	for i, s := range inputs {
		h, err := poker.ParseHand(s)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		hands = append(hands, h)
	}
	return hands, nil
}

func writeEvaluations(out io.Writer, e *poker.Evaluator, hands []poker.Hand) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("description"),
		headerStyle.Render("strength"))
	for _, h := range hands {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			handStyle.Render(h.String()),
			e.Describe(h),
			categoryStyle.Render(e.Evaluate(h).String()))
	}
	return w.Flush()
}
